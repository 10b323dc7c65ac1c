// AngelaMos | 2026
// handler.go

package leader

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/ussr-leaders/backend/internal/core"
)

// FactsSourceHeader reports whether facts were served from storage,
// freshly generated, or produced by the static fallback.
const FactsSourceHeader = "X-Facts-Source"

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes wires the leader endpoints. Reads are public; creation
// and deletion are admin-only while updates are open to editors.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, editorOnly, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/leaders", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/search", h.Search)
		r.Get("/{id}", h.GetByID)
		r.Get("/{id}/facts", h.GetFacts)
		r.Get("/{id}/recommendations", h.Recommendations)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.With(adminOnly).Post("/", h.Create)
			r.With(editorOnly).Put("/{id}", h.Update)
			r.With(adminOnly).Delete("/{id}", h.Delete)
		})
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	leaders, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToLeaderResponseList(leaders))
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	leaders, err := h.service.Search(r.Context(), query)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, SearchResponse{
		Results: ToLeaderResponseList(leaders),
		Total:   len(leaders),
	})
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.leaderID(w, r)
	if !ok {
		return
	}

	l, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "leader")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToLeaderResponse(l))
}

func (h *Handler) GetFacts(w http.ResponseWriter, r *http.Request) {
	id, ok := h.leaderID(w, r)
	if !ok {
		return
	}

	facts, source, err := h.service.GetFacts(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "leader")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	w.Header().Set(FactsSourceHeader, string(source))
	core.OK(w, FactsResponse{Facts: ToFactResponseList(facts)})
}

func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	id, ok := h.leaderID(w, r)
	if !ok {
		return
	}

	count, _ := strconv.Atoi(r.URL.Query().Get("count"))

	recs, err := h.service.Recommendations(r.Context(), id, count)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "leader")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToLeaderResponseList(recs))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateLeaderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	l, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, err.Error())
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToLeaderResponse(l))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.leaderID(w, r)
	if !ok {
		return
	}

	var req UpdateLeaderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	l, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "leader")
			return
		}
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, err.Error())
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToLeaderResponse(l))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.leaderID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "leader")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

// leaderID parses the {id} path parameter. Non-numeric values are a
// client error, not a missing resource.
func (h *Handler) leaderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		core.BadRequest(w, "invalid leader id")
		return 0, false
	}
	return id, true
}
