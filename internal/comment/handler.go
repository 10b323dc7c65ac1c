// AngelaMos | 2026
// handler.go

package comment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/ussr-leaders/backend/internal/core"
	"github.com/ussr-leaders/backend/internal/middleware"
)

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

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Get("/leaders/{id}/comments", h.ListByLeader)

	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/leaders/{id}/comments", h.Create)
		r.Delete("/comments/{id}", h.Delete)
	})
}

func (h *Handler) ListByLeader(w http.ResponseWriter, r *http.Request) {
	leaderID, ok := pathID(w, r, "invalid leader id")
	if !ok {
		return
	}

	comments, err := h.service.ListByLeader(r.Context(), leaderID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToCommentResponseList(comments))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	leaderID, ok := pathID(w, r, "invalid leader id")
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	userID := middleware.GetUserID(r.Context())

	c, err := h.service.Create(r.Context(), userID, leaderID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, err.Error())
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "leader")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Created(w, ToCommentResponse(c))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "invalid comment id")
	if !ok {
		return
	}

	userID := middleware.GetUserID(r.Context())
	isAdmin := middleware.IsAdmin(r.Context())

	if err := h.service.Delete(r.Context(), id, userID, isAdmin); err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "comment")
		case errors.Is(err, core.ErrForbidden):
			core.Forbidden(w, "not allowed to delete this comment")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.NoContent(w)
}

func pathID(w http.ResponseWriter, r *http.Request, msg string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		core.BadRequest(w, msg)
		return 0, false
	}
	return id, true
}
