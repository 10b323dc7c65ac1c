// AngelaMos | 2026
// handler.go

package interaction

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

// RegisterRoutes wires interaction endpoints. Recording uses optional
// auth so anonymous views still count; bookmark management requires a
// session and interaction deletion is admin-only.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	optionalAuth, authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.With(optionalAuth).Post("/leaders/{id}/interactions", h.Record)

	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/users/me/bookmarks", h.ListBookmarks)
		r.Delete("/leaders/{id}/bookmark", h.RemoveBookmark)
		r.With(adminOnly).Delete("/interactions/{id}", h.Delete)
	})
}

func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	leaderID, ok := pathID(w, r, "invalid leader id")
	if !ok {
		return
	}

	var req RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	userID := middleware.GetUserID(r.Context())

	i, err := h.service.Record(r.Context(), userID, leaderID, req.Kind)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrUnauthorized):
			core.Unauthorized(w, "authentication required")
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "leader")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, err.Error())
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Created(w, ToInteractionResponse(i))
}

func (h *Handler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	bookmarks, err := h.service.ListBookmarks(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToBookmarkResponseList(bookmarks))
}

func (h *Handler) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	leaderID, ok := pathID(w, r, "invalid leader id")
	if !ok {
		return
	}

	userID := middleware.GetUserID(r.Context())

	if err := h.service.RemoveBookmark(r.Context(), userID, leaderID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "bookmark")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "invalid interaction id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "interaction")
			return
		}
		core.InternalServerError(w, err)
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
