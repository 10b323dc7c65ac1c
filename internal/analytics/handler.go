// AngelaMos | 2026
// handler.go

package analytics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ussr-leaders/backend/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/analytics", func(r chi.Router) {
		r.Get("/popular", h.Popular)
		r.With(authenticator, adminOnly).Get("/recent-activity", h.RecentActivity)
	})
}

func (h *Handler) Popular(w http.ResponseWriter, r *http.Request) {
	leaders, err := h.service.PopularLeaders(r.Context(), queryLimit(r))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, leaders)
}

func (h *Handler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.RecentActivity(r.Context(), queryLimit(r))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, records)
}

func queryLimit(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return limit
}
