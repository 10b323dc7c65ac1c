// AngelaMos | 2026
// handler.go

package video

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ussr-leaders/backend/internal/core"
)

// Handler streams leader videos from a local directory. File names are
// derived from the numeric id, so path traversal is impossible by
// construction.
type Handler struct {
	dir string
}

func NewHandler(dir string) *Handler {
	return &Handler{dir: dir}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/videos/{id}.mp4", h.Stream)
}

// Stream serves the video with Range support via http.ServeContent, so
// browser seek works out of the box.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		core.BadRequest(w, "invalid video id")
		return
	}

	path := filepath.Join(h.dir, strconv.FormatInt(id, 10)+".mp4")

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			core.NotFound(w, "video")
			return
		}
		core.InternalServerError(w, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "video/mp4")
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
