package uploads

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/media"
)

// RegisterRoutes sirve las imágenes subidas en GET /uploads/{filename}.
func RegisterRoutes(r chi.Router, store media.Store, log logger.Logger) {
	r.Get(media.URLPrefix+"{filename}", serveHandler(store, log))
}

// serveHandler godoc
// @Summary  Serve an uploaded pet image
// @Tags     uploads
// @Produce  image/png
// @Produce  image/jpeg
// @Produce  image/gif
// @Param    filename  path  string  true  "file name"
// @Success  200
// @Failure  404
// @Router   /uploads/{filename} [get]
func serveHandler(store media.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		obj, err := store.Open(r.Context(), chi.URLParam(r, "filename"))
		if err != nil {
			if !errors.Is(err, media.ErrNotFound) && !errors.Is(err, media.ErrInvalidName) {
				log.Error("open upload", map[string]any{"error": err, "path": r.URL.Path})
			}
			http.NotFound(w, r)
			return
		}
		defer func() {
			if cerr := obj.Body.Close(); cerr != nil {
				log.Warn("close upload", map[string]any{"error": cerr})
			}
		}()

		if obj.ContentType != "" {
			w.Header().Set("Content-Type", obj.ContentType)
		}
		w.Header().Set("X-Content-Type-Options", "nosniff")
		http.ServeContent(w, r, obj.Name, obj.ModTime, obj.Body)
	}
}
