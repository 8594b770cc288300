// internal/app/features/savedfilters/routes.go
package savedfilters

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts all Saved Filter routes under the base path
// (typically "/saved-filters" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)

	r.Get("/new", h.ServeNew)
	r.Post("/", h.HandleCreate)

	r.Get("/{id}/delete", h.ServeDeleteConfirm)
	r.Post("/{id}/delete", h.HandleDelete)

	return r
}
