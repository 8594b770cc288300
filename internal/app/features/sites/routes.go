// internal/app/features/sites/routes.go
package sites

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts all Site routes under the base path
// (typically "/sites" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// LIST (full page, plus HTMX table refresh)
	r.Get("/", h.ServeList)

	// CREATE
	r.Get("/new", h.ServeNew)
	r.Post("/", h.HandleCreate)

	// EDIT
	r.Get("/{id}/edit", h.ServeEdit)
	r.Post("/{id}/edit", h.HandleEdit)

	// DELETE (confirmation + action)
	r.Get("/{id}/delete", h.ServeDeleteConfirm)
	r.Post("/{id}/delete", h.HandleDelete)

	return r
}
