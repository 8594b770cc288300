// internal/app/features/billing/routes.go
package billing

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the Billing routes under the base path
// (typically "/billing" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeSummary)
	return r
}
