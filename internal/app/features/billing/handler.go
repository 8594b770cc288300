// internal/app/features/billing/handler.go
package billing

import (
	billingstore "github.com/breezehq/breeze-console/internal/app/store/billing"
	"go.uber.org/zap"
)

// Handler serves the read-only billing summary page.
type Handler struct {
	Billing *billingstore.Store
	Log     *zap.Logger
}

// NewHandler constructs a Billing handler bound to the summary store.
func NewHandler(billing *billingstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Billing: billing, Log: logger}
}
