// internal/app/features/billing/summary.go
package billing

import (
	"context"
	"net/http"

	"github.com/breezehq/breeze-console/internal/app/system/timeouts"
	"github.com/breezehq/breeze-console/internal/app/system/viewdata"
	"github.com/breezehq/breeze-console/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

// summaryData is the view model for the billing page.
type summaryData struct {
	viewdata.BaseVM

	Summary models.BillingSummary

	// Sample is set when the billing service was unreachable and the page
	// shows representative data instead of the account's own.
	Sample       bool
	SampleNotice string
}

// ServeSummary handles GET /billing. The page is display-only; when the
// billing service cannot be reached it renders a representative sample with
// a notice rather than failing.
func (h *Handler) ServeSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	summary, live := h.Billing.Summary(ctx)

	data := summaryData{
		BaseVM:  viewdata.NewBaseVM(w, r, "Billing", "/"),
		Summary: summary,
		Sample:  !live,
	}
	if !live {
		data.SampleNotice = "Showing sample billing data. Live billing could not be fetched."
	}

	templates.Render(w, r, "billing_summary", data)
}
