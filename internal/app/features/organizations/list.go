// internal/app/features/organizations/list.go
package organizations

import (
	"context"
	"net/http"

	"github.com/breezehq/breeze-console/internal/app/system/timeouts"
	"github.com/breezehq/breeze-console/internal/app/system/viewdata"
	"github.com/breezehq/breeze-console/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"

	"go.uber.org/zap"
)

// ServeList handles GET /organizations (with optional ?q= and ?status=).
// It supports HTMX partial refresh of the table when HX-Target="orgs-table-wrap".
//
// When the platform fetch fails but an earlier fetch succeeded, the page
// renders the last good snapshot with a stale-data banner instead of an
// error page.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := query.Search(r, "q")
	status := query.Get(r, "status")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	orgs, err := h.Orgs.List(ctx)
	stale := false
	if err != nil {
		snap, _, ok := h.Orgs.Snapshot()
		if !ok {
			h.ErrLog.LogUnavailable(w, r, "list organizations failed", err,
				"Failed to fetch organizations.", "/organizations")
			return
		}
		h.Log.Warn("list organizations failed, rendering snapshot", zap.Error(err))
		orgs = snap
		stale = true
	}

	filtered := filterOrganizations(orgs, q, status)

	items := make([]listItem, 0, len(filtered))
	for _, o := range filtered {
		items = append(items, listItem{
			ID:          o.ID,
			Name:        o.Name,
			Status:      o.Status,
			DeviceCount: o.DeviceCount,
			Created:     o.CreatedDate(),
		})
	}

	data := listData{
		BaseVM:   viewdata.NewBaseVM(w, r, "Organizations", "/"),
		Q:        q,
		Status:   status,
		Statuses: models.OrgStatuses,
		Items:    items,
		Stale:    stale,
	}
	if stale {
		data.StaleNotice = "Showing previously loaded organizations. The latest data could not be fetched."
	}

	// HTMX partial: just the table
	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "orgs-table-wrap" {
		templates.RenderSnippet(w, "organizations_table", data)
		return
	}

	templates.Render(w, r, "organizations_list", data)
}
