// internal/app/features/sites/list.go
package sites

import (
	"context"
	"net/http"
	"strings"

	"github.com/breezehq/breeze-console/internal/app/system/timeouts"
	"github.com/breezehq/breeze-console/internal/app/system/timezones"
	"github.com/breezehq/breeze-console/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"

	"go.uber.org/zap"
)

// ServeList handles GET /sites (with optional ?q= search on name or city).
// It supports HTMX partial refresh of the table when HX-Target="sites-table-wrap".
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := query.Search(r, "q")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	sites, err := h.Sites.List(ctx)
	stale := false
	if err != nil {
		snap, _, ok := h.Sites.Snapshot()
		if !ok {
			h.ErrLog.LogUnavailable(w, r, "list sites failed", err,
				"Failed to fetch sites.", "/sites")
			return
		}
		h.Log.Warn("list sites failed, rendering snapshot", zap.Error(err))
		sites = snap
		stale = true
	}

	filtered := filterSites(sites, q)

	items := make([]listItem, 0, len(filtered))
	for _, s := range filtered {
		items = append(items, listItem{
			ID:          s.ID,
			Name:        s.Name,
			Location:    siteLocation(s.City, s.State, s.Country),
			TimeZone:    timezones.Label(s.TimeZone),
			DeviceCount: s.DeviceCount,
		})
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(w, r, "Sites", "/"),
		Q:      q,
		Items:  items,
		Stale:  stale,
	}
	if stale {
		data.StaleNotice = "Showing previously loaded sites. The latest data could not be fetched."
	}

	// HTMX partial: just the table
	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "sites-table-wrap" {
		templates.RenderSnippet(w, "sites_table", data)
		return
	}

	templates.Render(w, r, "sites_list", data)
}

// siteLocation joins the non-empty locality parts for the table row.
func siteLocation(parts ...string) string {
	keep := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			keep = append(keep, p)
		}
	}
	return strings.Join(keep, ", ")
}
