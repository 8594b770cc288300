// internal/app/features/savedfilters/list.go
package savedfilters

import (
	"context"
	"net/http"

	"github.com/breezehq/breeze-console/internal/app/system/timeouts"
	"github.com/breezehq/breeze-console/internal/app/system/viewdata"
	"github.com/breezehq/breeze-console/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
)

// ServeList handles GET /saved-filters (with optional ?q= prefix search and
// ?entity= narrowing). It supports HTMX partial refresh of the table when
// HX-Target="filters-table-wrap".
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := query.Search(r, "q")
	entity := query.Get(r, "entity")
	if entity != models.FilterEntityOrganizations && entity != models.FilterEntitySites {
		entity = ""
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	filters, err := h.Filters.List(ctx, entity, q)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list saved filters failed", err,
			"Unable to load saved filters.", "/")
		return
	}

	items := make([]listItem, 0, len(filters))
	for _, f := range filters {
		items = append(items, listItem{
			ID:      f.ID.Hex(),
			Name:    f.Name,
			Entity:  f.Entity,
			Query:   f.Query,
			Status:  f.Status,
			ListURL: f.ListURL(),
			Created: f.CreatedAt.Format("1/2/2006"),
		})
	}

	data := listData{
		BaseVM:   viewdata.NewBaseVM(w, r, "Saved Filters", "/"),
		Q:        q,
		Entity:   entity,
		Items:    items,
		Entities: models.FilterEntities,
	}

	// HTMX partial: just the table
	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "filters-table-wrap" {
		templates.RenderSnippet(w, "savedfilters_table", data)
		return
	}

	templates.Render(w, r, "savedfilters_list", data)
}
