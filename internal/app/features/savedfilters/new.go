// internal/app/features/savedfilters/new.go
package savedfilters

import (
	"context"
	"errors"
	"net/http"
	"strings"

	savedfilterstore "github.com/breezehq/breeze-console/internal/app/store/savedfilters"
	"github.com/breezehq/breeze-console/internal/app/system/formutil"
	"github.com/breezehq/breeze-console/internal/app/system/htmlsanitize"
	"github.com/breezehq/breeze-console/internal/app/system/inputval"
	"github.com/breezehq/breeze-console/internal/app/system/limits"
	"github.com/breezehq/breeze-console/internal/app/system/navigation"
	"github.com/breezehq/breeze-console/internal/app/system/timeouts"
	"github.com/breezehq/breeze-console/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"

	"go.uber.org/zap"
)

// saveFilterInput defines validation rules for saving a filter.
type saveFilterInput struct {
	Name   string `validate:"required,max=100" label:"Filter name"`
	Entity string `validate:"required,oneof=organizations sites" label:"List"`
	Query  string `validate:"max=200" label:"Search text"`
	Status string `validate:"omitempty,oneof=all active trial suspended inactive" label:"Status"`
}

// ServeNew renders the "Save Filter" form. The list pages link here with the
// current q/status/entity prefilled so the user only names the filter.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := formData{
		Entity:   query.Get(r, "entity"),
		Query:    query.Search(r, "q"),
		Status:   query.Get(r, "status"),
		Entities: models.FilterEntities,
		Statuses: models.OrgStatuses,
	}
	if data.Entity == "" {
		data.Entity = models.FilterEntityOrganizations
	}
	formutil.SetBase(&data.Base, w, r, "Save Filter", "/saved-filters")

	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "savedfilter_form_modal", data)
		return
	}
	templates.Render(w, r, "savedfilter_new", data)
}

// HandleCreate processes the Save Filter form submission.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/saved-filters")
		return
	}

	data := formData{
		Name:     htmlsanitize.Text(r.FormValue("name")),
		Entity:   strings.TrimSpace(r.FormValue("entity")),
		Query:    htmlsanitize.Text(r.FormValue("q")),
		Status:   strings.TrimSpace(r.FormValue("status")),
		Entities: models.FilterEntities,
		Statuses: models.OrgStatuses,
	}

	renderForm := func() {
		formutil.SetBase(&data.Base, w, r, "Save Filter", "/saved-filters")
		if r.Header.Get("HX-Request") != "" {
			templates.RenderSnippet(w, "savedfilter_form_modal", data)
			return
		}
		templates.Render(w, r, "savedfilter_new", data)
	}

	input := saveFilterInput{Name: data.Name, Entity: data.Entity, Query: data.Query, Status: data.Status}
	if result := inputval.Validate(input); result.HasErrors() {
		data.SetValidation(result)
		renderForm()
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	f := models.SavedFilter{
		Name:   data.Name,
		Entity: data.Entity,
		Query:  data.Query,
		Status: data.Status,
	}
	if _, err := h.Filters.Create(ctx, f); err != nil {
		if errors.Is(err, savedfilterstore.ErrDuplicateFilter) {
			data.SetError("A saved filter with that name already exists for this list.")
			renderForm()
			return
		}
		h.Log.Error("create saved filter failed", zap.Error(err))
		data.SetError("Failed to save filter.")
		renderForm()
		return
	}

	h.Flash.Add(w, r, "Filter saved.")
	ret := navigation.SafeBackURL(r, navigation.SavedFiltersBackURL)
	redirect(w, r, ret)
}
