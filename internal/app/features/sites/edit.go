// internal/app/features/sites/edit.go
package sites

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/breezehq/breeze-console/internal/app/features/errors"
	sitestore "github.com/breezehq/breeze-console/internal/app/store/sites"
	"github.com/breezehq/breeze-console/internal/app/system/formutil"
	"github.com/breezehq/breeze-console/internal/app/system/limits"
	"github.com/breezehq/breeze-console/internal/app/system/navigation"
	"github.com/breezehq/breeze-console/internal/app/system/timeouts"
	"github.com/breezehq/breeze-console/internal/app/system/timezones"
	"github.com/breezehq/breeze-console/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeEdit renders the Edit Site form prefilled from the platform.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	site, err := h.Sites.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sitestore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "Site not found.", "/sites")
			return
		}
		h.ErrLog.LogUnavailable(w, r, "load site failed", err, "Failed to fetch sites.", "/sites")
		return
	}

	tzGroups, err := timezones.Groups()
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to load time zones", err, "Failed to load time zones.", "/sites")
		return
	}

	data := siteToForm(site)
	data.TimeZoneGroups = tzGroups
	formutil.SetBase(&data.Base, w, r, "Edit Site", "/sites")

	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "site_form_modal", data)
		return
	}
	templates.Render(w, r, "site_edit", data)
}

// HandleEdit processes the Edit Site form POST.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/sites")
		return
	}

	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Ensure the site still exists before accepting edits.
	if _, err := h.Sites.Get(ctx, id); err != nil {
		if errors.Is(err, sitestore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "Site not found.", "/sites")
			return
		}
		h.ErrLog.LogUnavailable(w, r, "load site failed", err, "Failed to fetch sites.", "/sites")
		return
	}

	tzGroups, err := timezones.Groups()
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to load time zones", err, "Failed to load time zones.", "/sites")
		return
	}

	data := readSiteForm(r)
	data.ID = id
	data.TimeZoneGroups = tzGroups

	renderForm := func() {
		formutil.SetBase(&data.Base, w, r, "Edit Site", "/sites")
		if r.Header.Get("HX-Request") != "" {
			templates.RenderSnippet(w, "site_form_modal", data)
			return
		}
		templates.Render(w, r, "site_edit", data)
	}

	if !validateSiteForm(&data) {
		renderForm()
		return
	}

	if err := h.Sites.Update(ctx, id, formToSite(data)); err != nil {
		h.Log.Error("update site failed", zap.Error(err), zap.String("site_id", id))
		data.SetError("Failed to save site.")
		renderForm()
		return
	}

	h.Flash.Add(w, r, "Site updated.")
	ret := navigation.SafeBackURL(r, navigation.SitesBackURL)
	redirect(w, r, ret)
}

// siteToForm prefills the form view model from a platform site.
func siteToForm(site models.Site) formData {
	return formData{
		ID:           site.ID,
		Name:         site.Name,
		TimeZone:     site.TimeZone,
		AddressLine1: site.AddressLine1,
		AddressLine2: site.AddressLine2,
		City:         site.City,
		State:        site.State,
		PostalCode:   site.PostalCode,
		Country:      site.Country,
		ContactName:  site.ContactName,
		ContactEmail: site.ContactEmail,
		ContactPhone: site.ContactPhone,
	}
}
