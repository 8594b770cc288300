// internal/app/features/sites/new.go
package sites

import (
	"context"
	"net/http"
	"strings"

	"github.com/breezehq/breeze-console/internal/app/system/formutil"
	"github.com/breezehq/breeze-console/internal/app/system/htmlsanitize"
	"github.com/breezehq/breeze-console/internal/app/system/inputval"
	"github.com/breezehq/breeze-console/internal/app/system/limits"
	"github.com/breezehq/breeze-console/internal/app/system/navigation"
	"github.com/breezehq/breeze-console/internal/app/system/normalize"
	"github.com/breezehq/breeze-console/internal/app/system/timeouts"
	"github.com/breezehq/breeze-console/internal/app/system/timezones"
	"github.com/breezehq/breeze-console/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"

	"go.uber.org/zap"
)

// siteFormInput defines validation rules shared by create and edit.
type siteFormInput struct {
	Name         string `validate:"required,max=200" label:"Site name"`
	TimeZone     string `validate:"required" label:"Time zone"`
	AddressLine1 string `validate:"required,max=200" label:"Address line 1"`
	AddressLine2 string `validate:"max=200" label:"Address line 2"`
	City         string `validate:"required,max=100" label:"City"`
	State        string `validate:"required,max=100" label:"State"`
	PostalCode   string `validate:"required,max=20" label:"Postal code"`
	Country      string `validate:"required,max=100" label:"Country"`
	ContactName  string `validate:"required,max=200" label:"Contact name"`
	ContactEmail string `validate:"required,email" label:"Contact email"`
	ContactPhone string `validate:"required,min=7,max=30" label:"Contact phone"`
}

// readSiteForm pulls and normalizes the posted site fields.
func readSiteForm(r *http.Request) formData {
	return formData{
		Name:         htmlsanitize.Text(r.FormValue("name")),
		TimeZone:     strings.TrimSpace(r.FormValue("timezone")),
		AddressLine1: htmlsanitize.Text(r.FormValue("address_line1")),
		AddressLine2: htmlsanitize.Text(r.FormValue("address_line2")),
		City:         htmlsanitize.Text(r.FormValue("city")),
		State:        htmlsanitize.Text(r.FormValue("state")),
		PostalCode:   strings.TrimSpace(r.FormValue("postal_code")),
		Country:      htmlsanitize.Text(r.FormValue("country")),
		ContactName:  htmlsanitize.Text(r.FormValue("contact_name")),
		ContactEmail: normalize.Email(r.FormValue("contact_email")),
		ContactPhone: strings.TrimSpace(r.FormValue("contact_phone")),
	}
}

// validateSiteForm checks the posted fields, including membership of the
// time zone in the curated list.
func validateSiteForm(data *formData) bool {
	input := siteFormInput{
		Name:         data.Name,
		TimeZone:     data.TimeZone,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		Country:      data.Country,
		ContactName:  data.ContactName,
		ContactEmail: data.ContactEmail,
		ContactPhone: data.ContactPhone,
	}
	if result := inputval.Validate(input); result.HasErrors() {
		data.SetValidation(result)
		return false
	}

	if !timezones.Valid(data.TimeZone) {
		data.SetError("Please select a valid time zone.")
		data.FieldErrors = map[string]string{"TimeZone": "Please select a valid time zone."}
		return false
	}

	return true
}

// ServeNew renders the "New Site" form, as a modal snippet for HTMX requests
// and as a full page otherwise.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	tzGroups, err := timezones.Groups()
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to load time zones", err, "Failed to load time zones.", "/sites")
		return
	}

	data := formData{TimeZoneGroups: tzGroups}
	formutil.SetBase(&data.Base, w, r, "New Site", "/sites")

	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "site_form_modal", data)
		return
	}
	templates.Render(w, r, "site_new", data)
}

// HandleCreate processes the New Site form submission.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/sites")
		return
	}

	tzGroups, err := timezones.Groups()
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to load time zones", err, "Failed to load time zones.", "/sites")
		return
	}

	data := readSiteForm(r)
	data.TimeZoneGroups = tzGroups

	renderForm := func() {
		formutil.SetBase(&data.Base, w, r, "New Site", "/sites")
		if r.Header.Get("HX-Request") != "" {
			templates.RenderSnippet(w, "site_form_modal", data)
			return
		}
		templates.Render(w, r, "site_new", data)
	}

	if !validateSiteForm(&data) {
		renderForm()
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	site := formToSite(data)
	if err := h.Sites.Create(ctx, site); err != nil {
		h.Log.Error("create site failed", zap.Error(err))
		data.SetError("Failed to save site.")
		renderForm()
		return
	}

	h.Flash.Add(w, r, "Site created.")
	ret := navigation.SafeBackURL(r, navigation.SitesBackURL)
	redirect(w, r, ret)
}

// formToSite maps the validated form back onto the wire model.
func formToSite(data formData) models.Site {
	return models.Site{
		ID:           data.ID,
		Name:         data.Name,
		TimeZone:     data.TimeZone,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		State:        data.State,
		PostalCode:   data.PostalCode,
		Country:      data.Country,
		ContactName:  data.ContactName,
		ContactEmail: data.ContactEmail,
		ContactPhone: data.ContactPhone,
	}
}
