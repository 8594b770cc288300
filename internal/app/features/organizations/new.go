// internal/app/features/organizations/new.go
package organizations

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/breezehq/breeze-console/internal/app/system/formutil"
	"github.com/breezehq/breeze-console/internal/app/system/htmlsanitize"
	"github.com/breezehq/breeze-console/internal/app/system/inputval"
	"github.com/breezehq/breeze-console/internal/app/system/limits"
	"github.com/breezehq/breeze-console/internal/app/system/navigation"
	"github.com/breezehq/breeze-console/internal/app/system/normalize"
	"github.com/breezehq/breeze-console/internal/app/system/timeouts"
	"github.com/breezehq/breeze-console/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"

	"go.uber.org/zap"
)

// orgFormInput defines validation rules shared by create and edit.
type orgFormInput struct {
	Name          string `validate:"required,max=200" label:"Organization name"`
	Slug          string `validate:"required,max=80" label:"Slug"`
	Type          string `validate:"required,oneof=enterprise growth startup nonprofit" label:"Type"`
	Status        string `validate:"required,oneof=active trial suspended inactive" label:"Status"`
	MaxDevices    int    `validate:"gt=0" label:"Maximum devices"`
	ContractStart string `validate:"omitempty,datetime=2006-01-02" label:"Contract start"`
	ContractEnd   string `validate:"omitempty,datetime=2006-01-02" label:"Contract end"`
}

// readOrgForm pulls and normalizes the posted organization fields.
func readOrgForm(r *http.Request) formData {
	return formData{
		Name:          htmlsanitize.Text(r.FormValue("name")),
		Slug:          normalize.Slug(htmlsanitize.Text(r.FormValue("slug"))),
		Type:          strings.TrimSpace(r.FormValue("type")),
		Status:        strings.TrimSpace(r.FormValue("status")),
		MaxDevices:    strings.TrimSpace(r.FormValue("max_devices")),
		ContractStart: strings.TrimSpace(r.FormValue("contract_start")),
		ContractEnd:   strings.TrimSpace(r.FormValue("contract_end")),

		Types:    models.OrgTypes,
		Statuses: models.OrgStatuses,
	}
}

// validateOrgForm checks the posted fields and returns the parsed device
// limit. Validation failures land in data's banner and per-field messages.
func validateOrgForm(data *formData) (int, bool) {
	maxDevices, err := strconv.Atoi(data.MaxDevices)
	if err != nil {
		data.SetError("Maximum devices must be a whole number.")
		data.FieldErrors = map[string]string{"MaxDevices": "Maximum devices must be a whole number."}
		return 0, false
	}

	input := orgFormInput{
		Name:          data.Name,
		Slug:          data.Slug,
		Type:          data.Type,
		Status:        data.Status,
		MaxDevices:    maxDevices,
		ContractStart: data.ContractStart,
		ContractEnd:   data.ContractEnd,
	}
	if result := inputval.Validate(input); result.HasErrors() {
		data.SetValidation(result)
		return 0, false
	}

	if data.ContractStart != "" && data.ContractEnd != "" && data.ContractEnd < data.ContractStart {
		data.SetError("Contract end must not be before contract start.")
		data.FieldErrors = map[string]string{"ContractEnd": "Contract end must not be before contract start."}
		return 0, false
	}

	return maxDevices, true
}

// ServeNew renders the "New Organization" form, as a modal snippet for HTMX
// requests and as a full page otherwise.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := formData{
		Status:   models.OrgStatusActive,
		Types:    models.OrgTypes,
		Statuses: models.OrgStatuses,
	}
	formutil.SetBase(&data.Base, w, r, "New Organization", "/organizations")

	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "organization_form_modal", data)
		return
	}
	templates.Render(w, r, "organization_new", data)
}

// HandleCreate processes the New Organization form submission.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/organizations")
		return
	}

	data := readOrgForm(r)

	renderForm := func() {
		formutil.SetBase(&data.Base, w, r, "New Organization", "/organizations")
		if r.Header.Get("HX-Request") != "" {
			templates.RenderSnippet(w, "organization_form_modal", data)
			return
		}
		templates.Render(w, r, "organization_new", data)
	}

	maxDevices, ok := validateOrgForm(&data)
	if !ok {
		renderForm()
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	org := models.Organization{
		Name:          data.Name,
		Slug:          data.Slug,
		Type:          data.Type,
		Status:        data.Status,
		MaxDevices:    maxDevices,
		ContractStart: data.ContractStart,
		ContractEnd:   data.ContractEnd,
	}
	if err := h.Orgs.Create(ctx, org); err != nil {
		h.Log.Error("create organization failed", zap.Error(err))
		data.SetError("Failed to save organization.")
		renderForm()
		return
	}

	h.Flash.Add(w, r, "Organization created.")
	ret := navigation.SafeBackURL(r, navigation.OrganizationsBackURL)
	redirect(w, r, ret)
}
