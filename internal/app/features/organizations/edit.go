// internal/app/features/organizations/edit.go
package organizations

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	uierrors "github.com/breezehq/breeze-console/internal/app/features/errors"
	organizationstore "github.com/breezehq/breeze-console/internal/app/store/organizations"
	"github.com/breezehq/breeze-console/internal/app/system/formutil"
	"github.com/breezehq/breeze-console/internal/app/system/limits"
	"github.com/breezehq/breeze-console/internal/app/system/navigation"
	"github.com/breezehq/breeze-console/internal/app/system/timeouts"
	"github.com/breezehq/breeze-console/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeEdit renders the Edit Organization form prefilled from the platform.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	org, err := h.Orgs.Get(ctx, id)
	if err != nil {
		if errors.Is(err, organizationstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "Organization not found.", "/organizations")
			return
		}
		h.ErrLog.LogUnavailable(w, r, "load organization failed", err,
			"Failed to fetch organizations.", "/organizations")
		return
	}

	data := orgToForm(org)
	formutil.SetBase(&data.Base, w, r, "Edit Organization", "/organizations")

	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "organization_form_modal", data)
		return
	}
	templates.Render(w, r, "organization_edit", data)
}

// HandleEdit processes the Edit Organization form POST.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/organizations")
		return
	}

	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Ensure the organization still exists before accepting edits.
	if _, err := h.Orgs.Get(ctx, id); err != nil {
		if errors.Is(err, organizationstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "Organization not found.", "/organizations")
			return
		}
		h.ErrLog.LogUnavailable(w, r, "load organization failed", err,
			"Failed to fetch organizations.", "/organizations")
		return
	}

	data := readOrgForm(r)
	data.ID = id

	renderForm := func() {
		formutil.SetBase(&data.Base, w, r, "Edit Organization", "/organizations")
		if r.Header.Get("HX-Request") != "" {
			templates.RenderSnippet(w, "organization_form_modal", data)
			return
		}
		templates.Render(w, r, "organization_edit", data)
	}

	maxDevices, ok := validateOrgForm(&data)
	if !ok {
		renderForm()
		return
	}

	org := models.Organization{
		ID:            id,
		Name:          data.Name,
		Slug:          data.Slug,
		Type:          data.Type,
		Status:        data.Status,
		MaxDevices:    maxDevices,
		ContractStart: data.ContractStart,
		ContractEnd:   data.ContractEnd,
	}
	if err := h.Orgs.Update(ctx, id, org); err != nil {
		h.Log.Error("update organization failed", zap.Error(err), zap.String("org_id", id))
		data.SetError("Failed to save organization.")
		renderForm()
		return
	}

	h.Flash.Add(w, r, "Organization updated.")
	ret := navigation.SafeBackURL(r, navigation.OrganizationsBackURL)
	redirect(w, r, ret)
}

// orgToForm prefills the form view model from a platform organization.
func orgToForm(org models.Organization) formData {
	return formData{
		ID:            org.ID,
		Name:          org.Name,
		Slug:          org.Slug,
		Type:          org.Type,
		Status:        org.Status,
		MaxDevices:    itoa(org.MaxDevices),
		ContractStart: org.ContractStart,
		ContractEnd:   org.ContractEnd,

		Types:    models.OrgTypes,
		Statuses: models.OrgStatuses,
	}
}

func itoa(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
