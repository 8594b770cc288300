// internal/app/features/organizations/delete.go
package organizations

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/breezehq/breeze-console/internal/app/features/errors"
	organizationstore "github.com/breezehq/breeze-console/internal/app/store/organizations"
	"github.com/breezehq/breeze-console/internal/app/system/formutil"
	"github.com/breezehq/breeze-console/internal/app/system/limits"
	"github.com/breezehq/breeze-console/internal/app/system/navigation"
	"github.com/breezehq/breeze-console/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeDeleteConfirm renders the delete confirmation, as a modal snippet for
// HTMX requests and as a full page otherwise.
//
// Route: GET /organizations/{id}/delete
func (h *Handler) ServeDeleteConfirm(w http.ResponseWriter, r *http.Request) {
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

	data := deleteData{ID: org.ID, Name: org.Name, DeviceCount: org.DeviceCount}
	formutil.SetBase(&data.Base, w, r, "Delete Organization", "/organizations")

	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "organization_delete_modal", data)
		return
	}
	templates.Render(w, r, "organization_delete", data)
}

// HandleDelete deletes an organization and redirects back to the list.
//
// Route: POST /organizations/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/organizations")
		return
	}

	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	org, err := h.Orgs.Get(ctx, id)
	if err != nil {
		if errors.Is(err, organizationstore.ErrNotFound) {
			// Already gone; treat the delete as done.
			ret := navigation.SafeBackURL(r, navigation.OrganizationsBackURL)
			redirect(w, r, ret)
			return
		}
		h.ErrLog.LogUnavailable(w, r, "load organization failed", err,
			"Failed to fetch organizations.", "/organizations")
		return
	}

	if err := h.Orgs.Delete(ctx, id); err != nil {
		h.Log.Error("delete organization failed", zap.Error(err), zap.String("org_id", id))

		data := deleteData{ID: org.ID, Name: org.Name, DeviceCount: org.DeviceCount}
		formutil.SetBase(&data.Base, w, r, "Delete Organization", "/organizations")
		data.SetError("Failed to delete organization.")

		if r.Header.Get("HX-Request") != "" {
			templates.RenderSnippet(w, "organization_delete_modal", data)
			return
		}
		templates.Render(w, r, "organization_delete", data)
		return
	}

	h.Flash.Add(w, r, "Organization deleted.")
	ret := navigation.SafeBackURL(r, navigation.OrganizationsBackURL)
	redirect(w, r, ret)
}
