// internal/app/features/sites/delete.go
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
	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeDeleteConfirm renders the delete confirmation, as a modal snippet for
// HTMX requests and as a full page otherwise.
//
// Route: GET /sites/{id}/delete
func (h *Handler) ServeDeleteConfirm(w http.ResponseWriter, r *http.Request) {
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

	data := deleteData{ID: site.ID, Name: site.Name, DeviceCount: site.DeviceCount}
	formutil.SetBase(&data.Base, w, r, "Delete Site", "/sites")

	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "site_delete_modal", data)
		return
	}
	templates.Render(w, r, "site_delete", data)
}

// HandleDelete deletes a site and redirects back to the list.
//
// Route: POST /sites/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/sites")
		return
	}

	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	site, err := h.Sites.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sitestore.ErrNotFound) {
			// Already gone; treat the delete as done.
			ret := navigation.SafeBackURL(r, navigation.SitesBackURL)
			redirect(w, r, ret)
			return
		}
		h.ErrLog.LogUnavailable(w, r, "load site failed", err, "Failed to fetch sites.", "/sites")
		return
	}

	if err := h.Sites.Delete(ctx, id); err != nil {
		h.Log.Error("delete site failed", zap.Error(err), zap.String("site_id", id))

		data := deleteData{ID: site.ID, Name: site.Name, DeviceCount: site.DeviceCount}
		formutil.SetBase(&data.Base, w, r, "Delete Site", "/sites")
		data.SetError("Failed to delete site.")

		if r.Header.Get("HX-Request") != "" {
			templates.RenderSnippet(w, "site_delete_modal", data)
			return
		}
		templates.Render(w, r, "site_delete", data)
		return
	}

	h.Flash.Add(w, r, "Site deleted.")
	ret := navigation.SafeBackURL(r, navigation.SitesBackURL)
	redirect(w, r, ret)
}
