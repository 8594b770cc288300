// internal/app/features/savedfilters/delete.go
package savedfilters

import (
	"context"
	"net/http"

	uierrors "github.com/breezehq/breeze-console/internal/app/features/errors"
	"github.com/breezehq/breeze-console/internal/app/system/formutil"
	"github.com/breezehq/breeze-console/internal/app/system/limits"
	"github.com/breezehq/breeze-console/internal/app/system/navigation"
	"github.com/breezehq/breeze-console/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeDeleteConfirm renders the delete confirmation, as a modal snippet for
// HTMX requests and as a full page otherwise.
//
// Route: GET /saved-filters/{id}/delete
func (h *Handler) ServeDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Invalid filter ID.", "/saved-filters")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	f, err := h.Filters.GetByID(ctx, oid)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Saved filter not found.", "/saved-filters")
		return
	}

	data := deleteData{ID: f.ID.Hex(), Name: f.Name}
	formutil.SetBase(&data.Base, w, r, "Delete Saved Filter", "/saved-filters")

	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "savedfilter_delete_modal", data)
		return
	}
	templates.Render(w, r, "savedfilter_delete", data)
}

// HandleDelete deletes a saved filter and redirects back to the list.
// Deleting an already-removed filter succeeds quietly.
//
// Route: POST /saved-filters/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/saved-filters")
		return
	}

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Invalid filter ID.", "/saved-filters")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Filters.Delete(ctx, oid)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete saved filter failed", err,
			"Failed to delete filter.", "/saved-filters")
		return
	}
	if deleted == 0 {
		h.Log.Info("saved filter delete: nothing matched", zap.String("filter_id", oid.Hex()))
	}

	h.Flash.Add(w, r, "Filter deleted.")
	ret := navigation.SafeBackURL(r, navigation.SavedFiltersBackURL)
	redirect(w, r, ret)
}
