// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
)

// RenderBadRequest shows a friendly 400 page with a message.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusBadRequest, "Invalid request", msg, backURL, false)
}

// RenderNotFound shows a friendly 404 page with a message.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusNotFound, "Not found", msg, backURL, false)
}

// RenderServerError shows a friendly 500 page with a message.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusInternalServerError, "Something went wrong", msg, backURL, false)
}

// RenderUnavailable shows a full-page platform error with a "Try again"
// action pointing back at the current page. Used when a list page has no
// snapshot to fall back on.
func RenderUnavailable(w http.ResponseWriter, r *http.Request, msg, retryURL string) {
	render(w, r, http.StatusServiceUnavailable, "Service unavailable", msg, retryURL, true)
}

func render(w http.ResponseWriter, r *http.Request, status int, title, msg, backURL string, retry bool) {
	w.WriteHeader(status)
	data := pageData{
		Title:   title,
		Message: msg,
		BackURL: backURL,
		Retry:   retry,
	}
	templates.Render(w, r, "error_page", data)
}
