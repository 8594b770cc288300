// internal/app/features/sites/helpers.go
package sites

import "net/http"

// redirect sends the browser (or the HTMX client) to url after a successful
// mutation. HTMX swaps redirect responses into the triggering target, so
// modal submissions use the HX-Redirect header to force a full navigation.
func redirect(w http.ResponseWriter, r *http.Request, url string) {
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", url)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}
