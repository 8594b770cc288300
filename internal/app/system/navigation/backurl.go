// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// BackURLOptions configures the behavior of SafeBackURL.
type BackURLOptions struct {
	// AllowedPrefix is the required URL prefix (e.g., "/organizations").
	// If empty, any safe URL is allowed.
	AllowedPrefix string

	// ExcludedSubpaths are subpath patterns to reject (e.g., "/edit",
	// "/delete", "/new"). These prevent redirect loops back to action pages.
	ExcludedSubpaths []string

	// Fallback is the default URL if no valid return URL is found.
	Fallback string
}

// SafeBackURL extracts and validates a return URL from the request.
//
// It checks both the query parameter and form value for "return", validates
// the URL is safe (not an open redirect), optionally validates the prefix,
// and excludes specified subpaths to prevent redirect loops.
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "")
	if ret == "" {
		ret = urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), "", "")
	}

	if ret != "" {
		valid := true

		if opts.AllowedPrefix != "" && !strings.HasPrefix(ret, opts.AllowedPrefix) {
			valid = false
		}

		for _, excluded := range opts.ExcludedSubpaths {
			if strings.Contains(ret, excluded) {
				valid = false
				break
			}
		}

		if valid {
			return ret
		}
	}

	return opts.Fallback
}

// Common back URL configurations for reuse across packages.
var (
	// OrganizationsBackURL returns options for organizations pages.
	OrganizationsBackURL = BackURLOptions{
		AllowedPrefix:    "/organizations",
		ExcludedSubpaths: []string{"/edit", "/delete", "/new"},
		Fallback:         "/organizations",
	}

	// SitesBackURL returns options for sites pages.
	SitesBackURL = BackURLOptions{
		AllowedPrefix:    "/sites",
		ExcludedSubpaths: []string{"/edit", "/delete", "/new"},
		Fallback:         "/sites",
	}

	// SavedFiltersBackURL returns options for saved-filter pages.
	SavedFiltersBackURL = BackURLOptions{
		AllowedPrefix:    "/saved-filters",
		ExcludedSubpaths: []string{"/delete", "/new"},
		Fallback:         "/saved-filters",
	}

	// BillingBackURL returns options for the billing page.
	BillingBackURL = BackURLOptions{
		AllowedPrefix: "/billing",
		Fallback:      "/billing",
	}
)
