// Package formutil provides helpers for form re-rendering with validation
// errors.
//
// When a submission fails, the form re-renders with the user's entered
// values echoed back, a banner message, and per-field messages keyed by
// field name. Embed Base in the form's view model:
//
//	type newOrgData struct {
//		formutil.Base
//		Name string
//		Slug string
//	}
//
//	data := newOrgData{Name: name, Slug: slug}
//	formutil.SetBase(&data.Base, w, r, "New Organization", "/organizations")
//	data.SetValidation(result)
//	templates.Render(w, r, "organization_new", data)
package formutil

import (
	"html/template"
	"net/http"

	"github.com/breezehq/breeze-console/internal/app/system/inputval"
	"github.com/breezehq/breeze-console/internal/app/system/viewdata"
)

// Base contains the common fields for form pages.
type Base struct {
	viewdata.BaseVM

	// Error is the banner shown above the form.
	Error template.HTML

	// FieldErrors maps struct field names to messages shown next to inputs.
	FieldErrors map[string]string
}

// SetBase populates the embedded BaseVM.
func SetBase(b *Base, w http.ResponseWriter, r *http.Request, title, backDefault string) {
	b.BaseVM = viewdata.NewBaseVM(w, r, title, backDefault)
}

// SetError sets the banner message only. Used for store failures, where no
// individual field is at fault.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(template.HTMLEscapeString(msg))
}

// SetValidation copies a validation result into the banner and the per-field
// messages.
func (b *Base) SetValidation(res inputval.Result) {
	b.SetError(res.First())
	b.FieldErrors = res.Fields()
}

// FieldError returns the message for a field, for template convenience.
func (b *Base) FieldError(name string) string {
	return b.FieldErrors[name]
}
