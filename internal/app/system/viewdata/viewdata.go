// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/breezehq/breeze-console/internal/app/system/flash"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type listData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := listData{
//	    BaseVM: viewdata.NewBaseVM(w, r, "Organizations", "/organizations"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Branding
	SiteName string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string

	// One-shot notices queued by the previous request
	Flashes []string
}

// Set once at startup from bootstrap.
var (
	flashStore *flash.Store
	siteName   = "Breeze Console"
)

// Init wires the shared flash store and site name. Call once at startup.
func Init(f *flash.Store, name string) {
	flashStore = f
	if name != "" {
		siteName = name
	}
}

// NewBaseVM creates a fully populated BaseVM for a page. It drains any
// pending flash notices, which is why it needs the ResponseWriter.
func NewBaseVM(w http.ResponseWriter, r *http.Request, title, backDefault string) BaseVM {
	vm := BaseVM{
		SiteName:    siteName,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}
	if flashStore != nil {
		vm.Flashes = flashStore.Pop(w, r)
	}
	return vm
}
