// internal/app/features/sites/types.go
package sites

import (
	"github.com/breezehq/breeze-console/internal/app/system/formutil"
	"github.com/breezehq/breeze-console/internal/app/system/timezones"
	"github.com/breezehq/breeze-console/internal/app/system/viewdata"
)

// listItem is a single row in the sites table.
type listItem struct {
	ID          string
	Name        string
	Location    string
	TimeZone    string
	DeviceCount int
}

// listData is the view model for the sites list page.
type listData struct {
	viewdata.BaseVM

	Q     string
	Items []listItem

	// Stale is set when the platform fetch failed and the page shows the
	// last good snapshot instead.
	Stale       bool
	StaleNotice string
}

// formData is the view model for the add/edit site form, page or modal.
// Field values echo the user's input verbatim on re-render.
type formData struct {
	formutil.Base

	// Edit mode only; empty for create.
	ID string

	Name         string
	TimeZone     string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string
	ContactName  string
	ContactEmail string
	ContactPhone string

	TimeZoneGroups []timezones.ZoneGroup
}

// deleteData is the view model for the delete confirmation modal.
type deleteData struct {
	formutil.Base

	ID          string
	Name        string
	DeviceCount int
}
