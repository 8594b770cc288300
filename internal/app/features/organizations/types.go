// internal/app/features/organizations/types.go
package organizations

import (
	"github.com/breezehq/breeze-console/internal/app/system/formutil"
	"github.com/breezehq/breeze-console/internal/app/system/viewdata"
)

// listItem is a single row in the organizations table.
type listItem struct {
	ID          string
	Name        string
	Status      string
	DeviceCount int
	Created     string
}

// listData is the view model for the organizations list page.
type listData struct {
	viewdata.BaseVM

	Q        string
	Status   string
	Statuses []string
	Items    []listItem

	// Stale is set when the platform fetch failed and the page shows the
	// last good snapshot instead.
	Stale       bool
	StaleNotice string
}

// formData is the view model for the add/edit organization form, page or
// modal. Field values echo the user's input verbatim on re-render.
type formData struct {
	formutil.Base

	// Edit mode only; empty for create.
	ID string

	Name          string
	Slug          string
	Type          string
	Status        string
	MaxDevices    string
	ContractStart string
	ContractEnd   string

	Types    []string
	Statuses []string
}

// deleteData is the view model for the delete confirmation modal.
type deleteData struct {
	formutil.Base

	ID          string
	Name        string
	DeviceCount int
}
