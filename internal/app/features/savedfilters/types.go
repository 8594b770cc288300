// internal/app/features/savedfilters/types.go
package savedfilters

import (
	"github.com/breezehq/breeze-console/internal/app/system/formutil"
	"github.com/breezehq/breeze-console/internal/app/system/viewdata"
)

// listItem is a single row in the saved filters table.
type listItem struct {
	ID      string
	Name    string
	Entity  string
	Query   string
	Status  string
	ListURL string
	Created string
}

// listData is the view model for the saved filters list page.
type listData struct {
	viewdata.BaseVM

	Q      string
	Entity string
	Items  []listItem

	Entities []string
}

// formData is the view model for the save-filter form, page or modal.
type formData struct {
	formutil.Base

	Name   string
	Entity string
	Query  string
	Status string

	Entities []string
	Statuses []string
}

// deleteData is the view model for the delete confirmation modal.
type deleteData struct {
	formutil.Base

	ID   string
	Name string
}
