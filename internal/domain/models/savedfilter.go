// internal/domain/models/savedfilter.go
package models

import (
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavedFilter is a named list filter a console user keeps for reuse.
// Saved filters are the one thing the console persists itself; they scope a
// free-text query and a status filter to an entity list.
type SavedFilter struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	NameCI    string             `bson:"name_ci"` // ← always stored
	Entity    string             `bson:"entity"`  // "organizations" or "sites"
	Query     string             `bson:"query"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
}

// Entity list pages a saved filter can target.
const (
	FilterEntityOrganizations = "organizations"
	FilterEntitySites         = "sites"
)

// FilterEntities lists the valid saved-filter targets in display order.
var FilterEntities = []string{FilterEntityOrganizations, FilterEntitySites}

// ListURL returns the list page URL that applies this filter.
func (f SavedFilter) ListURL() string {
	v := url.Values{}
	if f.Query != "" {
		v.Set("q", f.Query)
	}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	u := "/" + f.Entity
	if enc := v.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}
