// internal/domain/models/organization.go
package models

import "time"

// Organization is a customer organization as the Breeze platform API returns
// it. The console never persists organizations itself; this is the wire shape
// of GET /api/organizations plus the mutable fields the console submits back.
type Organization struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Slug          string `json:"slug,omitempty"`
	Type          string `json:"type,omitempty"`
	Status        string `json:"status"`
	DeviceCount   int    `json:"deviceCount"`
	MaxDevices    int    `json:"maxDevices,omitempty"`
	ContractStart string `json:"contractStart,omitempty"`
	ContractEnd   string `json:"contractEnd,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

// Organization status values accepted by the platform.
const (
	OrgStatusActive    = "active"
	OrgStatusTrial     = "trial"
	OrgStatusSuspended = "suspended"
	OrgStatusInactive  = "inactive"
)

// OrgStatuses lists the selectable statuses in display order.
var OrgStatuses = []string{OrgStatusActive, OrgStatusTrial, OrgStatusSuspended, OrgStatusInactive}

// OrgTypes lists the selectable organization types in display order.
var OrgTypes = []string{"enterprise", "growth", "startup", "nonprofit"}

// CreatedDate parses CreatedAt and formats it for display (e.g. "1/2/2024").
// The platform sends either a bare date or an RFC 3339 timestamp; anything
// else is shown as-is rather than hidden.
func (o Organization) CreatedDate() string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, o.CreatedAt); err == nil {
			return t.Format("1/2/2006")
		}
	}
	return o.CreatedAt
}
