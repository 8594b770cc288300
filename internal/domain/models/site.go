// internal/domain/models/site.go
package models

// Site is a physical location record from the Breeze platform API
// (GET /api/sites). Address and contact fields are optional on the wire;
// older sites predate their introduction.
type Site struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TimeZone     string `json:"timezone"`
	DeviceCount  int    `json:"deviceCount"`
	AddressLine1 string `json:"addressLine1,omitempty"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	Country      string `json:"country,omitempty"`
	ContactName  string `json:"contactName,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
}
