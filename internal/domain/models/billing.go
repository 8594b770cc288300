// internal/domain/models/billing.go
package models

// BillingSummary is the read-only billing snapshot rendered on the billing
// page. The console displays it verbatim; all computation happens in the
// billing service behind GET /api/billing/summary.
type BillingSummary struct {
	Plan          BillingPlan    `json:"plan"`
	Usage         BillingUsage   `json:"usage"`
	Contact       BillingContact `json:"contact"`
	PaymentMethod PaymentMethod  `json:"paymentMethod"`
	Invoices      []Invoice      `json:"invoices"`
}

type BillingPlan struct {
	Name           string  `json:"name"`
	PricePerDevice float64 `json:"pricePerDevice"`
	BillingCycle   string  `json:"billingCycle"`
}

type BillingUsage struct {
	DevicesUsed  int     `json:"devicesUsed"`
	DevicesLimit int     `json:"devicesLimit"`
	StorageGB    float64 `json:"storageGb"`
	StorageLimit float64 `json:"storageLimitGb"`
	APICalls     int     `json:"apiCalls"`
	APILimit     int     `json:"apiLimit"`
}

type BillingContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PaymentMethod struct {
	Brand    string `json:"brand"`
	Last4    string `json:"last4"`
	ExpMonth int    `json:"expMonth"`
	ExpYear  int    `json:"expYear"`
}

type Invoice struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// DevicePercent returns device usage as a 0-100 percentage for meter bars.
func (u BillingUsage) DevicePercent() int {
	return percent(float64(u.DevicesUsed), float64(u.DevicesLimit))
}

// StoragePercent returns storage usage as a 0-100 percentage.
func (u BillingUsage) StoragePercent() int {
	return percent(u.StorageGB, u.StorageLimit)
}

// APIPercent returns API call usage as a 0-100 percentage.
func (u BillingUsage) APIPercent() int {
	return percent(float64(u.APICalls), float64(u.APILimit))
}

func percent(used, limit float64) int {
	if limit <= 0 {
		return 0
	}
	p := int(used / limit * 100)
	if p > 100 {
		p = 100
	}
	if p < 0 {
		p = 0
	}
	return p
}
