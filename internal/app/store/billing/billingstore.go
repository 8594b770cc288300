// internal/app/store/billing/billingstore.go
package billingstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/breezehq/breeze-console/internal/app/system/backendapi"
	"github.com/breezehq/breeze-console/internal/domain/models"
	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/zap"
)

// Store serves the billing snapshot for the billing page. The snapshot comes
// from the billing service behind the platform API and is cached briefly;
// when the service is unreachable and nothing is cached, the built-in sample
// snapshot keeps the page rendering.
type Store struct {
	api   *backendapi.Client
	cache *ttlcache.Cache[string, models.BillingSummary]
	log   *zap.Logger
}

const (
	summaryPath = "/api/billing/summary"
	cacheKey    = "summary"

	// DefaultCacheTTL bounds how stale a displayed snapshot can be.
	DefaultCacheTTL = 5 * time.Minute
)

// New builds a Store. api may be nil when no billing endpoint is configured;
// the store then always serves SampleSummary.
func New(api *backendapi.Client, ttl time.Duration, logger *zap.Logger) *Store {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Store{
		api:   api,
		cache: ttlcache.New[string, models.BillingSummary](ttlcache.WithTTL[string, models.BillingSummary](ttl)),
		log:   logger,
	}
}

// Summary returns the snapshot to display and whether it is live platform
// data (false means the built-in sample). It never returns an error: billing
// is read-only display, so the worst failure mode is a sample snapshot.
func (s *Store) Summary(ctx context.Context) (models.BillingSummary, bool) {
	if s.api == nil {
		return SampleSummary(), false
	}
	if item := s.cache.Get(cacheKey); item != nil {
		return item.Value(), true
	}

	var summary models.BillingSummary
	err := s.api.GetJSON(ctx, summaryPath, func(data []byte) error {
		if derr := json.Unmarshal(data, &summary); derr != nil {
			return fmt.Errorf("decode billing summary: %w", derr)
		}
		return nil
	})
	if err != nil {
		s.log.Warn("billing summary fetch failed, serving sample", zap.Error(err))
		return SampleSummary(), false
	}

	s.cache.Set(cacheKey, summary, ttlcache.DefaultTTL)
	return summary, true
}

// SampleSummary is the shape the billing service supplies, filled with
// representative values for unconfigured or unreachable deployments.
func SampleSummary() models.BillingSummary {
	return models.BillingSummary{
		Plan: models.BillingPlan{
			Name:           "Business",
			PricePerDevice: 3.50,
			BillingCycle:   "monthly",
		},
		Usage: models.BillingUsage{
			DevicesUsed:  412,
			DevicesLimit: 500,
			StorageGB:    186.4,
			StorageLimit: 512,
			APICalls:     1_482_330,
			APILimit:     5_000_000,
		},
		Contact: models.BillingContact{
			Name:  "Accounts Payable",
			Email: "ap@example.com",
		},
		PaymentMethod: models.PaymentMethod{
			Brand:    "Visa",
			Last4:    "4242",
			ExpMonth: 11,
			ExpYear:  2027,
		},
		Invoices: []models.Invoice{
			{ID: "INV-2025-0812", Date: "2025-08-01", Amount: 1442.00, Status: "paid"},
			{ID: "INV-2025-0711", Date: "2025-07-01", Amount: 1410.50, Status: "paid"},
			{ID: "INV-2025-0610", Date: "2025-06-01", Amount: 1375.00, Status: "paid"},
		},
	}
}
