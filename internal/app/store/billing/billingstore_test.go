package billingstore_test

import (
	"context"
	"testing"
	"time"

	billingstore "github.com/breezehq/breeze-console/internal/app/store/billing"
	"github.com/breezehq/breeze-console/internal/app/system/backendapi"
	"github.com/breezehq/breeze-console/internal/domain/models"
	"github.com/breezehq/breeze-console/internal/testutil"
	"go.uber.org/zap"
)

func TestSummary_Live(t *testing.T) {
	platform := testutil.NewPlatform(t)
	platform.SetBillingSummary(models.BillingSummary{
		Plan: models.BillingPlan{Name: "Enterprise", PricePerDevice: 5, BillingCycle: "annual"},
	})

	api := backendapi.New(platform.URL(), "", 5*time.Second, zap.NewNop())
	store := billingstore.New(api, time.Minute, zap.NewNop())

	summary, live := store.Summary(context.Background())
	if !live {
		t.Fatal("expected live billing data")
	}
	if summary.Plan.Name != "Enterprise" {
		t.Errorf("Plan.Name: got %q, want %q", summary.Plan.Name, "Enterprise")
	}
}

func TestSummary_CachesAcrossOutage(t *testing.T) {
	platform := testutil.NewPlatform(t)
	platform.SetBillingSummary(models.BillingSummary{
		Plan: models.BillingPlan{Name: "Enterprise"},
	})

	api := backendapi.New(platform.URL(), "", 5*time.Second, zap.NewNop())
	store := billingstore.New(api, time.Minute, zap.NewNop())

	if _, live := store.Summary(context.Background()); !live {
		t.Fatal("expected live billing data on first fetch")
	}

	// While the cache entry is warm, an outage goes unnoticed.
	platform.SetFailing(true)
	summary, live := store.Summary(context.Background())
	if !live {
		t.Fatal("expected cached billing data during outage")
	}
	if summary.Plan.Name != "Enterprise" {
		t.Errorf("Plan.Name: got %q, want %q", summary.Plan.Name, "Enterprise")
	}
}

func TestSummary_FallsBackToSample(t *testing.T) {
	platform := testutil.NewPlatform(t)
	platform.SetFailing(true)

	api := backendapi.New(platform.URL(), "", 5*time.Second, zap.NewNop())
	store := billingstore.New(api, time.Minute, zap.NewNop())

	summary, live := store.Summary(context.Background())
	if live {
		t.Fatal("expected sample data when billing is unreachable")
	}
	if summary.Plan.Name != billingstore.SampleSummary().Plan.Name {
		t.Errorf("expected sample summary, got plan %q", summary.Plan.Name)
	}
}

func TestSummary_NilAPIServesSample(t *testing.T) {
	store := billingstore.New(nil, time.Minute, zap.NewNop())

	summary, live := store.Summary(context.Background())
	if live {
		t.Fatal("expected sample data with no API configured")
	}
	if len(summary.Invoices) == 0 {
		t.Error("sample summary should include invoices")
	}
}
