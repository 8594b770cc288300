package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/breezehq/breeze-console/internal/app/features/health"
	"github.com/breezehq/breeze-console/internal/app/system/backendapi"
	"github.com/breezehq/breeze-console/internal/testutil"
	"go.uber.org/zap"
)

func TestServe_DatabaseConnected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	platform := testutil.NewPlatform(t)
	logger := zap.NewNop()
	api := backendapi.New(platform.URL(), "", 5*time.Second, logger)
	handler := health.NewHandler(db.Client(), api, logger)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	handler.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", contentType, "application/json")
	}

	var response struct {
		Status   string `json:"status"`
		Database string `json:"database"`
		Platform string `json:"platform"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if response.Status != "ok" {
		t.Errorf("status: got %q, want %q", response.Status, "ok")
	}
	if response.Database != "connected" {
		t.Errorf("database: got %q, want %q", response.Database, "connected")
	}
	if response.Platform != "reachable" {
		t.Errorf("platform: got %q, want %q", response.Platform, "reachable")
	}
}

func TestServe_PlatformUnreachable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	platform := testutil.NewPlatform(t)
	platform.SetFailing(true)
	logger := zap.NewNop()
	api := backendapi.New(platform.URL(), "", 5*time.Second, logger)
	handler := health.NewHandler(db.Client(), api, logger)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	handler.Serve(rec, req)

	// Platform trouble is informational; the console itself is still up.
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response struct {
		Status   string `json:"status"`
		Platform string `json:"platform"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response.Platform != "unreachable" {
		t.Errorf("platform: got %q, want %q", response.Platform, "unreachable")
	}
}
