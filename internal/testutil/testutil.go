// Package testutil provides shared helpers for handler and store tests:
// chi route-parameter injection and an in-memory fake of the platform API.
package testutil

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// TestContext returns a context with a generous timeout for test operations.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// WithChiURLParam injects a chi URL parameter into the request context so
// handlers that call chi.URLParam work without a full router.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
