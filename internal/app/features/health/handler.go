package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/breezehq/breeze-console/internal/app/system/backendapi"
	"github.com/breezehq/breeze-console/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client *mongo.Client
	API    *backendapi.Client
	Log    *zap.Logger
}

// NewHandler constructs a health Handler with the Mongo client, the platform
// API client, and logger.
func NewHandler(client *mongo.Client, api *backendapi.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Client: client,
		API:    api,
		Log:    logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Platform string `json:"platform,omitempty"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected", "platform":"reachable" }
//
// On DB failure: 503 and
//
//	{ "status":"error", "database":"disconnected", "message":"Database unavailable", "error":"…"}
//
// The platform check is informational only; an unreachable platform does not
// flip the status because the console still serves snapshots and saved
// filters without it.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Database: "connected",
	}

	// Check database
	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Message = "Database unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	// Check platform API (informational only)
	if h.API != nil {
		resp.Platform = "reachable"
		if err := h.API.GetJSON(ctx, "/api/organizations", func([]byte) error { return nil }); err != nil {
			h.Log.Warn("health-check: platform unreachable", zap.Error(err))
			resp.Platform = "unreachable"
		}
	}

	_ = json.NewEncoder(w).Encode(resp)
}
