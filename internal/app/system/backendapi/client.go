// internal/app/system/backendapi/client.go

// Package backendapi is the HTTP client for the Breeze platform API.
//
// The console owns no platform data: organizations, sites, and billing all
// live behind this client. A non-2xx status and a transport fault both come
// back as an error; callers show one human-readable message and do not
// branch on status codes.
package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client calls the platform API at a fixed base URL.
type Client struct {
	baseURL string
	token   string
	hc      *http.Client
	log     *zap.Logger
}

// New constructs a Client. token may be empty when the deployment fronts the
// API with network-level trust; timeout bounds every request end to end.
func New(baseURL, token string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		hc:      &http.Client{Timeout: timeout},
		log:     logger,
	}
}

// StatusError is returned when the platform answers with a non-2xx status.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("platform API %s %s: status %d", e.Method, e.Path, e.Code)
}

// GetJSON issues a GET and hands the raw body to decode. The body is read
// fully before decode runs so partial reads never leak a broken connection.
func (c *Client) GetJSON(ctx context.Context, path string, decode func([]byte) error) error {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decode(body)
}

// Send issues a mutating request with an optional JSON body and discards the
// response body. Success is any 2xx status.
func (c *Client) Send(ctx context.Context, method, path string, body any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		payload = bytes.NewReader(data)
	}
	_, err := c.do(ctx, method, path, payload)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn("platform API request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", reqID),
			zap.Error(err))
		return nil, fmt.Errorf("platform API %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("platform API %s %s: read body: %w", method, path, err)
	}

	c.log.Debug("platform API request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", reqID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Method: method, Path: path, Code: resp.StatusCode}
	}
	return data, nil
}

// maxResponseBytes caps list responses; the platform does not paginate, so
// this is the only guard against a runaway body.
const maxResponseBytes = 8 << 20
