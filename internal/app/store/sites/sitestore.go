// internal/app/store/sites/sitestore.go
package sitestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/breezehq/breeze-console/internal/app/system/backendapi"
	"github.com/breezehq/breeze-console/internal/domain/models"
)

// Store reads and mutates sites through the platform API, mirroring the
// organization store: full-collection fetches, a last-good snapshot, and
// status-only success detection on mutations.
type Store struct {
	api *backendapi.Client

	mu        sync.RWMutex
	snapshot  []models.Site
	fetchedAt time.Time
}

// ErrNotFound is returned when a site ID is absent from the collection.
var ErrNotFound = errors.New("site not found")

const basePath = "/api/sites"

func New(api *backendapi.Client) *Store {
	return &Store{api: api}
}

// List fetches the full collection and refreshes the snapshot on success.
func (s *Store) List(ctx context.Context) ([]models.Site, error) {
	var sites []models.Site
	err := s.api.GetJSON(ctx, basePath, func(data []byte) error {
		var derr error
		sites, derr = decodeList(data)
		return derr
	})
	if err != nil {
		return nil, fmt.Errorf("fetch sites: %w", err)
	}

	s.mu.Lock()
	s.snapshot = sites
	s.fetchedAt = time.Now()
	s.mu.Unlock()
	return sites, nil
}

// Snapshot returns the last successfully fetched collection, if any.
func (s *Store) Snapshot() ([]models.Site, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, time.Time{}, false
	}
	return s.snapshot, s.fetchedAt, true
}

// Get finds one site by ID via a fresh List.
func (s *Store) Get(ctx context.Context, id string) (models.Site, error) {
	sites, err := s.List(ctx)
	if err != nil {
		return models.Site{}, err
	}
	for _, site := range sites {
		if site.ID == id {
			return site, nil
		}
	}
	return models.Site{}, ErrNotFound
}

func (s *Store) Create(ctx context.Context, site models.Site) error {
	if err := s.api.Send(ctx, http.MethodPost, basePath, site); err != nil {
		return fmt.Errorf("create site: %w", err)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, id string, site models.Site) error {
	if err := s.api.Send(ctx, http.MethodPut, basePath+"/"+id, site); err != nil {
		return fmt.Errorf("update site: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.api.Send(ctx, http.MethodDelete, basePath+"/"+id, nil); err != nil {
		return fmt.Errorf("delete site: %w", err)
	}
	return nil
}

// decodeList accepts a bare array or a {"sites": [...]} envelope and rejects
// any other shape.
func decodeList(data []byte) ([]models.Site, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty sites response")
	}
	if trimmed[0] == '[' {
		var sites []models.Site
		if err := json.Unmarshal(trimmed, &sites); err != nil {
			return nil, fmt.Errorf("decode sites array: %w", err)
		}
		return sites, nil
	}
	var env struct {
		Sites *[]models.Site `json:"sites"`
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decode sites envelope: %w", err)
	}
	if env.Sites == nil {
		return nil, errors.New("unrecognized sites response shape")
	}
	return *env.Sites, nil
}
