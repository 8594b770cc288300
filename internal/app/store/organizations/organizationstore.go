// internal/app/store/organizations/organizationstore.go
package organizationstore

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

// Store reads and mutates organizations through the platform API. It keeps
// the last successfully fetched collection as an in-memory snapshot so list
// pages can stay useful while the platform is briefly unreachable.
type Store struct {
	api *backendapi.Client

	mu        sync.RWMutex
	snapshot  []models.Organization
	fetchedAt time.Time
}

// ErrNotFound is returned when an organization ID is absent from the
// platform's collection.
var ErrNotFound = errors.New("organization not found")

const basePath = "/api/organizations"

func New(api *backendapi.Client) *Store {
	return &Store{api: api}
}

// List fetches the full collection. On success the snapshot is replaced; on
// failure the previous snapshot is left untouched for Snapshot callers.
func (s *Store) List(ctx context.Context) ([]models.Organization, error) {
	var orgs []models.Organization
	err := s.api.GetJSON(ctx, basePath, func(data []byte) error {
		var derr error
		orgs, derr = decodeList(data)
		return derr
	})
	if err != nil {
		return nil, fmt.Errorf("fetch organizations: %w", err)
	}

	s.mu.Lock()
	s.snapshot = orgs
	s.fetchedAt = time.Now()
	s.mu.Unlock()
	return orgs, nil
}

// Snapshot returns the last successfully fetched collection, its fetch time,
// and whether one exists.
func (s *Store) Snapshot() ([]models.Organization, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, time.Time{}, false
	}
	return s.snapshot, s.fetchedAt, true
}

// Get finds one organization by ID via a fresh List. The platform exposes no
// per-entity GET; the collection is small enough that this costs one fetch.
func (s *Store) Get(ctx context.Context, id string) (models.Organization, error) {
	orgs, err := s.List(ctx)
	if err != nil {
		return models.Organization{}, err
	}
	for _, o := range orgs {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Organization{}, ErrNotFound
}

// Create submits a new organization. Success is judged by HTTP status alone.
func (s *Store) Create(ctx context.Context, org models.Organization) error {
	if err := s.api.Send(ctx, http.MethodPost, basePath, org); err != nil {
		return fmt.Errorf("create organization: %w", err)
	}
	return nil
}

// Update replaces the organization's mutable fields.
func (s *Store) Update(ctx context.Context, id string, org models.Organization) error {
	if err := s.api.Send(ctx, http.MethodPut, basePath+"/"+id, org); err != nil {
		return fmt.Errorf("update organization: %w", err)
	}
	return nil
}

// Delete removes an organization by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.api.Send(ctx, http.MethodDelete, basePath+"/"+id, nil); err != nil {
		return fmt.Errorf("delete organization: %w", err)
	}
	return nil
}

// decodeList accepts a bare array or an {"organizations": [...]} envelope
// and rejects any other shape.
func decodeList(data []byte) ([]models.Organization, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty organizations response")
	}
	if trimmed[0] == '[' {
		var orgs []models.Organization
		if err := json.Unmarshal(trimmed, &orgs); err != nil {
			return nil, fmt.Errorf("decode organizations array: %w", err)
		}
		return orgs, nil
	}
	var env struct {
		Organizations *[]models.Organization `json:"organizations"`
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decode organizations envelope: %w", err)
	}
	if env.Organizations == nil {
		return nil, errors.New("unrecognized organizations response shape")
	}
	return *env.Organizations, nil
}
