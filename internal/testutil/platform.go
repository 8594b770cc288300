// internal/testutil/platform.go
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/breezehq/breeze-console/internal/domain/models"
	"github.com/google/uuid"
)

// Platform is an in-memory stand-in for the device-platform REST API. It
// serves /api/organizations and /api/sites with full CRUD, and can be
// switched into failure mode or envelope response shape per test.
type Platform struct {
	mu    sync.Mutex
	orgs    []models.Organization
	sites   []models.Site
	billing *models.BillingSummary

	// Envelope wraps list responses as {"organizations": [...]} /
	// {"sites": [...]} instead of a bare array.
	Envelope bool

	// Failing makes every request return 500.
	Failing bool

	srv *httptest.Server
}

// NewPlatform starts the fake platform and registers cleanup with t.
func NewPlatform(t *testing.T) *Platform {
	t.Helper()
	p := &Platform{}
	p.srv = httptest.NewServer(http.HandlerFunc(p.serve))
	t.Cleanup(p.srv.Close)
	return p
}

// URL is the base URL handlers and stores should be pointed at.
func (p *Platform) URL() string { return p.srv.URL }

// SetFailing toggles failure mode.
func (p *Platform) SetFailing(fail bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Failing = fail
}

// AddOrganization seeds an organization, assigning an ID when absent.
func (p *Platform) AddOrganization(org models.Organization) models.Organization {
	p.mu.Lock()
	defer p.mu.Unlock()
	if org.ID == "" {
		org.ID = uuid.NewString()
	}
	p.orgs = append(p.orgs, org)
	return org
}

// AddSite seeds a site, assigning an ID when absent.
func (p *Platform) AddSite(site models.Site) models.Site {
	p.mu.Lock()
	defer p.mu.Unlock()
	if site.ID == "" {
		site.ID = uuid.NewString()
	}
	p.sites = append(p.sites, site)
	return site
}

// SetBillingSummary seeds the billing snapshot served at /api/billing/summary.
func (p *Platform) SetBillingSummary(s models.BillingSummary) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.billing = &s
}

// Organizations returns a copy of the current organizations.
func (p *Platform) Organizations() []models.Organization {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Organization, len(p.orgs))
	copy(out, p.orgs)
	return out
}

// Sites returns a copy of the current sites.
func (p *Platform) Sites() []models.Site {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Site, len(p.sites))
	copy(out, p.sites)
	return out
}

func (p *Platform) serve(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.Failing {
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}

	switch {
	case strings.HasPrefix(r.URL.Path, "/api/organizations"):
		p.serveOrgs(w, r, strings.TrimPrefix(r.URL.Path, "/api/organizations"))
	case strings.HasPrefix(r.URL.Path, "/api/sites"):
		p.serveSites(w, r, strings.TrimPrefix(r.URL.Path, "/api/sites"))
	case r.URL.Path == "/api/billing/summary" && r.Method == http.MethodGet:
		if p.billing == nil {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, p.billing)
	default:
		http.NotFound(w, r)
	}
}

func (p *Platform) serveOrgs(w http.ResponseWriter, r *http.Request, rest string) {
	id := strings.Trim(rest, "/")
	switch {
	case r.Method == http.MethodGet && id == "":
		// A nil slice encodes as JSON null; serve the bare array the
		// stores' decoders expect even when nothing has been seeded.
		orgs := p.orgs
		if orgs == nil {
			orgs = []models.Organization{}
		}
		if p.Envelope {
			writeJSON(w, map[string]any{"organizations": orgs})
			return
		}
		writeJSON(w, orgs)

	case r.Method == http.MethodPost && id == "":
		var org models.Organization
		if err := json.NewDecoder(r.Body).Decode(&org); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		org.ID = uuid.NewString()
		p.orgs = append(p.orgs, org)
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, org)

	case r.Method == http.MethodPut && id != "":
		var org models.Organization
		if err := json.NewDecoder(r.Body).Decode(&org); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for i := range p.orgs {
			if p.orgs[i].ID == id {
				org.ID = id
				p.orgs[i] = org
				writeJSON(w, org)
				return
			}
		}
		http.NotFound(w, r)

	case r.Method == http.MethodDelete && id != "":
		for i := range p.orgs {
			if p.orgs[i].ID == id {
				p.orgs = append(p.orgs[:i], p.orgs[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		http.NotFound(w, r)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (p *Platform) serveSites(w http.ResponseWriter, r *http.Request, rest string) {
	id := strings.Trim(rest, "/")
	switch {
	case r.Method == http.MethodGet && id == "":
		sites := p.sites
		if sites == nil {
			sites = []models.Site{}
		}
		if p.Envelope {
			writeJSON(w, map[string]any{"sites": sites})
			return
		}
		writeJSON(w, sites)

	case r.Method == http.MethodPost && id == "":
		var site models.Site
		if err := json.NewDecoder(r.Body).Decode(&site); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		site.ID = uuid.NewString()
		p.sites = append(p.sites, site)
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, site)

	case r.Method == http.MethodPut && id != "":
		var site models.Site
		if err := json.NewDecoder(r.Body).Decode(&site); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for i := range p.sites {
			if p.sites[i].ID == id {
				site.ID = id
				p.sites[i] = site
				writeJSON(w, site)
				return
			}
		}
		http.NotFound(w, r)

	case r.Method == http.MethodDelete && id != "":
		for i := range p.sites {
			if p.sites[i].ID == id {
				p.sites = append(p.sites[:i], p.sites[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		http.NotFound(w, r)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
