package sites_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	uierrors "github.com/breezehq/breeze-console/internal/app/features/errors"
	"github.com/breezehq/breeze-console/internal/app/features/sites"
	sitestore "github.com/breezehq/breeze-console/internal/app/store/sites"
	"github.com/breezehq/breeze-console/internal/app/system/backendapi"
	"github.com/breezehq/breeze-console/internal/app/system/flash"
	"github.com/breezehq/breeze-console/internal/app/system/timezones"
	"github.com/breezehq/breeze-console/internal/domain/models"
	"github.com/breezehq/breeze-console/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*sites.Handler, *testutil.Platform) {
	t.Helper()
	if err := timezones.Load(); err != nil {
		t.Fatalf("load timezones: %v", err)
	}
	platform := testutil.NewPlatform(t)
	logger := zap.NewNop()
	api := backendapi.New(platform.URL(), "", 5*time.Second, logger)
	store := sitestore.New(api)
	fl := flash.New("", "bc_flash_test", false, logger)
	errLog := uierrors.NewErrorLogger(logger)
	return sites.NewHandler(store, fl, errLog, logger), platform
}

func validSiteForm() url.Values {
	return url.Values{
		"name":          {"Downtown Depot"},
		"timezone":      {"America/Chicago"},
		"address_line1": {"100 Main St"},
		"city":          {"Columbia"},
		"state":         {"MO"},
		"postal_code":   {"65201"},
		"country":       {"USA"},
		"contact_name":  {"Pat Winters"},
		"contact_email": {"pat@example.com"},
		"contact_phone": {"555-010-2000"},
	}
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHandleCreate_Success(t *testing.T) {
	handler, platform := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, postForm("/sites", validSiteForm()))

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}

	got := platform.Sites()
	if len(got) != 1 {
		t.Fatalf("expected 1 site, got %d", len(got))
	}
	if got[0].Name != "Downtown Depot" {
		t.Errorf("Name: got %q, want %q", got[0].Name, "Downtown Depot")
	}
	if got[0].TimeZone != "America/Chicago" {
		t.Errorf("TimeZone: got %q, want %q", got[0].TimeZone, "America/Chicago")
	}
}

func TestHandleCreate_NormalizesEmail(t *testing.T) {
	handler, platform := newTestHandler(t)

	form := validSiteForm()
	form.Set("contact_email", "  PAT@Example.COM ")

	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, postForm("/sites", form))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	got := platform.Sites()
	if len(got) != 1 || got[0].ContactEmail != "pat@example.com" {
		t.Errorf("expected normalized email, got %+v", got)
	}
}

func TestHandleCreate_InvalidTimezone(t *testing.T) {
	handler, platform := newTestHandler(t)

	form := validSiteForm()
	form.Set("timezone", "Mars/Olympus_Mons")

	rec := httptest.NewRecorder()
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Logf("recovered from panic (expected - template not initialized): %v", r)
			}
		}()
		handler.HandleCreate(rec, postForm("/sites", form))
	}()

	if got := len(platform.Sites()); got != 0 {
		t.Errorf("expected 0 sites (invalid time zone), got %d", got)
	}
}

func TestHandleCreate_MissingRequiredFields(t *testing.T) {
	handler, platform := newTestHandler(t)

	form := validSiteForm()
	for _, field := range []string{
		"address_line1", "city", "state", "postal_code",
		"country", "contact_name", "contact_email", "contact_phone",
	} {
		form.Set(field, "")
	}

	rec := httptest.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.HandleCreate(rec, postForm("/sites", form))
	}()

	if rec.Code == http.StatusSeeOther {
		t.Error("expected validation failure for blank required fields, got redirect")
	}
	if got := len(platform.Sites()); got != 0 {
		t.Errorf("expected 0 sites (blank required fields), got %d", got)
	}
}

func TestHandleCreate_BlankSingleRequiredField(t *testing.T) {
	handler, platform := newTestHandler(t)

	for _, field := range []string{
		"address_line1", "city", "state", "postal_code",
		"country", "contact_name", "contact_email", "contact_phone",
	} {
		form := validSiteForm()
		form.Set(field, "")

		rec := httptest.NewRecorder()
		func() {
			defer func() { recover() }()
			handler.HandleCreate(rec, postForm("/sites", form))
		}()

		if rec.Code == http.StatusSeeOther {
			t.Errorf("%s: expected validation failure, got redirect", field)
		}
	}
	if got := len(platform.Sites()); got != 0 {
		t.Errorf("expected 0 sites, got %d", got)
	}
}

func TestHandleCreate_ShortPhone(t *testing.T) {
	handler, platform := newTestHandler(t)

	form := validSiteForm()
	form.Set("contact_phone", "555")

	rec := httptest.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.HandleCreate(rec, postForm("/sites", form))
	}()

	if got := len(platform.Sites()); got != 0 {
		t.Errorf("expected 0 sites (phone too short), got %d", got)
	}
}

func TestHandleCreate_InvalidEmail(t *testing.T) {
	handler, platform := newTestHandler(t)

	form := validSiteForm()
	form.Set("contact_email", "not-an-email")

	rec := httptest.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.HandleCreate(rec, postForm("/sites", form))
	}()

	if got := len(platform.Sites()); got != 0 {
		t.Errorf("expected 0 sites (invalid email), got %d", got)
	}
}

func TestHandleEdit_Success(t *testing.T) {
	handler, platform := newTestHandler(t)

	site := platform.AddSite(models.Site{Name: "Old Name", TimeZone: "America/Denver"})

	form := validSiteForm()
	form.Set("name", "New Name")

	req := postForm("/sites/"+site.ID+"/edit", form)
	req = testutil.WithChiURLParam(req, "id", site.ID)

	rec := httptest.NewRecorder()
	handler.HandleEdit(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}

	got := platform.Sites()
	if len(got) != 1 {
		t.Fatalf("expected 1 site, got %d", len(got))
	}
	if got[0].Name != "New Name" {
		t.Errorf("Name: got %q, want %q", got[0].Name, "New Name")
	}
}

func TestHandleEdit_NotFound(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := postForm("/sites/missing/edit", validSiteForm())
	req = testutil.WithChiURLParam(req, "id", "missing")

	rec := httptest.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.HandleEdit(rec, req)
	}()

	if rec.Code == http.StatusSeeOther {
		t.Error("expected error response for missing site, got redirect")
	}
}

func TestHandleDelete_Success(t *testing.T) {
	handler, platform := newTestHandler(t)

	site := platform.AddSite(models.Site{Name: "Doomed", TimeZone: "America/Chicago"})

	req := postForm("/sites/"+site.ID+"/delete", url.Values{})
	req = testutil.WithChiURLParam(req, "id", site.ID)

	rec := httptest.NewRecorder()
	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if got := len(platform.Sites()); got != 0 {
		t.Errorf("expected site to be deleted, found %d", got)
	}
}

func TestHandleDelete_OversizedBody(t *testing.T) {
	handler, platform := newTestHandler(t)

	site := platform.AddSite(models.Site{Name: "Survives", TimeZone: "America/Chicago"})

	body := strings.Repeat("a", 2<<20)
	req := httptest.NewRequest("POST", "/sites/"+site.ID+"/delete", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = testutil.WithChiURLParam(req, "id", site.ID)

	rec := httptest.NewRecorder()
	func() {
		defer func() { recover() }()
		handler.HandleDelete(rec, req)
	}()

	if rec.Code == http.StatusSeeOther {
		t.Error("expected rejection of oversized body, got redirect")
	}
	if got := len(platform.Sites()); got != 1 {
		t.Errorf("expected site to survive rejected request, found %d", got)
	}
}

func TestHandleDelete_PlatformFailure(t *testing.T) {
	handler, platform := newTestHandler(t)

	site := platform.AddSite(models.Site{Name: "Sticky", TimeZone: "America/Chicago"})

	req := postForm("/sites/"+site.ID+"/delete", url.Values{})
	req = testutil.WithChiURLParam(req, "id", site.ID)

	platform.SetFailing(true)

	rec := httptest.NewRecorder()
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Logf("recovered from panic (expected - template not initialized): %v", r)
			}
		}()
		handler.HandleDelete(rec, req)
	}()

	if rec.Code == http.StatusSeeOther {
		t.Error("expected error response on platform failure, got redirect")
	}

	platform.SetFailing(false)
	if got := len(platform.Sites()); got != 1 {
		t.Errorf("expected site to survive failed delete, found %d", got)
	}
}
