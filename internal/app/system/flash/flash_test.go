package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestAddThenPop(t *testing.T) {
	store := New("0123456789abcdef0123456789abcdef", "breeze-flash", false, zap.NewNop())

	// First request: queue a notice.
	req := httptest.NewRequest("POST", "/organizations", nil)
	rec := httptest.NewRecorder()
	store.Add(rec, req, "Organization created.")

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a flash cookie to be set")
	}

	// Follow-up request carries the cookie; Pop drains it.
	req2 := httptest.NewRequest("GET", "/organizations", nil)
	for _, c := range cookies {
		req2.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	got := store.Pop(rec2, req2)
	if len(got) != 1 || got[0] != "Organization created." {
		t.Fatalf("Pop = %v, want one %q", got, "Organization created.")
	}
}

func TestPopWithoutCookie(t *testing.T) {
	store := New("", "breeze-flash", false, zap.NewNop())
	req := httptest.NewRequest("GET", "/organizations", nil)
	rec := httptest.NewRecorder()
	if got := store.Pop(rec, req); len(got) != 0 {
		t.Errorf("Pop on empty request = %v, want none", got)
	}
}

func TestPopIgnoresCorruptCookie(t *testing.T) {
	store := New("0123456789abcdef0123456789abcdef", "breeze-flash", false, zap.NewNop())
	req := httptest.NewRequest("GET", "/organizations", nil)
	req.AddCookie(&http.Cookie{Name: "breeze-flash", Value: "garbage"})
	rec := httptest.NewRecorder()
	if got := store.Pop(rec, req); len(got) != 0 {
		t.Errorf("Pop on corrupt cookie = %v, want none", got)
	}
}
