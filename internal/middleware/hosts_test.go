// internal/middleware/hosts_test.go
//
// Run: go test ./internal/middleware -v

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gestularia/gestularia/internal/tenant"
)

func TestHosts(t *testing.T) {
	var gotSub string
	tenantH := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSub, _ = tenant.SubdomainFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	platformH := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := Hosts("gestularia.com", tenantH, platformH)

	tests := []struct {
		host       string
		wantStatus int
		wantSub    string
	}{
		{"shop.gestularia.com", http.StatusOK, "shop"},
		{"foo.localhost:3000", http.StatusOK, "foo"},
		{"gestularia.com", http.StatusTeapot, ""},
		{"www.gestularia.com", http.StatusTeapot, ""},
		{"localhost:8080", http.StatusTeapot, ""},
	}
	for _, tt := range tests {
		gotSub = ""
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = tt.host
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		if rec.Code != tt.wantStatus || gotSub != tt.wantSub {
			t.Errorf("host %q: status=%d sub=%q, want status=%d sub=%q",
				tt.host, rec.Code, gotSub, tt.wantStatus, tt.wantSub)
		}
	}
}

func TestForceHTTPS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := ForceHTTPS(next)

	req := httptest.NewRequest(http.MethodGet, "/page?x=1", nil)
	req.Host = "shop.gestularia.com"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("status = %d, want 308", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "https://shop.gestularia.com/page?x=1" {
		t.Fatalf("location = %q", loc)
	}

	// Localhost development hosts are never redirected.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "foo.localhost:3000"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("localhost redirected: %d", rec.Code)
	}
}
