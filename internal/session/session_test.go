// internal/session/session_test.go
//
// Run: go test ./internal/session -v

package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func issueCookie(t *testing.T, m *Manager, userID string) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := m.Issue(rec, req, userID); err != nil {
		t.Fatalf("issue: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	return cookies[0]
}

func TestIssueThenUserID(t *testing.T) {
	m := NewManager("0123456789abcdef0123456789abcdef")
	c := issueCookie(t, m, "u1")

	if c.Name != "gest_session" || !c.HttpOnly {
		t.Fatalf("unexpected cookie: %+v", c)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)

	id, ok := m.UserID(req)
	if !ok || id != "u1" {
		t.Fatalf("UserID = (%q, %v)", id, ok)
	}
}

func TestUserID_WrongKeyRejected(t *testing.T) {
	issuer := NewManager("0123456789abcdef0123456789abcdef")
	verifier := NewManager("ffffffffffffffffffffffffffffffff")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(issueCookie(t, issuer, "u1"))

	if _, ok := verifier.UserID(req); ok {
		t.Fatal("token signed with a different key must be rejected")
	}
}

func TestUserID_NoCookie(t *testing.T) {
	m := NewManager("0123456789abcdef0123456789abcdef")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := m.UserID(req); ok {
		t.Fatal("anonymous request must not resolve a user")
	}
}

func TestUserID_GarbageCookie(t *testing.T) {
	m := NewManager("0123456789abcdef0123456789abcdef")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "gest_session", Value: "not-a-jwt"})
	if _, ok := m.UserID(req); ok {
		t.Fatal("malformed token must be rejected")
	}
}

func TestClear(t *testing.T) {
	m := NewManager("0123456789abcdef0123456789abcdef")
	rec := httptest.NewRecorder()
	m.Clear(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "" || cookies[0].MaxAge != -1 {
		t.Fatalf("clear cookie wrong: %+v", cookies)
	}
}
