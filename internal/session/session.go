// internal/session/session.go
//
// Signed-cookie sessions.
//
// Context
//   Authentication persists a "logged-in" flag between requests as a
//   JWT (HS256) in an HttpOnly cookie.  The token carries only the user
//   ID and an expiry; everything else is looked up per request.  There
//   is no server-side session store, so logout is purely cookie
//   clearing and a stolen token stays valid until it expires.
//
// Style
//   Two-space sentence spacing, Oxford comma, terse inline notes.
//
//------------------------------------------------------------------------------

package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	cookieName = "gest_session"
	lifetime   = 14 * 24 * time.Hour
)

// Manager signs and verifies session cookies with one HMAC key.
type Manager struct {
	key []byte
}

// NewManager returns a Manager using the configured signing key.
func NewManager(key string) *Manager {
	return &Manager{key: []byte(key)}
}

// Issue sets a session cookie for userID.
//
// Callers invoke this after credential verification succeeds.
func (m *Manager) Issue(w http.ResponseWriter, r *http.Request, userID string) error {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil, // only send over HTTPS
		SameSite: http.SameSiteLaxMode,
		Expires:  now.Add(lifetime),
	})
	return nil
}

// Clear removes the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// UserID returns the authenticated user ID from the request cookie.
//
// ok == false when the cookie is missing, malformed, expired, or signed
// with a different key.
func (m *Manager) UserID(r *http.Request) (string, bool) {
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return "", false
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(c.Value, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.key, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}
