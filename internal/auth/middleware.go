// internal/auth/middleware.go
//
// Session-to-context middleware.
//
// Context
// -------
// Attach resolves the session cookie to a full user row and stores it
// in the request context.  RequireUser gates dashboard and editor
// routes; anonymous requests are redirected to the login page rather
// than answered 401, because every caller is a browser.
package auth

import (
	"net/http"

	"github.com/gestularia/gestularia/internal/session"
)

// Attach resolves the session cookie, if any, and stores the user in
// the request context.  Invalid or stale cookies pass through
// anonymously; the row lookup guards against deleted accounts.
func Attach(sessions *session.Manager, repo *Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id, ok := sessions.UserID(r); ok {
				if u, err := repo.ByID(r.Context(), id); err == nil {
					r = r.WithContext(WithUser(r.Context(), u))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser redirects anonymous requests to /login.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
