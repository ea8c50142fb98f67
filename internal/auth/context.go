// internal/auth/context.go
//
// Request-context helpers for the authenticated user.
//
// Usage
// -----
//     // Attach the user to the request context (after cookie check).
//     ctx = auth.WithUser(ctx, user)
//
//     // Downstream code retrieves it.
//     u, ok := auth.FromContext(ctx)
//
// Notes
// -----
// • Oxford commas, two spaces after periods.

package auth

import "context"

// userKey is unexported to avoid context-key collisions.
type userKey struct{}

// WithUser returns a new context carrying the given user.
func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// FromContext extracts the user from ctx.  ok is false when the request
// is anonymous.
func FromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(userKey{}).(*User)
	return u, ok
}
