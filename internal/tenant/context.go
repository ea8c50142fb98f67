// internal/tenant/context.go
//
// Context plumbing for the resolved tenant subdomain.  The host
// middleware stores it; the public page handler reads it.
package tenant

import "context"

type ctxKey struct{}

// WithSubdomain returns a context carrying the resolved subdomain.
func WithSubdomain(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sub)
}

// SubdomainFromContext returns the subdomain stored by the host
// middleware.  ok is false on platform-host requests.
func SubdomainFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(ctxKey{}).(string)
	return sub, ok && sub != ""
}
