// internal/middleware/hosts.go
//
// Host-header routing: tenant sites vs. the platform itself.
//
// Context
// -------
// One listener serves two very different surfaces.  Requests whose Host
// resolves to a subdomain are tenant page views; everything else (the
// root domain, www, bare localhost) is the platform: landing page,
// auth, dashboard, and editor.  This middleware makes that split once,
// stores the resolved subdomain in the request context, and dispatches
// to the matching handler tree.
package middleware

import (
	"net/http"

	"github.com/gestularia/gestularia/internal/tenant"
)

// Hosts dispatches each request to tenantH or platformH based on the
// Host header.  Tenant requests carry the resolved subdomain in their
// context.
func Hosts(rootDomain string, tenantH, platformH http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sub, ok := tenant.Resolve(r.Host, rootDomain); ok {
			r = r.WithContext(tenant.WithSubdomain(r.Context(), sub))
			tenantH.ServeHTTP(w, r)
			return
		}
		platformH.ServeHTTP(w, r)
	})
}
