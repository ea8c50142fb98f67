// internal/tenant/resolver.go
//
// Host-header to tenant resolution.
//
// Context
// -------
// Every inbound request carries a Host header that either addresses the
// platform itself (root domain, its www form, localhost) or one tenant
// site ({subdomain}.{rootDomain}).  Resolve is the single place that
// decision is made; the host middleware and the tenant cache both build
// on it.
//
// The function is pure and total: no I/O, no panics, and any malformed
// or unrelated host resolves to "no tenant".
package tenant

import "strings"

// Resolve extracts the tenant subdomain from a raw Host header.  ok is
// false when the host addresses the platform (root domain, www, bare
// localhost) or is unrelated.
//
// Rules, in order:
//
//  1. Strip any :port suffix.
//  2. "*.localhost" — the development form — yields everything before
//     the ".localhost" suffix.
//  3. A host under ".{rootDomain}" yields the preceding label, except
//     the root domain itself and its "www." form.
//  4. A deployment-preview host containing "---" yields the first
//     segment before the separator.
func Resolve(hostHeader, rootDomain string) (subdomain string, ok bool) {
	host := strings.ToLower(strings.TrimSpace(hostHeader))
	if i := strings.IndexByte(host, ':'); i != -1 {
		host = host[:i]
	}
	if host == "" || rootDomain == "" {
		return "", false
	}

	if sub, found := strings.CutSuffix(host, ".localhost"); found {
		return sub, sub != ""
	}

	if host == rootDomain || host == "www."+rootDomain {
		return "", false
	}
	if sub, found := strings.CutSuffix(host, "."+rootDomain); found {
		return sub, sub != ""
	}

	// Preview deployments expose the branch label before "---".
	if i := strings.Index(host, "---"); i > 0 {
		return host[:i], true
	}

	return "", false
}
