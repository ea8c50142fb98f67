// internal/tenant/resolver_test.go
//
// Unit-tests for host-header resolution.
//
// Run: go test ./internal/tenant -v

package tenant

import "testing"

func TestResolve(t *testing.T) {
	const root = "gestularia.com"

	tests := []struct {
		host string
		want string
		ok   bool
	}{
		{"foo.localhost:3000", "foo", true},
		{"foo.localhost", "foo", true},
		{"blog.dev.localhost", "blog.dev", true},
		{"localhost:8080", "", false},
		{"localhost", "", false},

		{"gestularia.com", "", false},
		{"gestularia.com:443", "", false},
		{"www.gestularia.com", "", false},
		{"shop.gestularia.com", "shop", true},
		{"SHOP.Gestularia.COM", "shop", true},
		{"shop.gestularia.com:8080", "shop", true},

		{"preview---abc123.vercel.app", "preview", true},
		{"---abc123.vercel.app", "", false},

		{"example.org", "", false},
		{"notgestularia.com", "", false},
		{"", "", false},
		{":3000", "", false},
		{"   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			got, ok := Resolve(tt.host, root)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("Resolve(%q) = (%q, %v), want (%q, %v)", tt.host, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestResolve_EmptyRootDomain(t *testing.T) {
	if _, ok := Resolve("shop.gestularia.com", ""); ok {
		t.Fatal("empty root domain must never resolve a tenant")
	}
}
