// internal/component/registry.go
//
// Component registry (cycle-free).
//
// Each concrete component lives under components/<name> and calls
// component.Register() in an init() function.  main() asks every
// component to mount its routes on the shared platform router, passing
// the shared dependency bundle.

package component

import (
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/gestularia/gestularia/internal/auth"
	"github.com/gestularia/gestularia/internal/session"
	"github.com/gestularia/gestularia/internal/site"
	"github.com/gestularia/gestularia/internal/tenant"
	"github.com/gestularia/gestularia/internal/view"
)

// Deps bundles the shared resources components build handlers from.
type Deps struct {
	Log        *zap.Logger
	Sites      *site.Repository
	Users      *auth.Repository
	Sessions   *session.Manager
	Cache      *tenant.Cache
	Views      *view.Engine
	RootDomain string
}

// Component contract.
//
// Mount() registers BOTH page and action endpoints on the shared
// platform router, e.g:
//
//	r.Get("/login", getLogin)
//	r.Post("/login", postLogin)
//
// Paths are absolute; components own disjoint URL territory.
type Component interface {
	Name() string
	Mount(r chi.Router, deps *Deps)
}

var (
	mu       sync.RWMutex
	registry = map[string]Component{}
)

// Register is invoked from component init() functions.
func Register(c Component) {
	mu.Lock()
	registry[c.Name()] = c
	mu.Unlock()
}

// All returns every registered component in arbitrary order.
func All() []Component {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Component, 0, len(registry))
	for _, c := range registry {
		out = append(out, c)
	}
	return out
}
