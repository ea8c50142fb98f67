// internal/tenant/cache.go
//
// In-memory cache of site records keyed by subdomain.
//
// Context
// -------
// Every tenant request needs the site row for its subdomain before it
// can render anything.  The cache keeps hot sites in a sync.Map, loads
// misses through singleflight so a burst of requests for a cold site
// costs one query, and evicts on idle TTL or LRU pressure (evictor.go).
//
// Invalidate drops a single entry; the editor calls it after a save so
// renames of template or content-affecting fields never serve stale
// rows longer than one request.  Negative results are not cached — an
// unknown subdomain hits the store every time, which is fine because
// the 404 page is cheap.
package tenant

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/gestularia/gestularia/internal/apperror"
	"github.com/gestularia/gestularia/internal/metrics"
	"github.com/gestularia/gestularia/internal/site"
)

// Static defaults.  Override via the cache section of the config file.
const (
	IdleTTL       = 30 * time.Minute
	MaxEntries    = 1000
	EvictInterval = 5 * time.Minute
)

// SiteSource loads a site record by its canonical name.  The site
// repository implements it; tests stub it.
type SiteSource interface {
	ByName(ctx context.Context, name string) (*site.Site, error)
}

type entry struct {
	site     *site.Site
	lastSeen int64 // unix nanos, atomically updated
}

// Cache lazily loads site records, stores them in a sync.Map, and
// evicts them on idle TTL or LRU pressure.
type Cache struct {
	source      SiteSource
	log         *zap.Logger
	sfg         singleflight.Group
	m           sync.Map
	evictTicker *time.Ticker
	idleTTL     time.Duration
	maxEntries  int
}

// NewCache constructs a Cache and starts the background evictor.
func NewCache(source SiteSource, log *zap.Logger, idleTTL time.Duration, maxEntries int) *Cache {
	c := &Cache{
		source:     source,
		log:        log,
		idleTTL:    idleTTL,
		maxEntries: maxEntries,
	}
	c.evictTicker = time.NewTicker(EvictInterval)
	go c.evictLoop()
	return c
}

// Get returns the site for a subdomain, loading it on demand.
func (c *Cache) Get(ctx context.Context, name string) (*site.Site, error) {
	if v, ok := c.m.Load(name); ok {
		ent := v.(*entry)
		atomic.StoreInt64(&ent.lastSeen, time.Now().UnixNano())
		return ent.site, nil
	}

	v, err, _ := c.sfg.Do(name, func() (interface{}, error) {
		// Double-check after singleflight barrier.
		if v, ok := c.m.Load(name); ok {
			ent := v.(*entry)
			atomic.StoreInt64(&ent.lastSeen, time.Now().UnixNano())
			return ent.site, nil
		}
		s, err := c.source.ByName(ctx, name)
		if err != nil {
			// An unknown subdomain is routine traffic, not a load failure.
			if !errors.Is(err, apperror.ErrNotFound) {
				metrics.SiteLoadErrorsTotal.Inc()
			}
			return nil, err
		}
		c.m.Store(name, &entry{site: s, lastSeen: time.Now().UnixNano()})
		metrics.SiteLoadTotal.Inc()
		metrics.ActiveSites.Inc()
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*site.Site), nil
}

// Invalidate drops the cached entry for a subdomain, if present.  The
// next request reloads from the store.
func (c *Cache) Invalidate(name string) {
	if _, ok := c.m.LoadAndDelete(name); ok {
		metrics.ActiveSites.Dec()
	}
}

// Close stops the background evictor.  Cached entries hold no
// resources, so there is nothing else to release.
func (c *Cache) Close() {
	c.evictTicker.Stop()
}
