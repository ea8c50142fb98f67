// internal/tenant/evictor.go
//
// Eviction loop for Cache.  Every EvictInterval it scans the map and
// removes:
//
//   - sites idle longer than idleTTL
//   - least-recently-used sites when map size exceeds maxEntries
//
// Each eviction event is logged and updates Prometheus counters.
package tenant

import (
	"sort"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/gestularia/gestularia/internal/metrics"
)

func (c *Cache) evictLoop() {
	for range c.evictTicker.C {
		now := time.Now().UnixNano()
		var count int

		// ----------------------------------------------------------------
		// Idle eviction pass
		// ----------------------------------------------------------------
		c.m.Range(func(key, value any) bool {
			count++
			ent := value.(*entry)
			idle := time.Duration(now - atomic.LoadInt64(&ent.lastSeen))
			if idle > c.idleTTL {
				c.m.Delete(key)
				count--
				c.log.Info("site evicted",
					zap.String("site", key.(string)),
					zap.Duration("idle", idle.Truncate(time.Second)))
				metrics.SiteEvictTotal.Inc()
				metrics.ActiveSites.Dec()
			}
			return true
		})

		// ----------------------------------------------------------------
		// LRU eviction pass
		// ----------------------------------------------------------------
		if c.maxEntries > 0 && count > c.maxEntries {
			type kv struct {
				key string
				at  int64
			}
			var all []kv
			c.m.Range(func(key, value any) bool {
				ent := value.(*entry)
				all = append(all, kv{key: key.(string), at: atomic.LoadInt64(&ent.lastSeen)})
				return true
			})
			sort.Slice(all, func(i, j int) bool { return all[i].at < all[j].at })
			for i := 0; i < len(all)-c.maxEntries; i++ {
				if _, ok := c.m.LoadAndDelete(all[i].key); ok {
					c.log.Info("site evicted", zap.String("site", all[i].key), zap.String("reason", "lru pressure"))
					metrics.SiteEvictTotal.Inc()
					metrics.ActiveSites.Dec()
				}
			}
		}
	}
}
