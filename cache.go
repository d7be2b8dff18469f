package helio

import (
	"math"
	"sort"
	"sync"
	"time"
)

const (
	// directionQuantum quantizes query directions (radians).
	directionQuantum = 0.01
	// epochQuantum quantizes query epochs (days).
	epochQuantum = 0.1
)

// boundaryKey is the quantized (direction, epoch) triple a boundary snapshot
// is cached under.
type boundaryKey struct {
	θq, φq, tq int64
}

func newBoundaryKey(θ, φ, jde float64) boundaryKey {
	return boundaryKey{
		θq: int64(math.Round(θ / directionQuantum)),
		φq: int64(math.Round(φ / directionQuantum)),
		tq: int64(math.Round(jde / epochQuantum)),
	}
}

// quantized returns the direction angles and epoch the key stands for.
func (k boundaryKey) quantized() (θ, φ, jde float64) {
	return float64(k.θq) * directionQuantum, float64(k.φq) * directionQuantum, float64(k.tq) * epochQuantum
}

type boundaryEntry struct {
	value     DirectionalBoundary
	createdAt time.Time
}

// boundaryCache is a bounded cache of solved boundary snapshots. Entries are
// valid for a short wall-clock window; once the cache exceeds its ceiling the
// oldest half is dropped in one batch. A single mutex guards all mutation so
// mesh generation may be offloaded to workers without further coordination.
type boundaryCache struct {
	mu         sync.Mutex
	entries    map[boundaryKey]boundaryEntry
	ttl        time.Duration
	maxEntries int
}

func newBoundaryCache(ttl time.Duration, maxEntries int) *boundaryCache {
	if maxEntries < 2 {
		maxEntries = 2
	}
	return &boundaryCache{
		entries:    make(map[boundaryKey]boundaryEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

func (c *boundaryCache) get(key boundaryKey) (DirectionalBoundary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok || time.Since(entry.createdAt) > c.ttl {
		cacheMissesTotal.Inc()
		return DirectionalBoundary{}, false
	}
	cacheHitsTotal.Inc()
	return entry.value, true
}

func (c *boundaryCache) put(key boundaryKey, value DirectionalBoundary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.maxEntries {
		c.evictOldestHalf()
	}
	c.entries[key] = boundaryEntry{value: value, createdAt: time.Now()}
	cacheEntries.Set(float64(len(c.entries)))
}

// evictOldestHalf drops the older half of the entries in one batch. Caller
// must hold mu.
func (c *boundaryCache) evictOldestHalf() {
	type aged struct {
		key boundaryKey
		at  time.Time
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.createdAt})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].at.Before(all[j].at) })
	for _, a := range all[:len(all)/2] {
		delete(c.entries, a.key)
	}
	cacheEvictionsTotal.Add(float64(len(all) / 2))
}

func (c *boundaryCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
