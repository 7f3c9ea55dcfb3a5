// Package nfpcache memoizes NFP computations keyed by
// (A_id, B_id, inside, A_rot, B_rot), pruned once per GA generation
// (spec.md §4.4).
package nfpcache

import (
	"sync"

	"github.com/arl/nest/nfp"
)

// Cache maps NfpKeys to their computed Value. Entries live for one GA
// generation: Prune drops everything not in the keep set, and population is
// expected to happen once per generation after the parallel fan-in
// completes (spec.md §4.4 concurrency note) -- readers during placement see
// a frozen snapshot because nothing writes to the map during Placement.
type Cache struct {
	mu sync.RWMutex
	m  map[nfp.Key]nfp.Value
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{m: make(map[nfp.Key]nfp.Value)}
}

// Get returns the cached value for key, if present.
func (c *Cache) Get(key nfp.Key) (nfp.Value, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[key]
	return v, ok
}

// Set inserts or overwrites the entry for key.
func (c *Cache) Set(key nfp.Key, v nfp.Value) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = v
}

// Missing filters keys down to those absent from the cache.
func (c *Cache) Missing(keys []nfp.Key) []nfp.Key {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []nfp.Key
	for _, k := range keys {
		if _, ok := c.m[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}

// Prune drops every entry whose key is not in keep, per spec.md §4.4 step 2.
func (c *Cache) Prune(keep []nfp.Key) {
	keepSet := make(map[nfp.Key]struct{}, len(keep))
	for _, k := range keep {
		keepSet[k] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.m {
		if _, ok := keepSet[k]; !ok {
			delete(c.m, k)
		}
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
