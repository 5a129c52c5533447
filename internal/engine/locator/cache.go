package locator

import (
	"sync"
	"time"

	"go.trai.ch/stitch/internal/core/domain"
)

// cacheEntry is an immutable flattened traversal with its computation time.
// Entries are replaced wholesale on recompute, never mutated, so concurrent
// readers can never observe a partially written sequence.
type cacheEntry struct {
	scripts    []domain.Script
	computedAt time.Time
}

// traversalCache memoizes flattened dependency traversals keyed by root
// script identity. Freshness is judged against the policy supplied at each
// access, not a policy captured at store time.
type traversalCache struct {
	mu      sync.RWMutex
	entries map[domain.Script]cacheEntry
}

func newTraversalCache() *traversalCache {
	return &traversalCache{entries: make(map[domain.Script]cacheEntry)}
}

// get returns a copy of the cached sequence for root when it is still fresh
// under the given policy.
func (c *traversalCache) get(root domain.Script, policy domain.CachePolicy, now time.Time) ([]domain.Script, bool) {
	c.mu.RLock()
	entry, ok := c.entries[root]
	c.mu.RUnlock()

	if !ok || !policy.Fresh(entry.computedAt, now) {
		return nil, false
	}

	out := make([]domain.Script, len(entry.scripts))
	copy(out, entry.scripts)
	return out, true
}

// put stores a freshly computed sequence. Last write wins.
func (c *traversalCache) put(root domain.Script, scripts []domain.Script, now time.Time) {
	stored := make([]domain.Script, len(scripts))
	copy(stored, scripts)

	c.mu.Lock()
	c.entries[root] = cacheEntry{scripts: stored, computedAt: now}
	c.mu.Unlock()
}

// clear drops every entry.
func (c *traversalCache) clear() {
	c.mu.Lock()
	c.entries = make(map[domain.Script]cacheEntry)
	c.mu.Unlock()
}
