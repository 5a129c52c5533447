package locator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/core/domain"
)

func TestTraversalCache_PolicyAtAccessTime(t *testing.T) {
	c := newTraversalCache()
	root := domain.NewScript(false, "app.js")
	scripts := []domain.Script{domain.NewScript(true, "utils.js"), root}
	stored := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	c.put(root, scripts, stored)

	// The same entry is fresh or stale depending on the policy presented now.
	_, ok := c.get(root, domain.CacheDisabled(), stored)
	assert.False(t, ok)

	got, ok := c.get(root, domain.CacheIndefinite(), stored.Add(time.Hour))
	require.True(t, ok)
	assert.Equal(t, scripts, got)

	_, ok = c.get(root, domain.CacheFor(time.Minute), stored.Add(time.Minute))
	assert.False(t, ok)

	_, ok = c.get(root, domain.CacheFor(time.Minute), stored.Add(30*time.Second))
	assert.True(t, ok)
}

func TestTraversalCache_CopiesAreIsolated(t *testing.T) {
	c := newTraversalCache()
	root := domain.NewScript(false, "app.js")
	scripts := []domain.Script{domain.NewScript(true, "utils.js"), root}
	now := time.Now()

	c.put(root, scripts, now)

	// Mutating the caller's slice must not leak into the cache.
	scripts[0] = domain.NewScript(false, "mutated.js")

	got, ok := c.get(root, domain.CacheIndefinite(), now)
	require.True(t, ok)
	assert.Equal(t, "utils.js", got[0].Path())

	// Mutating a returned copy must not leak either.
	got[0] = domain.NewScript(false, "mutated.js")
	again, ok := c.get(root, domain.CacheIndefinite(), now)
	require.True(t, ok)
	assert.Equal(t, "utils.js", again[0].Path())
}

func TestTraversalCache_LastWriteWins(t *testing.T) {
	c := newTraversalCache()
	root := domain.NewScript(false, "app.js")
	now := time.Now()

	c.put(root, []domain.Script{domain.NewScript(true, "old.js")}, now)
	c.put(root, []domain.Script{domain.NewScript(true, "new.js")}, now.Add(time.Second))

	got, ok := c.get(root, domain.CacheIndefinite(), now.Add(time.Second))
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "new.js", got[0].Path())
}

func TestTraversalCache_Clear(t *testing.T) {
	c := newTraversalCache()
	root := domain.NewScript(false, "app.js")
	now := time.Now()

	c.put(root, []domain.Script{root}, now)
	c.clear()

	_, ok := c.get(root, domain.CacheIndefinite(), now)
	assert.False(t, ok)
}
