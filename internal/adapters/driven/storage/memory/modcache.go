package memory

import (
	"context"
	"sync"
	"time"

	"github.com/editor-collab/collab-cli/internal/core/domain"
	"github.com/editor-collab/collab-cli/internal/core/ports/driven"
)

// Ensure ModCache implements the interface.
var _ driven.ModCache = (*ModCache)(nil)

type cachedMod struct {
	mod      domain.Mod
	storedAt time.Time
}

// ModCache is an in-memory implementation of driven.ModCache.
// It backs the changelog when no data directory is available, and tests.
type ModCache struct {
	mu      sync.RWMutex
	entries map[string]cachedMod
	now     func() time.Time
}

// NewModCache creates a new in-memory mod cache.
func NewModCache() *ModCache {
	return &ModCache{
		entries: make(map[string]cachedMod),
		now:     time.Now,
	}
}

// Get returns a copy of the cached mod if it is younger than ttl.
func (c *ModCache) Get(_ context.Context, id string, ttl time.Duration) (*domain.Mod, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[id]
	if !ok || c.now().Sub(e.storedAt) >= ttl {
		return nil, domain.ErrCacheMiss
	}
	m := e.mod
	m.Versions = append([]domain.ModVersion(nil), e.mod.Versions...)
	return &m, nil
}

// Put stores a copy of mod.
func (c *ModCache) Put(_ context.Context, mod *domain.Mod) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := *mod
	m.Versions = append([]domain.ModVersion(nil), mod.Versions...)
	c.entries[mod.ID] = cachedMod{mod: m, storedAt: c.now()}
	return nil
}

// Clear removes every entry.
func (c *ModCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cachedMod)
	return nil
}

// Close is a no-op for the memory cache.
func (c *ModCache) Close() error {
	return nil
}
