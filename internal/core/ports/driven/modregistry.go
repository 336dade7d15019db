package driven

import (
	"context"
	"time"

	"github.com/editor-collab/collab-cli/internal/core/domain"
)

// ModRegistry reads published mod metadata from the mod-distribution API.
type ModRegistry interface {
	// GetMod fetches a mod by its identifier.
	GetMod(ctx context.Context, id string) (*domain.Mod, error)
}

// ModCache keeps recently fetched mods so repeated page builds do not hit
// the registry. Entries older than the TTL given to Get are misses.
type ModCache interface {
	// Get returns the cached mod, or domain.ErrCacheMiss when absent or stale.
	Get(ctx context.Context, id string, ttl time.Duration) (*domain.Mod, error)

	// Put stores a mod, replacing any previous entry.
	Put(ctx context.Context, mod *domain.Mod) error

	// Clear removes every entry.
	Clear(ctx context.Context) error

	// Close releases resources.
	Close() error
}
