package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/editor-collab/collab-cli/internal/core/domain"
	"github.com/editor-collab/collab-cli/internal/core/ports/driven"
)

// modCache implements driven.ModCache on the mod_cache table.
type modCache struct {
	store *Store
	now   func() time.Time
}

var _ driven.ModCache = (*modCache)(nil)

func (c *modCache) clock() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}

// Get returns the cached mod if it was fetched less than ttl ago.
func (c *modCache) Get(ctx context.Context, id string, ttl time.Duration) (*domain.Mod, error) {
	row := c.store.db.QueryRowContext(ctx, `
		SELECT changelog, download_count, updated_at, versions, fetched_at
		FROM mod_cache WHERE id = ?
	`, id)

	var (
		mod          = domain.Mod{ID: id}
		updatedAt    string
		versionsJSON string
		fetchedAt    int64
	)
	err := row.Scan(&mod.Changelog, &mod.DownloadCount, &updatedAt, &versionsJSON, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("reading cached mod %s: %w", id, err)
	}

	if c.clock().Sub(time.Unix(0, fetchedAt)) >= ttl {
		return nil, domain.ErrCacheMiss
	}

	if updatedAt != "" {
		if mod.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
			return nil, fmt.Errorf("parsing cached updated_at for %s: %w", id, err)
		}
	}
	if err := json.Unmarshal([]byte(versionsJSON), &mod.Versions); err != nil {
		return nil, fmt.Errorf("unmarshalling cached versions for %s: %w", id, err)
	}
	return &mod, nil
}

// Put stores or replaces a mod.
func (c *modCache) Put(ctx context.Context, mod *domain.Mod) error {
	versions := mod.Versions
	if versions == nil {
		versions = []domain.ModVersion{}
	}
	versionsJSON, err := json.Marshal(versions)
	if err != nil {
		return fmt.Errorf("marshalling versions: %w", err)
	}

	var updatedAt string
	if !mod.UpdatedAt.IsZero() {
		updatedAt = mod.UpdatedAt.Format(time.RFC3339Nano)
	}

	_, err = c.store.db.ExecContext(ctx, `
		INSERT INTO mod_cache (id, changelog, download_count, updated_at, versions, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			changelog = excluded.changelog,
			download_count = excluded.download_count,
			updated_at = excluded.updated_at,
			versions = excluded.versions,
			fetched_at = excluded.fetched_at
	`, mod.ID, mod.Changelog, mod.DownloadCount, updatedAt, string(versionsJSON), c.clock().UnixNano())
	if err != nil {
		return fmt.Errorf("caching mod %s: %w", mod.ID, err)
	}
	return nil
}

// Clear removes every cached mod.
func (c *modCache) Clear(ctx context.Context) error {
	if _, err := c.store.db.ExecContext(ctx, "DELETE FROM mod_cache"); err != nil {
		return fmt.Errorf("clearing mod cache: %w", err)
	}
	return nil
}

// Close closes the underlying store.
func (c *modCache) Close() error {
	return c.store.Close()
}
