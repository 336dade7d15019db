package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/editor-collab/collab-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/editor-collab/collab-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "collab-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.Equal(t, "cache.db", filepath.Base(store.Path()))
	_, err := os.Stat(store.Path())
	assert.NoError(t, err)

	version, err := store.schemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.ModCache().Put(ctx, &domain.Mod{ID: "alk.editor-collab", DownloadCount: 7}))
	require.NoError(t, store.Close())

	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	mod, err := store.ModCache().Get(ctx, "alk.editor-collab", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(7), mod.DownloadCount)

	version, err := store.schemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestLoadMigrations_PairsAndSorts(t *testing.T) {
	fsys := fstest.MapFS{
		"002_extra.up.sql":   {Data: []byte("CREATE TABLE extra (id TEXT);")},
		"002_extra.down.sql": {Data: []byte("DROP TABLE extra;")},
		"001_base.up.sql":    {Data: []byte("CREATE TABLE base (id TEXT);")},
		"README.md":          {Data: []byte("ignored")},
		"draft.up.sql":       {Data: []byte("ignored")},
	}

	steps, err := loadMigrations(fsys)

	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, 1, steps[0].version)
	assert.Equal(t, "001_base", steps[0].name)
	assert.Empty(t, steps[0].down)
	assert.Equal(t, 2, steps[1].version)
	assert.Equal(t, "DROP TABLE extra;", steps[1].down)
}

func TestLoadMigrations_DownWithoutUp(t *testing.T) {
	fsys := fstest.MapFS{
		"003_orphan.down.sql": {Data: []byte("DROP TABLE orphan;")},
	}

	_, err := loadMigrations(fsys)

	assert.ErrorContains(t, err, "003_orphan")
}

func TestLoadMigrations_Embedded(t *testing.T) {
	steps, err := loadMigrations(migrations.FS)

	require.NoError(t, err)
	require.NotEmpty(t, steps)
	for _, m := range steps {
		assert.NotEmpty(t, m.down, "migration %s", m.name)
	}
}

func TestStore_DowngradeAndUpgrade(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	steps, err := loadMigrations(migrations.FS)
	require.NoError(t, err)
	require.NoError(t, store.ModCache().Put(ctx, &domain.Mod{ID: "m"}))

	require.NoError(t, store.downgrade(steps, 0))
	version, err := store.schemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 0, version)
	assert.Error(t, store.ModCache().Put(ctx, &domain.Mod{ID: "m"}))

	require.NoError(t, store.upgrade(steps))
	version, err = store.schemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
	_, err = store.ModCache().Get(ctx, "m", time.Hour)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestStore_UpgradeFailureRollsBack(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.upgrade([]migration{{version: 2, name: "002_broken", up: "CREATE TABLE broken (;"}})

	assert.ErrorContains(t, err, "002_broken")
	version, err := store.schemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestStore_DowngradeWithoutDownScript(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.downgrade([]migration{{version: 1, name: "001_mod_cache", up: "SELECT 1;"}}, 0)

	assert.ErrorContains(t, err, "cannot be reverted")
}

func TestModCache_PutAndGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	cache := store.ModCache()

	mod := &domain.Mod{
		ID:            "alk.editor-collab",
		Changelog:     "# v1.4.0\n- Faster sync",
		DownloadCount: 48213,
		UpdatedAt:     time.Date(2026, 2, 25, 8, 30, 0, 0, time.UTC),
		Versions:      []domain.ModVersion{{Version: "1.4.0"}, {Version: "1.3.2"}},
	}
	require.NoError(t, cache.Put(ctx, mod))

	got, err := cache.Get(ctx, mod.ID, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, mod.Changelog, got.Changelog)
	assert.Equal(t, mod.DownloadCount, got.DownloadCount)
	assert.True(t, mod.UpdatedAt.Equal(got.UpdatedAt))
	assert.Equal(t, mod.Versions, got.Versions)
}

func TestModCache_Miss(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.ModCache().Get(context.Background(), "missing", time.Hour)

	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestModCache_Expiry(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cache := &modCache{store: store, now: func() time.Time { return now }}
	require.NoError(t, cache.Put(ctx, &domain.Mod{ID: "m"}))

	now = now.Add(30 * time.Minute)
	_, err := cache.Get(ctx, "m", time.Hour)
	assert.NoError(t, err)

	now = now.Add(30 * time.Minute)
	_, err = cache.Get(ctx, "m", time.Hour)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestModCache_PutReplaces(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	cache := store.ModCache()

	require.NoError(t, cache.Put(ctx, &domain.Mod{ID: "m", DownloadCount: 1}))
	require.NoError(t, cache.Put(ctx, &domain.Mod{ID: "m", DownloadCount: 2}))

	got, err := cache.Get(ctx, "m", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.DownloadCount)
	assert.True(t, got.UpdatedAt.IsZero())
	assert.Empty(t, got.Versions)
}

func TestModCache_Clear(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	cache := store.ModCache()

	require.NoError(t, cache.Put(ctx, &domain.Mod{ID: "a"}))
	require.NoError(t, cache.Put(ctx, &domain.Mod{ID: "b"}))
	require.NoError(t, cache.Clear(ctx))

	_, err := cache.Get(ctx, "a", time.Hour)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	_, err = cache.Get(ctx, "b", time.Hour)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}
