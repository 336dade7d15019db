package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/editor-collab/collab-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/editor-collab/collab-cli/internal/core/ports/driven"
)

// dbFile is the database file name inside the data directory.
const dbFile = "cache.db"

// Store owns the SQLite database backing the mod cache.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens the cache database in dataDir, creating it when missing,
// and brings its schema up to date. An empty dataDir means ~/.collab/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".collab", "data")
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	path := filepath.Join(dataDir, dbFile)
	// WAL lets the TUI read while a refresh writes.
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path}
	steps, err := loadMigrations(migrations.FS)
	if err == nil {
		err = s.upgrade(steps)
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ModCache returns a ModCache backed by this store.
func (s *Store) ModCache() driven.ModCache {
	return &modCache{store: s}
}

// migration is one numbered schema step.
type migration struct {
	version int
	name    string
	up      string
	down    string
}

// loadMigrations pairs NNN_name.up.sql with NNN_name.down.sql, sorted by
// version. Files without a numeric prefix are ignored.
func loadMigrations(fsys fs.FS) ([]migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading migrations directory: %w", err)
	}

	byVersion := make(map[int]*migration)
	for _, entry := range entries {
		file := entry.Name()
		base, dir, ok := cutDirection(file)
		if !ok {
			continue
		}
		prefix, _, _ := strings.Cut(base, "_")
		version, err := strconv.Atoi(prefix)
		if err != nil {
			continue
		}
		body, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("reading migration %s: %w", file, err)
		}

		m := byVersion[version]
		if m == nil {
			m = &migration{version: version, name: base}
			byVersion[version] = m
		}
		if dir == "up" {
			m.up = string(body)
		} else {
			m.down = string(body)
		}
	}

	steps := make([]migration, 0, len(byVersion))
	for _, m := range byVersion {
		if m.up == "" {
			return nil, fmt.Errorf("migration %s has no up script", m.name)
		}
		steps = append(steps, *m)
	}
	slices.SortFunc(steps, func(a, b migration) int { return a.version - b.version })
	return steps, nil
}

func cutDirection(file string) (base, dir string, ok bool) {
	if base, ok = strings.CutSuffix(file, ".up.sql"); ok {
		return base, "up", true
	}
	if base, ok = strings.CutSuffix(file, ".down.sql"); ok {
		return base, "down", true
	}
	return "", "", false
}

// upgrade applies every step newer than the recorded schema version. Each
// step commits together with its schema_migrations row.
func (s *Store) upgrade(steps []migration) error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	current, err := s.schemaVersion()
	if err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}
	for _, m := range steps {
		if m.version <= current {
			continue
		}
		err := s.inTx(m.up, "INSERT INTO schema_migrations (version) VALUES (?)", m.version)
		if err != nil {
			return fmt.Errorf("applying %s: %w", m.name, err)
		}
	}
	return nil
}

// downgrade reverts applied steps, newest first, until the schema is at
// target.
func (s *Store) downgrade(steps []migration, target int) error {
	current, err := s.schemaVersion()
	if err != nil {
		return err
	}
	for i := len(steps) - 1; i >= 0; i-- {
		m := steps[i]
		if m.version <= target || m.version > current {
			continue
		}
		if m.down == "" {
			return fmt.Errorf("migration %s cannot be reverted", m.name)
		}
		if err := s.inTx(m.down, "DELETE FROM schema_migrations WHERE version = ?", m.version); err != nil {
			return fmt.Errorf("reverting %s: %w", m.name, err)
		}
	}
	return nil
}

func (s *Store) inTx(script, bookkeeping string, version int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(script); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec(bookkeeping, version); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// schemaVersion returns the highest applied migration.
func (s *Store) schemaVersion() (int, error) {
	var v int
	err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&v)
	return v, err
}
