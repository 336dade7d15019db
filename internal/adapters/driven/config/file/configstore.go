package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/editor-collab/collab-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// FileName is the name of the configuration file inside the config directory.
const FileName = "config.toml"

// ErrNotTable is returned when a key runs through a value that is not a table,
// e.g. setting "ui.theme.accent" while "ui.theme" holds a string.
var ErrNotTable = errors.New("config key crosses a non-table value")

// ConfigStore keeps the decoded TOML document as nested tables and resolves
// dot-separated keys against it: "mods.endpoint" is the endpoint entry of
// the [mods] table.
type ConfigStore struct {
	mu   sync.RWMutex
	path string
	doc  map[string]any
}

// NewConfigStore opens the configuration in configDir, creating the
// directory when needed. If configDir is empty, ~/.collab is used.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".collab")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	s := &ConfigStore{
		path: filepath.Join(configDir, FileName),
		doc:  make(map[string]any),
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the value under key. Tables are not values.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table, leaf, err := walk(s.doc, key, false)
	if err != nil || table == nil {
		return nil, false
	}
	val, ok := table[leaf]
	if _, isTable := val.(map[string]any); isTable {
		return nil, false
	}
	return val, ok
}

// GetString returns the string under key.
func (s *ConfigStore) GetString(key string) string {
	val, _ := s.Get(key)
	str, _ := val.(string)
	return str
}

// GetInt returns the integer under key. TOML integers decode as int64.
func (s *ConfigStore) GetInt(key string) int {
	val, _ := s.Get(key)
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// Set stores value under key, creating tables along the way, and writes the
// file. If the write fails the document is restored.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, leaf, err := walk(s.doc, key, true)
	if err != nil {
		return err
	}

	prev, had := table[leaf]
	table[leaf] = value
	if err := s.write(); err != nil {
		if had {
			table[leaf] = prev
		} else {
			remove(s.doc, strings.Split(key, "."))
		}
		return err
	}
	return nil
}

// Delete removes key, drops any table it leaves empty, and writes the file.
func (s *ConfigStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, leaf, err := walk(s.doc, key, false)
	if err != nil || table == nil {
		return nil
	}
	prev, ok := table[leaf]
	if !ok {
		return nil
	}

	remove(s.doc, strings.Split(key, "."))
	if err := s.write(); err != nil {
		if restored, _, werr := walk(s.doc, key, true); werr == nil {
			restored[leaf] = prev
		}
		return err
	}
	return nil
}

// Load replaces the in-memory document with the file's contents.
// A missing file is an empty configuration.
func (s *ConfigStore) Load() error {
	doc := make(map[string]any)

	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return fmt.Errorf("reading config: %w", err)
	default:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing %s: %w", s.path, err)
		}
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.path
}

// write encodes the document to a sibling temp file and renames it into
// place. Caller must hold the write lock.
func (s *ConfigStore) write() error {
	data, err := toml.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing config: %w", err)
	}
	return nil
}

// walk resolves the table holding key and the key's last segment. With
// create set, missing tables are added; otherwise a missing table yields a
// nil table and no error.
func walk(doc map[string]any, key string, create bool) (map[string]any, string, error) {
	parts := strings.Split(key, ".")
	table := doc
	for i, part := range parts[:len(parts)-1] {
		next, ok := table[part]
		if !ok {
			if !create {
				return nil, "", nil
			}
			child := make(map[string]any)
			table[part] = child
			table = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return nil, "", fmt.Errorf("%w: %s", ErrNotTable, strings.Join(parts[:i+1], "."))
		}
		table = child
	}
	return table, parts[len(parts)-1], nil
}

// remove deletes the entry at path from table, then any tables left empty.
// It reports whether anything was removed.
func remove(table map[string]any, path []string) bool {
	if len(path) == 1 {
		_, ok := table[path[0]]
		delete(table, path[0])
		return ok
	}

	child, ok := table[path[0]].(map[string]any)
	if !ok || !remove(child, path[1:]) {
		return false
	}
	if len(child) == 0 {
		delete(table, path[0])
	}
	return true
}
