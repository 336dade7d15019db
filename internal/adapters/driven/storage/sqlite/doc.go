// Package sqlite provides the SQLite-backed cache for mod metadata.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
//   - ModCache: changelog payloads keyed by mod id, with a fetch timestamp
//     used for time-to-live checks
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.collab/data/cache.db
package sqlite
