package driven

// ConfigStore holds the user's settings as dot-separated keys
// ("mods.endpoint"). Writes are persisted before they return.
type ConfigStore interface {
	// Get returns the raw value stored under key.
	Get(key string) (any, bool)

	// GetString returns the value under key, or "" when it is missing or
	// not a string.
	GetString(key string) string

	// GetInt returns the value under key, or 0 when it is missing or not
	// a number.
	GetInt(key string) int

	// Set stores value under key and persists it. On a persistence error
	// the previous value is kept.
	Set(key string, value any) error

	// Delete removes key and persists the change. Deleting a missing key
	// is not an error.
	Delete(key string) error

	// Load re-reads the configuration from storage.
	Load() error

	// Path describes where the configuration lives.
	Path() string
}
