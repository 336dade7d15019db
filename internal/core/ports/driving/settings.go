package driving

import "github.com/editor-collab/collab-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Set updates one setting by key and persists it.
	// Returns domain.ErrUnknownSetting for unknown keys and
	// domain.ErrInvalidInput for malformed values.
	Set(key, value string) error

	// Reset removes a stored setting so its default applies again.
	// Returns domain.ErrUnknownSetting for unknown keys.
	Reset(key string) error

	// Keys lists the settable keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}

// ThemeService holds the colour preference shared by every view.
// The preference is loaded once at construction and saved on every change.
type ThemeService interface {
	// Current returns the active theme.
	Current() domain.Theme

	// Set changes and persists the theme.
	Set(theme domain.Theme) error

	// Toggle flips between dark and light, persists, and returns the new theme.
	Toggle() (domain.Theme, error)
}
