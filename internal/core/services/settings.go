package services

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/editor-collab/collab-cli/internal/core/domain"
	"github.com/editor-collab/collab-cli/internal/core/ports/driven"
	"github.com/editor-collab/collab-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyCheckoutEndpoint = "checkout.endpoint"
	KeyModsEndpoint     = "mods.endpoint"
	KeyModsCacheTTL     = "mods.cache_ttl_seconds"
	KeyHTTPTimeout      = "http.timeout_seconds"
	KeyUITheme          = "ui.theme"
)

// settingKeys lists every settable key in display order.
var settingKeys = []string{
	KeyCheckoutEndpoint,
	KeyModsEndpoint,
	KeyModsCacheTTL,
	KeyHTTPTimeout,
	KeyUITheme,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings with defaults applied.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		Checkout: domain.CheckoutSettings{
			Endpoint: s.getString(KeyCheckoutEndpoint, defaults.Checkout.Endpoint),
		},
		Mods: domain.ModsSettings{
			Endpoint: s.getString(KeyModsEndpoint, defaults.Mods.Endpoint),
			CacheTTL: s.getSeconds(KeyModsCacheTTL, defaults.Mods.CacheTTL, true),
			Tracked:  defaults.Mods.Tracked,
		},
		HTTP: domain.HTTPSettings{
			Timeout: s.getSeconds(KeyHTTPTimeout, defaults.HTTP.Timeout, false),
		},
		UI: domain.UISettings{
			Theme: domain.ParseTheme(s.configStore.GetString(KeyUITheme)),
		},
	}, nil
}

// Set validates and persists one setting.
func (s *SettingsService) Set(key, value string) error {
	var stored any
	switch key {
	case KeyCheckoutEndpoint, KeyModsEndpoint:
		if err := validateEndpoint(value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		stored = value
	case KeyModsCacheTTL, KeyHTTPTimeout:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || (n == 0 && key == KeyHTTPTimeout) {
			return fmt.Errorf("%s: %w: want a non-negative number of seconds, got %q", key, domain.ErrInvalidInput, value)
		}
		stored = n
	case KeyUITheme:
		if value != string(domain.ThemeDark) && value != string(domain.ThemeLight) {
			return fmt.Errorf("%s: %w: want dark or light, got %q", key, domain.ErrInvalidInput, value)
		}
		stored = value
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Reset drops the stored value for key.
func (s *SettingsService) Reset(key string) error {
	if !slices.Contains(settingKeys, key) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}
	if err := s.configStore.Delete(key); err != nil {
		return fmt.Errorf("reset %s: %w", key, err)
	}
	return nil
}

// Keys lists the settable keys.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

// getSeconds reads a whole-second duration. Zero is honoured only when
// allowZero is set; missing, negative or mistyped values use the default.
func (s *SettingsService) getSeconds(key string, defaultVal time.Duration, allowZero bool) time.Duration {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	n := s.configStore.GetInt(key)
	if n < 0 || (n == 0 && !allowZero) {
		return defaultVal
	}
	return time.Duration(n) * time.Second
}

func validateEndpoint(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: want an absolute http(s) URL, got %q", domain.ErrInvalidInput, raw)
	}
	return nil
}
