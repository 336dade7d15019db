package services

import (
	"fmt"
	"sync"

	"github.com/editor-collab/collab-cli/internal/core/domain"
	"github.com/editor-collab/collab-cli/internal/core/ports/driven"
	"github.com/editor-collab/collab-cli/internal/core/ports/driving"
	"github.com/editor-collab/collab-cli/internal/logger"
)

// Ensure ThemeService implements the interface.
var _ driving.ThemeService = (*ThemeService)(nil)

// ThemeService owns the colour preference for every view in the process.
type ThemeService struct {
	mu          sync.RWMutex
	configStore driven.ConfigStore
	theme       domain.Theme
}

// NewThemeService loads the stored preference. Missing or unknown values
// read as dark.
func NewThemeService(configStore driven.ConfigStore) *ThemeService {
	theme := domain.ParseTheme(configStore.GetString(KeyUITheme))
	logger.Debug("Theme loaded: %s", theme)
	return &ThemeService{configStore: configStore, theme: theme}
}

// Current returns the active theme.
func (s *ThemeService) Current() domain.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Set persists theme and makes it active. On a persistence error the
// previous theme stays active.
func (s *ThemeService) Set(theme domain.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setLocked(theme)
}

// Toggle flips between dark and light.
func (s *ThemeService) Toggle() (domain.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.setLocked(s.theme.Toggled()); err != nil {
		return s.theme, err
	}
	return s.theme, nil
}

func (s *ThemeService) setLocked(theme domain.Theme) error {
	theme = domain.ParseTheme(string(theme))
	if err := s.configStore.Set(KeyUITheme, theme.String()); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	s.theme = theme
	logger.Debug("Theme set: %s", theme)
	return nil
}
