// Package tui provides an interactive terminal viewer for the site's pages.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/editor-collab/collab-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Content renders legal pages and the FAQ.
	Content driving.ContentService

	// Changelog builds the changelog page.
	Changelog driving.ChangelogService

	// Theme holds the persisted colour preference.
	Theme driving.ThemeService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	content driving.ContentService,
	changelog driving.ChangelogService,
	theme driving.ThemeService,
) *Ports {
	return &Ports{
		Content:   content,
		Changelog: changelog,
		Theme:     theme,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrNilPorts
	}
	if p.Content == nil {
		return ErrMissingContentService
	}
	if p.Changelog == nil {
		return ErrMissingChangelogService
	}
	if p.Theme == nil {
		return ErrMissingThemeService
	}
	return nil
}
