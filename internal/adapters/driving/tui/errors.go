package tui

import "errors"

// Ports validation errors.
var (
	ErrNilPorts                = errors.New("tui: ports are required")
	ErrMissingContentService   = errors.New("tui: content service is required")
	ErrMissingChangelogService = errors.New("tui: changelog service is required")
	ErrMissingThemeService     = errors.New("tui: theme service is required")
)
