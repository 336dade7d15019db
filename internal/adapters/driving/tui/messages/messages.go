// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/editor-collab/collab-cli/internal/core/domain"
)

// Page identifiers accepted by the viewer.
const (
	PageFAQ       = "faq"
	PageChangelog = "changelog"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the page picker.
	ViewMenu ViewType = iota
	// ViewPage shows one rendered page.
	ViewPage
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewPage:
		return "page"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// PageRequested asks the app to load a page by id: a legal document name,
// PageFAQ or PageChangelog.
type PageRequested struct {
	ID string

	// Refresh bypasses cached data where the page has any.
	Refresh bool
}

// PageLoaded carries a loaded page back to the model.
// Exactly one of Page and FAQ is set when Err is nil.
type PageLoaded struct {
	ID   string
	Page *domain.Page
	FAQ  *domain.FAQ
	Err  error
}

// ThemeToggleRequested asks the app to flip and persist the theme.
type ThemeToggleRequested struct{}

// ThemeChanged reports the theme after a toggle attempt.
type ThemeChanged struct {
	Theme domain.Theme
	Err   error
}

// ErrorOccurred is sent when an error needs to be displayed.
type ErrorOccurred struct {
	Err error
}

// Quit is sent to exit the application.
type Quit struct{}
