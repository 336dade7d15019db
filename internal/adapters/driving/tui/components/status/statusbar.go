// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/editor-collab/collab-cli/internal/adapters/driving/tui/keymap"
	"github.com/editor-collab/collab-cli/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateError   State = "error"
)

// Bar displays application status and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	hints   []key.Binding
	state   State
	message string
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.NewStyles(nil)
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		hints:  km.ShortHelp(),
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar. The message is truncated so the hints
// always fit.
func (s *Bar) View() string {
	right := s.renderRight()
	rightLen := lipgloss.Width(right)

	// StatusBar padding takes one column on each side.
	room := s.width - rightLen - 3
	left := s.renderLeft(room)
	padding := s.width - lipgloss.Width(left) - rightLen - 2
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state text in at most room columns.
func (s *Bar) renderLeft(room int) string {
	var text string
	style := s.styles.Muted
	switch s.state {
	case StateLoading:
		text = "Loading..."
		if s.message != "" {
			text = s.message
		}
	case StateError:
		style = s.styles.Error
		text = "Error"
		if s.message != "" {
			text = fmt.Sprintf("Error: %s", s.message)
		}
	default:
		text = "Ready"
		if s.message != "" {
			text = s.message
			style = s.styles.Normal
		}
	}
	if room < 1 {
		return ""
	}
	return style.Render(runewidth.Truncate(text, room, "…"))
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	hints := make([]string, 0, len(s.hints))
	for _, b := range s.hints {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetHints sets the keybindings shown on the right.
func (s *Bar) SetHints(bindings []key.Binding) {
	s.hints = bindings
}

// SetStyles swaps the styles, e.g. after a theme change.
func (s *Bar) SetStyles(st *styles.Styles) {
	s.styles = st
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
