package status

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/editor-collab/collab-cli/internal/adapters/driving/tui/keymap"
	"github.com/editor-collab/collab-cli/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.NewStyles(nil), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
	assert.Nil(t, bar.Init())
}

func TestStatusBar_UpdateIsPassive(t *testing.T) {
	bar := NewBar(nil, nil)

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_View_States(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		message string
		want    string
	}{
		{"ready", StateReady, "", "Ready"},
		{"ready with message", StateReady, "Changelog", "Changelog"},
		{"loading", StateLoading, "", "Loading..."},
		{"loading with message", StateLoading, "Loading faq...", "Loading faq..."},
		{"error", StateError, "", "Error"},
		{"error with message", StateError, "mod registry unavailable", "Error: mod registry unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			bar.SetState(tt.state)
			bar.SetMessage(tt.message)

			assert.Contains(t, ansi.Strip(bar.View()), tt.want)
		})
	}
}

func TestStatusBar_View_ShowsHints(t *testing.T) {
	km := keymap.DefaultKeyMap()
	bar := NewBar(nil, km)
	bar.SetWidth(120)

	bar.SetHints(km.PageHelp())

	view := ansi.Strip(bar.View())
	assert.Contains(t, view, "r: refresh")
	assert.Contains(t, view, "esc: back")
}

func TestStatusBar_View_TruncatesLongMessages(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(60)
	bar.SetMessage(strings.Repeat("very long message ", 10))

	view := bar.View()

	assert.Equal(t, 60, lipgloss.Width(view))
	assert.Contains(t, ansi.Strip(view), "…")
	assert.Contains(t, ansi.Strip(view), "q: quit")
}

func TestStatusBar_SetStyles(t *testing.T) {
	bar := NewBar(nil, nil)
	light := styles.ForTheme("light")

	bar.SetStyles(light)

	assert.Equal(t, light, bar.styles)
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
}
