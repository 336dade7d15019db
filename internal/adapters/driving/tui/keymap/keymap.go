// Package keymap holds the key bindings shared by the menu and page views.
package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap groups every binding the TUI reacts to.
type KeyMap struct {
	Quit, Help, Back key.Binding

	// List and scroll movement.
	Up, Down, Top, Bottom key.Binding
	Select                key.Binding

	// Page-only actions.
	NextTab, PrevTab key.Binding
	Refresh          key.Binding

	Theme key.Binding
}

func bind(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

// DefaultKeyMap returns vim-style bindings alongside the arrow keys.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: bind("q", "quit", "q", "ctrl+c"),
		Help: bind("?", "help", "?"),
		Back: bind("esc", "back", "esc"),

		Up:     bind("↑/k", "up", "up", "k"),
		Down:   bind("↓/j", "down", "down", "j"),
		Top:    bind("g", "top", "home", "g"),
		Bottom: bind("G", "bottom", "end", "G"),
		Select: bind("enter", "open", "enter"),

		NextTab: bind("tab/→", "next tab", "tab", "right", "l"),
		PrevTab: bind("shift+tab/←", "prev tab", "shift+tab", "left", "h"),
		Refresh: bind("r", "refresh", "r"),

		Theme: bind("t", "theme", "t"),
	}
}

// ShortHelp is shown under the menu.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Theme, k.Help, k.Quit}
}

// PageHelp is shown under an open page.
func (k *KeyMap) PageHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Refresh, k.Theme, k.Back}
}

// FullHelp lists every binding in columns for the help overlay.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Select, k.NextTab, k.PrevTab, k.Refresh},
		{k.Theme, k.Back, k.Help, k.Quit},
	}
}

// Matches reports whether keyStr triggers an enabled binding.
func Matches(keyStr string, binding key.Binding) bool {
	return binding.Enabled() && slices.Contains(binding.Keys(), keyStr)
}
