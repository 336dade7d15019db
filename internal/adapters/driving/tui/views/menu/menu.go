// Package menu provides the page picker view for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/editor-collab/collab-cli/internal/adapters/driving/tui/keymap"
	"github.com/editor-collab/collab-cli/internal/adapters/driving/tui/messages"
	"github.com/editor-collab/collab-cli/internal/adapters/driving/tui/styles"
)

// Item represents a single menu option.
type Item struct {
	Label  string
	PageID string
	Quit   bool // If true, selecting this item quits the app
}

// DefaultItems returns the menu for the given legal pages followed by the
// FAQ, the changelog and Quit. titles maps a legal page name to its label;
// names without a title use the name itself.
func DefaultItems(legal []string, titles map[string]string) []Item {
	items := make([]Item, 0, len(legal)+3)
	for _, name := range legal {
		label := titles[name]
		if label == "" {
			label = name
		}
		items = append(items, Item{Label: label, PageID: name})
	}
	return append(items,
		Item{Label: "FAQ", PageID: messages.PageFAQ},
		Item{Label: "Changelog", PageID: messages.PageChangelog},
		Item{Label: "Quit", Quit: true},
	)
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles, items []Item) *View {
	if s == nil {
		s = styles.NewStyles(nil)
	}
	if len(items) == 0 {
		items = DefaultItems(nil, nil)
	}

	return &View{
		styles:   s,
		keymap:   keymap.DefaultKeyMap(),
		items:    items,
		selected: 0,
		width:    80,
		height:   24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		key := msg.String()
		switch {
		case keymap.Matches(key, v.keymap.Up):
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case keymap.Matches(key, v.keymap.Down):
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case keymap.Matches(key, v.keymap.Top):
			v.selected = 0
			return v, nil

		case keymap.Matches(key, v.keymap.Bottom):
			v.selected = len(v.items) - 1
			return v, nil

		case keymap.Matches(key, v.keymap.Select):
			item := v.items[v.selected]
			if item.Quit {
				return v, tea.Quit
			}
			return v, func() tea.Msg {
				return messages.PageRequested{ID: item.PageID}
			}
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Editor Collab"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Policies, FAQ and changelog"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		style := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			style = v.styles.Title
		}
		b.WriteString(cursor + style.Render(item.Label))
		b.WriteString("\n")
	}

	return b.String()
}

// Selected returns the highlighted item.
func (v *View) Selected() Item {
	return v.items[v.selected]
}

// Items returns the menu items.
func (v *View) Items() []Item {
	return v.items
}

// Styles returns the styles in use.
func (v *View) Styles() *styles.Styles {
	return v.styles
}

// SetStyles swaps the styles, e.g. after a theme change.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}
