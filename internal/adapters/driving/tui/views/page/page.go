// Package page provides the scrollable page viewer for the TUI.
package page

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/editor-collab/collab-cli/internal/adapters/driving/present"
	"github.com/editor-collab/collab-cli/internal/adapters/driving/tui/keymap"
	"github.com/editor-collab/collab-cli/internal/adapters/driving/tui/messages"
	"github.com/editor-collab/collab-cli/internal/adapters/driving/tui/styles"
	"github.com/editor-collab/collab-cli/internal/core/domain"
)

// View shows one page or the FAQ. The header and tab bar stay fixed while
// the body scrolls.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	viewport viewport.Model

	id  string
	pg  *domain.Page
	faq *domain.FAQ
	tab int

	width  int
	height int
	ready  bool
}

// NewView creates a new page view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.NewStyles(nil)
	}
	return &View{
		styles:   s,
		keymap:   keymap.DefaultKeyMap(),
		viewport: viewport.New(80, 20),
		width:    80,
		height:   24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetPage shows a page, starting on its first tab.
func (v *View) SetPage(id string, p *domain.Page) {
	v.id = id
	v.pg = p
	v.faq = nil
	v.tab = 0
	v.refresh()
	v.viewport.GotoTop()
}

// SetFAQ shows the FAQ.
func (v *View) SetFAQ(f *domain.FAQ) {
	v.id = messages.PageFAQ
	v.pg = nil
	v.faq = f
	v.tab = 0
	v.refresh()
	v.viewport.GotoTop()
}

// ID returns the identifier of the shown page.
func (v *View) ID() string {
	return v.id
}

// Tab returns the active tab index.
func (v *View) Tab() int {
	return v.tab
}

// Update handles messages for the page view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		key := msg.String()
		switch {
		case keymap.Matches(key, v.keymap.Back):
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}

		case keymap.Matches(key, v.keymap.Refresh):
			if v.id == "" {
				return v, nil
			}
			id := v.id
			return v, func() tea.Msg {
				return messages.PageRequested{ID: id, Refresh: true}
			}

		case keymap.Matches(key, v.keymap.NextTab):
			v.switchTab(1)
			return v, nil

		case keymap.Matches(key, v.keymap.PrevTab):
			v.switchTab(-1)
			return v, nil

		case keymap.Matches(key, v.keymap.Top):
			v.viewport.GotoTop()
			return v, nil

		case keymap.Matches(key, v.keymap.Bottom):
			v.viewport.GotoBottom()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// switchTab moves the active tab by delta, wrapping around.
func (v *View) switchTab(delta int) {
	if v.pg == nil || len(v.pg.Tabs) < 2 {
		return
	}
	n := len(v.pg.Tabs)
	v.tab = ((v.tab+delta)%n + n) % n
	v.refresh()
	v.viewport.GotoTop()
}

// View renders the page.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.pg == nil && v.faq == nil {
		return v.styles.Muted.Render("Nothing to show.")
	}
	header := v.header()
	if header == "" {
		return v.viewport.View()
	}
	return header + "\n\n" + v.viewport.View()
}

// header renders the fixed part above the body.
func (v *View) header() string {
	switch {
	case v.faq != nil:
		return v.styles.Title.Render("FAQ")
	case v.pg == nil:
		return ""
	}
	term := present.NewTerminal(v.styles, v.width)
	parts := []string{term.Header(v.pg, v.tab)}
	if bar := term.TabBar(v.pg, v.tab); bar != "" {
		parts = append(parts, bar)
	}
	return strings.Join(parts, "\n\n")
}

// refresh re-renders the body and resizes the viewport to the space left
// under the header.
func (v *View) refresh() {
	term := present.NewTerminal(v.styles, v.width)

	var body string
	switch {
	case v.faq != nil:
		body = term.FAQ(v.faq)
	case v.pg != nil:
		body = term.Blocks(v.pg.ActiveBlocks(v.tab))
	}

	height := v.height
	if h := v.header(); h != "" {
		height -= lipgloss.Height(h) + 2
	}
	if height < 1 {
		height = 1
	}
	v.viewport.Width = v.width
	v.viewport.Height = height
	v.viewport.SetContent(body)
}

// ScrollPercent reports how far the body is scrolled.
func (v *View) ScrollPercent() float64 {
	return v.viewport.ScrollPercent()
}

// SetStyles swaps the styles and re-renders, e.g. after a theme change.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
	v.refresh()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.refresh()
}
