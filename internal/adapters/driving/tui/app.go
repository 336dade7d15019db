package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/editor-collab/collab-cli/internal/adapters/driving/tui/components/status"
	"github.com/editor-collab/collab-cli/internal/adapters/driving/tui/keymap"
	"github.com/editor-collab/collab-cli/internal/adapters/driving/tui/messages"
	"github.com/editor-collab/collab-cli/internal/adapters/driving/tui/styles"
	"github.com/editor-collab/collab-cli/internal/adapters/driving/tui/views/menu"
	"github.com/editor-collab/collab-cli/internal/adapters/driving/tui/views/page"
	"github.com/editor-collab/collab-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles for the current theme.
	styles *styles.Styles

	keymap *keymap.KeyMap

	// menuView is the page picker.
	menuView *menu.View

	// pageView shows the loaded page.
	pageView *page.View

	// statusBar sits under every view.
	statusBar *status.Bar

	// initialPage is loaded on start when set.
	initialPage string

	// currentView tracks which view is active.
	currentView messages.ViewType

	// previousView is restored when help is closed.
	previousView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.ForTheme(ports.Theme.Current())
	km := keymap.DefaultKeyMap()

	names := ports.Content.LegalNames()
	titles := make(map[string]string, len(names))
	for _, name := range names {
		if p, err := ports.Content.LegalPage(name); err == nil {
			titles[name] = p.Title
		}
	}

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		menuView:    menu.NewView(s, menu.DefaultItems(names, titles)),
		pageView:    page.NewView(s),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithInitialPage opens the given page on start instead of the menu.
func (a *App) WithInitialPage(id string) *App {
	a.initialPage = id
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("Editor Collab"),
	}
	if a.initialPage != "" {
		id := a.initialPage
		cmds = append(cmds, func() tea.Msg {
			return messages.PageRequested{ID: id}
		})
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		k := msg.String()
		switch {
		case keymap.Matches(k, a.keymap.Quit):
			return a, tea.Quit

		case keymap.Matches(k, a.keymap.Theme):
			return a, func() tea.Msg { return messages.ThemeToggleRequested{} }

		case keymap.Matches(k, a.keymap.Help):
			if a.currentView == messages.ViewHelp {
				a.setView(a.previousView)
				return a, nil
			}
			a.previousView = a.currentView
			a.setView(messages.ViewHelp)
			return a, nil
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewPage:
			a.pageView, cmd = a.pageView.Update(msg)
		case messages.ViewHelp:
			if keymap.Matches(k, a.keymap.Back) {
				a.setView(a.previousView)
			}
		}
		return a, cmd

	case messages.PageRequested:
		a.statusBar.SetState(status.StateLoading)
		a.statusBar.SetMessage(fmt.Sprintf("Loading %s...", msg.ID))
		return a, a.loadPage(msg.ID, msg.Refresh)

	case messages.PageLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.err = nil
		title := msg.ID
		switch {
		case msg.FAQ != nil:
			a.pageView.SetFAQ(msg.FAQ)
			title = "FAQ"
		case msg.Page != nil:
			a.pageView.SetPage(msg.ID, msg.Page)
			title = msg.Page.Title
		}
		a.setView(messages.ViewPage)
		a.statusBar.SetState(status.StateReady)
		a.statusBar.SetMessage(title)
		return a, nil

	case messages.ViewChanged:
		a.setView(msg.View)
		return a, nil

	case messages.ThemeToggleRequested:
		return a, a.toggleTheme()

	case messages.ThemeChanged:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(fmt.Sprintf("saving theme: %v", msg.Err))
		}
		a.applyTheme(msg.Theme)
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Mouse wheel and other messages drive the page viewport.
	if a.currentView == messages.ViewPage {
		a.pageView, cmd = a.pageView.Update(msg)
	}
	return a, cmd
}

// setView switches the active view and the status bar hints with it.
func (a *App) setView(v messages.ViewType) {
	a.currentView = v
	switch v {
	case messages.ViewPage:
		a.statusBar.SetHints(a.keymap.PageHelp())
	case messages.ViewHelp:
		a.statusBar.SetHints([]key.Binding{a.keymap.Back, a.keymap.Quit})
	default:
		a.statusBar.SetHints(a.keymap.ShortHelp())
		if a.err == nil {
			a.statusBar.Clear()
		}
	}
}

// loadPage returns a command that loads a page by id.
func (a *App) loadPage(id string, refresh bool) tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		switch id {
		case messages.PageFAQ:
			faq, err := a.ports.Content.FAQ()
			return messages.PageLoaded{ID: id, FAQ: faq, Err: err}

		case messages.PageChangelog:
			var p *domain.Page
			var err error
			if refresh {
				p, err = a.ports.Changelog.Refresh(ctx)
			} else {
				p, err = a.ports.Changelog.Page(ctx)
			}
			return messages.PageLoaded{ID: id, Page: p, Err: err}

		default:
			p, err := a.ports.Content.LegalPage(id)
			return messages.PageLoaded{ID: id, Page: p, Err: err}
		}
	}
}

// toggleTheme returns a command that flips and persists the theme.
func (a *App) toggleTheme() tea.Cmd {
	return func() tea.Msg {
		theme, err := a.ports.Theme.Toggle()
		return messages.ThemeChanged{Theme: theme, Err: err}
	}
}

// applyTheme restyles every view.
func (a *App) applyTheme(t domain.Theme) {
	a.styles = styles.ForTheme(t)
	a.menuView.SetStyles(a.styles)
	a.pageView.SetStyles(a.styles)
	a.statusBar.SetStyles(a.styles)
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewPage:
		body = a.pageView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.menuView.View()
	}

	// Keep the status bar on the last row.
	if gap := a.height - 1 - strings.Count(body, "\n") - 1; gap > 0 {
		body += strings.Repeat("\n", gap)
	}
	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the help view from the key map.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n")
	for _, group := range a.keymap.FullHelp() {
		b.WriteString("\n")
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-14s %s\n", h.Key, a.styles.Muted.Render(h.Desc)))
		}
	}
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("[esc] back"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Styles returns the styles for the current theme.
func (a *App) Styles() *styles.Styles {
	return a.styles
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions. One row is kept for the
// status bar.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height-1)
	a.pageView.SetDimensions(width, height-1)
	a.statusBar.SetWidth(width)
}
