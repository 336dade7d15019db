// Package styles provides colour themes and styling for rendered pages.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/editor-collab/collab-cli/internal/core/domain"
)

// Theme defines the colour palette for one UI theme.
type Theme struct {
	// Name is the preference this palette belongs to.
	Name domain.Theme

	// Primary is the main accent colour, used for top-level headings.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour, used for links.
	Secondary lipgloss.Color

	// Background is the background colour.
	Background lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// CodeBackground shades inline code.
	CodeBackground lipgloss.Color
}

// DarkTheme returns the default dark palette.
func DarkTheme() *Theme {
	return &Theme{
		Name:           domain.ThemeDark,
		Primary:        lipgloss.Color("#7C3AED"), // Purple
		Secondary:      lipgloss.Color("#06B6D4"), // Cyan
		Background:     lipgloss.Color("#1E1E2E"),
		Foreground:     lipgloss.Color("#CDD6F4"),
		Muted:          lipgloss.Color("#6C7086"),
		Success:        lipgloss.Color("#A6E3A1"),
		Warning:        lipgloss.Color("#F9E2AF"),
		Error:          lipgloss.Color("#F38BA8"),
		Border:         lipgloss.Color("#45475A"),
		CodeBackground: lipgloss.Color("#313244"),
	}
}

// LightTheme returns the light palette.
func LightTheme() *Theme {
	return &Theme{
		Name:           domain.ThemeLight,
		Primary:        lipgloss.Color("#6D28D9"),
		Secondary:      lipgloss.Color("#0E7490"),
		Background:     lipgloss.Color("#EFF1F5"),
		Foreground:     lipgloss.Color("#4C4F69"),
		Muted:          lipgloss.Color("#8C8FA1"),
		Success:        lipgloss.Color("#40A02B"),
		Warning:        lipgloss.Color("#DF8E1D"),
		Error:          lipgloss.Color("#D20F39"),
		Border:         lipgloss.Color("#BCC0CC"),
		CodeBackground: lipgloss.Color("#DCE0E8"),
	}
}

// ThemeFor returns the palette for a stored preference.
func ThemeFor(t domain.Theme) *Theme {
	if t == domain.ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for page titles.
	Title lipgloss.Style

	// Headings are indexed by level; index 0 is unused.
	Headings [4]lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Bold, Italic and Code style inline spans.
	Bold   lipgloss.Style
	Italic lipgloss.Style
	Code   lipgloss.Style

	// Link styles link labels.
	Link lipgloss.Style

	// Rule styles horizontal rules.
	Rule lipgloss.Style

	// Stat styles metadata chips.
	Stat lipgloss.Style

	// Tab and ActiveTab style the tab bar.
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style

	// Error style for failure states.
	Error lipgloss.Style

	// Success style for confirmations.
	Success lipgloss.Style

	// Warning style for warning messages.
	Warning lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DarkTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Headings: [4]lipgloss.Style{
			lipgloss.NewStyle(),
			lipgloss.NewStyle().Bold(true).Underline(true).Foreground(theme.Primary),
			lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary),
			lipgloss.NewStyle().Bold(true).Foreground(theme.Foreground),
		},

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold:   lipgloss.NewStyle().Bold(true),
		Italic: lipgloss.NewStyle().Italic(true),
		Code: lipgloss.NewStyle().
			Foreground(theme.Warning).
			Background(theme.CodeBackground),

		Link: lipgloss.NewStyle().
			Underline(true).
			Foreground(theme.Secondary),

		Rule: lipgloss.NewStyle().
			Foreground(theme.Border),

		Stat: lipgloss.NewStyle().
			Foreground(theme.Muted).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Tab: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Background).
			Background(theme.Primary).
			Padding(0, 1),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.CodeBackground).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// ForTheme returns styles for a stored preference.
func ForTheme(t domain.Theme) *Styles {
	return NewStyles(ThemeFor(t))
}

// Heading returns the style for a heading level, clamped to 1..3.
func (s *Styles) Heading(level int) lipgloss.Style {
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	return s.Headings[level]
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
