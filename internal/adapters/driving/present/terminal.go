package present

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/editor-collab/collab-cli/internal/adapters/driving/tui/styles"
	"github.com/editor-collab/collab-cli/internal/core/domain"
)

// Terminal width bounds.
const (
	DefaultWidth = 80
	minWidth     = 20
)

// TerminalWidth reports the column count of f, or DefaultWidth when f is not
// a terminal.
func TerminalWidth(f *os.File) int {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// Terminal renders content as styled, wrapped terminal text.
type Terminal struct {
	styles *styles.Styles
	width  int
}

// NewTerminal creates a terminal presenter. Nil styles use the dark theme.
func NewTerminal(s *styles.Styles, width int) *Terminal {
	if s == nil {
		s = styles.NewStyles(nil)
	}
	if width < minWidth {
		width = minWidth
	}
	return &Terminal{styles: s, width: width}
}

// Width returns the wrap width.
func (t *Terminal) Width() int {
	return t.width
}

// Spans renders inline spans on one logical line.
func (t *Terminal) Spans(spans []domain.Span) string {
	return t.styledSpans(spans, t.styles.Normal)
}

// styledSpans renders spans with base as the style of plain text. Bold and
// italic extend base; code and links use their own styles.
func (t *Terminal) styledSpans(spans []domain.Span, base lipgloss.Style) string {
	var b strings.Builder
	t.writeSpans(&b, spans, base)
	return b.String()
}

func (t *Terminal) writeSpans(b *strings.Builder, spans []domain.Span, base lipgloss.Style) {
	for i := range spans {
		s := &spans[i]
		switch s.Kind {
		case domain.SpanBold:
			t.writeSpans(b, s.Children, base.Bold(true))
		case domain.SpanItalic:
			t.writeSpans(b, s.Children, base.Italic(true))
		case domain.SpanCode:
			b.WriteString(t.styles.Code.Render(s.Text))
		case domain.SpanLink:
			t.writeLink(b, s, base)
		default:
			b.WriteString(base.Render(s.Text))
		}
	}
}

func (t *Terminal) writeLink(b *strings.Builder, s *domain.Span, base lipgloss.Style) {
	if s.Link == nil || s.Link.Kind == domain.LinkReference {
		b.WriteString(base.Render(s.Text))
		return
	}
	b.WriteString(t.styles.Link.Render(s.Text))
	target := s.Link.Target
	if s.Link.Kind == domain.LinkAnchor {
		target = "#" + s.Link.Anchor
	}
	b.WriteString(t.styles.Muted.Render(" (" + target + ")"))
}

// Blocks renders blocks separated by blank lines.
func (t *Terminal) Blocks(blocks []domain.Block) string {
	parts := make([]string, 0, len(blocks))
	for i := range blocks {
		parts = append(parts, t.block(&blocks[i]))
	}
	return strings.Join(parts, "\n\n")
}

func (t *Terminal) block(blk *domain.Block) string {
	switch blk.Kind {
	case domain.BlockHeading:
		return wrap(t.styledSpans(blk.Text, t.styles.Heading(blk.Level)), t.width)
	case domain.BlockParagraph:
		return wrap(t.Spans(blk.Text), t.width)
	case domain.BlockRule:
		return t.styles.Rule.Render(strings.Repeat("─", t.width))
	case domain.BlockCentered:
		text := t.Spans(blk.Text)
		if blk.Inner == domain.BlockHeading {
			text = t.styledSpans(blk.Text, t.styles.Heading(blk.Level))
		}
		return center(wrap(text, t.width), t.width)
	case domain.BlockList:
		return t.list(blk.Items)
	case domain.BlockImage:
		label := blk.Alt
		if label == "" {
			label = "image"
		}
		return t.styles.Muted.Render(fmt.Sprintf("[%s] (%s)", label, blk.Src))
	}
	return ""
}

func (t *Terminal) list(items []domain.ListItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, hang("• ", wrap(t.Spans(item.Text), t.width-2)))
		for _, c := range item.Children {
			lines = append(lines, hang("    ◦ ", wrap(t.Spans(c), t.width-6)))
		}
	}
	return strings.Join(lines, "\n")
}

// wrap breaks styled text at word boundaries to fit width columns.
func wrap(s string, width int) string {
	return ansi.Wrap(s, width, "")
}

// center left-pads each line of s to sit in the middle of width columns.
func center(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if pad := (width - ansi.StringWidth(line)) / 2; pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

// hang prefixes the first line of s with bullet and indents the rest to match.
func hang(bullet, s string) string {
	pad := strings.Repeat(" ", ansi.StringWidth(bullet))
	lines := strings.Split(s, "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = bullet + lines[i]
			continue
		}
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}

// Header renders the title, back link, updated date and stats of a page.
func (t *Terminal) Header(p *domain.Page, tab int) string {
	var b strings.Builder
	if p.BackHref != "" {
		b.WriteString(t.styles.Muted.Render(fmt.Sprintf("← %s (%s)", p.BackText(), p.BackHref)))
		b.WriteString("\n")
	}
	b.WriteString(t.styles.Title.Render(p.Title))
	if p.UpdatedAt != "" {
		b.WriteString("\n")
		b.WriteString(t.styles.Muted.Render("Last updated: " + p.UpdatedAt))
	}
	if stats := p.ActiveStats(tab); len(stats) > 0 {
		chips := make([]string, 0, len(stats))
		for _, s := range stats {
			chips = append(chips, t.styles.Stat.Render(s.Value))
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chips...))
	}
	return b.String()
}

// TabBar renders the tab labels with the active one highlighted.
func (t *Terminal) TabBar(p *domain.Page, active int) string {
	if len(p.Tabs) == 0 {
		return ""
	}
	labels := make([]string, 0, len(p.Tabs))
	for i, tab := range p.Tabs {
		if i == active {
			labels = append(labels, t.styles.ActiveTab.Render(tab.Label))
			continue
		}
		labels = append(labels, t.styles.Tab.Render(tab.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

// Page renders a page with the given tab active.
func (t *Terminal) Page(p *domain.Page, tab int) string {
	parts := []string{t.Header(p, tab)}
	if bar := t.TabBar(p, tab); bar != "" {
		parts = append(parts, bar)
	}
	if blocks := p.ActiveBlocks(tab); len(blocks) > 0 {
		parts = append(parts, t.Blocks(blocks))
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// AllTabs renders a page with every tab expanded in order.
func (t *Terminal) AllTabs(p *domain.Page) string {
	if len(p.Tabs) == 0 {
		return t.Page(p, 0)
	}
	parts := []string{t.Header(p, -1)}
	for i, tab := range p.Tabs {
		parts = append(parts, t.styles.Heading(1).Render(tab.Label))
		if stats := p.ActiveStats(i); len(stats) > 0 {
			values := make([]string, 0, len(stats))
			for _, s := range stats {
				values = append(values, s.Value)
			}
			parts = append(parts, t.styles.Muted.Render(strings.Join(values, " · ")))
		}
		parts = append(parts, t.Blocks(tab.Blocks))
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// FAQ renders every section and question.
func (t *Terminal) FAQ(f *domain.FAQ) string {
	parts := make([]string, 0, len(f.Sections))
	for _, sec := range f.Sections {
		entries := []string{t.styles.Title.Render(sec.Label)}
		for i := range sec.Entries {
			entries = append(entries, t.FAQEntry(&sec.Entries[i]))
		}
		parts = append(parts, strings.Join(entries, "\n\n"))
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// FAQEntry renders one question with its anchor and answer.
func (t *Terminal) FAQEntry(e *domain.FAQEntry) string {
	var b strings.Builder
	b.WriteString(t.styles.Heading(2).Render(e.Question))
	b.WriteString(t.styles.Muted.Render("  #" + e.Anchor))
	if len(e.Answer) > 0 {
		b.WriteString("\n")
		b.WriteString(t.Blocks(e.Answer))
	}
	if a := e.Attachment; a != nil {
		b.WriteString("\n")
		b.WriteString(t.styles.Muted.Render(fmt.Sprintf("[%s] %s", a.Type, a.Src)))
	}
	return b.String()
}

// Checkout renders the checkout redirect page state.
func (t *Terminal) Checkout(r *domain.CheckoutResult) string {
	var b strings.Builder

	if !r.OK() {
		f := r.Failure
		if f == nil {
			f = domain.NewCheckoutFailure(domain.FailureUnknown, 0)
		}
		b.WriteString(t.styles.Error.Bold(true).Render(f.Title))
		b.WriteString("\n\n")
		b.WriteString(wrap(f.Message, t.width))
		b.WriteString("\n\n")
		b.WriteString(t.styles.Link.Render("Contact support"))
		b.WriteString(t.styles.Muted.Render(" (" + domain.SupportHref + ")"))
		b.WriteString("\n")
		b.WriteString(t.styles.Muted.Render("← Back to Home (" + domain.HomeHref + ")"))
		b.WriteString("\n")
		return b.String()
	}

	p := r.Purchase
	b.WriteString(t.styles.Success.Bold(true).Render(domain.PurchaseHeadline))
	b.WriteString("\n\n")
	b.WriteString(wrap(p.Summary(), t.width))
	b.WriteString("\n\n")
	b.WriteString(t.styles.Heading(3).Render(p.KeysLabel()))
	for _, k := range p.IndividualKeys {
		b.WriteString("\n  ")
		b.WriteString(t.styles.Code.Render(k))
	}
	b.WriteString("\n\n")
	b.WriteString(t.styles.Heading(3).Render("Next steps"))
	for i, step := range domain.NextSteps {
		b.WriteString("\n")
		b.WriteString(hang(fmt.Sprintf("%d. ", i+1), wrap(step, t.width-3)))
	}
	b.WriteString("\n\n")
	b.WriteString(t.styles.Muted.Render("Need help? "))
	b.WriteString(t.styles.Link.Render("FAQ"))
	b.WriteString(t.styles.Muted.Render(" (" + domain.FAQHref + ") · "))
	b.WriteString(t.styles.Link.Render("Contact us"))
	b.WriteString(t.styles.Muted.Render(" (" + domain.SupportHref + ")"))
	b.WriteString("\n")
	return b.String()
}
