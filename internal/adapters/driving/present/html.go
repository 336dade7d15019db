package present

import (
	"fmt"
	"html"
	"strings"

	"github.com/editor-collab/collab-cli/internal/core/domain"
)

// HTMLSpans renders inline spans.
func HTMLSpans(spans []domain.Span) string {
	var b strings.Builder
	writeHTMLSpans(&b, spans)
	return b.String()
}

func writeHTMLSpans(b *strings.Builder, spans []domain.Span) {
	for i := range spans {
		s := &spans[i]
		switch s.Kind {
		case domain.SpanBold:
			b.WriteString("<strong>")
			writeHTMLSpans(b, s.Children)
			b.WriteString("</strong>")
		case domain.SpanItalic:
			b.WriteString("<em>")
			writeHTMLSpans(b, s.Children)
			b.WriteString("</em>")
		case domain.SpanCode:
			b.WriteString("<code>")
			b.WriteString(html.EscapeString(s.Text))
			b.WriteString("</code>")
		case domain.SpanLink:
			writeHTMLLink(b, s)
		default:
			b.WriteString(html.EscapeString(s.Text))
		}
	}
}

func writeHTMLLink(b *strings.Builder, s *domain.Span) {
	label := html.EscapeString(s.Text)
	if s.Link == nil {
		b.WriteString(label)
		return
	}
	switch s.Link.Kind {
	case domain.LinkExternal:
		fmt.Fprintf(b, `<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`,
			html.EscapeString(s.Link.Target), label)
	case domain.LinkInternal:
		fmt.Fprintf(b, `<a href="%s">%s</a>`, html.EscapeString(s.Link.Target), label)
	case domain.LinkAnchor:
		fmt.Fprintf(b, `<a href="#%s">%s</a>`, html.EscapeString(s.Link.Anchor), label)
	default:
		b.WriteString(label)
	}
}

// HTMLBlocks renders blocks as an HTML fragment, one element per line.
func HTMLBlocks(blocks []domain.Block) string {
	var b strings.Builder
	writeHTMLBlocks(&b, blocks)
	return b.String()
}

func writeHTMLBlocks(b *strings.Builder, blocks []domain.Block) {
	for i := range blocks {
		writeHTMLBlock(b, &blocks[i])
		b.WriteByte('\n')
	}
}

func writeHTMLBlock(b *strings.Builder, blk *domain.Block) {
	switch blk.Kind {
	case domain.BlockHeading:
		fmt.Fprintf(b, "<h%d>%s</h%d>", blk.Level, HTMLSpans(blk.Text), blk.Level)
	case domain.BlockParagraph:
		fmt.Fprintf(b, "<p>%s</p>", HTMLSpans(blk.Text))
	case domain.BlockRule:
		b.WriteString("<hr>")
	case domain.BlockCentered:
		if blk.Inner == domain.BlockHeading {
			fmt.Fprintf(b, `<h%d class="centered">%s</h%d>`, blk.Level, HTMLSpans(blk.Text), blk.Level)
			return
		}
		fmt.Fprintf(b, `<p class="centered">%s</p>`, HTMLSpans(blk.Text))
	case domain.BlockList:
		b.WriteString("<ul>")
		for _, item := range blk.Items {
			b.WriteString("<li>")
			writeHTMLSpans(b, item.Text)
			if len(item.Children) > 0 {
				b.WriteString("<ul>")
				for _, child := range item.Children {
					b.WriteString("<li>")
					writeHTMLSpans(b, child)
					b.WriteString("</li>")
				}
				b.WriteString("</ul>")
			}
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
	case domain.BlockImage:
		fmt.Fprintf(b, `<img src="%s" alt="%s">`, html.EscapeString(blk.Src), html.EscapeString(blk.Alt))
	}
}

// HTMLPage renders an informative page. Every tab is emitted; tabs after the
// first are hidden.
func HTMLPage(p *domain.Page) string {
	var b strings.Builder
	b.WriteString("<article class=\"informative\">\n")
	if p.BackHref != "" {
		fmt.Fprintf(&b, "<a class=\"back\" href=\"%s\">%s</a>\n",
			html.EscapeString(p.BackHref), html.EscapeString(p.BackText()))
	}
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(p.Title))
	if p.UpdatedAt != "" {
		fmt.Fprintf(&b, "<p class=\"updated\">Last updated: %s</p>\n", html.EscapeString(p.UpdatedAt))
	}
	writeHTMLStats(&b, p.Stats)

	if len(p.Tabs) == 0 {
		writeHTMLBlocks(&b, p.Blocks)
		b.WriteString("</article>\n")
		return b.String()
	}

	b.WriteString("<nav class=\"tabs\">")
	for i, tab := range p.Tabs {
		class := "tab"
		if i == 0 {
			class = "tab active"
		}
		fmt.Fprintf(&b, `<a class="%s" href="#tab-%d">%s</a>`, class, i, html.EscapeString(tab.Label))
	}
	b.WriteString("</nav>\n")
	for i, tab := range p.Tabs {
		hidden := ""
		if i > 0 {
			hidden = " hidden"
		}
		fmt.Fprintf(&b, "<section id=\"tab-%d\"%s>\n", i, hidden)
		writeHTMLStats(&b, tab.Stats)
		writeHTMLBlocks(&b, tab.Blocks)
		b.WriteString("</section>\n")
	}
	b.WriteString("</article>\n")
	return b.String()
}

func writeHTMLStats(b *strings.Builder, stats []domain.Stat) {
	if len(stats) == 0 {
		return
	}
	b.WriteString("<ul class=\"stats\">")
	for _, s := range stats {
		fmt.Fprintf(b, `<li data-icon="%s">%s</li>`, html.EscapeString(s.Icon), html.EscapeString(s.Value))
	}
	b.WriteString("</ul>\n")
}

// HTMLFAQ renders the FAQ with one anchored entry per question.
func HTMLFAQ(f *domain.FAQ) string {
	var b strings.Builder
	b.WriteString("<article class=\"faq\">\n")
	for _, sec := range f.Sections {
		fmt.Fprintf(&b, "<section data-accent=\"%s\">\n<h2>%s</h2>\n",
			html.EscapeString(sec.Accent), html.EscapeString(sec.Label))
		for i := range sec.Entries {
			writeHTMLEntry(&b, &sec.Entries[i])
		}
		b.WriteString("</section>\n")
	}
	b.WriteString("</article>\n")
	return b.String()
}

// HTMLFAQEntry renders a single question.
func HTMLFAQEntry(e *domain.FAQEntry) string {
	var b strings.Builder
	writeHTMLEntry(&b, e)
	return b.String()
}

func writeHTMLEntry(b *strings.Builder, e *domain.FAQEntry) {
	fmt.Fprintf(b, "<details id=\"%s\">\n<summary>%s</summary>\n",
		html.EscapeString(e.Anchor), html.EscapeString(e.Question))
	writeHTMLBlocks(b, e.Answer)
	if a := e.Attachment; a != nil {
		src := html.EscapeString(a.Src)
		switch a.Type {
		case domain.AttachmentImage:
			fmt.Fprintf(b, "<img src=\"%s\" alt=\"\">\n", src)
		case domain.AttachmentVideo:
			fmt.Fprintf(b, "<video src=\"%s\" controls></video>\n", src)
		case domain.AttachmentYouTube:
			fmt.Fprintf(b, "<iframe src=\"%s\" allowfullscreen></iframe>\n", src)
		}
	}
	b.WriteString("</details>\n")
}

// HTMLCheckout renders the checkout redirect page state.
func HTMLCheckout(r *domain.CheckoutResult) string {
	var b strings.Builder
	if !r.OK() {
		f := r.Failure
		if f == nil {
			f = domain.NewCheckoutFailure(domain.FailureUnknown, 0)
		}
		fmt.Fprintf(&b, "<article class=\"checkout failure\" data-kind=\"%s\">\n", f.Kind)
		fmt.Fprintf(&b, "<h1>%s</h1>\n<p>%s</p>\n", html.EscapeString(f.Title), html.EscapeString(f.Message))
		fmt.Fprintf(&b, "<a href=\"%s\">Contact support</a>\n", domain.SupportHref)
		fmt.Fprintf(&b, "<a href=\"%s\">Back to Home</a>\n", domain.HomeHref)
		b.WriteString("</article>\n")
		return b.String()
	}

	p := r.Purchase
	b.WriteString("<article class=\"checkout success\">\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n<p>%s</p>\n", domain.PurchaseHeadline, html.EscapeString(p.Summary()))
	fmt.Fprintf(&b, "<h2>%s</h2>\n<ul class=\"keys\">", html.EscapeString(p.KeysLabel()))
	for _, k := range p.IndividualKeys {
		fmt.Fprintf(&b, "<li><code>%s</code></li>", html.EscapeString(k))
	}
	b.WriteString("</ul>\n<h2>Next steps</h2>\n<ol>")
	for _, step := range domain.NextSteps {
		fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(step))
	}
	b.WriteString("</ol>\n")
	fmt.Fprintf(&b, "<p>Need help? <a href=\"%s\">FAQ</a> <a href=\"%s\">Contact us</a></p>\n",
		domain.FAQHref, domain.SupportHref)
	b.WriteString("</article>\n")
	return b.String()
}
