package richtext

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/editor-collab/collab-cli/internal/core/domain"
)

// childIndent is the leading-space count at which a list line becomes a
// child of the preceding top-level item.
const childIndent = 3

// ruleLine is the exact text of a horizontal rule.
const ruleLine = "---"

var (
	centeredLine  = regexp.MustCompile(`^->\s?.+\s?<-$`)
	centeredOpen  = regexp.MustCompile(`^->\s?`)
	centeredClose = regexp.MustCompile(`\s?<-$`)
	imageLine     = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]+)\)$`)
	listLine      = regexp.MustCompile(`^(\s*)-\s(.*)$`)
)

// listEntry is a buffered list line.
type listEntry struct {
	indent int
	text   string
}

// blockParser holds the state of one Parse call.
type blockParser struct {
	profile   domain.Profile
	blocks    []domain.Block
	paragraph []string
	list      []listEntry
}

// Parse converts a document into blocks.
//
// Parse is total: unrecognised or malformed markers degrade to paragraph
// text. Blocks appear in the order of the lines that produced them.
func Parse(doc string, profile domain.Profile) []domain.Block {
	p := &blockParser{
		profile: profile,
		blocks:  make([]domain.Block, 0),
	}
	for _, raw := range strings.Split(doc, "\n") {
		p.line(strings.TrimRightFunc(raw, unicode.IsSpace))
	}
	p.flush()
	return p.blocks
}

func (p *blockParser) line(line string) {
	if level, text, ok := heading(line); ok {
		p.flush()
		p.emit(domain.Block{
			Kind:  domain.BlockHeading,
			Level: level,
			Text:  ParseInline(text, p.profile),
		})
		return
	}

	if centeredLine.MatchString(line) {
		p.flush()
		p.emit(p.centered(line))
		return
	}

	if line == ruleLine {
		p.flush()
		p.emit(domain.Block{Kind: domain.BlockRule})
		return
	}

	if p.profile.SupportsImages {
		if m := imageLine.FindStringSubmatch(line); m != nil {
			p.flush()
			p.emit(domain.Block{Kind: domain.BlockImage, Alt: m[1], Src: m[2]})
			return
		}
	}

	if m := listLine.FindStringSubmatch(line); m != nil {
		p.flushParagraph()
		p.list = append(p.list, listEntry{indent: len(m[1]), text: m[2]})
		return
	}

	if line == "" {
		p.flush()
		return
	}

	// A text line after list items starts a new paragraph below the list.
	p.flushList()
	p.paragraph = append(p.paragraph, line)
}

// heading reports the level and text of a "# ", "## " or "### " line.
func heading(line string) (int, string, bool) {
	for level := 1; level <= 3; level++ {
		marker := strings.Repeat("#", level) + " "
		if strings.HasPrefix(line, marker) {
			return level, line[len(marker):], true
		}
	}
	return 0, "", false
}

// centered builds a centered block from a "-> ... <-" line.
func (p *blockParser) centered(line string) domain.Block {
	inner := centeredOpen.ReplaceAllString(line, "")
	inner = centeredClose.ReplaceAllString(inner, "")

	if level, text, ok := heading(inner); ok {
		return domain.Block{
			Kind:  domain.BlockCentered,
			Inner: domain.BlockHeading,
			Level: level,
			Text:  ParseInline(text, p.profile),
		}
	}
	return domain.Block{
		Kind:  domain.BlockCentered,
		Inner: domain.BlockParagraph,
		Text:  ParseInline(inner, p.profile),
	}
}

func (p *blockParser) emit(b domain.Block) {
	p.blocks = append(p.blocks, b)
}

func (p *blockParser) flush() {
	p.flushParagraph()
	p.flushList()
}

func (p *blockParser) flushParagraph() {
	if len(p.paragraph) == 0 {
		return
	}
	text := strings.TrimSpace(strings.Join(p.paragraph, " "))
	p.paragraph = p.paragraph[:0]
	if text == "" {
		return
	}
	p.emit(domain.Block{Kind: domain.BlockParagraph, Text: ParseInline(text, p.profile)})
}

func (p *blockParser) flushList() {
	if len(p.list) == 0 {
		return
	}

	items := make([]domain.ListItem, 0, len(p.list))
	for _, e := range p.list {
		switch {
		case e.indent < childIndent:
			items = append(items, domain.ListItem{
				Text:     ParseInline(e.text, p.profile),
				Children: [][]domain.Span{},
			})
		case len(items) > 0:
			last := &items[len(items)-1]
			last.Children = append(last.Children, ParseInline(e.text, p.profile))
		}
	}
	p.list = p.list[:0]

	// A buffer of orphaned children still yields a list, with no items.
	p.emit(domain.Block{Kind: domain.BlockList, Items: items})
}
