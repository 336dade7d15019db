package domain

// BlockKind identifies the variant of a Block.
type BlockKind string

// Block variants produced by the block parser.
const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockRule      BlockKind = "rule"
	BlockCentered  BlockKind = "centered"
	BlockList      BlockKind = "list"
	BlockImage     BlockKind = "image"
)

// Block is a structural content unit of a rendered document.
// Only the fields relevant to Kind are populated.
type Block struct {
	Kind BlockKind `json:"kind"`

	// Level is the heading level (1-3) for headings and centered headings.
	Level int `json:"level,omitempty"`

	// Inner is the kind a centered block renders as: BlockHeading or BlockParagraph.
	Inner BlockKind `json:"inner,omitempty"`

	// Text holds the inline content of headings, paragraphs and centered blocks.
	Text []Span `json:"text,omitempty"`

	// Items holds the entries of a list block.
	Items []ListItem `json:"items,omitempty"`

	// Src and Alt describe an image block.
	Src string `json:"src,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// ListItem is a top-level list entry with at most one level of children.
type ListItem struct {
	Text     []Span   `json:"text"`
	Children [][]Span `json:"children"`
}

// SpanKind identifies the variant of an inline Span.
type SpanKind string

// Inline span variants.
const (
	SpanText   SpanKind = "text"
	SpanBold   SpanKind = "bold"
	SpanItalic SpanKind = "italic"
	SpanCode   SpanKind = "code"
	SpanLink   SpanKind = "link"
)

// Span is a typed fragment of inline text.
//
// Text and code spans carry Text. Bold and italic spans carry Children.
// Link spans carry the label in Text and the resolved target in Link.
type Span struct {
	Kind     SpanKind `json:"kind"`
	Text     string   `json:"text,omitempty"`
	Children []Span   `json:"children,omitempty"`
	Link     *Link    `json:"link,omitempty"`
}

// LinkKind classifies the target of a link span.
type LinkKind string

// Link target classes.
const (
	// LinkExternal points off-site. It opens in a new context and sends no referrer.
	LinkExternal LinkKind = "external"

	// LinkInternal is a site path beginning with "/".
	LinkInternal LinkKind = "internal"

	// LinkAnchor is a navigable same-page cross-reference.
	LinkAnchor LinkKind = "anchor"

	// LinkReference is a bare cross-reference label. It names another
	// question but is rendered as plain text, never as a link element.
	LinkReference LinkKind = "reference"
)

// Link is the resolved target of a link span.
type Link struct {
	Kind   LinkKind `json:"kind"`
	Target string   `json:"target,omitempty"`
	Anchor string   `json:"anchor,omitempty"`
}

// NewTextSpan returns a plain text span.
func NewTextSpan(text string) Span {
	return Span{Kind: SpanText, Text: text}
}

// PlainText concatenates the visible text of spans, dropping all markup.
func PlainText(spans []Span) string {
	var n int
	for i := range spans {
		n += len(spans[i].Text)
	}
	buf := make([]byte, 0, n)
	for i := range spans {
		buf = appendPlain(buf, &spans[i])
	}
	return string(buf)
}

func appendPlain(buf []byte, s *Span) []byte {
	switch s.Kind {
	case SpanBold, SpanItalic:
		for i := range s.Children {
			buf = appendPlain(buf, &s.Children[i])
		}
		return buf
	default:
		return append(buf, s.Text...)
	}
}

// LinkSyntax selects which link forms the inline resolver recognises.
type LinkSyntax string

// Supported link syntaxes.
const (
	// LinkSyntaxNone disables link parsing entirely.
	LinkSyntaxNone LinkSyntax = "none"

	// LinkSyntaxMarkdown recognises [label](target).
	LinkSyntaxMarkdown LinkSyntax = "markdown"

	// LinkSyntaxBracketOnly recognises [label](__url__), [label](/path) and bare [label].
	LinkSyntaxBracketOnly LinkSyntax = "bracket-only"
)

// Profile is the capability set a document is rendered with.
type Profile struct {
	Name           string     `json:"name"`
	SupportsImages bool       `json:"supports_images"`
	LinkSyntax     LinkSyntax `json:"link_syntax"`
}

// Built-in rendering profiles.
var (
	// ProfileInformative renders legal pages and changelogs.
	ProfileInformative = Profile{Name: "informative", LinkSyntax: LinkSyntaxNone}

	// ProfileRich renders rich text with images and markdown links.
	ProfileRich = Profile{Name: "rich", SupportsImages: true, LinkSyntax: LinkSyntaxMarkdown}

	// ProfileFAQ renders FAQ answers with bracket-only links.
	ProfileFAQ = Profile{Name: "faq", LinkSyntax: LinkSyntaxBracketOnly}
)

// Profiles returns the built-in profiles in display order.
func Profiles() []Profile {
	return []Profile{ProfileInformative, ProfileRich, ProfileFAQ}
}

// ProfileByName looks up a built-in profile.
func ProfileByName(name string) (Profile, error) {
	for _, p := range Profiles() {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, ErrUnknownProfile
}
