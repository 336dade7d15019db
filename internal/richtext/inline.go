package richtext

import (
	"regexp"
	"strings"

	"github.com/shurcooL/sanitized_anchor_name"

	"github.com/editor-collab/collab-cli/internal/core/domain"
)

// Token alternatives in priority order: bold, italic, code, then links.
// Leftmost-first alternation with non-greedy bodies means the first closing
// marker of the highest-priority kind ends a span.
const (
	emphasisPattern = "\\*\\*(.+?)\\*\\*|\\*(.+?)\\*|`([^`]+)`"

	// [label](target)
	markdownLinkPattern = `|\[([^\]]+)\]\(([^)]*)\)`

	// [label](__url__) | [label](/path) | [label]
	bracketLinkPattern = `|\[([^\]]+)\]\(__([^)]+)__\)|\[([^\]]+)\]\((/[^)]*)\)|\[([^\]]+)\]`
)

// Capture group numbers shared by every token pattern.
const (
	groupBold = 1 + iota
	groupItalic
	groupCode
	groupLink
)

var (
	emphasisToken = regexp.MustCompile(emphasisPattern)
	markdownToken = regexp.MustCompile(emphasisPattern + markdownLinkPattern)
	bracketToken  = regexp.MustCompile(emphasisPattern + bracketLinkPattern)

	externalTarget = regexp.MustCompile(`^https?://`)
)

// tokenPattern returns the inline token pattern for a link syntax.
// Unknown syntaxes recognise no links.
func tokenPattern(syntax domain.LinkSyntax) *regexp.Regexp {
	switch syntax {
	case domain.LinkSyntaxMarkdown:
		return markdownToken
	case domain.LinkSyntaxBracketOnly:
		return bracketToken
	default:
		return emphasisToken
	}
}

// ParseInline resolves the inline spans of a text fragment.
//
// The returned spans cover the fragment in order: concatenating their plain
// text reproduces the input minus the syntax markers. Bold and italic
// recurse into their content; code is kept verbatim.
func ParseInline(text string, profile domain.Profile) []domain.Span {
	re := tokenPattern(profile.LinkSyntax)
	matches := re.FindAllStringSubmatchIndex(text, -1)
	spans := make([]domain.Span, 0, 2*len(matches)+1)

	last := 0
	for _, m := range matches {
		if m[0] > last {
			spans = append(spans, domain.NewTextSpan(text[last:m[0]]))
		}
		spans = append(spans, tokenSpan(text, m, profile))
		last = m[1]
	}
	if last < len(text) {
		spans = append(spans, domain.NewTextSpan(text[last:]))
	}
	return spans
}

// tokenSpan converts one regexp match into a span.
func tokenSpan(text string, m []int, profile domain.Profile) domain.Span {
	group := func(n int) (string, bool) {
		if 2*n+1 >= len(m) || m[2*n] < 0 {
			return "", false
		}
		return text[m[2*n]:m[2*n+1]], true
	}

	if inner, ok := group(groupBold); ok {
		return domain.Span{Kind: domain.SpanBold, Children: ParseInline(inner, profile)}
	}
	if inner, ok := group(groupItalic); ok {
		return domain.Span{Kind: domain.SpanItalic, Children: ParseInline(inner, profile)}
	}
	if code, ok := group(groupCode); ok {
		return domain.Span{Kind: domain.SpanCode, Text: code}
	}

	switch profile.LinkSyntax {
	case domain.LinkSyntaxMarkdown:
		label, _ := group(groupLink)
		target, _ := group(groupLink + 1)
		return linkSpan(label, classifyTarget(target))

	case domain.LinkSyntaxBracketOnly:
		if label, ok := group(groupLink); ok {
			url, _ := group(groupLink + 1)
			return linkSpan(label, &domain.Link{Kind: domain.LinkExternal, Target: url})
		}
		if label, ok := group(groupLink + 2); ok {
			path, _ := group(groupLink + 3)
			return linkSpan(label, &domain.Link{Kind: domain.LinkInternal, Target: path})
		}
		label, _ := group(groupLink + 4)
		return linkSpan(label, &domain.Link{Kind: domain.LinkReference, Anchor: Slugify(label)})
	}

	// Unreachable with the patterns above; keep the text rather than lose it.
	return domain.NewTextSpan(text[m[0]:m[1]])
}

func linkSpan(label string, link *domain.Link) domain.Span {
	return domain.Span{Kind: domain.SpanLink, Text: label, Link: link}
}

// classifyTarget resolves a markdown link target.
// Anything that is neither an absolute http(s) URL nor a site path is a
// same-page cross-reference to the section whose slug matches the target.
func classifyTarget(target string) *domain.Link {
	switch {
	case externalTarget.MatchString(target):
		return &domain.Link{Kind: domain.LinkExternal, Target: target}
	case strings.HasPrefix(target, "/"):
		return &domain.Link{Kind: domain.LinkInternal, Target: target}
	default:
		return &domain.Link{Kind: domain.LinkAnchor, Target: target, Anchor: Slugify(target)}
	}
}

// Slugify turns a label into an anchor identifier: lowercase, runs of
// non-alphanumerics collapsed to one hyphen, no leading or trailing hyphen.
// Unicode letters and digits are kept as they are, so "Café" slugs to "café".
func Slugify(label string) string {
	return sanitized_anchor_name.Create(label)
}
