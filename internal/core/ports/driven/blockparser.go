package driven

import "github.com/editor-collab/collab-cli/internal/core/domain"

// BlockParser turns constrained text documents into typed content blocks.
// Implementations must be pure and safe for concurrent use.
type BlockParser interface {
	// Parse converts a whole document into blocks, in line order.
	Parse(doc string, profile domain.Profile) []domain.Block

	// ParseInline resolves the inline spans of a single text fragment.
	ParseInline(text string, profile domain.Profile) []domain.Span

	// Slug derives the anchor identifier for a label.
	Slug(label string) string
}
