package richtext

import (
	"github.com/editor-collab/collab-cli/internal/core/domain"
	"github.com/editor-collab/collab-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.BlockParser = (*Renderer)(nil)

// Renderer exposes the package parser through the driven port.
// It holds no state and is safe for concurrent use.
type Renderer struct{}

// New creates a new renderer.
func New() *Renderer {
	return &Renderer{}
}

// Parse converts a document into blocks.
func (r *Renderer) Parse(doc string, profile domain.Profile) []domain.Block {
	return Parse(doc, profile)
}

// ParseInline resolves the inline spans of a text fragment.
func (r *Renderer) ParseInline(text string, profile domain.Profile) []domain.Span {
	return ParseInline(text, profile)
}

// Slug returns the anchor identifier for a label.
func (r *Renderer) Slug(label string) string {
	return Slugify(label)
}
