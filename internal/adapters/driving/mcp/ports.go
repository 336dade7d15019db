package mcp

import (
	"github.com/editor-collab/collab-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Render parses ad-hoc documents.
	Render driving.RenderService

	// Content serves the legal pages and the FAQ.
	Content driving.ContentService

	// Changelog builds the changelog page. Optional: without it the
	// changelog tool reports ErrChangelogUnavailable.
	Changelog driving.ChangelogService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Render == nil {
		return ErrMissingRenderService
	}
	if p.Content == nil {
		return ErrMissingContentService
	}
	return nil
}
