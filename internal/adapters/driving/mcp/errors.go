// Package mcp provides an MCP (Model Context Protocol) server adapter for collab.
// It lets AI assistants render documents in the site's text format and read the
// legal pages, FAQ and changelog.
package mcp

import "errors"

// ErrMissingRenderService is returned when the render service is not provided.
var ErrMissingRenderService = errors.New("mcp: render service is required")

// ErrMissingContentService is returned when the content service is not provided.
var ErrMissingContentService = errors.New("mcp: content service is required")

// ErrChangelogUnavailable is returned by the changelog tool when no changelog
// service is configured.
var ErrChangelogUnavailable = errors.New("mcp: changelog is not available")
