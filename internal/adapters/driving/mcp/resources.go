package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/editor-collab/collab-cli/internal/adapters/driving/present"
	"github.com/editor-collab/collab-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for collab resources.
	uriScheme = "collab://"

	mimeJSON = "application/json"
	mimeHTML = "text/html"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing legal pages.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "legal",
		Name:        "legal",
		Description: "Names and titles of the legal pages",
		MIMEType:    mimeJSON,
	}, s.handleLegalIndexResource)

	// Template for one legal page.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "legal/{name}",
		Name:        "legal-page",
		Description: "A rendered legal page (tos, privacy-policy, refund-policy)",
		MIMEType:    mimeHTML,
	}, s.handleLegalResource)

	// Static resource for the whole FAQ.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "faq",
		Name:        "faq",
		Description: "Every FAQ section and answer",
		MIMEType:    mimeHTML,
	}, s.handleFAQResource)

	// Template for one FAQ question.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "faq/{anchor}",
		Name:        "faq-entry",
		Description: "One FAQ question, addressed by its anchor id",
		MIMEType:    mimeHTML,
	}, s.handleFAQEntryResource)
}

// handleLegalIndexResource lists the legal pages.
func (s *Server) handleLegalIndexResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type legalInfo struct {
		Name      string `json:"name"`
		Title     string `json:"title"`
		UpdatedAt string `json:"updated_at,omitempty"`
		URI       string `json:"uri"`
	}

	names := s.ports.Content.LegalNames()
	infos := make([]legalInfo, 0, len(names))
	for _, name := range names {
		page, err := s.ports.Content.LegalPage(name)
		if err != nil {
			return nil, fmt.Errorf("loading legal page %s: %w", name, err)
		}
		infos = append(infos, legalInfo{
			Name:      name,
			Title:     page.Title,
			UpdatedAt: page.UpdatedAt,
			URI:       uriScheme + "legal/" + name,
		})
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling legal pages: %w", err)
	}

	return textResult(req.Params.URI, mimeJSON, string(data)), nil
}

// handleLegalResource renders one legal page.
func (s *Server) handleLegalResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractSuffix(req.Params.URI, "legal/")
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	page, err := s.ports.Content.LegalPage(name)
	if errors.Is(err, domain.ErrUnknownDocument) || errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("loading legal page: %w", err)
	}

	return textResult(req.Params.URI, mimeHTML, present.HTMLPage(page)), nil
}

// handleFAQResource renders the whole FAQ.
func (s *Server) handleFAQResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	faq, err := s.ports.Content.FAQ()
	if err != nil {
		return nil, fmt.Errorf("loading faq: %w", err)
	}

	return textResult(req.Params.URI, mimeHTML, present.HTMLFAQ(faq)), nil
}

// handleFAQEntryResource renders one FAQ question.
func (s *Server) handleFAQEntryResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	anchor := extractSuffix(req.Params.URI, "faq/")
	if anchor == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	entry, err := s.ports.Content.ResolveAnchor(anchor)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("resolving faq anchor: %w", err)
	}

	return textResult(req.Params.URI, mimeHTML, present.HTMLFAQEntry(entry)), nil
}

func textResult(uri, mimeType, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeType,
			Text:     text,
		}},
	}
}

// extractSuffix extracts the single path segment after collab://<kind>.
// It returns "" for other schemes, missing or nested segments.
func extractSuffix(uri, kind string) string {
	prefix := uriScheme + kind
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	rest := strings.TrimPrefix(uri, prefix)
	if strings.Contains(rest, "/") {
		return ""
	}
	return rest
}
