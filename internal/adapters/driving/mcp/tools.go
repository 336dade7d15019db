package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/editor-collab/collab-cli/internal/adapters/driving/present"
	"github.com/editor-collab/collab-cli/internal/core/domain"
)

// RenderInput is the input schema for the render tool.
type RenderInput struct {
	Document string `json:"document" jsonschema:"the text to render, using the site's heading, list, centered and emphasis syntax"`
	Profile  string `json:"profile,omitempty" jsonschema:"rendering profile: informative (default), rich or faq"`
}

// RenderOutput is the output schema for the render tool.
type RenderOutput struct {
	Profile    string   `json:"profile"`
	BlockCount int      `json:"block_count"`
	Kinds      []string `json:"kinds"`
	HTML       string   `json:"html"`
}

// ChangelogInput is the input schema for the changelog tool.
type ChangelogInput struct {
	Refresh bool `json:"refresh,omitempty" jsonschema:"bypass the local cache and fetch from the mod registry"`
}

// ChangelogOutput is the output schema for the changelog tool.
type ChangelogOutput struct {
	Title     string         `json:"title"`
	UpdatedAt string         `json:"updated_at,omitempty"`
	Mods      []ModChangelog `json:"mods"`
}

// ModChangelog is the changelog of one mod.
type ModChangelog struct {
	Name  string   `json:"name"`
	Stats []string `json:"stats"`
	HTML  string   `json:"html"`
}

// FAQInput is the input schema for the faq_lookup tool.
type FAQInput struct {
	Anchor string `json:"anchor" jsonschema:"the anchor id of a question, e.g. how-do-i-activate-hosting-after-payment"`
}

// FAQOutput is the output schema for the faq_lookup tool.
type FAQOutput struct {
	Anchor   string `json:"anchor"`
	Question string `json:"question"`
	HTML     string `json:"html"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "render",
		Description: "Render a document written in the site's lightweight text format into HTML",
	}, s.handleRender)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "changelog",
		Description: "Get the changelog, version and download count of the Editor Collab mods",
	}, s.handleChangelog)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "faq_lookup",
		Description: "Look up one FAQ question by its anchor id",
	}, s.handleFAQLookup)
}

// handleRender handles the render tool invocation.
func (s *Server) handleRender(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RenderInput,
) (*mcp.CallToolResult, RenderOutput, error) {
	profile := input.Profile
	if profile == "" {
		profile = domain.ProfileInformative.Name
	}

	blocks, err := s.ports.Render.Render(input.Document, profile)
	if err != nil {
		return nil, RenderOutput{}, err
	}

	kinds := make([]string, len(blocks))
	for i := range blocks {
		kinds[i] = string(blocks[i].Kind)
	}

	return nil, RenderOutput{
		Profile:    profile,
		BlockCount: len(blocks),
		Kinds:      kinds,
		HTML:       present.HTMLBlocks(blocks),
	}, nil
}

// handleChangelog handles the changelog tool invocation.
func (s *Server) handleChangelog(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ChangelogInput,
) (*mcp.CallToolResult, ChangelogOutput, error) {
	if s.ports.Changelog == nil {
		return nil, ChangelogOutput{}, ErrChangelogUnavailable
	}

	var (
		page *domain.Page
		err  error
	)
	if input.Refresh {
		page, err = s.ports.Changelog.Refresh(ctx)
	} else {
		page, err = s.ports.Changelog.Page(ctx)
	}
	if err != nil {
		return nil, ChangelogOutput{}, fmt.Errorf("building changelog: %w", err)
	}

	output := ChangelogOutput{
		Title:     page.Title,
		UpdatedAt: page.UpdatedAt,
		Mods:      make([]ModChangelog, len(page.Tabs)),
	}
	for i, tab := range page.Tabs {
		stats := make([]string, len(tab.Stats))
		for j, st := range tab.Stats {
			stats[j] = st.Value
		}
		output.Mods[i] = ModChangelog{
			Name:  tab.Label,
			Stats: stats,
			HTML:  present.HTMLBlocks(tab.Blocks),
		}
	}

	return nil, output, nil
}

// handleFAQLookup handles the faq_lookup tool invocation.
func (s *Server) handleFAQLookup(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input FAQInput,
) (*mcp.CallToolResult, FAQOutput, error) {
	entry, err := s.ports.Content.ResolveAnchor(input.Anchor)
	if err != nil {
		return nil, FAQOutput{}, err
	}

	return nil, FAQOutput{
		Anchor:   entry.Anchor,
		Question: entry.Question,
		HTML:     present.HTMLFAQEntry(entry),
	}, nil
}
