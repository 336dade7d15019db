package services

import (
	"fmt"

	"github.com/editor-collab/collab-cli/internal/core/domain"
	"github.com/editor-collab/collab-cli/internal/core/ports/driven"
	"github.com/editor-collab/collab-cli/internal/core/ports/driving"
	"github.com/editor-collab/collab-cli/internal/logger"
)

// Ensure RenderService implements the interface.
var _ driving.RenderService = (*RenderService)(nil)

// RenderService renders ad-hoc documents with a named profile.
type RenderService struct {
	parser driven.BlockParser
}

// NewRenderService creates a new render service.
func NewRenderService(parser driven.BlockParser) *RenderService {
	return &RenderService{parser: parser}
}

// Render parses doc with the named profile.
func (s *RenderService) Render(doc, profile string) ([]domain.Block, error) {
	p, err := domain.ProfileByName(profile)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	blocks := s.parser.Parse(doc, p)
	logger.Debug("Rendered %d bytes with profile %s into %d blocks", len(doc), p.Name, len(blocks))
	return blocks, nil
}

// Profiles lists the available rendering profiles.
func (s *RenderService) Profiles() []domain.Profile {
	return domain.Profiles()
}
