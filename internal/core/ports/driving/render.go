package driving

import "github.com/editor-collab/collab-cli/internal/core/domain"

// RenderService renders text documents into content blocks.
type RenderService interface {
	// Render parses doc with the named profile.
	// Returns domain.ErrUnknownProfile if the profile does not exist.
	Render(doc, profile string) ([]domain.Block, error)

	// Profiles lists the available rendering profiles.
	Profiles() []domain.Profile
}
