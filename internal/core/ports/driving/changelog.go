package driving

import (
	"context"

	"github.com/editor-collab/collab-cli/internal/core/domain"
)

// ChangelogService builds the changelog page for the tracked mods.
type ChangelogService interface {
	// Page builds the changelog page, using cached mods when fresh.
	Page(ctx context.Context) (*domain.Page, error)

	// Refresh builds the page from the registry, bypassing the cache.
	Refresh(ctx context.Context) (*domain.Page, error)
}
