package driving

import "github.com/editor-collab/collab-cli/internal/core/domain"

// ContentService renders the site's static pages.
type ContentService interface {
	// LegalNames lists the legal documents in display order.
	LegalNames() []string

	// LegalPage renders a legal document as an informative page.
	// Returns domain.ErrUnknownDocument for unknown names.
	LegalPage(name string) (*domain.Page, error)

	// FAQ renders every FAQ category with anchors and attachments.
	FAQ() (*domain.FAQ, error)

	// ResolveAnchor returns the question a cross-reference anchor points to.
	// Returns domain.ErrNotFound when no question has that anchor.
	ResolveAnchor(anchor string) (*domain.FAQEntry, error)
}
