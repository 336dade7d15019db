package driven

import "github.com/editor-collab/collab-cli/internal/core/domain"

// LegalDocument is a raw legal text with its display metadata.
type LegalDocument struct {
	Name      string
	Title     string
	UpdatedAt string
	Body      string
}

// ContentStore supplies the site's static text content.
type ContentStore interface {
	// LegalDocument returns a legal document by name.
	// Returns domain.ErrUnknownDocument for unknown names.
	LegalDocument(name string) (*LegalDocument, error)

	// LegalDocumentNames lists the available legal documents in display order.
	LegalDocumentNames() []string

	// FAQCategories returns the raw FAQ data in display order.
	FAQCategories() ([]domain.FAQCategory, error)
}
