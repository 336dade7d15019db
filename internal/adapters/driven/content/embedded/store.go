// Package embedded serves the site's legal documents and FAQ data from files
// compiled into the binary.
package embedded

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/editor-collab/collab-cli/internal/core/domain"
	"github.com/editor-collab/collab-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ContentStore = (*Store)(nil)

//go:embed data/*.txt data/faq.json
var dataFS embed.FS

// legalMeta is the display metadata of each legal document, in display order.
var legalMeta = []driven.LegalDocument{
	{Name: "tos", Title: "Terms of Service", UpdatedAt: "Feb 15, 2026"},
	{Name: "privacy-policy", Title: "Privacy Policy", UpdatedAt: "Aug 9, 2025"},
	{Name: "refund-policy", Title: "Refund Policy", UpdatedAt: "Feb 15, 2026"},
}

// faqFile is the layout of data/faq.json.
type faqFile struct {
	Categories []domain.FAQCategory `json:"categories"`
}

// Store reads content from the embedded data directory.
type Store struct {
	faqOnce sync.Once
	faq     []domain.FAQCategory
	faqErr  error
}

// NewStore creates a content store.
func NewStore() *Store {
	return &Store{}
}

// LegalDocumentNames lists the available legal documents in display order.
func (s *Store) LegalDocumentNames() []string {
	names := make([]string, len(legalMeta))
	for i, m := range legalMeta {
		names[i] = m.Name
	}
	return names
}

// LegalDocument returns a legal document by name.
func (s *Store) LegalDocument(name string) (*driven.LegalDocument, error) {
	for _, m := range legalMeta {
		if m.Name != name {
			continue
		}
		body, err := dataFS.ReadFile("data/" + name + ".txt")
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		doc := m
		doc.Body = string(body)
		return &doc, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownDocument, name)
}

// FAQCategories returns the FAQ categories in display order.
// The data file is decoded once; callers get their own copy of the slice.
func (s *Store) FAQCategories() ([]domain.FAQCategory, error) {
	s.faqOnce.Do(func() {
		raw, err := dataFS.ReadFile("data/faq.json")
		if err != nil {
			s.faqErr = fmt.Errorf("reading faq data: %w", err)
			return
		}
		var f faqFile
		if err := json.Unmarshal(raw, &f); err != nil {
			s.faqErr = fmt.Errorf("decoding faq data: %w", err)
			return
		}
		s.faq = f.Categories
	})
	if s.faqErr != nil {
		return nil, s.faqErr
	}
	out := make([]domain.FAQCategory, len(s.faq))
	copy(out, s.faq)
	return out, nil
}
