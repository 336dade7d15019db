package services

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/editor-collab/collab-cli/internal/core/domain"
	"github.com/editor-collab/collab-cli/internal/core/ports/driven"
	"github.com/editor-collab/collab-cli/internal/core/ports/driving"
	"github.com/editor-collab/collab-cli/internal/logger"
)

// Ensure ContentService implements the interface.
var _ driving.ContentService = (*ContentService)(nil)

// youTubeEmbedBase is the privacy-enhanced player used for ytLink attachments.
const youTubeEmbedBase = "https://www.youtube-nocookie.com/embed/"

// legalBackHref is the back link of every legal page.
const legalBackHref = "/"

// ContentService renders legal pages and the FAQ.
type ContentService struct {
	store  driven.ContentStore
	parser driven.BlockParser

	faqOnce sync.Once
	faq     *domain.FAQ
	faqErr  error
}

// NewContentService creates a new content service.
func NewContentService(store driven.ContentStore, parser driven.BlockParser) *ContentService {
	return &ContentService{store: store, parser: parser}
}

// LegalNames lists the legal documents in display order.
func (s *ContentService) LegalNames() []string {
	return s.store.LegalDocumentNames()
}

// LegalPage renders a legal document with the informative profile.
func (s *ContentService) LegalPage(name string) (*domain.Page, error) {
	doc, err := s.store.LegalDocument(name)
	if err != nil {
		return nil, fmt.Errorf("legal page: %w", err)
	}

	return &domain.Page{
		Title:     doc.Title,
		UpdatedAt: doc.UpdatedAt,
		BackHref:  legalBackHref,
		Blocks:    s.parser.Parse(doc.Body, domain.ProfileInformative),
	}, nil
}

// FAQ renders the FAQ once and returns the cached result afterwards.
func (s *ContentService) FAQ() (*domain.FAQ, error) {
	s.faqOnce.Do(func() {
		s.faq, s.faqErr = s.buildFAQ()
	})
	return s.faq, s.faqErr
}

// ResolveAnchor returns the question a cross-reference anchor points to.
func (s *ContentService) ResolveAnchor(anchor string) (*domain.FAQEntry, error) {
	faq, err := s.FAQ()
	if err != nil {
		return nil, err
	}
	entry, ok := faq.Entry(anchor)
	if !ok {
		return nil, fmt.Errorf("%w: faq anchor %q", domain.ErrNotFound, anchor)
	}
	return entry, nil
}

func (s *ContentService) buildFAQ() (*domain.FAQ, error) {
	cats, err := s.store.FAQCategories()
	if err != nil {
		return nil, fmt.Errorf("faq: %w", err)
	}

	faq := &domain.FAQ{Sections: make([]domain.FAQSection, 0, len(cats))}
	seen := make(map[string]string)

	for _, c := range cats {
		section := domain.FAQSection{
			Label:   c.Label,
			Accent:  c.Accent,
			Icon:    c.Icon,
			Entries: make([]domain.FAQEntry, 0, len(c.Items)),
		}
		for _, item := range c.Items {
			anchor := s.parser.Slug(item.Question)
			if first, dup := seen[anchor]; dup {
				logger.Warn("FAQ anchor %q of %q already used by %q", anchor, item.Question, first)
				faq.Collisions = append(faq.Collisions, anchor)
			} else {
				seen[anchor] = item.Question
			}

			section.Entries = append(section.Entries, domain.FAQEntry{
				Anchor:     anchor,
				Question:   item.Question,
				Answer:     s.parser.Parse(item.Answer, domain.ProfileFAQ),
				Attachment: attachment(item),
			})
		}
		faq.Sections = append(faq.Sections, section)
	}

	logger.Debug("Rendered FAQ: %d sections, %d collisions", len(faq.Sections), len(faq.Collisions))
	return faq, nil
}

// attachment resolves the media shown under an answer, if any.
func attachment(item domain.FAQItem) *domain.Attachment {
	if item.File == "" {
		return nil
	}
	switch item.FileType {
	case domain.AttachmentImage, domain.AttachmentVideo:
		return &domain.Attachment{Type: item.FileType, Src: item.File}
	case domain.AttachmentYouTube:
		return &domain.Attachment{Type: item.FileType, Src: youTubeEmbedBase + youTubeID(item.File)}
	default:
		return nil
	}
}

// youTubeID extracts the video id from a watch URL's v parameter, falling
// back to the last path segment (youtu.be and /shorts/ links).
func youTubeID(link string) string {
	if u, err := url.Parse(link); err == nil {
		if v := u.Query().Get("v"); v != "" {
			return v
		}
	}
	return link[strings.LastIndex(link, "/")+1:]
}
