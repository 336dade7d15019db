package mcp

import (
	"context"

	"github.com/editor-collab/collab-cli/internal/core/domain"
	"github.com/editor-collab/collab-cli/internal/core/ports/driving"
	"github.com/editor-collab/collab-cli/internal/richtext"
)

// mockRenderService renders with the real parser unless err is set.
type mockRenderService struct {
	err error
}

func (m *mockRenderService) Render(doc, profile string) ([]domain.Block, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, err := domain.ProfileByName(profile)
	if err != nil {
		return nil, err
	}
	return richtext.Parse(doc, p), nil
}

func (m *mockRenderService) Profiles() []domain.Profile {
	return domain.Profiles()
}

// mockContentService serves a fixed legal page and FAQ.
type mockContentService struct {
	faqErr error
}

var testFAQ = &domain.FAQ{Sections: []domain.FAQSection{{
	Label: "Payment",
	Entries: []domain.FAQEntry{{
		Anchor:   "how-do-i-pay",
		Question: "How do I pay?",
		Answer:   richtext.Parse("Use **Stripe**.", domain.ProfileFAQ),
	}},
}}}

func (m *mockContentService) LegalNames() []string {
	return []string{"tos"}
}

func (m *mockContentService) LegalPage(name string) (*domain.Page, error) {
	if name != "tos" {
		return nil, domain.ErrUnknownDocument
	}
	return &domain.Page{
		Title:     "Terms of Service",
		UpdatedAt: "Feb 15, 2026",
		BackHref:  "/",
		Blocks:    richtext.Parse("# Hello,\nPlease read these terms.", domain.ProfileInformative),
	}, nil
}

func (m *mockContentService) FAQ() (*domain.FAQ, error) {
	if m.faqErr != nil {
		return nil, m.faqErr
	}
	return testFAQ, nil
}

func (m *mockContentService) ResolveAnchor(anchor string) (*domain.FAQEntry, error) {
	if m.faqErr != nil {
		return nil, m.faqErr
	}
	if e, ok := testFAQ.Entry(anchor); ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

// mockChangelogService is a mock implementation of driving.ChangelogService.
type mockChangelogService struct {
	page         *domain.Page
	err          error
	refreshCalls int
}

func (m *mockChangelogService) Page(_ context.Context) (*domain.Page, error) {
	return m.page, m.err
}

func (m *mockChangelogService) Refresh(_ context.Context) (*domain.Page, error) {
	m.refreshCalls++
	return m.page, m.err
}

var (
	_ driving.RenderService    = (*mockRenderService)(nil)
	_ driving.ContentService   = (*mockContentService)(nil)
	_ driving.ChangelogService = (*mockChangelogService)(nil)
)

func newTestServer(changelog driving.ChangelogService) *Server {
	s, err := NewServer(&Ports{
		Render:    &mockRenderService{},
		Content:   &mockContentService{},
		Changelog: changelog,
	})
	if err != nil {
		panic(err)
	}
	return s
}
