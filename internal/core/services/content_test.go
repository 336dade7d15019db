package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/editor-collab/collab-cli/internal/adapters/driven/content/embedded"
	"github.com/editor-collab/collab-cli/internal/core/domain"
	"github.com/editor-collab/collab-cli/internal/core/ports/driven"
	"github.com/editor-collab/collab-cli/internal/richtext"
)

func TestContentService_LegalPage(t *testing.T) {
	service := NewContentService(embedded.NewStore(), richtext.New())

	page, err := service.LegalPage("refund-policy")

	require.NoError(t, err)
	assert.Equal(t, "Refund Policy", page.Title)
	assert.Equal(t, "Feb 15, 2026", page.UpdatedAt)
	assert.Equal(t, "/", page.BackHref)
	assert.Equal(t, "Back", page.BackText())
	require.NotEmpty(t, page.Blocks)

	first := page.Blocks[0]
	assert.Equal(t, domain.BlockCentered, first.Kind)
	assert.Equal(t, domain.BlockParagraph, first.Inner)
	assert.Equal(t, "Hello, Customer.", domain.PlainText(first.Text))
}

func TestContentService_LegalPage_PrivacyPolicyList(t *testing.T) {
	service := NewContentService(embedded.NewStore(), richtext.New())

	page, err := service.LegalPage("privacy-policy")

	require.NoError(t, err)
	var centered *domain.Block
	for i := range page.Blocks {
		if page.Blocks[i].Kind == domain.BlockCentered {
			centered = &page.Blocks[i]
			break
		}
	}
	require.NotNil(t, centered)
	assert.Equal(t, domain.BlockHeading, centered.Inner)
	assert.Equal(t, 1, centered.Level)
	assert.Equal(t, domain.SpanCode, centered.Text[0].Kind)
}

func TestContentService_LegalPage_Unknown(t *testing.T) {
	service := NewContentService(embedded.NewStore(), richtext.New())

	_, err := service.LegalPage("cookies")

	assert.ErrorIs(t, err, domain.ErrUnknownDocument)
}

func TestContentService_LegalNames(t *testing.T) {
	service := NewContentService(embedded.NewStore(), richtext.New())

	assert.Equal(t, []string{"tos", "privacy-policy", "refund-policy"}, service.LegalNames())
}

func TestContentService_FAQ_Embedded(t *testing.T) {
	service := NewContentService(embedded.NewStore(), richtext.New())

	faq, err := service.FAQ()

	require.NoError(t, err)
	require.Len(t, faq.Sections, 3)
	assert.Empty(t, faq.Collisions)

	entry, err := service.ResolveAnchor("how-do-i-activate-hosting-after-payment")
	require.NoError(t, err)
	assert.Equal(t, "How do I activate hosting after payment?", entry.Question)
}

func TestContentService_FAQ_CrossReferencesResolve(t *testing.T) {
	service := NewContentService(embedded.NewStore(), richtext.New())
	faq, err := service.FAQ()
	require.NoError(t, err)

	var refs []string
	for _, s := range faq.Sections {
		for _, e := range s.Entries {
			for _, b := range e.Answer {
				for _, sp := range b.Text {
					if sp.Kind == domain.SpanLink && sp.Link.Kind == domain.LinkReference {
						refs = append(refs, sp.Link.Anchor)
					}
				}
			}
		}
	}

	require.NotEmpty(t, refs)
	for _, anchor := range refs {
		_, err := service.ResolveAnchor(anchor)
		assert.NoError(t, err, "dangling cross-reference %q", anchor)
	}
}

func TestContentService_FAQ_RendersAnswersWithFAQProfile(t *testing.T) {
	store := &mockContentStore{categories: []domain.FAQCategory{{
		Label: "Payment",
		Items: []domain.FAQItem{{
			Question: "Which payment methods are accepted?",
			Answer:   "Use [Stripe](__https://example.com__) or [reach out](/contact).",
		}},
	}}}
	service := NewContentService(store, richtext.New())

	faq, err := service.FAQ()

	require.NoError(t, err)
	entry := faq.Sections[0].Entries[0]
	assert.Equal(t, "which-payment-methods-are-accepted", entry.Anchor)
	require.Len(t, entry.Answer, 1)
	spans := entry.Answer[0].Text
	assert.Equal(t, domain.LinkExternal, spans[1].Link.Kind)
	assert.Equal(t, domain.LinkInternal, spans[3].Link.Kind)
}

func TestContentService_FAQ_SlugCollisionFirstWins(t *testing.T) {
	store := &mockContentStore{categories: []domain.FAQCategory{
		{Label: "A", Items: []domain.FAQItem{{Question: "Can I host?", Answer: "first"}}},
		{Label: "B", Items: []domain.FAQItem{{Question: "Can I host", Answer: "second"}}},
	}}
	service := NewContentService(store, richtext.New())

	faq, err := service.FAQ()

	require.NoError(t, err)
	assert.Equal(t, []string{"can-i-host"}, faq.Collisions)

	entry, err := service.ResolveAnchor("can-i-host")
	require.NoError(t, err)
	assert.Equal(t, "Can I host?", entry.Question)
}

func TestContentService_FAQ_Attachments(t *testing.T) {
	store := &mockContentStore{categories: []domain.FAQCategory{{
		Label: "Media",
		Items: []domain.FAQItem{
			{Question: "q1", Answer: "a", File: "/assets/shot.png", FileType: domain.AttachmentImage},
			{Question: "q2", Answer: "a", File: "/assets/install.mp4", FileType: domain.AttachmentVideo},
			{Question: "q3", Answer: "a", File: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=5", FileType: domain.AttachmentYouTube},
			{Question: "q4", Answer: "a", File: "https://youtu.be/abc123", FileType: domain.AttachmentYouTube},
			{Question: "q5", Answer: "a", File: "/assets/x.bin", FileType: "pdf"},
			{Question: "q6", Answer: "a"},
		},
	}}}
	service := NewContentService(store, richtext.New())

	faq, err := service.FAQ()
	require.NoError(t, err)
	entries := faq.Sections[0].Entries

	assert.Equal(t, &domain.Attachment{Type: domain.AttachmentImage, Src: "/assets/shot.png"}, entries[0].Attachment)
	assert.Equal(t, &domain.Attachment{Type: domain.AttachmentVideo, Src: "/assets/install.mp4"}, entries[1].Attachment)
	assert.Equal(t, "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ", entries[2].Attachment.Src)
	assert.Equal(t, "https://www.youtube-nocookie.com/embed/abc123", entries[3].Attachment.Src)
	assert.Nil(t, entries[4].Attachment)
	assert.Nil(t, entries[5].Attachment)
}

func TestContentService_FAQ_BuiltOnce(t *testing.T) {
	store := &mockContentStore{categories: []domain.FAQCategory{{Label: "A"}}}
	service := NewContentService(store, richtext.New())

	_, err := service.FAQ()
	require.NoError(t, err)
	_, err = service.FAQ()
	require.NoError(t, err)

	assert.Equal(t, 1, store.faqCalls)
}

func TestContentService_ResolveAnchor_NotFound(t *testing.T) {
	service := NewContentService(&mockContentStore{}, richtext.New())

	_, err := service.ResolveAnchor("nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContentService_LegalPage_FromStore(t *testing.T) {
	store := &mockContentStore{docs: map[string]*driven.LegalDocument{
		"tos": {Name: "tos", Title: "Terms", Body: "# Hi\n\ntext"},
	}}
	service := NewContentService(store, richtext.New())

	page, err := service.LegalPage("tos")

	require.NoError(t, err)
	assert.Empty(t, page.UpdatedAt)
	assert.Len(t, page.Blocks, 2)
}
