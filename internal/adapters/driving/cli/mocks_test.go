package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/editor-collab/collab-cli/internal/adapters/driven/storage/memory"
	"github.com/editor-collab/collab-cli/internal/core/domain"
	"github.com/editor-collab/collab-cli/internal/core/ports/driving"
	"github.com/editor-collab/collab-cli/internal/core/services"
	"github.com/editor-collab/collab-cli/internal/richtext"
)

// mockRenderService renders with the real parser unless err is set.
type mockRenderService struct {
	err   error
	calls []string
}

func (m *mockRenderService) Render(doc, profile string) ([]domain.Block, error) {
	m.calls = append(m.calls, profile)
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

// mockContentService serves one legal page and a one-question FAQ.
type mockContentService struct{}

var testFAQ = &domain.FAQ{Sections: []domain.FAQSection{{
	Label:  "Payment",
	Accent: "green",
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
	return testFAQ, nil
}

func (m *mockContentService) ResolveAnchor(anchor string) (*domain.FAQEntry, error) {
	if e, ok := testFAQ.Entry(anchor); ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

// mockCheckoutService returns result for every session and records the ids.
type mockCheckoutService struct {
	result   *domain.CheckoutResult
	sessions []string
}

func (m *mockCheckoutService) Redeem(_ context.Context, sessionID string) *domain.CheckoutResult {
	m.sessions = append(m.sessions, sessionID)
	return m.result
}

// mockChangelogService counts cached and refreshed builds.
type mockChangelogService struct {
	page         *domain.Page
	err          error
	pageCalls    int
	refreshCalls int
}

func (m *mockChangelogService) Page(_ context.Context) (*domain.Page, error) {
	m.pageCalls++
	return m.page, m.err
}

func (m *mockChangelogService) Refresh(_ context.Context) (*domain.Page, error) {
	m.refreshCalls++
	return m.page, m.err
}

var (
	_ driving.RenderService    = (*mockRenderService)(nil)
	_ driving.ContentService   = (*mockContentService)(nil)
	_ driving.CheckoutService  = (*mockCheckoutService)(nil)
	_ driving.ChangelogService = (*mockChangelogService)(nil)
)

func testChangelogPage() *domain.Page {
	return &domain.Page{
		Title:     "Changelog",
		UpdatedAt: "Mar 1, 2026",
		Tabs: []domain.Tab{
			{
				Label:  "Editor Collab",
				Blocks: richtext.Parse("## v1.2.0\n- Fixed sync", domain.ProfileInformative),
				Stats:  []domain.Stat{{Icon: "download", Value: "12,345"}},
			},
			{
				Label:  "Editor Collab UI",
				Blocks: richtext.Parse("## v0.3.0\n- New toolbar", domain.ProfileInformative),
			},
		},
	}
}

// newTestServices returns mock services backed by an in-memory config store.
func newTestServices() *Services {
	store := memory.NewConfigStore()
	return &Services{
		Render:    &mockRenderService{},
		Content:   &mockContentService{},
		Checkout:  &mockCheckoutService{result: &domain.CheckoutResult{Failure: domain.NewCheckoutFailure(domain.FailureInvalidLink, 0)}},
		Changelog: &mockChangelogService{page: testChangelogPage()},
		Settings:  services.NewSettingsService(store),
		Theme:     services.NewThemeService(store),
	}
}

// resetFlags restores every flag of cmd and its children to its default,
// since command flags are package state shared between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeCommand runs the root command with args against svc and returns
// what it wrote to stdout.
func executeCommand(t *testing.T, svc *Services, stdin string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	SetServices(svc)
	SetBootstrap(nil)

	out := captureOutput(t)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		SetServices(nil)
		SetBootstrap(nil)
	})

	err := ExecuteContext(context.Background())
	return out.String(), err
}

// captureOutput points the root command's output at a buffer for the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return out
}
