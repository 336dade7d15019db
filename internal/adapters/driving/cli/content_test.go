package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/editor-collab/collab-cli/internal/core/domain"
)

func TestLegalCmd_ListsPages(t *testing.T) {
	out, err := executeCommand(t, newTestServices(), "", "legal")

	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "tos")
	assert.Contains(t, out, "Terms of Service")
	assert.Contains(t, out, "Feb 15, 2026")
}

func TestLegalCmd_ListJSON(t *testing.T) {
	out, err := executeCommand(t, newTestServices(), "", "legal", "--format", "json")
	require.NoError(t, err)

	var entries []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "tos", entries[0]["name"])
	assert.Equal(t, "Terms of Service", entries[0]["title"])
}

func TestLegalCmd_ListHTMLRejected(t *testing.T) {
	_, err := executeCommand(t, newTestServices(), "", "legal", "--format", "html")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLegalCmd_ShowsPage(t *testing.T) {
	out, err := executeCommand(t, newTestServices(), "", "legal", "tos")

	require.NoError(t, err)
	assert.Contains(t, out, "Terms of Service")
	assert.Contains(t, out, "Please read these terms.")
}

func TestLegalCmd_PageHTML(t *testing.T) {
	out, err := executeCommand(t, newTestServices(), "", "legal", "tos", "-f", "html")

	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Terms of Service</h1>")
	assert.Contains(t, out, `<a class="back" href="/">Back</a>`)
}

func TestLegalCmd_UnknownPage(t *testing.T) {
	_, err := executeCommand(t, newTestServices(), "", "legal", "cookies")

	assert.ErrorIs(t, err, domain.ErrUnknownDocument)
}

func TestFAQCmd_ShowsAll(t *testing.T) {
	out, err := executeCommand(t, newTestServices(), "", "faq")

	require.NoError(t, err)
	assert.Contains(t, out, "Payment")
	assert.Contains(t, out, "How do I pay?")
}

func TestFAQCmd_Anchor(t *testing.T) {
	out, err := executeCommand(t, newTestServices(), "", "faq", "--anchor", "how-do-i-pay", "--format", "html")

	require.NoError(t, err)
	assert.Contains(t, out, `<details id="how-do-i-pay">`)
	assert.NotContains(t, out, "<article")
}

func TestFAQCmd_UnknownAnchor(t *testing.T) {
	_, err := executeCommand(t, newTestServices(), "", "faq", "-a", "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFAQCmd_JSON(t *testing.T) {
	out, err := executeCommand(t, newTestServices(), "", "faq", "-f", "json")
	require.NoError(t, err)

	var faq domain.FAQ
	require.NoError(t, json.Unmarshal([]byte(out), &faq))
	require.Len(t, faq.Sections, 1)
	assert.Equal(t, "how-do-i-pay", faq.Sections[0].Entries[0].Anchor)
}

func TestFAQCmd_RejectsArgs(t *testing.T) {
	_, err := executeCommand(t, newTestServices(), "", "faq", "extra")

	assert.Error(t, err)
}

func TestChangelogCmd_UsesCache(t *testing.T) {
	svc := newTestServices()

	out, err := executeCommand(t, svc, "", "changelog")

	require.NoError(t, err)
	assert.Contains(t, out, "Editor Collab")
	assert.Contains(t, out, "v1.2.0")
	assert.Contains(t, out, "v0.3.0")
	mock := svc.Changelog.(*mockChangelogService)
	assert.Equal(t, 1, mock.pageCalls)
	assert.Equal(t, 0, mock.refreshCalls)
}

func TestChangelogCmd_Refresh(t *testing.T) {
	svc := newTestServices()

	_, err := executeCommand(t, svc, "", "changelog", "--refresh")

	require.NoError(t, err)
	mock := svc.Changelog.(*mockChangelogService)
	assert.Equal(t, 0, mock.pageCalls)
	assert.Equal(t, 1, mock.refreshCalls)
}

func TestChangelogCmd_HTML(t *testing.T) {
	out, err := executeCommand(t, newTestServices(), "", "changelog", "-f", "html")

	require.NoError(t, err)
	assert.Contains(t, out, `<a class="tab active" href="#tab-0">Editor Collab</a>`)
	assert.Contains(t, out, `<section id="tab-1" hidden>`)
}

func TestChangelogCmd_Error(t *testing.T) {
	svc := newTestServices()
	svc.Changelog = &mockChangelogService{err: domain.ErrUnavailable}

	_, err := executeCommand(t, svc, "", "changelog")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Contains(t, err.Error(), "building changelog")
}
