package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/editor-collab/collab-cli/internal/core/domain"
)

func TestSettingsCmd_ShowsDefaults(t *testing.T) {
	out, err := executeCommand(t, newTestServices(), "", "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "checkout.endpoint")
	assert.Contains(t, out, domain.DefaultCheckoutEndpoint)
	assert.Contains(t, out, domain.DefaultModsEndpoint)
	assert.Contains(t, out, "3600")
	assert.Contains(t, out, "(default)")
	assert.Contains(t, out, "Tracked mods:")
}

func TestSettingsCmd_SetThenShow(t *testing.T) {
	svc := newTestServices()

	out, err := executeCommand(t, svc, "", "settings", "set", "mods.cache_ttl_seconds", "120")
	require.NoError(t, err)
	assert.Equal(t, "Set mods.cache_ttl_seconds = 120\n", out)

	out, err = executeCommand(t, svc, "", "settings", "show")
	require.NoError(t, err)
	assert.Regexp(t, `mods\.cache_ttl_seconds\s+120\s*\n`, out)
}

func TestSettingsCmd_SetUnknownKey(t *testing.T) {
	_, err := executeCommand(t, newTestServices(), "", "settings", "set", "ui.font", "mono")

	assert.ErrorIs(t, err, domain.ErrUnknownSetting)
}

func TestSettingsCmd_SetInvalidValue(t *testing.T) {
	_, err := executeCommand(t, newTestServices(), "", "settings", "set", "checkout.endpoint", "not a url")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsCmd_SetNeedsTwoArgs(t *testing.T) {
	_, err := executeCommand(t, newTestServices(), "", "settings", "set", "ui.theme")

	assert.Error(t, err)
}

func TestSettingsCmd_Reset(t *testing.T) {
	svc := newTestServices()

	_, err := executeCommand(t, svc, "", "settings", "set", "http.timeout_seconds", "40")
	require.NoError(t, err)

	out, err := executeCommand(t, svc, "", "settings", "reset", "http.timeout_seconds")
	require.NoError(t, err)
	assert.Equal(t, "Reset http.timeout_seconds\n", out)

	out, err = executeCommand(t, svc, "", "settings", "show")
	require.NoError(t, err)
	assert.Regexp(t, `http\.timeout_seconds\s+15\s+\(default\)`, out)
}

func TestSettingsCmd_ResetUnknownKey(t *testing.T) {
	_, err := executeCommand(t, newTestServices(), "", "settings", "reset", "ui.font")

	assert.ErrorIs(t, err, domain.ErrUnknownSetting)
}

func TestSettingValue(t *testing.T) {
	s := domain.DefaultAppSettings()

	assert.Equal(t, domain.DefaultCheckoutEndpoint, settingValue(&s, "checkout.endpoint"))
	assert.Equal(t, "15", settingValue(&s, "http.timeout_seconds"))
	assert.Equal(t, "dark", settingValue(&s, "ui.theme"))
	assert.Empty(t, settingValue(&s, "nope"))
}

func TestThemeCmd_ShowsCurrent(t *testing.T) {
	out, err := executeCommand(t, newTestServices(), "", "theme")

	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)
}

func TestThemeCmd_Toggle(t *testing.T) {
	svc := newTestServices()

	out, err := executeCommand(t, svc, "", "theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "Theme set to light\n", out)
	assert.Equal(t, domain.ThemeLight, svc.Theme.Current())

	settings, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, settings.UI.Theme)
}

func TestThemeCmd_Set(t *testing.T) {
	svc := newTestServices()

	_, err := executeCommand(t, svc, "", "theme", "light")
	require.NoError(t, err)
	_, err = executeCommand(t, svc, "", "theme", "dark")
	require.NoError(t, err)

	assert.Equal(t, domain.ThemeDark, svc.Theme.Current())
}

func TestThemeCmd_RejectsUnknown(t *testing.T) {
	_, err := executeCommand(t, newTestServices(), "", "theme", "blue")

	assert.Error(t, err)
}
