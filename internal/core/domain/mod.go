package domain

import "time"

// ModVersion is one published version of a mod.
type ModVersion struct {
	Version string `json:"version"`
}

// Mod is the subset of the mod-distribution payload the site uses.
type Mod struct {
	ID            string       `json:"id"`
	Changelog     string       `json:"changelog"`
	DownloadCount int64        `json:"download_count"`
	UpdatedAt     time.Time    `json:"updated_at"`
	Versions      []ModVersion `json:"versions"`
}

// LatestVersion returns the first listed version, or "unknown".
func (m *Mod) LatestVersion() string {
	if len(m.Versions) == 0 || m.Versions[0].Version == "" {
		return "unknown"
	}
	return m.Versions[0].Version
}

// TrackedMod describes a mod shown as a changelog tab.
type TrackedMod struct {
	ID    string `json:"id" toml:"id"`
	Label string `json:"label" toml:"label"`
	Icon  string `json:"icon" toml:"icon"`
}

// DefaultTrackedMods are the two mods the changelog page follows.
func DefaultTrackedMods() []TrackedMod {
	return []TrackedMod{
		{ID: "alk.editor-collab", Label: "Editor Collab", Icon: "/assets/Normal.svg"},
		{ID: "alk.editor-collab-ui", Label: "Editor Collab UI", Icon: "/assets/UI.svg"},
	}
}

// Stat icons used on the changelog page.
const (
	IconVersion   = "solar:tag-linear"
	IconDownloads = "solar:download-minimalistic-linear"
)

// DateLayout is the long US date format used for "Last updated".
const DateLayout = "January 2, 2006"

// LatestUpdate returns the most recent UpdatedAt across mods.
func LatestUpdate(mods []*Mod) time.Time {
	var latest time.Time
	for _, m := range mods {
		if m != nil && m.UpdatedAt.After(latest) {
			latest = m.UpdatedAt
		}
	}
	return latest
}
