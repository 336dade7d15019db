// Package driving declares what the CLI, TUI and MCP adapters may ask of the
// core: rendering, site content, checkout redemption, changelogs, settings
// and the theme preference.
//
// Services in internal/core/services implement these interfaces; adapters
// only ever hold the interface.
package driving
