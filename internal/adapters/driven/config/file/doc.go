// Package file stores the collab configuration as a TOML file,
// ~/.collab/config.toml by default. Settings keys map onto tables:
//
//	[mods]
//	endpoint = "https://api.geode-sdk.org/v1/mods"
//	cache_ttl_seconds = 3600
//
//	[ui]
//	theme = "light"
package file
