// Package services holds the collab use cases: rendering text, serving the
// legal pages and FAQ, redeeming checkout sessions, building the changelog
// and managing settings and the theme.
//
// Each service is constructed from driven ports only, so the key issuer,
// mod registry, cache, content store and block parser can all be swapped
// in tests.
package services
