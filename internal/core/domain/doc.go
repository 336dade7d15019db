// Package domain defines the core entities of the collab toolkit.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Block, Span, ListItem: the output of the text renderer
//   - Profile: the capability set a document is rendered with
//   - Page, FAQ: rendered site pages
//   - Purchase, CheckoutResult: the checkout redirect outcome
//   - Mod: a mod-distribution payload shown on the changelog
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
