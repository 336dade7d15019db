// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - BlockParser: Text document to content block conversion
//   - KeyIssuer: Checkout session redemption (key-issuance webhook)
//   - ModRegistry: Mod metadata from the mod-distribution API
//   - ContentStore: Embedded legal documents and FAQ data
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ModCache: Changelog cache. Without it, every page build fetches.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
