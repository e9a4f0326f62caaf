// Package domain defines the core business entities for StorySpark.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A Google Doc as listed from the user's Drive
//   - FetchedDocument: A document together with its plain-text content
//   - EditRecord: One persisted transformation outcome
//   - Credentials: The signed-in user's OAuth tokens and identity
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
