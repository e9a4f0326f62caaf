// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - HistoryStore: Durable edit-record persistence
//   - Transformer: The text rewrite engine
//   - DocumentFetcher: Lists Google Docs and fetches their content
//   - CredentialsStore: OAuth token persistence
//   - TokenProvider: Supplies access tokens to API clients
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
