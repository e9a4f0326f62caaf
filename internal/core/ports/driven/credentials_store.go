package driven

import (
	"context"

	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
)

// CredentialsStore persists the single user's OAuth credentials
// across sessions.
type CredentialsStore interface {
	// Save stores credentials, replacing any existing set.
	Save(ctx context.Context, creds domain.Credentials) error

	// Get retrieves the stored credentials.
	// Returns domain.ErrAuthRequired if none exist.
	Get(ctx context.Context) (*domain.Credentials, error)

	// Delete removes the stored credentials. Deleting when none
	// exist is not an error.
	Delete(ctx context.Context) error
}

// TokenProvider supplies a valid access token for API clients.
// Implementations refresh expired tokens transparently.
type TokenProvider interface {
	// GetToken returns a currently valid access token.
	GetToken(ctx context.Context) (string, error)
}
