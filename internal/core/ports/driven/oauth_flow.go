package driven

import (
	"context"

	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
)

// OAuthFlow runs the provider's interactive authorization flow and
// token revocation. Implementations own the browser interaction and
// the loopback callback; the core only sees the resulting
// credentials.
type OAuthFlow interface {
	// Authorize runs the full authorization-code flow and returns
	// fresh credentials including the user's identity.
	Authorize(ctx context.Context) (*domain.Credentials, error)

	// Revoke invalidates a token at the provider.
	Revoke(ctx context.Context, token string) error
}
