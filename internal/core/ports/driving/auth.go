package driving

import (
	"context"

	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
)

// AuthService manages the Google sign-in lifecycle.
type AuthService interface {
	// Login runs the OAuth authorization-code flow in the user's
	// browser and persists the resulting credentials.
	Login(ctx context.Context) (*domain.Credentials, error)

	// Logout revokes the stored token where possible and deletes
	// the credentials.
	Logout(ctx context.Context) error

	// Current returns the stored credentials, or
	// domain.ErrAuthRequired when signed out.
	Current(ctx context.Context) (*domain.Credentials, error)
}
