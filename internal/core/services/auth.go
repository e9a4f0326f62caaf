package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
	"github.com/storyspark-labs/storyspark-cli/internal/core/ports/driven"
	"github.com/storyspark-labs/storyspark-cli/internal/core/ports/driving"
	"github.com/storyspark-labs/storyspark-cli/internal/logger"
)

// Ensure AuthService implements the interface.
var _ driving.AuthService = (*AuthService)(nil)

// AuthService manages the Google sign-in lifecycle.
type AuthService struct {
	creds driven.CredentialsStore
	flow  driven.OAuthFlow
}

// NewAuthService creates a new auth service.
func NewAuthService(creds driven.CredentialsStore, flow driven.OAuthFlow) *AuthService {
	return &AuthService{
		creds: creds,
		flow:  flow,
	}
}

// Login runs the OAuth authorization-code flow and persists the
// resulting credentials, replacing any existing set.
func (s *AuthService) Login(ctx context.Context) (*domain.Credentials, error) {
	creds, err := s.flow.Authorize(ctx)
	if err != nil {
		return nil, fmt.Errorf("authorization failed: %w", err)
	}

	if err := s.creds.Save(ctx, *creds); err != nil {
		return nil, fmt.Errorf("failed to save credentials: %w", err)
	}

	logger.Info("signed in as %s", creds.Account)
	return creds, nil
}

// Logout revokes the stored token where possible and deletes the
// credentials. Revocation failures are logged, not fatal: the local
// credentials are removed regardless.
func (s *AuthService) Logout(ctx context.Context) error {
	creds, err := s.creds.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrAuthRequired) {
			return nil
		}
		return err
	}

	if creds.AccessToken != "" {
		if err := s.flow.Revoke(ctx, creds.AccessToken); err != nil {
			logger.Warn("failed to revoke token: %v", err)
		}
	}

	return s.creds.Delete(ctx)
}

// Current returns the stored credentials, or domain.ErrAuthRequired
// when signed out.
func (s *AuthService) Current(ctx context.Context) (*domain.Credentials, error) {
	return s.creds.Get(ctx)
}
