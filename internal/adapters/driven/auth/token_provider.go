package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"
	googleauth "golang.org/x/oauth2/google"

	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
	"github.com/storyspark-labs/storyspark-cli/internal/core/ports/driven"
	"github.com/storyspark-labs/storyspark-cli/internal/logger"
)

// Ensure OAuthTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*OAuthTokenProvider)(nil)

// OAuthTokenProvider supplies access tokens with automatic refresh.
// Refreshed tokens are written back to the credentials store so the
// next process start does not need to refresh again.
type OAuthTokenProvider struct {
	store  driven.CredentialsStore
	config *oauth2.Config

	mu            sync.RWMutex
	cachedToken   string
	cacheExpiry   time.Time
	refreshBuffer time.Duration
}

// NewOAuthTokenProvider creates a token provider for the stored
// Google credentials.
func NewOAuthTokenProvider(store driven.CredentialsStore, clientID, clientSecret string) *OAuthTokenProvider {
	return &OAuthTokenProvider{
		store: store,
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     googleauth.Endpoint,
			Scopes:       Scopes,
		},
		refreshBuffer: 5 * time.Minute,
	}
}

// GetToken returns a valid access token, refreshing if necessary.
func (p *OAuthTokenProvider) GetToken(ctx context.Context) (string, error) {
	// Fast path: check cache with read lock
	p.mu.RLock()
	if p.cachedToken != "" && time.Now().Before(p.cacheExpiry) {
		token := p.cachedToken
		p.mu.RUnlock()
		return token, nil
	}
	p.mu.RUnlock()

	// Slow path: need refresh, acquire write lock
	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check after acquiring write lock
	if p.cachedToken != "" && time.Now().Before(p.cacheExpiry) {
		return p.cachedToken, nil
	}

	creds, err := p.store.Get(ctx)
	if err != nil {
		return "", err
	}

	needsRefresh := creds.Expired()
	if !creds.Expiry.IsZero() {
		needsRefresh = needsRefresh || time.Until(creds.Expiry) < p.refreshBuffer
	}

	if needsRefresh {
		if creds.RefreshToken == "" {
			return "", domain.ErrAuthExpired
		}

		refreshed, err := p.refresh(ctx, creds)
		if err != nil {
			return "", fmt.Errorf("refresh token: %w", err)
		}
		creds = refreshed

		if err := p.store.Save(ctx, *creds); err != nil {
			return "", fmt.Errorf("save refreshed credentials: %w", err)
		}
		logger.Debug("auth: refreshed access token, expires %s", creds.Expiry.Format(time.RFC3339))
	}

	// Cache the token
	p.cachedToken = creds.AccessToken
	if !creds.Expiry.IsZero() {
		p.cacheExpiry = creds.Expiry.Add(-p.refreshBuffer)
	} else {
		p.cacheExpiry = time.Now().Add(1 * time.Hour)
	}

	return p.cachedToken, nil
}

// refresh exchanges the refresh token for a new access token.
func (p *OAuthTokenProvider) refresh(ctx context.Context, creds *domain.Credentials) (*domain.Credentials, error) {
	source := p.config.TokenSource(ctx, &oauth2.Token{
		RefreshToken: creds.RefreshToken,
	})

	token, err := source.Token()
	if err != nil {
		return nil, err
	}

	updated := *creds
	updated.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		updated.RefreshToken = token.RefreshToken
	}
	updated.Expiry = token.Expiry

	return &updated, nil
}
