package auth

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"golang.org/x/oauth2"
	googleauth "golang.org/x/oauth2/google"

	"github.com/storyspark-labs/storyspark-cli/internal/connectors/google"
	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
	"github.com/storyspark-labs/storyspark-cli/internal/core/ports/driven"
	"github.com/storyspark-labs/storyspark-cli/internal/logger"
)

// Scopes requests read-only Drive and Docs access plus the user's
// identity. StorySpark never writes back to Google Docs.
var Scopes = []string{
	"https://www.googleapis.com/auth/drive.readonly",
	"https://www.googleapis.com/auth/documents.readonly",
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
}

// callbackTimeout bounds how long the flow waits for the user to
// finish authorizing in the browser.
const callbackTimeout = 5 * time.Minute

// Ensure GoogleOAuthFlow implements the interface.
var _ driven.OAuthFlow = (*GoogleOAuthFlow)(nil)

// GoogleOAuthFlow runs the authorization-code flow with PKCE against
// Google, receiving the code on a loopback callback server.
type GoogleOAuthFlow struct {
	config *oauth2.Config
	cfg    driven.ConfigStore
}

// NewGoogleOAuthFlow creates a flow for the given OAuth app.
func NewGoogleOAuthFlow(clientID, clientSecret string) *GoogleOAuthFlow {
	return &GoogleOAuthFlow{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     googleauth.Endpoint,
			Scopes:       Scopes,
		},
	}
}

// NewGoogleOAuthFlowFromConfig creates a flow that resolves the OAuth
// app credentials from configuration on each Authorize call. This lets
// the login command collect and store them in the same invocation.
func NewGoogleOAuthFlowFromConfig(cfg driven.ConfigStore) *GoogleOAuthFlow {
	flow := NewGoogleOAuthFlow("", "")
	flow.cfg = cfg
	return flow
}

// Authorize opens the user's browser, waits for the callback, and
// exchanges the authorization code for tokens plus the user identity.
func (f *GoogleOAuthFlow) Authorize(ctx context.Context) (*domain.Credentials, error) {
	if f.cfg != nil {
		f.config.ClientID = f.cfg.GetString("google.client_id")
		f.config.ClientSecret = f.cfg.GetString("google.client_secret")
	}
	if f.config.ClientID == "" {
		return nil, fmt.Errorf("%w: google.client_id is not configured", domain.ErrInvalidInput)
	}

	verifier, err := generateCodeVerifier()
	if err != nil {
		return nil, fmt.Errorf("generate code verifier: %w", err)
	}
	state, err := generateState()
	if err != nil {
		return nil, fmt.Errorf("generate state: %w", err)
	}

	callback := NewCallbackServer(0, state)
	if err := callback.Start(); err != nil {
		return nil, fmt.Errorf("start callback server: %w", err)
	}
	defer callback.Stop()

	cfg := *f.config
	cfg.RedirectURL = callback.RedirectURI()

	authURL := cfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.SetAuthURLParam("code_challenge", generateCodeChallenge(verifier)),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)

	logger.Info("auth: authorization URL: %s", authURL)
	if err := openBrowser(authURL); err != nil {
		logger.Warn("auth: could not open browser: %v", err)
		fmt.Printf("Open this URL in your browser to continue:\n\n  %s\n\n", authURL)
	}

	code, err := callback.WaitForCode(callbackTimeout)
	if err != nil {
		return nil, fmt.Errorf("wait for authorization: %w", err)
	}

	token, err := cfg.Exchange(ctx, code,
		oauth2.SetAuthURLParam("code_verifier", verifier))
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	userInfo, err := google.GetUserInfo(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}

	return &domain.Credentials{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
		Account:      userInfo.Email,
		Name:         userInfo.Name,
	}, nil
}

// Revoke invalidates the token at Google's revocation endpoint.
func (f *GoogleOAuthFlow) Revoke(ctx context.Context, token string) error {
	return google.RevokeToken(ctx, token)
}

// openBrowser opens a URL using the system default handler.
func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
