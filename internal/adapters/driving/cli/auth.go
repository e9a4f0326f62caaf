package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to Google",
	Long: `Sign in to Google with OAuth.

Opens your browser to authorize read-only access to your Google Docs.
The first run asks for an OAuth client ID and secret; create one in the
Google Cloud Console (APIs & Services > Credentials > OAuth client ID,
type "Desktop app") with the Drive and Docs APIs enabled.

Examples:
  storyspark login
  storyspark logout
  storyspark whoami`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and revoke the stored token",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	if err := ensureOAuthApp(cmd); err != nil {
		return err
	}

	ctx := context.Background()
	cmd.Println("Opening your browser to sign in to Google...")

	creds, err := authService.Login(ctx)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if creds.Name != "" {
		cmd.Printf("Signed in as %s (%s)\n", creds.Name, creds.Account)
	} else {
		cmd.Printf("Signed in as %s\n", creds.Account)
	}
	return nil
}

// ensureOAuthApp prompts for the OAuth client credentials on first run
// and persists them to the config file.
//
//nolint:errcheck // CLI interactive flow
func ensureOAuthApp(cmd *cobra.Command) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	if configStore.GetString("google.client_id") != "" {
		return nil
	}

	cmd.Println("No OAuth app configured yet.")
	cmd.Println("Create one in the Google Cloud Console and enter its credentials.")
	cmd.Println()

	reader := bufio.NewReader(os.Stdin)

	cmd.Print("Client ID: ")
	input, _ := reader.ReadString('\n')
	clientID := strings.TrimSpace(input)
	if clientID == "" {
		return errors.New("client ID is required")
	}

	clientSecret, err := readSecret(cmd, reader, "Client Secret: ")
	if err != nil {
		return err
	}
	if clientSecret == "" {
		return errors.New("client secret is required")
	}

	if err := configStore.Set("google.client_id", clientID); err != nil {
		return fmt.Errorf("failed to save client ID: %w", err)
	}
	if err := configStore.Set("google.client_secret", clientSecret); err != nil {
		return fmt.Errorf("failed to save client secret: %w", err)
	}

	cmd.Printf("OAuth app saved to %s\n\n", configStore.Path())
	return nil
}

// readSecret reads a value without echoing when stdin is a terminal.
//
//nolint:errcheck // CLI interactive flow
func readSecret(cmd *cobra.Command, reader *bufio.Reader, prompt string) (string, error) {
	cmd.Print(prompt)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		cmd.Println()
		if err != nil {
			return "", fmt.Errorf("failed to read secret: %w", err)
		}
		return strings.TrimSpace(string(secret)), nil
	}
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input), nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	ctx := context.Background()
	if err := authService.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	cmd.Println("Signed out.")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	ctx := context.Background()
	creds, err := authService.Current(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrAuthRequired) {
			cmd.Println("Not signed in. Run: storyspark login")
			return nil
		}
		return err
	}

	if creds.Name != "" {
		cmd.Printf("%s (%s)\n", creds.Name, creds.Account)
	} else {
		cmd.Println(creds.Account)
	}
	if creds.Expired() {
		cmd.Println("Access token expired; it will refresh on next use.")
	}
	return nil
}
