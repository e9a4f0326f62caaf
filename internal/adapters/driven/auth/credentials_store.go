// Package auth provides the file-backed credentials store.
// Tokens are kept in a single JSON file with 0600 permissions inside
// the config directory; StorySpark is single-user, so there is
// exactly one credentials set.
package auth

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
	"github.com/storyspark-labs/storyspark-cli/internal/core/ports/driven"
)

// credentialsFileName holds the stored tokens.
const credentialsFileName = "credentials.json"

// Ensure FileCredentialsStore implements the interface.
var _ driven.CredentialsStore = (*FileCredentialsStore)(nil)

// FileCredentialsStore persists OAuth credentials as JSON on disk.
type FileCredentialsStore struct {
	mu       sync.Mutex
	filePath string
}

// NewFileCredentialsStore creates a credentials store under configDir.
// If configDir is empty, defaults to ~/.storyspark.
func NewFileCredentialsStore(configDir string) (*FileCredentialsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".storyspark")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &FileCredentialsStore{
		filePath: filepath.Join(configDir, credentialsFileName),
	}, nil
}

// Save stores credentials, replacing any existing set.
func (s *FileCredentialsStore) Save(_ context.Context, creds domain.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}

	// Tokens are secrets; restrict permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Get retrieves the stored credentials.
// Returns domain.ErrAuthRequired when no credentials exist or the
// stored file cannot be decoded.
func (s *FileCredentialsStore) Get(_ context.Context) (*domain.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrAuthRequired
		}
		return nil, err
	}

	var creds domain.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, domain.ErrAuthRequired
	}

	return &creds, nil
}

// Delete removes the stored credentials. Missing file is not an error.
func (s *FileCredentialsStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.filePath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the credentials file path.
func (s *FileCredentialsStore) Path() string {
	return s.filePath
}
