package auth

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
)

func TestFileCredentialsStore_SaveAndGet(t *testing.T) {
	store, err := NewFileCredentialsStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	creds := domain.Credentials{
		AccessToken:  "at-123",
		RefreshToken: "rt-456",
		Expiry:       time.Now().Add(time.Hour).UTC().Truncate(time.Second),
		Account:      "user@example.com",
		Name:         "Test User",
	}

	err = store.Save(ctx, creds)
	require.NoError(t, err)

	loaded, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "at-123", loaded.AccessToken)
	assert.Equal(t, "rt-456", loaded.RefreshToken)
	assert.Equal(t, "user@example.com", loaded.Account)
	assert.True(t, creds.Expiry.Equal(loaded.Expiry))
}

func TestFileCredentialsStore_GetMissing(t *testing.T) {
	store, err := NewFileCredentialsStore(t.TempDir())
	require.NoError(t, err)

	creds, err := store.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	assert.Nil(t, creds)
}

func TestFileCredentialsStore_GetCorrupt(t *testing.T) {
	store, err := NewFileCredentialsStore(t.TempDir())
	require.NoError(t, err)

	err = os.WriteFile(store.Path(), []byte("not json"), 0600)
	require.NoError(t, err)

	creds, err := store.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	assert.Nil(t, creds)
}

func TestFileCredentialsStore_Delete(t *testing.T) {
	store, err := NewFileCredentialsStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	err = store.Save(ctx, domain.Credentials{AccessToken: "at"})
	require.NoError(t, err)

	err = store.Delete(ctx)
	require.NoError(t, err)

	_, err = store.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrAuthRequired)

	// Deleting again is not an error
	assert.NoError(t, store.Delete(ctx))
}

func TestFileCredentialsStore_RestrictedPermissions(t *testing.T) {
	store, err := NewFileCredentialsStore(t.TempDir())
	require.NoError(t, err)

	err = store.Save(context.Background(), domain.Credentials{AccessToken: "at"})
	require.NoError(t, err)

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
