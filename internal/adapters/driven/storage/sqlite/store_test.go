package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewStore_Migrates(t *testing.T) {
	store := newTestStore(t)
	require.NotNil(t, store)

	// A fresh store is queryable and empty.
	records, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_AppendAndFind(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	original := "orig"
	record, err := store.Append(ctx, "doc-1", "Doc", &original, "edited")
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)

	found, err := store.FindByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", found.EditedContent)
	require.NotNil(t, found.OriginalContent)
	assert.Equal(t, "orig", *found.OriginalContent)
	assert.Equal(t, record.Timestamp.Unix(), found.Timestamp.Unix())
}

func TestStore_NilOriginal(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record, err := store.Append(ctx, "doc-1", "Doc", nil, "edited")
	require.NoError(t, err)

	found, err := store.FindByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Nil(t, found.OriginalContent)
}

func TestStore_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Append(ctx, "doc-1", "Doc", nil, "one")
	require.NoError(t, err)
	second, err := store.Append(ctx, "doc-1", "Doc", nil, "two")
	require.NoError(t, err)

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, second.ID, records[0].ID)
	assert.Equal(t, first.ID, records[1].ID)
}

func TestStore_FindByID_NotFound(t *testing.T) {
	store := newTestStore(t)

	record, err := store.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, record)
}

func TestStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	record, err := store.Append(ctx, "doc-1", "Doc", nil, "edited")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	found, err := reopened.FindByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", found.EditedContent)
}
