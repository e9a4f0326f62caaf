package driving

import (
	"context"

	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
)

// HistoryService provides read-side views over the edit history.
// It never mutates the store.
type HistoryService interface {
	// ListAll returns every edit record, newest first.
	ListAll(ctx context.Context) ([]domain.EditRecord, error)

	// ByDocument returns the records for one document, preserving
	// the store's newest-first order. No match yields an empty slice.
	ByDocument(ctx context.Context, documentID string) ([]domain.EditRecord, error)

	// ByID returns a single record, or domain.ErrNotFound.
	ByID(ctx context.Context, id string) (*domain.EditRecord, error)
}
