package driven

import (
	"context"

	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
)

// HistoryStore persists edit records. Records are append-only and
// immutable; the store never exposes an update or delete operation.
//
// Implementations must keep newest-first ordering: Append prepends,
// and ListAll returns records in that stored order. A reader never
// observes a partially written collection.
type HistoryStore interface {
	// Append creates a record with a fresh unique ID and the current
	// time, persists it ahead of all existing records, and returns it
	// by value. originalContent may be nil when the pre-edit text was
	// not captured.
	Append(ctx context.Context, documentID, documentName string, originalContent *string, editedContent string) (*domain.EditRecord, error)

	// ListAll returns every record, newest first. A missing or
	// undecodable persisted collection yields an empty slice, not an
	// error: a corrupt history must never block editing.
	ListAll(ctx context.Context) ([]domain.EditRecord, error)

	// FindByID returns the record with the given ID, or
	// domain.ErrNotFound if no record matches.
	FindByID(ctx context.Context, id string) (*domain.EditRecord, error)
}
