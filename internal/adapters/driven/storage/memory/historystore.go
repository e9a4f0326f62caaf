// Package memory provides in-memory store implementations, used by
// tests and by ephemeral runs that should leave no state behind.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
	"github.com/storyspark-labs/storyspark-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	records []domain.EditRecord
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Append prepends a new record and returns a copy of it.
func (s *HistoryStore) Append(
	_ context.Context, documentID, documentName string, originalContent *string, editedContent string,
) (*domain.EditRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := domain.EditRecord{
		ID:              uuid.New().String(),
		DocumentID:      documentID,
		DocumentName:    documentName,
		Timestamp:       time.Now().UTC(),
		OriginalContent: originalContent,
		EditedContent:   editedContent,
	}

	s.records = append([]domain.EditRecord{record}, s.records...)
	return &record, nil
}

// ListAll returns a copy of all records, newest first.
func (s *HistoryStore) ListAll(_ context.Context) ([]domain.EditRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.EditRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// FindByID scans for a record with the given ID.
func (s *HistoryStore) FindByID(_ context.Context, id string) (*domain.EditRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.records {
		if record.ID == id {
			found := record
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}
