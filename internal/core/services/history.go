package services

import (
	"context"
	"fmt"

	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
	"github.com/storyspark-labs/storyspark-cli/internal/core/ports/driven"
	"github.com/storyspark-labs/storyspark-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService provides read-side views over the edit history.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// ListAll returns every edit record, newest first.
func (s *HistoryService) ListAll(ctx context.Context) ([]domain.EditRecord, error) {
	return s.store.ListAll(ctx)
}

// ByDocument returns the records for one document, preserving the
// store's newest-first order. No match yields an empty slice.
func (s *HistoryService) ByDocument(ctx context.Context, documentID string) ([]domain.EditRecord, error) {
	if documentID == "" {
		return nil, fmt.Errorf("%w: document ID is required", domain.ErrInvalidInput)
	}

	all, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.EditRecord, 0)
	for _, record := range all {
		if record.DocumentID == documentID {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// ByID returns a single record, or domain.ErrNotFound.
func (s *HistoryService) ByID(ctx context.Context, id string) (*domain.EditRecord, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: record ID is required", domain.ErrInvalidInput)
	}
	return s.store.FindByID(ctx, id)
}
