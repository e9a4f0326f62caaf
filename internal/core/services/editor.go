package services

import (
	"context"
	"fmt"

	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
	"github.com/storyspark-labs/storyspark-cli/internal/core/ports/driven"
	"github.com/storyspark-labs/storyspark-cli/internal/core/ports/driving"
	"github.com/storyspark-labs/storyspark-cli/internal/logger"
)

// Ensure EditorService implements the interface.
var _ driving.EditorService = (*EditorService)(nil)

// EditorService orchestrates a single document edit:
// fetch the content, run it through the transformer, and record
// the outcome in the edit history.
type EditorService struct {
	fetcher     driven.DocumentFetcher
	transformer driven.Transformer
	history     driven.HistoryStore
}

// NewEditorService creates a new editor service.
func NewEditorService(
	fetcher driven.DocumentFetcher,
	transformer driven.Transformer,
	history driven.HistoryStore,
) *EditorService {
	return &EditorService{
		fetcher:     fetcher,
		transformer: transformer,
		history:     history,
	}
}

// EditDocument fetches a document, transforms its content, and appends
// the result to the edit history. Retrieval failures propagate
// unmodified so callers can distinguish auth errors from not-found;
// no history record is written on any failure.
func (s *EditorService) EditDocument(ctx context.Context, documentID string) (*domain.EditRecord, error) {
	if documentID == "" {
		return nil, fmt.Errorf("%w: document ID is required", domain.ErrInvalidInput)
	}

	doc, err := s.fetcher.FetchDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	logger.Debug("editing document %s (%d bytes)", doc.ID, len(doc.Content))

	edited, err := s.transformer.Transform(ctx, doc.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to transform document %s: %w", documentID, err)
	}

	original := doc.Content
	record, err := s.history.Append(ctx, doc.ID, doc.Name, &original, edited)
	if err != nil {
		return nil, fmt.Errorf("failed to record edit for document %s: %w", documentID, err)
	}

	logger.Info("recorded edit %s for document %q", record.ID, doc.Name)
	return record, nil
}
