package services

import (
	"context"
	"fmt"

	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
	"github.com/storyspark-labs/storyspark-cli/internal/core/ports/driven"
	"github.com/storyspark-labs/storyspark-cli/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService exposes the user's Google Docs for browsing.
type DocumentService struct {
	fetcher driven.DocumentFetcher
}

// NewDocumentService creates a new document service.
func NewDocumentService(fetcher driven.DocumentFetcher) *DocumentService {
	return &DocumentService{fetcher: fetcher}
}

// List returns the user's Google Docs, newest first.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.fetcher.ListDocuments(ctx)
}

// Content returns the plain-text content of a document.
func (s *DocumentService) Content(ctx context.Context, documentID string) (*domain.FetchedDocument, error) {
	if documentID == "" {
		return nil, fmt.Errorf("%w: document ID is required", domain.ErrInvalidInput)
	}
	return s.fetcher.FetchDocument(ctx, documentID)
}
