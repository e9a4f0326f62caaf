package driven

import (
	"context"

	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
)

// DocumentFetcher retrieves the user's Google Docs.
// The core treats any fetch failure as non-recoverable for that
// invocation: it is surfaced to the caller and never retried here.
type DocumentFetcher interface {
	// ListDocuments returns the user's Google Docs ordered by
	// modification time, newest first.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// FetchDocument returns the document's name and plain-text
	// content for the given document ID.
	FetchDocument(ctx context.Context, documentID string) (*domain.FetchedDocument, error)
}
