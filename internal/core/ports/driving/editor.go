package driving

import (
	"context"

	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
)

// EditorService runs the full editing flow for one document:
// retrieval, transformation, persistence.
type EditorService interface {
	// EditDocument fetches the document, applies the rewrite, appends
	// the outcome to the edit history, and returns the new record.
	// A retrieval failure propagates unmodified and leaves no record.
	EditDocument(ctx context.Context, documentID string) (*domain.EditRecord, error)
}

// DocumentService exposes the user's Google Docs for browsing.
type DocumentService interface {
	// List returns the user's Google Docs, newest first.
	List(ctx context.Context) ([]domain.Document, error)

	// Content returns the plain-text content of a document.
	Content(ctx context.Context, documentID string) (*domain.FetchedDocument, error)
}
