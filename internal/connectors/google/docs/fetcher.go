// Package docs implements document retrieval for Google Docs.
// Listing goes through the Drive API filtered to Google Docs files;
// content comes from the Docs API with paragraph text extraction.
package docs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"

	"github.com/storyspark-labs/storyspark-cli/internal/connectors/google"
	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
	"github.com/storyspark-labs/storyspark-cli/internal/core/ports/driven"
	"github.com/storyspark-labs/storyspark-cli/internal/logger"
)

// MimeTypeGoogleDoc is the Drive MIME type for Google Docs.
const MimeTypeGoogleDoc = "application/vnd.google-apps.document"

// listFields restricts the Drive response to what the listing needs.
const listFields = "nextPageToken, files(id,name,modifiedTime,webViewLink,iconLink)"

// Ensure Fetcher implements the interface.
var _ driven.DocumentFetcher = (*Fetcher)(nil)

// Fetcher retrieves the user's Google Docs. API services are built
// per call from the token provider so refreshed tokens are picked up.
type Fetcher struct {
	tokens       driven.TokenProvider
	driveLimiter *google.RateLimiter
	docsLimiter  *google.RateLimiter
}

// NewFetcher creates a fetcher backed by the given token provider.
func NewFetcher(tokens driven.TokenProvider) *Fetcher {
	return &Fetcher{
		tokens:       tokens,
		driveLimiter: google.NewRateLimiter(google.ServiceDrive),
		docsLimiter:  google.NewRateLimiter(google.ServiceDocs),
	}
}

// ListDocuments returns the user's Google Docs ordered by
// modification time, newest first. Folders, spreadsheets and other
// Drive file types are excluded by the MIME type filter.
func (f *Fetcher) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	svc, err := google.NewDriveService(ctx, google.NewTokenSource(ctx, f.tokens))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	query := fmt.Sprintf("mimeType='%s' and trashed=false", MimeTypeGoogleDoc)

	var documents []domain.Document
	pageToken := ""
	for {
		if err := f.driveLimiter.Wait(ctx); err != nil {
			return nil, err
		}

		call := svc.Files.List().
			Q(query).
			OrderBy("modifiedTime desc").
			Fields(listFields).
			PageSize(100).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		list, err := call.Do()
		if err != nil {
			return nil, f.classifyError(err, f.driveLimiter)
		}

		for _, file := range list.Files {
			documents = append(documents, fileToDocument(file))
		}

		pageToken = list.NextPageToken
		if pageToken == "" {
			break
		}
	}

	logger.Debug("google/docs: listed %d documents", len(documents))
	return documents, nil
}

// FetchDocument returns the document's title and plain-text content.
func (f *Fetcher) FetchDocument(ctx context.Context, documentID string) (*domain.FetchedDocument, error) {
	svc, err := google.NewDocsService(ctx, google.NewTokenSource(ctx, f.tokens))
	if err != nil {
		return nil, fmt.Errorf("create docs service: %w", err)
	}

	if err := f.docsLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	doc, err := svc.Documents.Get(documentID).Context(ctx).Do()
	if err != nil {
		return nil, f.classifyError(err, f.docsLimiter)
	}

	content := ExtractText(doc.Body)
	logger.Debug("google/docs: fetched %q (%d characters)", doc.Title, len(content))

	return &domain.FetchedDocument{
		ID:      documentID,
		Name:    doc.Title,
		Content: content,
	}, nil
}

// classifyError maps API failures to domain sentinels so the core
// and CLI never see googleapi error types. Rate limit responses feed
// the limiter's backoff.
func (f *Fetcher) classifyError(err error, limiter *google.RateLimiter) error {
	wrapped := google.WrapError(err)
	switch {
	case google.IsUnauthorized(wrapped):
		return fmt.Errorf("%w: %v", domain.ErrAuthExpired, wrapped)
	case google.IsNotFound(wrapped):
		return fmt.Errorf("%w: %v", domain.ErrNotFound, wrapped)
	case google.IsRateLimited(wrapped):
		limiter.RecordRateLimitError(0)
		return fmt.Errorf("%w: %v", domain.ErrRetrieval, wrapped)
	default:
		return fmt.Errorf("%w: %v", domain.ErrRetrieval, wrapped)
	}
}

// fileToDocument converts a Drive file to a domain document.
func fileToDocument(file *drive.File) domain.Document {
	doc := domain.Document{
		ID:          file.Id,
		Name:        file.Name,
		WebViewLink: file.WebViewLink,
		IconLink:    file.IconLink,
	}
	if doc.WebViewLink == "" {
		doc.WebViewLink = WebURL(file.Id)
	}

	if file.ModifiedTime != "" {
		if ts, err := time.Parse(time.RFC3339, file.ModifiedTime); err == nil {
			doc.ModifiedTime = ts
		}
	}

	return doc
}

// ExtractText concatenates the text runs of every paragraph in the
// document body. Non-paragraph structural elements (tables, section
// breaks) and non-text paragraph elements are skipped.
func ExtractText(body *docs.Body) string {
	if body == nil {
		return ""
	}

	var builder strings.Builder
	for _, element := range body.Content {
		if element.Paragraph == nil {
			continue
		}
		for _, pe := range element.Paragraph.Elements {
			if pe.TextRun != nil {
				builder.WriteString(pe.TextRun.Content)
			}
		}
	}
	return builder.String()
}
