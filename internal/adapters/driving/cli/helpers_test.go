package cli

import (
	"context"
	"time"

	"github.com/storyspark-labs/storyspark-cli/internal/adapters/driven/storage/memory"
	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
	"github.com/storyspark-labs/storyspark-cli/internal/core/services"
)

// stubFetcher serves a fixed set of documents.
type stubFetcher struct {
	docs    map[string]*domain.FetchedDocument
	listing []domain.Document
	err     error
}

func (f *stubFetcher) ListDocuments(_ context.Context) ([]domain.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.listing, nil
}

func (f *stubFetcher) FetchDocument(_ context.Context, documentID string) (*domain.FetchedDocument, error) {
	if f.err != nil {
		return nil, f.err
	}
	doc, ok := f.docs[documentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

// identityTransformer returns content unchanged.
type identityTransformer struct{}

func (identityTransformer) Transform(_ context.Context, content string) (string, error) {
	return content, nil
}

// stubCredentialsStore keeps credentials in memory.
type stubCredentialsStore struct {
	creds *domain.Credentials
}

func (s *stubCredentialsStore) Save(_ context.Context, creds domain.Credentials) error {
	s.creds = &creds
	return nil
}

func (s *stubCredentialsStore) Get(_ context.Context) (*domain.Credentials, error) {
	if s.creds == nil {
		return nil, domain.ErrAuthRequired
	}
	copied := *s.creds
	return &copied, nil
}

func (s *stubCredentialsStore) Delete(_ context.Context) error {
	s.creds = nil
	return nil
}

// stubOAuthFlow authorizes without a browser.
type stubOAuthFlow struct {
	creds *domain.Credentials
}

func (f *stubOAuthFlow) Authorize(_ context.Context) (*domain.Credentials, error) {
	return f.creds, nil
}

func (f *stubOAuthFlow) Revoke(_ context.Context, _ string) error {
	return nil
}

// setupTestServices wires the commands to in-memory services and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldAuth := authService
	oldDocuments := documentService
	oldEditor := editorService
	oldHistory := historyService

	fetcher := &stubFetcher{
		listing: []domain.Document{
			{ID: "doc-1", Name: "Test Document 1", ModifiedTime: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
			{ID: "doc-2", Name: "Test Document 2"},
		},
		docs: map[string]*domain.FetchedDocument{
			"doc-1": {ID: "doc-1", Name: "Test Document 1", Content: "hello from doc one"},
		},
	}
	store := memory.NewHistoryStore()
	credsStore := &stubCredentialsStore{creds: &domain.Credentials{
		AccessToken: "token",
		Account:     "writer@example.com",
		Name:        "A Writer",
		Expiry:      time.Now().Add(time.Hour),
	}}
	flow := &stubOAuthFlow{creds: credsStore.creds}

	authService = services.NewAuthService(credsStore, flow)
	documentService = services.NewDocumentService(fetcher)
	editorService = services.NewEditorService(fetcher, identityTransformer{}, store)
	historyService = services.NewHistoryService(store)

	return func() {
		authService = oldAuth
		documentService = oldDocuments
		editorService = oldEditor
		historyService = oldHistory
	}
}
