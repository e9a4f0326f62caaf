// Package file provides the JSON-file implementation of the edit
// history store. The whole collection is the unit of durability: one
// file holding a JSON array of records, newest first. Every append
// rewrites the file. That is fine at single-user history scale and is
// the canonical persisted layout; larger histories belong in the
// sqlite backend.
package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
	"github.com/storyspark-labs/storyspark-cli/internal/core/ports/driven"
	"github.com/storyspark-labs/storyspark-cli/internal/logger"
)

// historyFileName is the single durable slot for the collection.
const historyFileName = "history.json"

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore persists edit records as a JSON array on disk.
type HistoryStore struct {
	mu       sync.Mutex
	filePath string
}

// NewHistoryStore creates a file-backed history store under dataDir.
// If dataDir is empty, defaults to ~/.storyspark.
func NewHistoryStore(dataDir string) (*HistoryStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dataDir = filepath.Join(home, ".storyspark")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, err
	}

	return &HistoryStore{
		filePath: filepath.Join(dataDir, historyFileName),
	}, nil
}

// Append creates a new record ahead of all existing ones and rewrites
// the collection. The returned record is a copy; callers never see
// the store's internal slice.
func (s *HistoryStore) Append(
	_ context.Context, documentID, documentName string, originalContent *string, editedContent string,
) (*domain.EditRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.load()

	record := domain.EditRecord{
		ID:              uuid.New().String(),
		DocumentID:      documentID,
		DocumentName:    documentName,
		Timestamp:       time.Now().UTC(),
		OriginalContent: originalContent,
		EditedContent:   editedContent,
	}

	updated := make([]domain.EditRecord, 0, len(records)+1)
	updated = append(updated, record)
	updated = append(updated, records...)

	if err := s.save(updated); err != nil {
		return nil, err
	}

	return &record, nil
}

// ListAll returns every record, newest first. A missing or corrupt
// file yields an empty slice.
func (s *HistoryStore) ListAll(_ context.Context) ([]domain.EditRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

// FindByID scans the collection for a record with the given ID.
func (s *HistoryStore) FindByID(_ context.Context, id string) (*domain.EditRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.load() {
		if record.ID == id {
			found := record
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Path returns the history file path.
func (s *HistoryStore) Path() string {
	return s.filePath
}

// load reads the collection from disk (caller must hold lock).
// Decode failures degrade to an empty collection: a corrupt history
// must never block editing. The condition is logged, not surfaced.
func (s *HistoryStore) load() []domain.EditRecord {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("history: reading %s: %v", s.filePath, err)
		}
		return []domain.EditRecord{}
	}

	var records []domain.EditRecord
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("history: undecodable collection at %s, treating as empty: %v", s.filePath, err)
		return []domain.EditRecord{}
	}

	if records == nil {
		records = []domain.EditRecord{}
	}
	return records
}

// save writes the full collection (caller must hold lock).
func (s *HistoryStore) save(records []domain.EditRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}
