// Package sqlite provides the SQLite-backed edit history store.
// It is the opt-in alternative to the JSON file backend for users
// whose history has outgrown whole-file rewrites; append is O(1)
// instead of O(history size). Selected via the history.backend
// config key.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/storyspark-labs/storyspark-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
	"github.com/storyspark-labs/storyspark-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.HistoryStore = (*Store)(nil)

// Store is a SQLite-backed implementation of driven.HistoryStore.
// The position column preserves insertion order so ListAll can return
// newest-first without relying on timestamp resolution.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a SQLite history store under dataDir.
// If dataDir is empty, defaults to ~/.storyspark/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".storyspark", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Append inserts a new record and returns it by value.
func (s *Store) Append(
	ctx context.Context, documentID, documentName string, originalContent *string, editedContent string,
) (*domain.EditRecord, error) {
	record := domain.EditRecord{
		ID:              uuid.New().String(),
		DocumentID:      documentID,
		DocumentName:    documentName,
		Timestamp:       time.Now().UTC(),
		OriginalContent: originalContent,
		EditedContent:   editedContent,
	}

	var original sql.NullString
	if originalContent != nil {
		original = sql.NullString{String: *originalContent, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO edit_history (id, document_id, document_name, created_at, original_content, edited_content)
		VALUES (?, ?, ?, ?, ?, ?)
	`, record.ID, record.DocumentID, record.DocumentName,
		record.Timestamp.Format(time.RFC3339Nano), original, record.EditedContent)
	if err != nil {
		return nil, fmt.Errorf("inserting record: %w", err)
	}

	return &record, nil
}

// ListAll returns every record, newest insertion first.
func (s *Store) ListAll(ctx context.Context) ([]domain.EditRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, document_id, document_name, created_at, original_content, edited_content
		FROM edit_history
		ORDER BY position DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	records := []domain.EditRecord{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}

	return records, nil
}

// FindByID retrieves a single record by its ID.
func (s *Store) FindByID(ctx context.Context, id string) (*domain.EditRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, document_id, document_name, created_at, original_content, edited_content
		FROM edit_history
		WHERE id = ?
	`, id)

	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return record, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanRecord reads one edit_history row into a domain record.
func scanRecord(row scanner) (*domain.EditRecord, error) {
	var (
		record    domain.EditRecord
		createdAt string
		original  sql.NullString
	)

	err := row.Scan(&record.ID, &record.DocumentID, &record.DocumentName,
		&createdAt, &original, &record.EditedContent)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning record: %w", err)
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing timestamp %q: %w", createdAt, err)
	}
	record.Timestamp = ts

	if original.Valid {
		value := original.String
		record.OriginalContent = &value
	}

	return &record, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
