package domain

import "time"

// EditRecord is one completed transformation of one document at one
// point in time. Records are immutable once created: the store only
// appends and reads, never updates.
//
// The JSON field names are the persisted history schema. The file
// backend stores a single JSON array of these, newest-first.
type EditRecord struct {
	// ID is the unique record identifier, generated at creation.
	ID string `json:"id"`

	// DocumentID identifies the source document. It is not enforced
	// as a reference; the document may no longer exist.
	DocumentID string `json:"documentId"`

	// DocumentName is the display name captured at creation time.
	// It is a snapshot and goes stale if the document is renamed.
	DocumentName string `json:"documentName"`

	// Timestamp is the creation time. Serialised as RFC 3339.
	Timestamp time.Time `json:"timestamp"`

	// OriginalContent is the pre-transformation text. Nil is a valid
	// state: retrieval succeeded but the original was not captured.
	OriginalContent *string `json:"originalContent,omitempty"`

	// EditedContent is the transformation output.
	EditedContent string `json:"editedContent"`
}
