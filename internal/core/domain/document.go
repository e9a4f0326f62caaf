package domain

import "time"

// Document represents a Google Doc as listed from the user's Drive.
// It carries display metadata only; content is fetched separately.
type Document struct {
	// ID is the Google document identifier.
	ID string

	// Name is the document title as shown in Drive.
	Name string

	// ModifiedTime is when the document was last modified.
	ModifiedTime time.Time

	// WebViewLink is the browser URL for the document.
	WebViewLink string

	// IconLink is the URL of the document's type icon.
	IconLink string
}

// FetchedDocument is a document together with its extracted plain text.
// Produced by the retrieval layer, consumed by the editing flow.
type FetchedDocument struct {
	// ID is the Google document identifier.
	ID string

	// Name is the document title at fetch time.
	Name string

	// Content is the concatenated plain text of the document body.
	Content string
}
