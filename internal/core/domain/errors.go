package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Authentication Errors.

	// ErrAuthRequired indicates no stored credentials exist.
	// The user must run login before document operations.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthExpired indicates the authentication has expired and refresh failed.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrAuthInvalid indicates the authentication credentials are invalid.
	ErrAuthInvalid = errors.New("authentication invalid")

	// Retrieval Errors.

	// ErrRetrieval indicates the remote document fetch failed.
	// Retrieval failures are surfaced to the caller unmodified and
	// never retried inside the core.
	ErrRetrieval = errors.New("document retrieval failed")
)
