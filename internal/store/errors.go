package store

import "errors"

// Sentinel errors shared by every record store and file store backend.
// The HTTP layer maps them to status codes with errors.Is.
var (
	// ErrRecordNotFound is returned by Update/Delete when no record
	// matches the given id.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDocumentNotSaved wraps a failed whole-document rewrite; callers
	// must treat the record as not persisted.
	ErrDocumentNotSaved = errors.New("document not saved")

	// ErrBlobRequired is returned when an upload arrives without a file.
	ErrBlobRequired = errors.New("file is required")

	// ErrUnsupportedMediaType is returned for blobs outside the image
	// allow-list. No file is written.
	ErrUnsupportedMediaType = errors.New("only image files can be uploaded")

	// ErrBlobTooLarge is returned for blobs over the configured ceiling.
	// No file is written.
	ErrBlobTooLarge = errors.New("file exceeds the maximum upload size")

	// ErrInvalidFileURL is returned by Remove for URLs that this store
	// never produced; rejected before any filesystem call.
	ErrInvalidFileURL = errors.New("invalid file URL")
)

// Database classification errors for the PostgreSQL backend.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing query")
	ErrScanningRow      = errors.New("error scanning row")
	ErrScanningRows     = errors.New("error scanning rows")
)
