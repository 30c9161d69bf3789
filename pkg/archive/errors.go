package archive

import "errors"

// Package-specific errors
var (
	// ErrInvalidConfig is returned when a required configuration field is missing.
	ErrInvalidConfig = errors.New("invalid archive configuration")

	// ErrInvalidName is returned for empty names or names escaping the archive root.
	ErrInvalidName = errors.New("invalid archive name")

	// ErrStoreFailed is returned when the document could not be persisted.
	ErrStoreFailed = errors.New("failed to store document")

	// ErrAccessDenied is returned when the backing service rejects the credentials.
	ErrAccessDenied = errors.New("access denied by storage service")

	// ErrBucketNotFound is returned when the configured bucket does not exist.
	ErrBucketNotFound = errors.New("bucket not found")
)
