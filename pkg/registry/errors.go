package registry

import "errors"

var (
	// ErrInvalidConfig indicates the client was constructed with an unusable configuration.
	ErrInvalidConfig = errors.New("invalid registry client configuration")

	// ErrNotFound indicates the requested record does not exist in the store.
	ErrNotFound = errors.New("vehicle record not found")

	// ErrUnavailable indicates the store could not be reached at all.
	ErrUnavailable = errors.New("vehicle store unavailable")

	// ErrUnexpectedStatus indicates the store answered with a non-success status.
	ErrUnexpectedStatus = errors.New("vehicle store returned unexpected status")

	// ErrDecodeResponse indicates the store answered with a body the client could not decode.
	ErrDecodeResponse = errors.New("failed to decode vehicle store response")
)
