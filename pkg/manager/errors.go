package manager

import (
	"errors"

	"github.com/dmitrymomot/vehiclekit/pkg/registry"
	"github.com/dmitrymomot/vehiclekit/pkg/validate"
)

// The manager surfaces three failure classes to the presentation layer.
// Validation failures carry per-field messages and never reach the network;
// the other two come back from the store collaborator untouched.

// IsValidationFailure reports whether err came from the validation gate.
func IsValidationFailure(err error) bool {
	var verrs validate.Errors
	return errors.As(err, &verrs)
}

// ValidationMessages extracts the per-field messages from a validation
// failure, or nil for any other error.
func ValidationMessages(err error) []string {
	var verrs validate.Errors
	if errors.As(err, &verrs) {
		return verrs.Messages()
	}
	return nil
}

// IsNotFound reports whether the operation targeted an id the store does not
// hold.
func IsNotFound(err error) bool {
	return errors.Is(err, registry.ErrNotFound)
}

// IsTransportFailure reports whether the store was unreachable or answered
// with a non-success status.
func IsTransportFailure(err error) bool {
	return errors.Is(err, registry.ErrUnavailable) || errors.Is(err, registry.ErrUnexpectedStatus)
}
