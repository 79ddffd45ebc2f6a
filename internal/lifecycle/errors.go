// Package lifecycle implements status state machines of offers and their
// recruitment steps, together with rules propagating status between them.
package lifecycle

import "errors"

var (
	// ErrNotFound is returned when offer, step or referenced record does not exist
	ErrNotFound = errors.New("not found")
	// ErrPermissionDenied is returned when caller does not own the offer or
	// offer transition guard fails
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidInput is returned when attributes are rejected before persisting
	ErrInvalidInput = errors.New("invalid input")
)
