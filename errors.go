package carteira

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by dispatcher operations. Callers are expected to
// test them with errors.Is and turn them into user-facing messages.
var (
	// ErrAssetNotFound is returned when an operation references an asset
	// code absent from the snapshot.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrDuplicateAsset is returned by AddAsset when the code is already
	// present in the snapshot.
	ErrDuplicateAsset = errors.New("asset already exists")

	// ErrIndexOutOfRange is returned when a transaction or distribution
	// index is no longer valid (a stale reference after another edit).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrCashMovementNotFound is returned when an update references a
	// cash-movement id absent from the snapshot.
	ErrCashMovementNotFound = errors.New("cash movement not found")

	// ErrNoSnapshot is returned by a Persister's Load when no snapshot has
	// been stored yet (first run).
	ErrNoSnapshot = errors.New("no snapshot stored")
)

// ValidationError reports a missing or invalid field at the data-entry edge.
// The operation carrying the invalid record is never dispatched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validationf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
