package services

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both a genuinely absent entity and an entity owned by
// another workshop or customer. The two cases are deliberately
// indistinguishable so callers cannot probe for records across tenants.
var ErrNotFound = errors.New("record not found")

// ValidationError marks malformed or out-of-range input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ConsistencyError marks a stored entity graph that violates its ownership
// invariants, e.g. an item whose session belongs to a different customer.
// Aggregation fails closed when it is detected.
type ConsistencyError struct {
	Reason string
}

func (e *ConsistencyError) Error() string {
	return "inconsistent ledger state: " + e.Reason
}

// StorageError wraps a durable-store failure. It is surfaced as-is and
// never retried inside the core.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func wrapStorage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
