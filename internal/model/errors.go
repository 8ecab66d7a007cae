package model

import (
	"errors"
	"fmt"
)

// ValidationError rejects an operation because a required field is missing
// or out of range. No state changes when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError marks an operation that referenced an id absent from the
// current collection. Callers generally treat it as a no-op, not as fatal.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// StoreError wraps a persistence read/write failure. The in-memory state
// remains authoritative for the session; the change may not survive a
// reload.
type StoreError struct {
	Op  string
	Key string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// IsStore reports whether err wraps a StoreError.
func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
