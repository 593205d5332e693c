// Package apperr defines the error taxonomy shared by the service and API
// layers: validation failures, storage failures, and not-found.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound marks lookups that resolved to nothing where the caller
// required a result (e.g. GET by id over HTTP). Inside the core, absence is
// modelled as a nil note, not as this error.
var ErrNotFound = errors.New("not found")

// ValidationError reports a domain rule violation. Message is the exact
// user-facing string; no mutation has occurred when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is (or wraps) a ValidationError and
// returns it when so.
func IsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// StorageError wraps an I/O or corruption failure from the store. It is
// never swallowed on the way up; the failed write is treated as not having
// happened.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage wraps err as a StorageError, passing nil through.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
