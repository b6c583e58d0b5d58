package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAuthRequired is returned when a mutation is attempted without an
// authenticated session.
var ErrAuthRequired = errors.New("authentication required")

// ValidationError reports missing or malformed input fields. No write is
// attempted once one is raised.
type ValidationError struct {
	Reason string
	Fields []string
}

func NewValidation(reason string, fields ...string) *ValidationError {
	return &ValidationError{Reason: reason, Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return e.Reason + ": " + strings.Join(e.Fields, ", ")
}

// AsValidation unwraps err into a ValidationError, or returns nil.
func AsValidation(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// PersistenceError wraps a failed store write or read. Callers surface it as a
// transient, retryable condition.
type PersistenceError struct {
	Op  string
	Err error
}

func Persistence(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
