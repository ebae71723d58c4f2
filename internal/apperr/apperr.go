// Package apperr defines the error taxonomy shared by all request handlers
// and the mapping from error kind to HTTP status.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a request failure.
type Kind int

const (
	// Validation means the client-supplied data failed a required-field check.
	Validation Kind = iota + 1
	// NotFound means the store reported a missing record.
	NotFound
	// Internal covers everything else: store unavailability, malformed
	// JSON, unmapped failures. The cause is logged, never exposed.
	Internal
)

// Error pairs a caller-safe message with an optional underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New returns an Error with no underlying cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap attaches a cause to an Error.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Status maps an error kind to its HTTP status code.
func Status(kind Kind) int {
	switch kind {
	case Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// KindOf extracts the kind from err. Errors outside the taxonomy are Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}
