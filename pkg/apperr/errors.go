// Package apperr defines the sentinel errors shared across layers.
// Callers match them with errors.Is.
package apperr

import "errors"

var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal error")

	// ErrInvalidToken covers every token failure mode (malformed, bad
	// signature, expired) so callers cannot tell which check failed.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Error pairs a sentinel with a user-facing message. errors.Is(err, kind)
// still matches through Unwrap.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// New wraps kind with a message suitable for a response body.
func New(kind error, msg string) error {
	return &Error{kind: kind, msg: msg}
}
