// Package apperr defines the error taxonomy shared by services and handlers.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindCapacityExceeded
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func CapacityExceeded(msg string) *Error {
	return &Error{Kind: KindCapacityExceeded, Message: msg}
}

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf returns the kind of err, or KindInternal for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// StatusCode maps an error kind to its HTTP status. Conflict and
// CapacityExceeded map to 400; existing clients depend on these codes.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation, KindConflict, KindCapacityExceeded:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the client-facing message. Untyped errors collapse to
// a generic message so internals never leak.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return "Server error"
}
