package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error for HTTP status mapping
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindDuplicate
	KindInvalidCredentials
	KindNotFound
	KindInsufficientInventory
	KindConflict
)

// Error is the application error carried from services to the HTTP layer
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports a missing or malformed input field
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Duplicate reports a unique-field collision
func Duplicate(format string, args ...interface{}) *Error {
	return &Error{Kind: KindDuplicate, Message: fmt.Sprintf(format, args...)}
}

// InvalidCredentials reports a failed login attempt
func InvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Message: "invalid credentials"}
}

// NotFound reports an id that did not resolve
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// InsufficientInventory reports a source hospital that cannot cover a transfer
func InsufficientInventory(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInsufficientInventory, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a delete blocked by live references
func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected fault
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf extracts the Kind from any error chain
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether the error chain carries the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps an error to the status code of the response envelope
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindDuplicate, KindInsufficientInventory, KindConflict:
		return http.StatusBadRequest
	case KindInvalidCredentials:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
