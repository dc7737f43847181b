package errors

import (
	stderrors "errors"
	"net/http"
)

// ErrMalformedIdentifier is returned when an id cannot be interpreted as a store key.
var ErrMalformedIdentifier = stderrors.New("malformated id")

// AppError is an error that carries its own HTTP status and user-facing message.
type AppError struct {
	code    int
	message string
}

// New creates an AppError with the given status and message.
func New(code int, message string) *AppError {
	return &AppError{code: code, message: message}
}

func (e *AppError) Error() string { return e.message }

// HTTPCode returns the HTTP status code
func (e *AppError) HTTPCode() int { return e.code }

// Message returns the user-friendly error message
func (e *AppError) Message() string { return e.message }

// Is matches AppErrors by status and message so wrapped copies compare equal.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.code == t.code && e.message == t.message
}

// Predefined error types
var (
	ErrUnauthorized = New(
		http.StatusForbidden,
		"only an admin can make another user an admin",
	)

	ErrMissingRequester = New(
		http.StatusNotFound,
		"requester email is required: send the admin's email as 'requester'",
	)
)

// NewValidation returns a 400 AppError for malformed request input.
func NewValidation(message string) *AppError {
	return New(http.StatusBadRequest, message)
}

// IsMalformedIdentifier reports whether err was caused by an invalid id.
func IsMalformedIdentifier(err error) bool {
	return stderrors.Is(err, ErrMalformedIdentifier)
}

// AsAppError extracts an AppError from err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
