package apperr

import (
	"errors"
	"net/http"
)

// GenericMessage is what clients see whenever the real failure message must
// not be exposed (production) or no message was supplied at all.
const GenericMessage = "Something went wrong"

// Error is the failure type carried through request handling. StatusCode and
// Message are optional at the origin; StatusOf/MessageOf apply the fallbacks.
type Error struct {
	StatusCode  int
	Message     string
	Operational bool
	Err         error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return GenericMessage
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an operational failure with an explicit status and message.
func New(statusCode int, message string) *Error {
	return &Error{StatusCode: statusCode, Message: message, Operational: true}
}

// Wrap attaches a status and message to an underlying error. The result is
// marked operational: somebody anticipated this failure well enough to shape
// it.
func Wrap(err error, statusCode int, message string) *Error {
	return &Error{StatusCode: statusCode, Message: message, Operational: true, Err: err}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// Internal wraps an unexpected error as a 500. Not operational.
func Internal(err error) *Error {
	return &Error{StatusCode: http.StatusInternalServerError, Err: err}
}

// StatusOf returns the status code declared on err, or 500 when err carries
// none or carries garbage.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.StatusCode >= 100 && appErr.StatusCode <= 599 {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// MessageOf returns the message declared on err, or the generic fallback when
// it is empty. Plain errors expose their Error() string.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		if appErr.Message != "" {
			return appErr.Message
		}
		return GenericMessage
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return GenericMessage
}

// IsOperational reports whether err was deliberately shaped at its origin,
// as opposed to an unexpected fault.
func IsOperational(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Operational
}
