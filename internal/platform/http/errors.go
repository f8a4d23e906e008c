package http

import (
	"errors"
	"net/http"
)

// Error carries the status a handler wants to answer with. When Payload is
// set it is rendered as the response body instead of {"error": Message}.
type Error struct {
	StatusCode int
	Message    string
	Payload    any
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return http.StatusText(e.StatusCode)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) WithPayload(payload any) *Error {
	e.Payload = payload
	return e
}

func New(statusCode int, message string, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

func NewNotFound(message string, err error) *Error {
	return New(http.StatusNotFound, message, err)
}

func NewBadRequest(message string, err error) *Error {
	return New(http.StatusBadRequest, message, err)
}

func NewConflict(message string, err error) *Error {
	return New(http.StatusConflict, message, err)
}

func NewInternalServerError(message string, err error) *Error {
	return New(http.StatusInternalServerError, message, err)
}

// NewValidationFailed answers 400 with payload as the body, typically the
// rendered violations.
func NewValidationFailed(payload any, err error) *Error {
	return NewBadRequest("Validation failed", err).WithPayload(payload)
}

// StatusOf reports the status err maps to. Anything that is not an *Error
// is a 500.
func StatusOf(err error) int {
	var httpErr *Error
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return http.StatusInternalServerError
}
