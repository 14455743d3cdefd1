package types

import (
	"errors"
	"fmt"
)

// ErrorCode classifies every failure the SDK can surface.
type ErrorCode string

const (
	// ErrValidation marks input rejected locally before any network call.
	ErrValidation ErrorCode = "VALIDATION"
	// ErrRemote marks a non-2xx HTTP response or a transport-level
	// failure (HTTPStatus 0, Cause holds the underlying error).
	ErrRemote ErrorCode = "REMOTE"
	// ErrApplication marks a 2xx HTTP response whose envelope statusCode
	// is not the success value; Message carries the service message.
	ErrApplication ErrorCode = "APPLICATION"
	// ErrProcessingFailed marks a job the service reported as failed.
	ErrProcessingFailed ErrorCode = "PROCESSING_FAILED"
	// ErrTimeout marks a polling budget exhausted without a terminal status.
	ErrTimeout ErrorCode = "TIMEOUT"
)

// Error is the structured error returned by every SDK operation.
type Error struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	HTTPStatus int       `json:"http_status,omitempty"`
	Retryable  bool      `json:"retryable"`
	Endpoint   string    `json:"endpoint,omitempty"`
	Cause      error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithHTTPStatus sets the HTTP status code.
func (e *Error) WithHTTPStatus(status int) *Error {
	e.HTTPStatus = status
	return e
}

// WithRetryable marks the error as retryable.
func (e *Error) WithRetryable(retryable bool) *Error {
	e.Retryable = retryable
	return e
}

// WithEndpoint records the endpoint the error originated from.
func (e *Error) WithEndpoint(endpoint string) *Error {
	e.Endpoint = endpoint
	return e
}

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) ErrorCode {
	if e, ok := AsError(err); ok {
		return e.Code
	}
	return ""
}

// IsErrorCode checks whether err carries the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	if e, ok := AsError(err); ok {
		return e.Retryable
	}
	return false
}
