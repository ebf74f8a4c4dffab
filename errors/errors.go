// Package errors provides unified error handling for servicekit.
// It implements structured error types with error codes, HTTP status mapping,
// and retryable detection so callers can branch on kind instead of message text.
package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// NotFound creates a new AppError for a provider name that could not be resolved.
func NotFound(kind, name string) *AppError {
	details := map[string]any{"kind": kind}
	if name != "" {
		details["name"] = name
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("The requested %s was not found.", kind),
		HTTPStatus: http.StatusNotFound, Retryable: false, Details: details,
	}
}

// AlreadyExists creates a new AppError for a name that is already registered.
func AlreadyExists(kind, name string) *AppError {
	return &AppError{
		Code: ErrCodeAlreadyExists, Message: fmt.Sprintf("A %s named %q is already registered.", kind, name),
		HTTPStatus: http.StatusConflict, Retryable: false,
		Details: map[string]any{"kind": kind, "name": name},
	}
}

// FactoryFailed creates a new AppError for a provider factory that returned an error.
func FactoryFailed(name string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeFactoryFailed, Message: fmt.Sprintf("Provider factory %q failed.", name),
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
		Details: map[string]any{"name": name}, Cause: cause,
	}
}

// ManifestInvalid creates a new AppError for an unreadable or malformed manifest.
func ManifestInvalid(path string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeManifestInvalid, Message: fmt.Sprintf("Service manifest %q could not be read.", path),
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
		Details: map[string]any{"path": path}, Cause: cause,
	}
}

// RegistryUnavailable creates a new AppError for an unattached provider registry.
func RegistryUnavailable() *AppError {
	return &AppError{
		Code: ErrCodeRegistryUnavailable, Message: "The provider registry is not attached.",
		HTTPStatus: http.StatusServiceUnavailable, Retryable: true,
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		HTTPStatus: http.StatusBadRequest, Retryable: false, Details: details,
	}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"field": field},
	}
}

// Internal creates a new AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}
