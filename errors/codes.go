package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Discovery/resolution errors
const (
	// ErrCodeNotFound indicates a provider name could not be resolved to a factory.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeAlreadyExists indicates a factory is already registered under the name.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
	// ErrCodeFactoryFailed indicates a provider factory returned an error when invoked.
	ErrCodeFactoryFailed ErrorCode = "FACTORY_FAILED"
	// ErrCodeManifestInvalid indicates a service manifest could not be read or parsed.
	ErrCodeManifestInvalid ErrorCode = "MANIFEST_INVALID"
)

// Registry errors
const (
	// ErrCodeRegistryUnavailable indicates the external provider registry is not attached.
	ErrCodeRegistryUnavailable ErrorCode = "REGISTRY_UNAVAILABLE"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeRegistryUnavailable: true,
	ErrCodeNotFound:            false,
	ErrCodeFactoryFailed:       false,
	ErrCodeInternal:            false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
