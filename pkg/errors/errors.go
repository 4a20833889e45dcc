package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Manifest errors
	ErrManifestParse   ErrorCode = "MANIFEST_PARSE"
	ErrManifestInvalid ErrorCode = "MANIFEST_INVALID"
	ErrManifestDrift   ErrorCode = "MANIFEST_DRIFT"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrFileRemove   ErrorCode = "FILE_REMOVE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// filesystemCodes are the codes that make up the FilesystemError family.
var filesystemCodes = map[ErrorCode]bool{
	ErrFileNotFound: true,
	ErrFileAccess:   true,
	ErrFileRead:     true,
	ErrFileWrite:    true,
	ErrFileRemove:   true,
	ErrDirCreate:    true,
}

// AgentkitError represents a structured error with code and details
type AgentkitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AgentkitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AgentkitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AgentkitError) Is(target error) bool {
	var targetErr *AgentkitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AgentkitError with the given code and message
func New(code ErrorCode, message string) *AgentkitError {
	return &AgentkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AgentkitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AgentkitError {
	return &AgentkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AgentkitError
func Wrap(err error, code ErrorCode, message string) *AgentkitError {
	if err == nil {
		return nil
	}
	return &AgentkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AgentkitError {
	if err == nil {
		return nil
	}
	return &AgentkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AgentkitError) WithDetail(key string, value interface{}) *AgentkitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Join combines several errors into one, dropping nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var agentErr *AgentkitError
	if errors.As(err, &agentErr) {
		return agentErr.Code == code
	}
	return false
}

// IsFilesystemError reports whether err carries one of the filesystem codes.
func IsFilesystemError(err error) bool {
	var agentErr *AgentkitError
	if errors.As(err, &agentErr) {
		return filesystemCodes[agentErr.Code]
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AgentkitError
func GetErrorCode(err error) ErrorCode {
	var agentErr *AgentkitError
	if errors.As(err, &agentErr) {
		return agentErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an AgentkitError
func GetErrorDetails(err error) map[string]interface{} {
	var agentErr *AgentkitError
	if errors.As(err, &agentErr) {
		return agentErr.Details
	}
	return nil
}
