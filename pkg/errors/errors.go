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
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Discovery errors
	ErrSourceNotFound   ErrorCode = "SOURCE_NOT_FOUND"
	ErrCategoryRead     ErrorCode = "CATEGORY_READ"
	ErrArtifactNotFound ErrorCode = "ARTIFACT_NOT_FOUND"

	// Reconcile errors
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrDestExists    ErrorCode = "DEST_EXISTS"
	ErrNotSymlink    ErrorCode = "NOT_SYMLINK"
	ErrWrongTarget   ErrorCode = "WRONG_TARGET"
	ErrSymlinkRemove ErrorCode = "SYMLINK_REMOVE"
)

// SuperlinkError represents a structured error with code and details
type SuperlinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SuperlinkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SuperlinkError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SuperlinkError) Is(target error) bool {
	var targetErr *SuperlinkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SuperlinkError with the given code and message
func New(code ErrorCode, message string) *SuperlinkError {
	return &SuperlinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SuperlinkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SuperlinkError {
	return &SuperlinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SuperlinkError
func Wrap(err error, code ErrorCode, message string) *SuperlinkError {
	if err == nil {
		return nil
	}
	return &SuperlinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SuperlinkError {
	if err == nil {
		return nil
	}
	return &SuperlinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SuperlinkError) WithDetail(key string, value interface{}) *SuperlinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var slErr *SuperlinkError
	if errors.As(err, &slErr) {
		return slErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SuperlinkError
func GetErrorCode(err error) ErrorCode {
	var slErr *SuperlinkError
	if errors.As(err, &slErr) {
		return slErr.Code
	}
	return ErrUnknown
}
