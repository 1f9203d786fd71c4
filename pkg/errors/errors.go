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
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Environment preconditions
	ErrVaultNotFound   ErrorCode = "VAULT_NOT_FOUND"
	ErrProjectNotFound ErrorCode = "PROJECT_NOT_FOUND"

	// Sync errors
	ErrSourceMissing ErrorCode = "SOURCE_MISSING"
	ErrCopyFailure   ErrorCode = "COPY_FAILURE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// VaultpullError represents a structured error with code and details
type VaultpullError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *VaultpullError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *VaultpullError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *VaultpullError) Is(target error) bool {
	var targetErr *VaultpullError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new VaultpullError with the given code and message
func New(code ErrorCode, message string) *VaultpullError {
	return &VaultpullError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new VaultpullError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *VaultpullError {
	return &VaultpullError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a VaultpullError
func Wrap(err error, code ErrorCode, message string) *VaultpullError {
	if err == nil {
		return nil
	}
	return &VaultpullError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *VaultpullError {
	if err == nil {
		return nil
	}
	return &VaultpullError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *VaultpullError) WithDetail(key string, value interface{}) *VaultpullError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var verr *VaultpullError
	if errors.As(err, &verr) {
		return verr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a VaultpullError
func GetErrorCode(err error) ErrorCode {
	var verr *VaultpullError
	if errors.As(err, &verr) {
		return verr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a VaultpullError
func GetErrorDetails(err error) map[string]interface{} {
	var verr *VaultpullError
	if errors.As(err, &verr) {
		return verr.Details
	}
	return nil
}
