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

	// Rule parsing errors
	ErrUnknownRuleKind    ErrorCode = "UNKNOWN_RULE_KIND"
	ErrInvalidRegex       ErrorCode = "INVALID_REGEX"
	ErrInvalidDestination ErrorCode = "INVALID_DESTINATION"
	ErrRulesFileRead      ErrorCode = "RULES_FILE_READ"

	// Planning errors
	ErrSourceUnreadable ErrorCode = "SOURCE_UNREADABLE"

	// Execution errors
	ErrDirCreateFailed ErrorCode = "DIR_CREATE_FAILED"
	ErrCopyFailed      ErrorCode = "COPY_FAILED"
	ErrDeleteFailed    ErrorCode = "DELETE_FAILED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// FilemapError represents a structured error with code and details
type FilemapError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FilemapError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FilemapError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FilemapError) Is(target error) bool {
	var targetErr *FilemapError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FilemapError with the given code and message
func New(code ErrorCode, message string) *FilemapError {
	return &FilemapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FilemapError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FilemapError {
	return &FilemapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FilemapError
func Wrap(err error, code ErrorCode, message string) *FilemapError {
	if err == nil {
		return nil
	}
	return &FilemapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FilemapError {
	if err == nil {
		return nil
	}
	return &FilemapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FilemapError) WithDetail(key string, value interface{}) *FilemapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var ferr *FilemapError
	if errors.As(err, &ferr) {
		return ferr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FilemapError
func GetErrorCode(err error) ErrorCode {
	var ferr *FilemapError
	if errors.As(err, &ferr) {
		return ferr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FilemapError
func GetErrorDetails(err error) map[string]interface{} {
	var ferr *FilemapError
	if errors.As(err, &ferr) {
		return ferr.Details
	}
	return nil
}
