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
	ErrUsage        ErrorCode = "USAGE"
	ErrConfigLoad   ErrorCode = "CONFIG_LOAD"

	// Pattern errors
	ErrPattern ErrorCode = "PATTERN_INVALID"

	// Planning errors
	ErrCollision ErrorCode = "TARGET_COLLISION"
	ErrOverwrite ErrorCode = "TARGET_OVERWRITE"

	// FileSystem errors
	ErrListDir ErrorCode = "DIR_LIST"
	ErrRename  ErrorCode = "RENAME_FAILED"
)

// Process exit codes. These are part of the CLI contract and must stay
// stable: scripts dispatch on them.
const (
	ExitOK        = 0
	ExitUsage     = 1
	ExitCollision = 2
	ExitOverwrite = 3
)

// RenError represents a structured error with code and details
type RenError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RenError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RenError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RenError) Is(target error) bool {
	var targetErr *RenError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RenError with the given code and message
func New(code ErrorCode, message string) *RenError {
	return &RenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RenError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RenError {
	return &RenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RenError
func Wrap(err error, code ErrorCode, message string) *RenError {
	if err == nil {
		return nil
	}
	return &RenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RenError {
	if err == nil {
		return nil
	}
	return &RenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RenError) WithDetail(key string, value interface{}) *RenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var renErr *RenError
	if errors.As(err, &renErr) {
		return renErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RenError
func GetErrorCode(err error) ErrorCode {
	var renErr *RenError
	if errors.As(err, &renErr) {
		return renErr.Code
	}
	return ErrUnknown
}

// ExitCode maps an error to the process exit code reserved for its
// category. Nil maps to ExitOK; anything unrecognized maps to ExitUsage.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch GetErrorCode(err) {
	case ErrCollision:
		return ExitCollision
	case ErrOverwrite:
		return ExitOverwrite
	default:
		return ExitUsage
	}
}
