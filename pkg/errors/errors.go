// Package errors provides typed errors for memo
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates a configuration error
	ErrConfig ErrorType = iota
	// ErrValidation indicates an input validation error
	ErrValidation
	// ErrInput indicates malformed command line input
	ErrInput
	// ErrCanceled indicates work stopped because its context ended
	ErrCanceled
)

// MemoError is the base error type for all memo errors
type MemoError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns the error message
func (e *MemoError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", errorTypeString(e.Type), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", errorTypeString(e.Type), e.Message)
}

// Unwrap returns the underlying cause
func (e *MemoError) Unwrap() error {
	return e.Cause
}

// New creates a new MemoError
func New(errType ErrorType, message string, cause error) *MemoError {
	return &MemoError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context to the error
func (e *MemoError) WithContext(key string, value interface{}) *MemoError {
	e.Context[key] = value
	return e
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var memoErr *MemoError
	if err == nil {
		return false
	}
	if errors.As(err, &memoErr) {
		return memoErr.Type == errType
	}
	return false
}

// ExitCode maps an error to a process exit code.
// Usage problems exit with 2, everything else with 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var memoErr *MemoError
	if !errors.As(err, &memoErr) {
		return 1
	}

	switch memoErr.Type {
	case ErrConfig, ErrValidation, ErrInput:
		return 2
	default:
		return 1
	}
}

func errorTypeString(et ErrorType) string {
	switch et {
	case ErrConfig:
		return "CONFIG"
	case ErrValidation:
		return "VALIDATION"
	case ErrInput:
		return "INPUT"
	case ErrCanceled:
		return "CANCELED"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *MemoError {
	return New(ErrConfig, message, cause)
}

// ValidationError creates a validation error
func ValidationError(message string, cause error) *MemoError {
	return New(ErrValidation, message, cause)
}

// InputError creates an input error
func InputError(message string, cause error) *MemoError {
	return New(ErrInput, message, cause)
}

// CanceledError creates a cancellation error
func CanceledError(message string, cause error) *MemoError {
	return New(ErrCanceled, message, cause)
}
