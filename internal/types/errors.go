package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a namespaced error code for jules-action errors.
type ErrorCode string

// Configuration error codes
const (
	CONFIG_LOAD_FAILED       ErrorCode = "CONFIG_LOAD_FAILED"
	CONFIG_PARSE_FAILED      ErrorCode = "CONFIG_PARSE_FAILED"
	CONFIG_VALIDATION_FAILED ErrorCode = "CONFIG_VALIDATION_FAILED"
	CONFIG_MISSING_API_KEY   ErrorCode = "CONFIG_MISSING_API_KEY"
	CONFIG_MISSING_TOKEN     ErrorCode = "CONFIG_MISSING_TOKEN"
	CONFIG_MISSING_REPO      ErrorCode = "CONFIG_MISSING_REPO"
)

// Jules API error codes. Transport and HTTP-status failures carry their own
// typed errors in internal/jules; only payload decoding uses a code here.
const (
	JULES_RESPONSE_INVALID ErrorCode = "JULES_RESPONSE_INVALID"
)

// Hosting-platform error codes
const (
	GITHUB_EVENT_NOT_FOUND ErrorCode = "GITHUB_EVENT_NOT_FOUND"
	GITHUB_EVENT_INVALID   ErrorCode = "GITHUB_EVENT_INVALID"
	GITHUB_COMMENT_FAILED  ErrorCode = "GITHUB_COMMENT_FAILED"
)

// ActionError represents a structured error with error code, message, and optional cause.
// It supports error wrapping so call sites can classify failures by code.
type ActionError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface, returning a formatted error message.
// Format: "[CODE] message" or "[CODE] message: cause" if cause exists.
func (e *ActionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for error unwrapping chains.
func (e *ActionError) Unwrap() error {
	return e.Cause
}

// Is checks if the target error matches this error by error code.
func (e *ActionError) Is(target error) bool {
	var actionErr *ActionError
	if errors.As(target, &actionErr) {
		return e.Code == actionErr.Code
	}
	return false
}

// NewError creates a new ActionError with the given code and message.
func NewError(code ErrorCode, message string) *ActionError {
	return &ActionError{
		Code:    code,
		Message: message,
	}
}

// WrapError creates a new ActionError that wraps an existing error.
// The wrapped error is accessible via Unwrap() for error chain inspection.
func WrapError(code ErrorCode, message string, cause error) *ActionError {
	return &ActionError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsConfigError reports whether err carries one of the configuration error codes.
// Configuration errors are fatal to the invocation and must never be rendered
// as a user-facing comment.
func IsConfigError(err error) bool {
	var actionErr *ActionError
	if !errors.As(err, &actionErr) {
		return false
	}
	switch actionErr.Code {
	case CONFIG_LOAD_FAILED, CONFIG_PARSE_FAILED, CONFIG_VALIDATION_FAILED,
		CONFIG_MISSING_API_KEY, CONFIG_MISSING_TOKEN, CONFIG_MISSING_REPO,
		GITHUB_EVENT_NOT_FOUND, GITHUB_EVENT_INVALID:
		return true
	}
	return false
}
