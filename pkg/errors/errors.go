// Package errors provides structured error types for shipdeps.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library packages
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - MISSING_LIBRARY: A soname has no resolved path
//   - PARSE_ERROR / LDD_FAILED: Dependency-closure extraction failures
//   - IO_ERROR: Filesystem failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidPath, "not a file: %s", path)
//	if errors.Is(err, errors.ErrCodeInvalidPath) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "copy %s", src)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidPath    Code = "INVALID_PATH"
	ErrCodeInvalidPattern Code = "INVALID_PATTERN"

	// Dependency resolution errors
	ErrCodeMissingLibrary Code = "MISSING_LIBRARY"
	ErrCodeParse          Code = "PARSE_ERROR"
	ErrCodeLddFailed      Code = "LDD_FAILED"

	// Filesystem errors
	ErrCodeIO Code = "IO_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// MissingLibrariesError reports sonames the dynamic linker could not
// resolve to a path. It carries every missing name, in the order they
// appeared in the linker output, so callers can report all of them at
// once rather than failing on the first.
type MissingLibrariesError struct {
	Names []string // missing sonames, input order, never empty
}

// Error implements the error interface.
func (e *MissingLibrariesError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("library not found: %s", e.Names[0])
	}
	return fmt.Sprintf("libraries not found: %s", strings.Join(e.Names, ", "))
}
