// Package errors provides structured error types for the composite
// application surfaces.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - NOT_FOUND_*: Resource not found
//   - NOT_REPRESENTABLE_*: Encoding conversion failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidGraph, "duplicate edge %s", e)
//	if errors.Is(err, errors.ErrCodeInvalidGraph) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeStorage, origErr, "load graph %s", name)
package errors

import (
	"errors"
	"fmt"

	compencoding "github.com/matzehuels/composite/pkg/encoding"
	"github.com/matzehuels/composite/pkg/graph"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidGraph    Code = "INVALID_GRAPH"
	ErrCodeInvalidEncoding Code = "INVALID_ENCODING"
	ErrCodeInvalidSubset   Code = "INVALID_SUBSET"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeSelfLoop        Code = "SELF_LOOP"

	// Resource not found errors
	ErrCodeNotFound      Code = "NOT_FOUND"
	ErrCodeNodeNotFound  Code = "NODE_NOT_FOUND"
	ErrCodeGraphNotFound Code = "GRAPH_NOT_FOUND"
	ErrCodeMissingNodes  Code = "MISSING_NODES"

	// Encoding conversion errors
	ErrCodeNotLinear Code = "NOT_REPRESENTABLE_LINEAR"
	ErrCodeNotTree   Code = "NOT_REPRESENTABLE_TREE"
	ErrCodeMalformed Code = "MALFORMED_ENCODING"

	// Infrastructure errors
	ErrCodeStorage Code = "STORAGE_ERROR"
	ErrCodeCache   Code = "CACHE_ERROR"
	ErrCodeRender  Code = "RENDER_ERROR"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// GetCode extracts the error code from an error, if available. Plain
// domain sentinels are classified by [Classify]; anything else maps to
// ErrCodeInternal.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Classify(err)
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

// Classify maps the sentinel errors of the graph and encoding packages to
// their structured codes, so the CLI and API boundaries can translate
// domain failures without knowing the sentinels themselves.
func Classify(err error) Code {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, graph.ErrMissingNodes):
		return ErrCodeMissingNodes
	case errors.Is(err, graph.ErrNodeNotFound):
		return ErrCodeNodeNotFound
	case errors.Is(err, graph.ErrSelfLoop):
		return ErrCodeSelfLoop
	case errors.Is(err, graph.ErrUnsupportedType):
		return ErrCodeUnsupported
	case errors.Is(err, graph.ErrInvalidSubset):
		return ErrCodeInvalidSubset
	case errors.Is(err, compencoding.ErrNotLinear):
		return ErrCodeNotLinear
	case errors.Is(err, compencoding.ErrNoRoot),
		errors.Is(err, compencoding.ErrMultipleRoots),
		errors.Is(err, compencoding.ErrUnreachableNodes):
		return ErrCodeNotTree
	case errors.Is(err, compencoding.ErrMalformedMatrix):
		return ErrCodeMalformed
	default:
		return ErrCodeInternal
	}
}
