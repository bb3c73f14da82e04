// Package errors provides structured error types for the prosstt tools.
//
// The lineage core reports failures as sentinel errors. This package gives
// them, and every failure found at the boundary (files, flags), a
// machine-readable code so the CLI can report them consistently:
//   - INVALID_*: Input validation failures
//   - UNKNOWN_BRANCH, DIMENSION_MISMATCH: Topology queries and payloads
//   - FILE_NOT_FOUND: Missing topology descriptions
//   - INTERNAL_*: Defects in the core itself
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "invalid branch id: %q", id)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Attach a code to a lineage error
//	err = errors.FromLineage(err)
package errors

import (
	"errors"
	"fmt"

	"github.com/scottgigante/prosstt/pkg/lineage"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidTopology Code = "INVALID_TOPOLOGY"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Topology query and payload errors
	ErrCodeUnknownBranch     Code = "UNKNOWN_BRANCH"
	ErrCodeDimensionMismatch Code = "DIMENSION_MISMATCH"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

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
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// lineageCodes maps lineage sentinels to codes. Broken chains and timezone
// inversions are defects in the core, not bad input.
var lineageCodes = []struct {
	sentinel error
	code     Code
}{
	{lineage.ErrMalformedTopology, ErrCodeInvalidTopology},
	{lineage.ErrUnknownBranch, ErrCodeUnknownBranch},
	{lineage.ErrDimensionMismatch, ErrCodeDimensionMismatch},
	{lineage.ErrBrokenChain, ErrCodeInternal},
	{lineage.ErrTimezoneInversion, ErrCodeInternal},
}

// FromLineage attaches a code to an error returned by the lineage package.
// Errors that already carry a code, and nil, are returned unchanged. Other
// unrecognized errors are coded INTERNAL_ERROR.
func FromLineage(err error) error {
	if err == nil || GetCode(err) != "" {
		return err
	}
	for _, lc := range lineageCodes {
		if errors.Is(err, lc.sentinel) {
			return &Error{Code: lc.code, Message: "lineage", Cause: err}
		}
	}
	return &Error{Code: ErrCodeInternal, Message: "lineage", Cause: err}
}
