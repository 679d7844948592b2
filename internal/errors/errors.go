// Package errors provides typed errors for the calculator's edges.
// The pricing engine itself never returns errors; these are raised by
// configuration, scenario loading, workspace edits and the CLI.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates malformed user input (flags, presets, enum values)
	TypeInput Type = "INPUT_ERROR"

	// TypeParsing indicates a scenario file could not be parsed
	TypeParsing Type = "PARSING_ERROR"

	// TypeConfig indicates an invalid configuration
	TypeConfig Type = "CONFIG_ERROR"

	// TypeNotFound indicates a tier or preset that does not exist
	TypeNotFound Type = "NOT_FOUND"

	// TypeNotSupported indicates an unsupported format or file type
	TypeNotSupported Type = "NOT_SUPPORTED"

	// TypeLimit indicates the capacity tier limit was reached
	TypeLimit Type = "LIMIT_REACHED"
)

// Error is a categorized error with optional context
type Error struct {
	Type    Type           `json:"type"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Context map[string]any `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext attaches a key/value pair and returns the same error
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...any) *Error {
	return &Error{Type: errType, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a category and message
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{Type: errType, Message: message, Cause: cause}
}

// Wrapf wraps an error with a formatted message
func Wrapf(errType Type, cause error, format string, args ...any) *Error {
	return &Error{Type: errType, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// IsType reports whether err, or any error it wraps, is an *Error of type t
func IsType(err error, t Type) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Config creates a configuration error
func Config(message string) *Error {
	return New(TypeConfig, message)
}

// NotFound creates a not found error
func NotFound(kind, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", kind, identifier)
}

// NotSupported creates a not supported error
func NotSupported(what string) *Error {
	return Newf(TypeNotSupported, "not supported: %s", what)
}

// Limit creates a tier-limit error
func Limit(max int) *Error {
	return Newf(TypeLimit, "limit reached (%d instances)", max).WithContext("max", max)
}
