// Package errors provides sentinel errors and error types for the chess core.
// It defines the failure kinds surfaced by the board, the position codec and
// move application, and structured error types that preserve context while
// allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error kinds.
var (
	// ErrOutOfRange indicates a square, rank or file outside the board.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidFormat indicates an unparseable coordinate or position text.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrIllegalMove indicates a move that is not in the current move list.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoHistory indicates an undo or redo with nothing to step to.
	ErrNoHistory = errors.New("no history")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// RangeError reports an index outside the board bounds.
type RangeError struct {
	What  string // "square", "rank", "file"
	Value int
}

// Error returns a formatted error message.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d: %v", e.What, e.Value, ErrOutOfRange)
}

// Unwrap returns ErrOutOfRange so errors.Is() matches the sentinel.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// ParseError represents a decoding failure of coordinate or position text.
type ParseError struct {
	Err      error  // The underlying error
	Field    string // Position field or "coordinate"
	Input    string // The text that failed to parse
	Expected string // What was expected (optional)
}

// Error returns a formatted error message with field and input context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Expected, e.Input))
	} else if e.Input != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Input))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// MoveError wraps errors with move context: the offending text and the ply
// at which it was attempted.
type MoveError struct {
	Err      error  // The underlying error
	MoveText string // The move text that caused the error
	Ply      int    // Ply number where the error occurred (0 if unknown)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	parts = append(parts, fmt.Sprintf("move %q", e.MoveText))

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Is reports whether err matches target. It re-exports the standard library
// function so callers need only this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// New re-exports errors.New.
func New(text string) error {
	return errors.New(text)
}

// As re-exports errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
