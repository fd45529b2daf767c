package skinerr

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across packages.
var (
	// ErrNotFound is returned when a requested definition, file, or class does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidFormat is returned when XML or configuration has invalid structure.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrAlreadyExists is returned when attempting to register something that already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrCycle is returned when a scope walk or style-hierarchy walk detects a cycle.
	ErrCycle = errors.New("cycle detected")

	// ErrBudgetExhausted is returned when a cooperative walk is asked to resume
	// after its check epoch has gone stale.
	ErrBudgetExhausted = errors.New("check epoch stale")
)

// Error is the structured error type used across skinlang.
//
// Instead of plain errors or one error type per package, every failure is
// captured as an Error carrying the package and operation it occurred in.
// This keeps error handling uniform while remaining compatible with Go's
// wrapping conventions (errors.Is, errors.As, errors.Unwrap).
type Error struct {
	// Package identifies the package where the error originated.
	// Examples: "classmodel", "scope", "checker", "variables".
	Package string

	// Op describes the operation being performed when the error occurred.
	// Examples: "load", "parse", "resolve", "validate".
	Op string

	// Path is the file or resource path involved, if applicable.
	Path string

	// Err is the underlying error that caused this error.
	Err error
}

// Error implements the error interface with a consistent format:
// "package: op [path]: underlying error".
func (e *Error) Error() string {
	var msg string
	if e.Package != "" {
		msg = e.Package + ": "
	}
	if e.Op != "" {
		msg += e.Op
	}
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		if msg != "" {
			msg += ": "
		}
		msg += e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error with the given parameters.
func New(pkg, op, path string, err error) *Error {
	return &Error{Package: pkg, Op: op, Path: path, Err: err}
}

// Wrap wraps an existing error with package and operation context.
// If err is nil, returns nil.
func Wrap(pkg, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Package: pkg, Op: op, Err: err}
}

// WrapPath wraps an existing error with package, operation, and path context.
// If err is nil, returns nil.
func WrapPath(pkg, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Package: pkg, Op: op, Path: path, Err: err}
}

// Errorf creates a new Error with a formatted message as the underlying error.
func Errorf(pkg, op, path, format string, args ...interface{}) *Error {
	return &Error{Package: pkg, Op: op, Path: path, Err: fmt.Errorf(format, args...)}
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsInvalidFormat reports whether err is or wraps ErrInvalidFormat.
func IsInvalidFormat(err error) bool { return errors.Is(err, ErrInvalidFormat) }

// IsCycle reports whether err is or wraps ErrCycle.
func IsCycle(err error) bool { return errors.Is(err, ErrCycle) }
