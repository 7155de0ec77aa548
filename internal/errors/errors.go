// Package errors provides standardized error handling for the pickd
// application. It defines the error types the browser distinguishes between,
// along with helper functions for consistent error creation, wrapping, and
// classification across the application.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Read error kinds
	DirectoryUnreadable
	NotADirectory
	// Spawn error kinds
	EditorSpawnFailed
	// Terminal error kinds
	TerminalModeFailed
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// ReadError represents a directory listing that could not be produced.
// It is recoverable: callers keep their previous listing and surface the
// message instead of exiting.
type ReadError struct {
	ApplicationError
	path string
}

// NewReadError creates a new read error
func NewReadError(msg string, path string, kind ErrorKind, err error) *ReadError {
	return &ReadError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the read error message
func (e *ReadError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the directory path associated with the error
func (e *ReadError) Path() string {
	return e.path
}

// SpawnError represents an external program that could not be launched after
// every fallback was exhausted. It is fatal to the open operation only.
type SpawnError struct {
	ApplicationError
	command string
}

// NewSpawnError creates a new spawn error
func NewSpawnError(msg string, command string, kind ErrorKind, err error) *SpawnError {
	return &SpawnError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		command: command,
	}
}

// Error returns the spawn error message
func (e *SpawnError) Error() string {
	if e.command != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.command, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.command)
	}
	return e.ApplicationError.Error()
}

// Command returns the command associated with the error
func (e *SpawnError) Command() string {
	return e.command
}

// TerminalModeError represents a failure to enter or leave raw mode or the
// alternate screen. The terminal may be unusable afterwards, so this is fatal
// to the whole process.
type TerminalModeError struct {
	ApplicationError
	op string
}

// NewTerminalModeError creates a new terminal mode error
func NewTerminalModeError(op string, err error) *TerminalModeError {
	return &TerminalModeError{
		ApplicationError: ApplicationError{
			msg:  "terminal mode change failed",
			err:  err,
			kind: TerminalModeFailed,
		},
		op: op,
	}
}

// Error returns the terminal mode error message
func (e *TerminalModeError) Error() string {
	if e.op != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.op, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.op)
	}
	return e.ApplicationError.Error()
}

// Op returns the terminal operation associated with the error
func (e *TerminalModeError) Op() string {
	return e.op
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsReadError checks if the error is a directory read error
func IsReadError(err error) bool {
	var readErr *ReadError
	return errors.As(err, &readErr)
}

// IsSpawnError checks if the error is an editor spawn error
func IsSpawnError(err error) bool {
	var spawnErr *SpawnError
	return errors.As(err, &spawnErr)
}

// IsTerminalModeError checks if the error is a terminal mode error
func IsTerminalModeError(err error) bool {
	var termErr *TerminalModeError
	return errors.As(err, &termErr)
}
