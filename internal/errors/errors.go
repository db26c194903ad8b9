// Package errors provides sentinel errors and custom error types for the gitty library.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrParse indicates that captured git output did not match the shape
	// expected by the selected transform
	ErrParse = errors.New("unparseable git output")

	// ErrNotARepository indicates that no git repository was found at a path
	ErrNotARepository = errors.New("not a git repository")

	// ErrUnknownCommand indicates that no transform is registered for a command name
	ErrUnknownCommand = errors.New("unknown command")
)

// ParseError represents a failure to parse captured git output.
// Transform names the parser that failed (status, commit, log, ...).
type ParseError struct {
	Transform string
	Reason    string
	Err       error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("failed to parse %s output: %s", e.Transform, e.Reason)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Is returns true if the target error is ErrParse
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(transform, reason string) *ParseError {
	return &ParseError{Transform: transform, Reason: reason}
}

// WrapParseError creates a new ParseError around an underlying decode error
func WrapParseError(transform, reason string, err error) *ParseError {
	return &ParseError{Transform: transform, Reason: reason, Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
