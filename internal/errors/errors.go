// Package errors provides centralized error definitions and error handling utilities
// for the league simulator. It defines sentinel errors, the two domain error types
// (input and league errors), and classification helpers.
//
// # Error Types
//
//   - InputError: a line typed at a prompt could not be accepted
//   - LeagueError: a team record or the league itself is in an invalid state
//
// # Usage
//
//	err := errors.NewInputError("team choice", "abc", errors.ErrNotANumber)
//	if errors.Is(err, errors.ErrNotANumber) { ... }
//
//	var inputErr *errors.InputError
//	if errors.As(err, &inputErr) { ... }
//
// Input errors are always recoverable: the caller reprompts. League errors mean
// the simulation itself is broken and should stop the run.
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityWarning is for errors the user caused: a rejected answer, closed
	// input or an interrupt.
	SeverityWarning Severity = iota
	// SeverityError is for errors that stop the current run.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Input-related sentinel errors
var (
	// ErrNotANumber indicates that a line did not parse as an integer.
	ErrNotANumber = New("not a number")
	// ErrOutOfRange indicates a number outside the accepted range.
	ErrOutOfRange = New("out of range")
	// ErrNegative indicates a negative goal count.
	ErrNegative = New("must not be negative")
	// ErrInputClosed indicates that the input stream ended before a valid answer.
	ErrInputClosed = New("input closed")
)

// League-related sentinel errors
var (
	// ErrEmptyLeague indicates an operation that needs at least one team.
	ErrEmptyLeague = New("league has no teams")
	// ErrInvariant indicates a team record whose counters disagree.
	ErrInvariant = New("team record invariant violated")
	// ErrUnknownTeam indicates a team that is not part of the league.
	ErrUnknownTeam = New("team not in league")
)

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message  string
	cause    error
	severity Severity
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// InputError represents a rejected line of console input.
//
// Example:
//
//	err := errors.NewInputError("goals scored", "-2", errors.ErrNegative)
//	fmt.Println(err) // `input error [field=goals scored, input="-2"]: must not be negative`
type InputError struct {
	baseError
	Field string
	Input string
}

// NewInputError creates a new InputError.
func NewInputError(field, input string, cause error) *InputError {
	return &InputError{
		baseError: baseError{
			message:  "rejected input",
			cause:    cause,
			severity: SeverityWarning,
		},
		Field: field,
		Input: input,
	}
}

// Error returns the formatted error message.
func (e *InputError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	parts = append(parts, fmt.Sprintf("input=%q", e.Input))

	prefix := fmt.Sprintf("input error [%s]", strings.Join(parts, ", "))
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", prefix, e.cause)
	}
	return prefix
}

// LeagueError represents an invalid team record or league state.
//
// Example:
//
//	err := errors.NewLeagueError("played does not match results", errors.ErrInvariant).WithTeam("Team 3")
type LeagueError struct {
	baseError
	Team string
}

// NewLeagueError creates a new LeagueError.
func NewLeagueError(message string, cause error) *LeagueError {
	return &LeagueError{
		baseError: baseError{
			message:  message,
			cause:    cause,
			severity: SeverityError,
		},
	}
}

// WithTeam adds a team name to the error context.
func (e *LeagueError) WithTeam(name string) *LeagueError {
	e.Team = name
	return e
}

// Error returns the formatted error message.
func (e *LeagueError) Error() string {
	prefix := "league error"
	if e.Team != "" {
		prefix = fmt.Sprintf("league error [team=%s]", e.Team)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsInputError reports whether err is, or wraps, an InputError.
func IsInputError(err error) bool {
	var inputErr *InputError
	return As(err, &inputErr)
}

// GetSeverity returns the severity of err. Closed input and cancellation are
// warnings; other errors that do not carry a severity are SeverityError.
func GetSeverity(err error) Severity {
	var s interface{ Severity() Severity }
	if As(err, &s) {
		return s.Severity()
	}
	if Is(err, ErrInputClosed) || Is(err, context.Canceled) {
		return SeverityWarning
	}
	return SeverityError
}
