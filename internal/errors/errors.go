// Package errors defines typed errors with categories for user-friendly reporting.
// Only a few kinds are fatal for the shell: a database that cannot be reached
// and a terminal that cannot be read or drawn. Query failures are never wrapped
// here; they travel back to the user as plain text.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// ConnectFailed indicates the worker could not open its database connection.
	ConnectFailed Kind = "connect_failed"
	// TerminalIO indicates reading input or drawing a frame failed.
	TerminalIO Kind = "terminal_io"
	// InvalidDSN indicates the connection string could not be understood.
	InvalidDSN Kind = "invalid_dsn"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// Is reports whether any error in err's chain is an *E of the given kind.
func Is(err error, kind Kind) bool {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
