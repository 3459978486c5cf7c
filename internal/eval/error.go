package eval

import (
	"errors"
	"fmt"

	"go.followtheprocess.codes/tsu/internal/syntax"
	"go.followtheprocess.codes/tsu/internal/syntax/ast"
)

// Runtime error kinds, every [*Error] unwraps to exactly one of these.
var (
	ErrUnboundName    = errors.New("unbound name")
	ErrNotCallable    = errors.New("not callable")
	ErrArityMismatch  = errors.New("arity mismatch")
	ErrType           = errors.New("type error")
	ErrDivisionByZero = errors.New("division by zero")
	ErrStackOverflow  = errors.New("stack overflow")
)

// Error is a runtime error raised while evaluating a term.
//
// Use [errors.Is] with one of the kinds above to discriminate.
type Error struct {
	Kind error       // The kind of error, one of the Err* sentinels
	Msg  string      // Descriptive message explaining the error
	Span syntax.Span // Span of the term that raised the error
}

// Error implements the error interface for [Error].
func (e *Error) Error() string {
	if !e.Span.IsValid() {
		return e.Kind.Error() + ": " + e.Msg
	}

	return e.Span.String() + ": " + e.Kind.Error() + ": " + e.Msg
}

// Unwrap returns the kind of the error.
func (e *Error) Unwrap() error {
	return e.Kind
}

// errorf builds an [*Error] of the given kind pointing at term.
func errorf(kind error, term ast.Term, format string, a ...any) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, a...),
		Span: term.Span(),
	}
}
