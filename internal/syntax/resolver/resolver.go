// Package resolver implements a static checker for term trees.
//
// The resolver walks a tree without evaluating it, following the same scoping
// rules as the evaluator, and reports the problems it can prove are there before
// the program ever runs: names that are never bound, functions declaring the same
// parameter twice and calls that can only fail.
package resolver

import (
	"errors"
	"fmt"

	"go.followtheprocess.codes/tsu/internal/syntax"
	"go.followtheprocess.codes/tsu/internal/syntax/ast"
)

// ErrResolve is a generic resolving error, details on the error are provided through
// a [syntax.Diagnostic].
var ErrResolve = errors.New("resolve error")

// Resolver is the static checker for term trees.
type Resolver struct {
	handler     syntax.ErrorHandler // Called with every diagnostic, may be nil
	name        string              // The name of the file being resolved
	diagnostics []syntax.Diagnostic // Diagnostics collected during resolving
}

// New returns a new [Resolver].
//
// Every diagnostic is passed to handler (if not nil) as it is found, as well as
// being collected for [Resolver.Diagnostics].
func New(name string, handler syntax.ErrorHandler) *Resolver {
	return &Resolver{
		name:    name,
		handler: handler,
	}
}

// Resolve checks an [ast.File].
//
// Resolving does not stop at the first problem. If any were found, Resolve
// returns an error wrapping [ErrResolve], for more detailed inspection call
// [Resolver.Diagnostics].
func (r *Resolver) Resolve(file ast.File) error {
	if file.Expression == nil {
		r.error(r.fallback(file.Location), "file has no expression")
	} else {
		r.resolve(newEnvironment(), file.Expression, file.Location)
	}

	if len(r.diagnostics) != 0 {
		return fmt.Errorf("%w: %s has %d problem(s)", ErrResolve, file.Name, len(r.diagnostics))
	}

	return nil
}

// Diagnostics returns the diagnostics gathered during resolving, in the order
// they were found.
func (r *Resolver) Diagnostics() []syntax.Diagnostic {
	return r.diagnostics
}

// error reports a resolve error with a fixed message.
func (r *Resolver) error(span syntax.Span, msg string) {
	r.diagnostics = append(r.diagnostics, syntax.Diagnostic{Msg: msg, Span: span})

	if r.handler != nil {
		r.handler(span, msg)
	}
}

// errorf calls error with a formatted message.
func (r *Resolver) errorf(span syntax.Span, format string, a ...any) {
	r.error(span, fmt.Sprintf(format, a...))
}

// fallback returns span, or a span naming just the file if span is not valid.
func (r *Resolver) fallback(span syntax.Span) syntax.Span {
	if span.IsValid() {
		return span
	}

	return syntax.Span{Filename: r.name}
}

// resolve checks term in env, parent is the span of the enclosing term and is
// only used to report a missing child.
func (r *Resolver) resolve(env *environment, term ast.Term, parent syntax.Span) {
	if term == nil {
		r.error(r.fallback(parent), "missing term")
		return
	}

	switch t := term.(type) {
	case *ast.Int, *ast.Str, *ast.Bool:
		// Nothing to check
	case *ast.Var:
		if _, err := env.get(t.Text); err != nil {
			r.errorf(t.Span(), "%s is not defined", t.Text)
		}
	case *ast.Function:
		scope := env.child()
		for _, param := range t.Parameters {
			if err := scope.define(param.Text, binding{span: param.Location}); err != nil {
				r.errorf(param.Location, "duplicate parameter: %v", err)
			}
		}

		r.resolve(scope, t.Value, t.Span())
	case *ast.Call:
		r.resolve(env, t.Callee, t.Span())

		for _, arg := range t.Arguments {
			r.resolve(env, arg, t.Span())
		}

		r.resolveCallee(env, t)
	case *ast.Let:
		// The name is already visible in its own value, that's how functions recurse
		scope := env.child()
		if err := scope.define(t.Name.Text, binding{value: t.Value, span: t.Name.Location}); err != nil {
			r.errorf(t.Name.Location, "%v", err)
		}

		r.resolve(scope, t.Value, t.Span())

		if t.Next != nil {
			r.resolve(scope, t.Next, t.Span())
		}
	case *ast.Binary:
		r.resolve(env, t.LHS, t.Span())
		r.resolve(env, t.RHS, t.Span())
	case *ast.If:
		r.resolve(env, t.Condition, t.Span())
		r.resolve(env, t.Then, t.Span())
		r.resolve(env, t.Otherwise, t.Span())
	case *ast.Tuple:
		r.resolve(env, t.First, t.Span())
		r.resolve(env, t.Second, t.Span())
	case *ast.First:
		r.resolve(env, t.Value, t.Span())
	case *ast.Second:
		r.resolve(env, t.Value, t.Span())
	case *ast.Print:
		r.resolve(env, t.Value, t.Span())
	default:
		r.errorf(r.fallback(term.Span()), "unhandled term %T", term)
	}
}

// resolveCallee checks the callee of a call when it is statically known, either
// because it is a literal or because it is a name bound by a let to a literal.
func (r *Resolver) resolveCallee(env *environment, call *ast.Call) {
	callee := call.Callee
	name := ""

	if v, ok := callee.(*ast.Var); ok {
		b, err := env.get(v.Text)
		if err != nil || b.value == nil {
			// Either already reported or a parameter we know nothing about
			return
		}

		callee = b.value
		name = v.Text + " "
	}

	switch fn := callee.(type) {
	case *ast.Int, *ast.Str, *ast.Bool, *ast.Tuple:
		if name == "" {
			r.errorf(call.Callee.Span(), "cannot call %s literal", fn.Kind())
			return
		}

		r.errorf(call.Callee.Span(), "cannot call %sbound to %s literal", name, fn.Kind())
	case *ast.Function:
		if len(call.Arguments) != len(fn.Parameters) {
			r.errorf(
				call.Span(),
				"function %stakes %d argument(s) but is called with %d",
				name,
				len(fn.Parameters),
				len(call.Arguments),
			)
		}
	}
}
