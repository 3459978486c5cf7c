// Package eval implements the tree-walking evaluator: the runtime values, the
// persistent environment used for lexical scoping and closures, and the semantics
// of every term and operator.
//
// Evaluation is strict, call-by-value and synchronous. The only side effect is
// print, which writes through an injected [Sink].
package eval

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.followtheprocess.codes/log"
	"go.followtheprocess.codes/tsu/internal/syntax/ast"
)

// DefaultMaxDepth is the default bound on the nesting of term evaluations, deep
// enough for ordinary recursive programs while staying well clear of the
// goroutine stack limit.
const DefaultMaxDepth = 250_000

// Option is a functional option for configuring an [Evaluator].
type Option func(*Evaluator)

// WithMaxDepth sets the maximum nesting of term evaluations, evaluating past it
// fails with [ErrStackOverflow]. Values less than 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(e *Evaluator) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

// WithLogger sets the logger used to report the start and end of an evaluation.
func WithLogger(logger *log.Logger) Option {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Evaluator evaluates terms.
//
// An Evaluator tracks the current evaluation depth and so must not be used by
// more than one goroutine at a time. Independent programs may be evaluated in
// parallel by giving each its own Evaluator and [Sink].
type Evaluator struct {
	sink     Sink        // Where print output goes
	logger   *log.Logger // Debug logger
	maxDepth int         // Maximum evaluation depth
	depth    int         // Current evaluation depth
}

// New returns a new [Evaluator] writing print output to sink.
func New(sink Sink, options ...Option) *Evaluator {
	e := &Evaluator{
		sink:     sink,
		logger:   log.New(io.Discard),
		maxDepth: DefaultMaxDepth,
	}

	for _, option := range options {
		option(e)
	}

	return e
}

// Run evaluates a whole program in an empty environment.
func (e *Evaluator) Run(file ast.File) (Value, error) {
	logger := e.logger.With(slog.String("program", file.Name))
	logger.Debug("Evaluating program", slog.Int("max-depth", e.maxDepth))

	start := time.Now()

	value, err := e.Eval(file.Expression, NewEnvironment())
	if err != nil {
		logger.Debug("Evaluation aborted", slog.String("error", err.Error()), slog.Duration("took", time.Since(start)))
		return nil, err
	}

	logger.Debug("Evaluation finished", slog.String("type", value.Type().String()), slog.Duration("took", time.Since(start)))

	return value, nil
}

// Eval evaluates term in env.
//
// The first error aborts evaluation and is returned as is, anything already
// written to the sink stays written.
func (e *Evaluator) Eval(term ast.Term, env *Environment) (Value, error) {
	return e.eval(term, env)
}

// eval is the recursive core of the evaluator, dispatching on the kind of term.
func (e *Evaluator) eval(term ast.Term, env *Environment) (Value, error) {
	if term == nil {
		return nil, errors.New("missing term, the tree is malformed")
	}

	e.depth++
	defer func() { e.depth-- }()

	if e.depth > e.maxDepth {
		return nil, errorf(ErrStackOverflow, term, "maximum evaluation depth of %d exceeded", e.maxDepth)
	}

	switch t := term.(type) {
	case *ast.Int:
		return Int(t.Value), nil
	case *ast.Str:
		return Str(t.Value), nil
	case *ast.Bool:
		return Bool(t.Value), nil
	case *ast.Var:
		return e.evalVar(t, env)
	case *ast.Function:
		return e.evalFunction(t, env), nil
	case *ast.Call:
		return e.evalCall(t, env)
	case *ast.Let:
		return e.evalLet(t, env)
	case *ast.Binary:
		return e.evalBinary(t, env)
	case *ast.If:
		return e.evalIf(t, env)
	case *ast.Tuple:
		return e.evalTuple(t, env)
	case *ast.First:
		return e.evalProjection(t, t.Value, env)
	case *ast.Second:
		return e.evalProjection(t, t.Value, env)
	case *ast.Print:
		return e.evalPrint(t, env)
	default:
		return nil, fmt.Errorf("unhandled term %T", term)
	}
}

func (e *Evaluator) evalVar(v *ast.Var, env *Environment) (Value, error) {
	value, err := env.Lookup(v.Text)
	if err != nil {
		if errors.Is(err, ErrNotYetDefined) {
			return nil, errorf(ErrUnboundName, v, "%s is used before its definition is complete", v.Text)
		}

		return nil, errorf(ErrUnboundName, v, "%s is not defined", v.Text)
	}

	return value, nil
}

// evalFunction captures env by reference, it is never copied.
func (e *Evaluator) evalFunction(fn *ast.Function, env *Environment) *Closure {
	params := make([]string, len(fn.Parameters))
	for i, param := range fn.Parameters {
		params[i] = param.Text
	}

	return &Closure{
		Parameters: params,
		Body:       fn.Value,
		Env:        env,
	}
}

func (e *Evaluator) evalCall(call *ast.Call, env *Environment) (Value, error) {
	callee, err := e.eval(call.Callee, env)
	if err != nil {
		return nil, err
	}

	closure, ok := callee.(*Closure)
	if !ok {
		return nil, errorf(ErrNotCallable, call.Callee, "value of type %s is not callable", callee.Type())
	}

	args := make([]Value, 0, len(call.Arguments))
	for _, arg := range call.Arguments {
		value, err := e.eval(arg, env)
		if err != nil {
			return nil, err
		}

		args = append(args, value)
	}

	if len(args) != len(closure.Parameters) {
		return nil, errorf(
			ErrArityMismatch,
			call,
			"function takes %d argument(s) but was called with %d",
			len(closure.Parameters),
			len(args),
		)
	}

	return e.eval(closure.Body, closure.Env.Extend(closure.Parameters, args))
}

// evalLet makes the bound name visible while its own value is evaluated so a
// function bound by a let can call itself. The pending binding is resolved
// exactly once, as soon as the value is known.
func (e *Evaluator) evalLet(let *ast.Let, env *Environment) (Value, error) {
	scope, pending := env.BindPending(let.Name.Text)

	value, err := e.eval(let.Value, scope)
	if err != nil {
		return nil, err
	}

	pending.Resolve(value)

	if let.Next == nil {
		return value, nil
	}

	return e.eval(let.Next, scope)
}

func (e *Evaluator) evalIf(branch *ast.If, env *Environment) (Value, error) {
	value, err := e.eval(branch.Condition, env)
	if err != nil {
		return nil, err
	}

	b, ok := value.(Bool)
	if !ok {
		return nil, errorf(ErrType, branch.Condition, "if condition must be a bool, got %s", value.Type())
	}

	if b {
		return e.eval(branch.Then, env)
	}

	return e.eval(branch.Otherwise, env)
}

func (e *Evaluator) evalTuple(tuple *ast.Tuple, env *Environment) (Value, error) {
	first, err := e.eval(tuple.First, env)
	if err != nil {
		return nil, err
	}

	second, err := e.eval(tuple.Second, env)
	if err != nil {
		return nil, err
	}

	return Tuple{First: first, Second: second}, nil
}

// evalProjection evaluates operand and projects the component selected by
// the kind of term, which is either an [*ast.First] or an [*ast.Second].
func (e *Evaluator) evalProjection(term, operand ast.Term, env *Environment) (Value, error) {
	value, err := e.eval(operand, env)
	if err != nil {
		return nil, err
	}

	tuple, ok := value.(Tuple)
	if !ok {
		return nil, errorf(ErrType, term, "%s expects a tuple, got %s", term.Kind(), value.Type())
	}

	if term.Kind() == ast.KindFirst {
		return tuple.First, nil
	}

	return tuple.Second, nil
}

func (e *Evaluator) evalPrint(p *ast.Print, env *Environment) (Value, error) {
	value, err := e.eval(p.Value, env)
	if err != nil {
		return nil, err
	}

	if err := e.sink.WriteLine(value.String()); err != nil {
		return nil, fmt.Errorf("could not write output: %w", err)
	}

	return value, nil
}
