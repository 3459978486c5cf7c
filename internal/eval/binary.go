package eval

import (
	"fmt"

	"go.followtheprocess.codes/tsu/internal/syntax/ast"
)

// evalBinary evaluates both operands left to right and applies the operator,
// except for And and Or which short-circuit.
func (e *Evaluator) evalBinary(b *ast.Binary, env *Environment) (Value, error) {
	if b.Op == ast.OpAnd || b.Op == ast.OpOr {
		return e.evalLogical(b, env)
	}

	lhs, err := e.eval(b.LHS, env)
	if err != nil {
		return nil, err
	}

	rhs, err := e.eval(b.RHS, env)
	if err != nil {
		return nil, err
	}

	return apply(b, lhs, rhs)
}

// evalLogical implements And and Or, the right operand is only evaluated when
// the left one does not already decide the result.
func (e *Evaluator) evalLogical(b *ast.Binary, env *Environment) (Value, error) {
	lhs, err := e.eval(b.LHS, env)
	if err != nil {
		return nil, err
	}

	left, ok := lhs.(Bool)
	if !ok {
		return nil, errorf(ErrType, b.LHS, "%s expects bool operands, got %s", b.Op, lhs.Type())
	}

	if (b.Op == ast.OpAnd && !left) || (b.Op == ast.OpOr && left) {
		return left, nil
	}

	rhs, err := e.eval(b.RHS, env)
	if err != nil {
		return nil, err
	}

	right, ok := rhs.(Bool)
	if !ok {
		return nil, errorf(ErrType, b.RHS, "%s expects bool operands, got %s", b.Op, rhs.Type())
	}

	return right, nil
}

// apply applies a strict binary operator to two evaluated operands.
func apply(b *ast.Binary, lhs, rhs Value) (Value, error) {
	switch {
	case b.Op.IsArithmetic():
		return arithmetic(b, lhs, rhs)
	case b.Op == ast.OpEq:
		return Bool(Equal(lhs, rhs)), nil
	case b.Op == ast.OpNeq:
		return Bool(!Equal(lhs, rhs)), nil
	case b.Op.IsOrdering():
		return ordering(b, lhs, rhs)
	default:
		return nil, fmt.Errorf("unhandled binary operator %s", b.Op)
	}
}

// arithmetic implements Add, Sub, Mul, Div and Rem.
//
// Integer arithmetic wraps around on overflow. Add also concatenates when
// either operand is a string.
func arithmetic(b *ast.Binary, lhs, rhs Value) (Value, error) {
	x, xok := lhs.(Int)
	y, yok := rhs.(Int)

	if xok && yok {
		switch b.Op {
		case ast.OpAdd:
			return x + y, nil
		case ast.OpSub:
			return x - y, nil
		case ast.OpMul:
			return x * y, nil
		case ast.OpDiv:
			if y == 0 {
				return nil, errorf(ErrDivisionByZero, b, "%s by zero", b.Op)
			}

			return x / y, nil
		case ast.OpRem:
			if y == 0 {
				return nil, errorf(ErrDivisionByZero, b, "%s by zero", b.Op)
			}

			return x % y, nil
		}
	}

	if b.Op == ast.OpAdd && (lhs.Type() == TypeStr || rhs.Type() == TypeStr) &&
		concatenable(lhs) && concatenable(rhs) {
		return Str(lhs.String() + rhs.String()), nil
	}

	return nil, mismatch(b, lhs, rhs)
}

// ordering implements Lt, Gt, Lte and Gte, which are only defined for integers.
func ordering(b *ast.Binary, lhs, rhs Value) (Value, error) {
	x, xok := lhs.(Int)
	y, yok := rhs.(Int)

	if !xok || !yok {
		return nil, mismatch(b, lhs, rhs)
	}

	switch b.Op {
	case ast.OpLt:
		return Bool(x < y), nil
	case ast.OpGt:
		return Bool(x > y), nil
	case ast.OpLte:
		return Bool(x <= y), nil
	default:
		return Bool(x >= y), nil
	}
}

// concatenable reports whether v may take part in a string concatenation.
func concatenable(v Value) bool {
	switch v.Type() {
	case TypeInt, TypeStr, TypeBool:
		return true
	default:
		return false
	}
}

// mismatch returns the type error for an operator applied to operands it
// is not defined for.
func mismatch(b *ast.Binary, lhs, rhs Value) *Error {
	return errorf(ErrType, b, "cannot apply %s to %s and %s", b.Op, lhs.Type(), rhs.Type())
}
