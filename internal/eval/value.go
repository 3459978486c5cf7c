package eval

import (
	"strconv"

	"go.followtheprocess.codes/tsu/internal/syntax/ast"
)

// Type is the runtime type of a [Value].
type Type int

// Runtime types.
const (
	TypeInt Type = iota
	TypeStr
	TypeBool
	TypeTuple
	TypeClosure
)

// String returns the name of the type as shown in error messages.
func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeStr:
		return "str"
	case TypeBool:
		return "bool"
	case TypeTuple:
		return "tuple"
	case TypeClosure:
		return "closure"
	default:
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
}

// Value is a fully evaluated runtime value.
//
// The set of implementations is closed: [Int], [Str], [Bool], [Tuple]
// and [*Closure].
type Value interface {
	// String returns the textual rendering of the value, as used by print
	// and by string concatenation.
	String() string

	// Type returns the runtime type of the value.
	Type() Type

	value() // Seals the interface
}

// Int is a 32 bit signed integer value.
type Int int32

// String renders the integer in decimal.
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// Type returns [TypeInt].
func (i Int) Type() Type { return TypeInt }

func (i Int) value() {}

// Str is a string value.
type Str string

// String returns the raw text, without quotes.
func (s Str) String() string { return string(s) }

// Type returns [TypeStr].
func (s Str) Type() Type { return TypeStr }

func (s Str) value() {}

// Bool is a boolean value.
type Bool bool

// String renders the boolean as true or false.
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Type returns [TypeBool].
func (b Bool) Type() Type { return TypeBool }

func (b Bool) value() {}

// Tuple is an immutable pair of values.
type Tuple struct {
	First  Value
	Second Value
}

// String renders the tuple as "(first, second)".
func (t Tuple) String() string {
	return "(" + t.First.String() + ", " + t.Second.String() + ")"
}

// Type returns [TypeTuple].
func (t Tuple) Type() Type { return TypeTuple }

func (t Tuple) value() {}

// Closure is a function value: the parameters and body of a function literal
// together with the environment that was in scope when the literal was evaluated.
//
// Closures are compared by identity.
type Closure struct {
	// Body is the function body, shared with the tree it came from.
	Body ast.Term

	// Env is the captured environment, it never changes after creation.
	Env *Environment

	// Parameters are the parameter names, in order.
	Parameters []string
}

// String renders every closure as "<#closure>".
func (c *Closure) String() string { return "<#closure>" }

// Type returns [TypeClosure].
func (c *Closure) Type() Type { return TypeClosure }

func (c *Closure) value() {}

// Equal reports whether a and b are equal.
//
// Values of different types are never equal. Scalars compare by value, tuples
// compare structurally and closures compare by identity.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Int:
		y, ok := b.(Int)
		return ok && x == y
	case Str:
		y, ok := b.(Str)
		return ok && x == y
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Tuple:
		y, ok := b.(Tuple)
		return ok && Equal(x.First, y.First) && Equal(x.Second, y.Second)
	case *Closure:
		y, ok := b.(*Closure)
		return ok && x == y
	default:
		return false
	}
}
