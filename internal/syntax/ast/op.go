package ast

import "fmt"

// BinaryOp is a binary operator.
type BinaryOp int

// Binary operators.
//
//go:generate stringer -type BinaryOp -linecomment
const (
	OpInvalid BinaryOp = iota // Invalid
	OpAdd                     // Add
	OpSub                     // Sub
	OpMul                     // Mul
	OpDiv                     // Div
	OpRem                     // Rem
	OpEq                      // Eq
	OpNeq                     // Neq
	OpLt                      // Lt
	OpGt                      // Gt
	OpLte                     // Lte
	OpGte                     // Gte
	OpAnd                     // And
	OpOr                      // Or
)

// MarshalText implements [encoding.TextMarshaler] for [BinaryOp].
func (o BinaryOp) MarshalText() ([]byte, error) {
	if o <= OpInvalid || o > OpOr {
		return nil, fmt.Errorf("cannot marshal invalid binary operator %s", o)
	}

	return []byte(o.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] for [BinaryOp].
func (o *BinaryOp) UnmarshalText(text []byte) error {
	for op := OpAdd; op <= OpOr; op++ {
		if op.String() == string(text) {
			*o = op
			return nil
		}
	}

	return fmt.Errorf("unknown binary operator %q", text)
}

// IsArithmetic reports whether the operator is one of Add, Sub, Mul, Div or Rem.
func (o BinaryOp) IsArithmetic() bool {
	return o >= OpAdd && o <= OpRem
}

// IsOrdering reports whether the operator is one of Lt, Gt, Lte or Gte.
func (o BinaryOp) IsOrdering() bool {
	return o >= OpLt && o <= OpGte
}
