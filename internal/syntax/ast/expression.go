package ast

import "go.followtheprocess.codes/tsu/internal/syntax"

// Int is a 32 bit signed integer literal.
type Int struct {
	Value    int32
	Location syntax.Span
}

// Span returns the span of the literal.
func (i *Int) Span() syntax.Span { return i.Location }

// Kind returns [KindInt].
func (i *Int) Kind() Kind { return KindInt }

func (i *Int) termNode() {}

// Str is a string literal.
type Str struct {
	Value    string
	Location syntax.Span
}

// Span returns the span of the literal.
func (s *Str) Span() syntax.Span { return s.Location }

// Kind returns [KindStr].
func (s *Str) Kind() Kind { return KindStr }

func (s *Str) termNode() {}

// Bool is a boolean literal.
type Bool struct {
	Value    bool
	Location syntax.Span
}

// Span returns the span of the literal.
func (b *Bool) Span() syntax.Span { return b.Location }

// Kind returns [KindBool].
func (b *Bool) Kind() Kind { return KindBool }

func (b *Bool) termNode() {}

// Var is a reference to a name bound by an enclosing let or function.
type Var struct {
	Text     string
	Location syntax.Span
}

// Span returns the span of the reference.
func (v *Var) Span() syntax.Span { return v.Location }

// Kind returns [KindVar].
func (v *Var) Kind() Kind { return KindVar }

func (v *Var) termNode() {}

// Function is a function literal.
type Function struct {
	// Value is the function body.
	Value Term

	// Parameters are the names bound to the arguments, in order.
	Parameters []Parameter

	Location syntax.Span
}

// Span returns the span of the function literal.
func (f *Function) Span() syntax.Span { return f.Location }

// Kind returns [KindFunction].
func (f *Function) Kind() Kind { return KindFunction }

func (f *Function) termNode() {}

// Call is a function application.
type Call struct {
	Callee    Term
	Arguments []Term
	Location  syntax.Span
}

// Span returns the span of the call.
func (c *Call) Span() syntax.Span { return c.Location }

// Kind returns [KindCall].
func (c *Call) Kind() Kind { return KindCall }

func (c *Call) termNode() {}

// Let binds Name to Value for the evaluation of Next.
//
// Name is also visible while Value is evaluated which is how
// functions refer to themselves.
type Let struct {
	Value Term

	// Next is optional, when nil the let evaluates to the bound value.
	Next Term

	Name     Parameter
	Location syntax.Span
}

// Span returns the span of the let.
func (l *Let) Span() syntax.Span { return l.Location }

// Kind returns [KindLet].
func (l *Let) Kind() Kind { return KindLet }

func (l *Let) termNode() {}

// Binary is a binary operation.
type Binary struct {
	LHS      Term
	RHS      Term
	Op       BinaryOp
	Location syntax.Span
}

// Span returns the span of the operation.
func (b *Binary) Span() syntax.Span { return b.Location }

// Kind returns [KindBinary].
func (b *Binary) Kind() Kind { return KindBinary }

func (b *Binary) termNode() {}

// If is a conditional expression.
type If struct {
	Condition Term
	Then      Term
	Otherwise Term
	Location  syntax.Span
}

// Span returns the span of the conditional.
func (i *If) Span() syntax.Span { return i.Location }

// Kind returns [KindIf].
func (i *If) Kind() Kind { return KindIf }

func (i *If) termNode() {}

// Tuple constructs a pair.
type Tuple struct {
	First    Term
	Second   Term
	Location syntax.Span
}

// Span returns the span of the tuple.
func (t *Tuple) Span() syntax.Span { return t.Location }

// Kind returns [KindTuple].
func (t *Tuple) Kind() Kind { return KindTuple }

func (t *Tuple) termNode() {}

// First projects the first element of a tuple.
type First struct {
	Value    Term
	Location syntax.Span
}

// Span returns the span of the projection.
func (f *First) Span() syntax.Span { return f.Location }

// Kind returns [KindFirst].
func (f *First) Kind() Kind { return KindFirst }

func (f *First) termNode() {}

// Second projects the second element of a tuple.
type Second struct {
	Value    Term
	Location syntax.Span
}

// Span returns the span of the projection.
func (s *Second) Span() syntax.Span { return s.Location }

// Kind returns [KindSecond].
func (s *Second) Kind() Kind { return KindSecond }

func (s *Second) termNode() {}

// Print writes the rendering of Value to the output and evaluates to it.
type Print struct {
	Value    Term
	Location syntax.Span
}

// Span returns the span of the print.
func (p *Print) Span() syntax.Span { return p.Location }

// Kind returns [KindPrint].
func (p *Print) Kind() Kind { return KindPrint }

func (p *Print) termNode() {}
