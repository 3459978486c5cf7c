package ast_test

import (
	"testing"

	"go.followtheprocess.codes/test"
	"go.followtheprocess.codes/tsu/internal/syntax"
	"go.followtheprocess.codes/tsu/internal/syntax/ast"
)

func TestTerm(t *testing.T) {
	span := syntax.Span{Filename: "test.rinha", Start: 3, End: 9}

	tests := []struct {
		term ast.Term // Term under test
		name string   // Name of the test case
		kind ast.Kind // Expected term kind
	}{
		{name: "int", term: &ast.Int{Value: 1, Location: span}, kind: ast.KindInt},
		{name: "str", term: &ast.Str{Value: "hello", Location: span}, kind: ast.KindStr},
		{name: "bool", term: &ast.Bool{Value: true, Location: span}, kind: ast.KindBool},
		{name: "var", term: &ast.Var{Text: "x", Location: span}, kind: ast.KindVar},
		{
			name: "function",
			term: &ast.Function{
				Parameters: []ast.Parameter{{Text: "x"}},
				Value:      &ast.Var{Text: "x"},
				Location:   span,
			},
			kind: ast.KindFunction,
		},
		{name: "call", term: &ast.Call{Callee: &ast.Var{Text: "f"}, Location: span}, kind: ast.KindCall},
		{
			name: "let",
			term: &ast.Let{Name: ast.Parameter{Text: "x"}, Value: &ast.Int{Value: 1}, Location: span},
			kind: ast.KindLet,
		},
		{
			name: "binary",
			term: &ast.Binary{Op: ast.OpAdd, LHS: &ast.Int{}, RHS: &ast.Int{}, Location: span},
			kind: ast.KindBinary,
		},
		{
			name: "if",
			term: &ast.If{Condition: &ast.Bool{}, Then: &ast.Int{}, Otherwise: &ast.Int{}, Location: span},
			kind: ast.KindIf,
		},
		{name: "tuple", term: &ast.Tuple{First: &ast.Int{}, Second: &ast.Int{}, Location: span}, kind: ast.KindTuple},
		{name: "first", term: &ast.First{Value: &ast.Var{Text: "t"}, Location: span}, kind: ast.KindFirst},
		{name: "second", term: &ast.Second{Value: &ast.Var{Text: "t"}, Location: span}, kind: ast.KindSecond},
		{name: "print", term: &ast.Print{Value: &ast.Int{}, Location: span}, kind: ast.KindPrint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, tt.term.Span(), span)
			test.Equal(t, tt.term.Kind(), tt.kind)
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name  string   // Name of the test case
		input string   // Discriminator to parse
		want  ast.Kind // Expected kind
		ok    bool     // Expected ok value
	}{
		{name: "int", input: "Int", want: ast.KindInt, ok: true},
		{name: "function", input: "Function", want: ast.KindFunction, ok: true},
		{name: "fn alias", input: "Fn", want: ast.KindFunction, ok: true},
		{name: "print", input: "Print", want: ast.KindPrint, ok: true},
		{name: "invalid is not a discriminator", input: "Invalid", want: ast.KindInvalid, ok: false},
		{name: "unknown", input: "Lambda", want: ast.KindInvalid, ok: false},
		{name: "wrong case", input: "int", want: ast.KindInvalid, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ast.ParseKind(tt.input)
			test.Equal(t, ok, tt.ok)
			test.Equal(t, got, tt.want)
		})
	}
}

func TestBinaryOpText(t *testing.T) {
	for op := ast.OpAdd; op <= ast.OpOr; op++ {
		t.Run(op.String(), func(t *testing.T) {
			text, err := op.MarshalText()
			test.Ok(t, err)

			var got ast.BinaryOp
			test.Ok(t, got.UnmarshalText(text))
			test.Equal(t, got, op)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		_, err := ast.OpInvalid.MarshalText()
		test.Err(t, err)

		var op ast.BinaryOp
		test.Err(t, op.UnmarshalText([]byte("Pow")))
	})
}

func TestBinaryOpClass(t *testing.T) {
	test.True(t, ast.OpAdd.IsArithmetic())
	test.True(t, ast.OpRem.IsArithmetic())
	test.False(t, ast.OpEq.IsArithmetic())
	test.True(t, ast.OpLt.IsOrdering())
	test.True(t, ast.OpGte.IsOrdering())
	test.False(t, ast.OpNeq.IsOrdering())
	test.False(t, ast.OpAnd.IsOrdering())
}
