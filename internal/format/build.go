package format

import (
	"encoding/json"
	"fmt"
	"math"

	"go.followtheprocess.codes/tsu/internal/syntax"
	"go.followtheprocess.codes/tsu/internal/syntax/ast"
)

// builder turns a generic decoded document (nested maps, slices and scalars, as
// produced by both the JSON and YAML decoders) into an [ast.File].
//
// Like a parser, it keeps going after a problem so that every malformed node in
// the document is reported, not just the first.
type builder struct {
	handler   syntax.ErrorHandler // The error handler, may be nil
	name      string              // Name of the document being built
	hadErrors bool                // Whether any problems were reported
}

// newBuilder returns a new [builder].
func newBuilder(name string, handler syntax.ErrorHandler) *builder {
	return &builder{
		name:    name,
		handler: handler,
	}
}

// build builds a whole document.
//
// The document may either be a file object (with "name", "expression" and
// "location") or a bare term.
func (b *builder) build(doc any) (ast.File, error) {
	object, ok := doc.(map[string]any)
	if !ok {
		b.error(syntax.Span{Filename: b.name}, fmt.Sprintf("document must be an object, got %s", describe(doc)))
		return ast.File{}, ErrMalformed
	}

	var file ast.File

	if _, isTerm := object["kind"]; isTerm {
		file.Name = b.name
		file.Expression = b.term(object, syntax.Span{Filename: b.name})
		if file.Expression != nil {
			file.Location = file.Expression.Span()
		}
	} else {
		file.Location = b.span(object, syntax.Span{Filename: b.name})
		file.Name = b.name

		if name, ok := object["name"].(string); ok && name != "" {
			file.Name = name
		}

		file.Expression = b.child(object, "expression", "File", file.Location)
	}

	if b.hadErrors {
		return ast.File{}, ErrMalformed
	}

	return file, nil
}

// error reports a problem with the document.
func (b *builder) error(span syntax.Span, msg string) {
	b.hadErrors = true

	if b.handler != nil {
		b.handler(span, msg)
	}
}

// errorf calls error with a formatted message.
func (b *builder) errorf(span syntax.Span, format string, a ...any) {
	b.error(span, fmt.Sprintf(format, a...))
}

// span reads the "location" field of object, falling back to the enclosing
// span when it is absent.
func (b *builder) span(object map[string]any, parent syntax.Span) syntax.Span {
	raw, ok := object["location"]
	if !ok || raw == nil {
		return parent
	}

	location, ok := raw.(map[string]any)
	if !ok {
		b.errorf(parent, "location must be an object, got %s", describe(raw))
		return parent
	}

	span := syntax.Span{Filename: parent.Filename}

	if filename, ok := location["filename"].(string); ok {
		span.Filename = filename
	}

	if start, ok := integer(location["start"]); ok {
		span.Start = int(start)
	}

	if end, ok := integer(location["end"]); ok {
		span.End = int(end)
	}

	return span
}

// child builds the required term stored under key in object.
func (b *builder) child(object map[string]any, key, kind string, span syntax.Span) ast.Term {
	raw, ok := object[key]
	if !ok || raw == nil {
		b.errorf(span, "%s is missing required field %q", kind, key)
		return nil
	}

	return b.term(raw, span)
}

// term builds a single term from its decoded representation.
func (b *builder) term(raw any, parent syntax.Span) ast.Term {
	object, ok := raw.(map[string]any)
	if !ok {
		b.errorf(parent, "term must be an object, got %s", describe(raw))
		return nil
	}

	span := b.span(object, parent)

	discriminator, ok := object["kind"].(string)
	if !ok {
		b.error(span, `term is missing the "kind" discriminator`)
		return nil
	}

	kind, ok := ast.ParseKind(discriminator)
	if !ok {
		b.errorf(span, "unknown term kind %q", discriminator)
		return nil
	}

	switch kind {
	case ast.KindInt:
		return b.intTerm(object, span)
	case ast.KindStr:
		value, ok := object["value"].(string)
		if !ok {
			b.errorf(span, "Str value must be a string, got %s", describe(object["value"]))
		}

		return &ast.Str{Value: value, Location: span}
	case ast.KindBool:
		value, ok := object["value"].(bool)
		if !ok {
			b.errorf(span, "Bool value must be a boolean, got %s", describe(object["value"]))
		}

		return &ast.Bool{Value: value, Location: span}
	case ast.KindVar:
		return &ast.Var{Text: b.text(object, "Var", span), Location: span}
	case ast.KindFunction:
		return &ast.Function{
			Parameters: b.parameters(object, span),
			Value:      b.child(object, "value", "Function", span),
			Location:   span,
		}
	case ast.KindCall:
		return &ast.Call{
			Callee:    b.child(object, "callee", "Call", span),
			Arguments: b.arguments(object, span),
			Location:  span,
		}
	case ast.KindLet:
		return b.letTerm(object, span)
	case ast.KindBinary:
		return b.binaryTerm(object, span)
	case ast.KindIf:
		return &ast.If{
			Condition: b.child(object, "condition", "If", span),
			Then:      b.child(object, "then", "If", span),
			Otherwise: b.child(object, "otherwise", "If", span),
			Location:  span,
		}
	case ast.KindTuple:
		return &ast.Tuple{
			First:    b.child(object, "first", "Tuple", span),
			Second:   b.child(object, "second", "Tuple", span),
			Location: span,
		}
	case ast.KindFirst:
		return &ast.First{Value: b.child(object, "value", "First", span), Location: span}
	case ast.KindSecond:
		return &ast.Second{Value: b.child(object, "value", "Second", span), Location: span}
	case ast.KindPrint:
		return &ast.Print{Value: b.child(object, "value", "Print", span), Location: span}
	default:
		b.errorf(span, "unhandled term kind %s", kind)
		return nil
	}
}

func (b *builder) intTerm(object map[string]any, span syntax.Span) ast.Term {
	value, ok := integer(object["value"])
	if !ok {
		b.errorf(span, "Int value must be an integer, got %s", describe(object["value"]))
		return nil
	}

	if value < math.MinInt32 || value > math.MaxInt32 {
		b.errorf(span, "Int value %d does not fit in 32 bits", value)
		return nil
	}

	return &ast.Int{Value: int32(value), Location: span}
}

func (b *builder) letTerm(object map[string]any, span syntax.Span) ast.Term {
	let := &ast.Let{Location: span}

	name, ok := object["name"].(map[string]any)
	if !ok {
		b.error(span, `Let is missing required field "name"`)
	} else {
		let.Name = b.parameter(name, span)
	}

	let.Value = b.child(object, "value", "Let", span)

	// Next is the only optional child in the tree
	if next, ok := object["next"]; ok && next != nil {
		let.Next = b.term(next, span)
	}

	return let
}

func (b *builder) binaryTerm(object map[string]any, span syntax.Span) ast.Term {
	binary := &ast.Binary{
		LHS:      b.child(object, "lhs", "Binary", span),
		RHS:      b.child(object, "rhs", "Binary", span),
		Location: span,
	}

	op, ok := object["op"].(string)
	if !ok {
		b.errorf(span, "Binary op must be a string, got %s", describe(object["op"]))
		return binary
	}

	if err := binary.Op.UnmarshalText([]byte(op)); err != nil {
		b.error(span, err.Error())
	}

	return binary
}

// text reads the required "text" field of a Var or Parameter.
func (b *builder) text(object map[string]any, kind string, span syntax.Span) string {
	text, ok := object["text"].(string)
	if !ok || text == "" {
		b.errorf(span, "%s is missing required field %q", kind, "text")
	}

	return text
}

func (b *builder) parameter(object map[string]any, parent syntax.Span) ast.Parameter {
	span := b.span(object, parent)

	return ast.Parameter{
		Text:     b.text(object, "Parameter", span),
		Location: span,
	}
}

func (b *builder) parameters(object map[string]any, span syntax.Span) []ast.Parameter {
	raw, ok := object["parameters"]
	if !ok || raw == nil {
		return nil
	}

	list, ok := raw.([]any)
	if !ok {
		b.errorf(span, "Function parameters must be a list, got %s", describe(raw))
		return nil
	}

	params := make([]ast.Parameter, 0, len(list))

	for _, item := range list {
		param, ok := item.(map[string]any)
		if !ok {
			b.errorf(span, "Function parameter must be an object, got %s", describe(item))
			continue
		}

		params = append(params, b.parameter(param, span))
	}

	return params
}

func (b *builder) arguments(object map[string]any, span syntax.Span) []ast.Term {
	raw, ok := object["arguments"]
	if !ok || raw == nil {
		return nil
	}

	list, ok := raw.([]any)
	if !ok {
		b.errorf(span, "Call arguments must be a list, got %s", describe(raw))
		return nil
	}

	args := make([]ast.Term, 0, len(list))
	for _, item := range list {
		args = append(args, b.term(item, span))
	}

	return args
}

// integer converts any of the integer representations produced by the decoders
// into an int64.
func integer(raw any) (int64, bool) {
	switch n := raw.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}

		return int64(n), true
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n > math.MaxInt64 {
			return 0, false
		}

		return int64(n), true
	default:
		return 0, false
	}
}

// describe returns a short description of a decoded value for error messages.
func describe(raw any) string {
	switch raw.(type) {
	case nil:
		return "nothing"
	case map[string]any:
		return "an object"
	case []any:
		return "a list"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	default:
		return fmt.Sprintf("%v", raw)
	}
}
