package format

import (
	"go.followtheprocess.codes/tsu/internal/syntax"
	"go.followtheprocess.codes/tsu/internal/syntax/ast"
)

// documenter builds the generic document form of a file, the inverse of
// [builder.build].
//
// Only maps, slices of maps and scalars are used so every encoder can handle it.
type documenter struct {
	shortFn bool // Write functions with the "Fn" discriminator
}

// document returns the document form of a whole file.
func (d documenter) document(file ast.File) map[string]any {
	return map[string]any{
		"name":       file.Name,
		"expression": d.term(file.Expression),
		"location":   spanDocument(file.Location),
	}
}

// spanDocument returns the document form of a span.
func spanDocument(span syntax.Span) map[string]any {
	return map[string]any{
		"start":    int64(span.Start),
		"end":      int64(span.End),
		"filename": span.Filename,
	}
}

// parameterDocument returns the document form of a parameter.
func parameterDocument(param ast.Parameter) map[string]any {
	return map[string]any{
		"text":     param.Text,
		"location": spanDocument(param.Location),
	}
}

// term returns the document form of a term.
func (d documenter) term(term ast.Term) map[string]any {
	if term == nil {
		return nil
	}

	kind := term.Kind().String()
	if d.shortFn && term.Kind() == ast.KindFunction {
		kind = "Fn"
	}

	doc := map[string]any{
		"kind":     kind,
		"location": spanDocument(term.Span()),
	}

	switch t := term.(type) {
	case *ast.Int:
		doc["value"] = int64(t.Value)
	case *ast.Str:
		doc["value"] = t.Value
	case *ast.Bool:
		doc["value"] = t.Value
	case *ast.Var:
		doc["text"] = t.Text
	case *ast.Function:
		params := make([]map[string]any, 0, len(t.Parameters))
		for _, param := range t.Parameters {
			params = append(params, parameterDocument(param))
		}

		doc["parameters"] = params
		doc["value"] = d.term(t.Value)
	case *ast.Call:
		args := make([]map[string]any, 0, len(t.Arguments))
		for _, arg := range t.Arguments {
			args = append(args, d.term(arg))
		}

		doc["callee"] = d.term(t.Callee)
		doc["arguments"] = args
	case *ast.Let:
		doc["name"] = parameterDocument(t.Name)
		doc["value"] = d.term(t.Value)

		if t.Next != nil {
			doc["next"] = d.term(t.Next)
		}
	case *ast.Binary:
		doc["op"] = t.Op.String()
		doc["lhs"] = d.term(t.LHS)
		doc["rhs"] = d.term(t.RHS)
	case *ast.If:
		doc["condition"] = d.term(t.Condition)
		doc["then"] = d.term(t.Then)
		doc["otherwise"] = d.term(t.Otherwise)
	case *ast.Tuple:
		doc["first"] = d.term(t.First)
		doc["second"] = d.term(t.Second)
	case *ast.First:
		doc["value"] = d.term(t.Value)
	case *ast.Second:
		doc["value"] = d.term(t.Value)
	case *ast.Print:
		doc["value"] = d.term(t.Value)
	}

	return doc
}
