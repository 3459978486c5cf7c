package resolver

import (
	"fmt"

	"go.followtheprocess.codes/tsu/internal/syntax"
	"go.followtheprocess.codes/tsu/internal/syntax/ast"
)

// binding is everything the resolver knows statically about a name.
type binding struct {
	value ast.Term    // The term bound by a let, nil for parameters
	span  syntax.Span // Where the name was introduced
}

// environment is a scoped environment for the resolver.
type environment struct {
	values map[string]binding
	parent *environment
}

// newEnvironment creates a new, empty [environment] with no parent.
func newEnvironment() *environment {
	return &environment{
		values: make(map[string]binding),
		parent: nil,
	}
}

// define defines a new name in the innermost scope.
func (e *environment) define(name string, b binding) error {
	if existing, exists := e.values[name]; exists {
		return fmt.Errorf("%s already defined at %s", name, existing.span)
	}

	e.values[name] = b

	return nil
}

// get walks up the scope to find a name, if it reaches the outermost
// scope without finding it, it returns an error.
func (e *environment) get(name string) (binding, error) {
	if b, ok := e.values[name]; ok {
		return b, nil
	}

	if e.parent != nil {
		return e.parent.get(name)
	}

	return binding{}, fmt.Errorf("use of undeclared name %s", name)
}

// child creates a new empty [environment] using the calling one as a parent.
func (e *environment) child() *environment {
	return &environment{
		values: make(map[string]binding),
		parent: e,
	}
}
