package eval

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned from [Environment.Lookup] when no frame binds the name.
	ErrNotFound = errors.New("not found")

	// ErrNotYetDefined is returned from [Environment.Lookup] when the name is bound by a
	// let whose value is still being computed.
	ErrNotYetDefined = errors.New("used before its definition is complete")
)

// binding is a single name to value association. A nil value marks a pending
// binding created by [Environment.BindPending] that has not been resolved yet.
type binding struct {
	value Value
	name  string
}

// Environment is an immutable, chained scope mapping names to values.
//
// Each Environment is one frame holding the bindings introduced by a single let
// or function application plus a link to the frame it extends. Extending never
// modifies an existing frame so any number of closures can safely share a common
// ancestor. The nil *Environment is a valid empty environment.
type Environment struct {
	parent   *Environment
	bindings []binding
}

// NewEnvironment returns a new root [Environment] with no bindings.
func NewEnvironment() *Environment {
	return &Environment{}
}

// Bind returns a new environment that extends e with a single binding of name to value.
func (e *Environment) Bind(name string, value Value) *Environment {
	return &Environment{
		parent:   e,
		bindings: []binding{{name: name, value: value}},
	}
}

// Extend returns a new environment that extends e with a single frame binding each of
// names to the value at the same index in values.
//
// If a name appears more than once, the last one wins. Extend panics if names and
// values differ in length.
func (e *Environment) Extend(names []string, values []Value) *Environment {
	if len(names) != len(values) {
		panic(fmt.Sprintf("Environment.Extend: %d names but %d values", len(names), len(values)))
	}

	bindings := make([]binding, len(names))
	for i, name := range names {
		bindings[i] = binding{name: name, value: values[i]}
	}

	return &Environment{
		parent:   e,
		bindings: bindings,
	}
}

// BindPending returns a new environment that extends e with a binding for name
// whose value is not known yet, along with the [Pending] handle used to fill it in.
//
// Until the handle is resolved, looking the name up fails with [ErrNotYetDefined].
func (e *Environment) BindPending(name string) (*Environment, *Pending) {
	frame := &Environment{
		parent:   e,
		bindings: []binding{{name: name}},
	}

	return frame, &Pending{frame: frame}
}

// Lookup walks the chain from the innermost frame outwards and returns the value
// of the first binding for name.
func (e *Environment) Lookup(name string) (Value, error) {
	for frame := e; frame != nil; frame = frame.parent {
		// Later bindings in a frame shadow earlier ones
		for i := len(frame.bindings) - 1; i >= 0; i-- {
			if frame.bindings[i].name != name {
				continue
			}

			if frame.bindings[i].value == nil {
				return nil, fmt.Errorf("%s %w", name, ErrNotYetDefined)
			}

			return frame.bindings[i].value, nil
		}
	}

	return nil, fmt.Errorf("%s %w", name, ErrNotFound)
}

// Pending is the write-once handle for a binding created by [Environment.BindPending].
type Pending struct {
	frame    *Environment
	resolved bool
}

// Resolve fills in the pending binding with value.
//
// After Resolve the frame is permanently immutable. Resolve panics if called
// more than once or with a nil value.
func (p *Pending) Resolve(value Value) {
	if p.resolved {
		panic("Pending.Resolve: binding " + p.frame.bindings[0].name + " resolved twice")
	}

	if value == nil {
		panic("Pending.Resolve: nil value for binding " + p.frame.bindings[0].name)
	}

	p.frame.bindings[0].value = value
	p.resolved = true
}
