// Package ast defines the term tree evaluated by tsu.
//
// Trees are produced upstream (by a parser or by decoding one of the formats in
// package format) and are immutable once built. Subtrees may be shared between
// several parents, so terms are always handled through pointers and never copied.
package ast

import "go.followtheprocess.codes/tsu/internal/syntax"

// Term is the interface for a node in the term tree.
//
// The set of implementations is closed, only the types in this package
// satisfy it.
type Term interface {
	// Span returns the source span the term was produced from.
	Span() syntax.Span

	// Kind returns the kind of term this is.
	Kind() Kind

	termNode() // Seals the interface
}

// File is a complete program: a name and the single root expression.
type File struct {
	// Expression is the root term of the program.
	Expression Term

	// Name is the name of the source file the program came from.
	Name string

	// Location is the span of the whole program.
	Location syntax.Span
}

// Parameter is a name introduced by a function literal or a let binding.
type Parameter struct {
	// Text is the name being bound.
	Text string

	// Location is where the name appeared in source.
	Location syntax.Span
}
