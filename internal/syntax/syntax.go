// Package syntax holds the source level concepts shared by the term tree, the
// importers and the static checker: source spans, diagnostics and the handlers
// used to report them.
package syntax

import (
	"cmp"
	"fmt"
	"io"

	"go.followtheprocess.codes/hue"
)

// Styles used by [PrettyConsoleHandler].
const (
	// spanStyle is the style used to render the span a diagnostic points to.
	spanStyle = hue.Bold

	// errorStyle is the style used to render the "error" label.
	errorStyle = hue.Red | hue.Bold
)

// Span is a range of source text in an originating file, expressed as byte offsets.
//
// Spans are carried by every term in the tree purely for error reporting, they never
// influence evaluation.
type Span struct {
	Filename string `json:"filename" yaml:"filename" toml:"filename"` // The file the term came from
	Start    int    `json:"start"    yaml:"start"    toml:"start"`    // Byte offset of the start of the span
	End      int    `json:"end"      yaml:"end"      toml:"end"`      // Byte offset of the end of the span (exclusive)
}

// IsValid reports whether the [Span] describes a valid source range.
//
// The rules are:
//
//   - Filename must be set
//   - Start and End must not be negative
//   - End must not come before Start
func (s Span) IsValid() bool {
	if s.Filename == "" || s.Start < 0 || s.End < 0 || s.End < s.Start {
		return false
	}

	return true
}

// String returns a string representation of a [Span].
//
// Depending on the span, the string returned will be different:
//
//   - "file:start-end": valid span covering a range of text
//   - "file:start": valid span pointing at a single offset (End == Start)
//
// If the span is not valid, an error string is returned instead.
func (s Span) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("BadSpan: {Filename: %q, Start: %d, End: %d}", s.Filename, s.Start, s.End)
	}

	if s.Start == s.End {
		return fmt.Sprintf("%s:%d", s.Filename, s.Start)
	}

	return fmt.Sprintf("%s:%d-%d", s.Filename, s.Start, s.End)
}

// CompareSpan is like [cmp.Compare] for a [Span].
//
// If x and y are equal CompareSpan returns 0.
//
// If x and y refer to the same file, it compares the start offsets and
// then the end offsets.
//
// If the spans refer to different files, they are compared alphabetically.
func CompareSpan(x, y Span) int {
	if x == y {
		return 0
	}

	if x.Filename == y.Filename {
		if c := cmp.Compare(x.Start, y.Start); c != 0 {
			return c
		}

		return cmp.Compare(x.End, y.End)
	}

	return cmp.Compare(x.Filename, y.Filename)
}

// Diagnostic is a syntax level diagnostic.
type Diagnostic struct {
	Msg  string `json:"msg"`  // A descriptive message explaining the error
	Span Span   `json:"span"` // The source span the diagnostic points to
}

// String prints a [Diagnostic].
func (d Diagnostic) String() string {
	return d.Span.String() + ": " + d.Msg + "\n"
}

// ErrorHandler is a function that gets called with every diagnostic found while
// decoding or checking a term tree.
type ErrorHandler func(span Span, msg string)

// PrettyConsoleHandler returns an [ErrorHandler] that writes a styled, human
// readable line per diagnostic to w.
func PrettyConsoleHandler(w io.Writer) ErrorHandler {
	return func(span Span, msg string) {
		fmt.Fprintf(w, "%s: %s: %s\n", spanStyle.Text(span.String()), errorStyle.Text("error"), msg)
	}
}
