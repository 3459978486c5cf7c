package eval

import (
	"fmt"
	"io"
	"slices"
)

// Sink receives the lines written by print, in the order they are evaluated.
//
// The evaluator only ever appends to a Sink, it never reads it back.
type Sink interface {
	// WriteLine appends a single line of output, line does not contain the
	// line terminator.
	WriteLine(line string) error
}

// WriterSink is a [Sink] that writes each line, followed by a newline, to an [io.Writer].
type WriterSink struct {
	w io.Writer
}

// NewWriterSink returns a [WriterSink] writing to w.
func NewWriterSink(w io.Writer) WriterSink {
	return WriterSink{w: w}
}

// WriteLine implements [Sink] for [WriterSink].
func (s WriterSink) WriteLine(line string) error {
	_, err := fmt.Fprintln(s.w, line)
	return err
}

// LineBuffer is a [Sink] that keeps every line in memory.
//
// The zero value is ready to use.
type LineBuffer struct {
	lines []string
}

// WriteLine implements [Sink] for [*LineBuffer], it never fails.
func (b *LineBuffer) WriteLine(line string) error {
	b.lines = append(b.lines, line)
	return nil
}

// Lines returns a copy of the lines written so far.
func (b *LineBuffer) Lines() []string {
	return slices.Clone(b.lines)
}
