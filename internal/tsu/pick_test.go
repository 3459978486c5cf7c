package tsu_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.followtheprocess.codes/test"
	"go.followtheprocess.codes/tsu/internal/eval"
	"go.followtheprocess.codes/tsu/internal/syntax/resolver"
	"go.followtheprocess.codes/tsu/internal/tsu"
)

func TestPickSingleProgram(t *testing.T) {
	dir := t.TempDir()

	src := `{"kind": "Print", "value": {"kind": "Str", "value": "only one"}}`
	test.Ok(t, os.WriteFile(filepath.Join(dir, "only.json"), []byte(src), 0o644))

	stdout := &bytes.Buffer{}

	app := tsu.New(false, "test", strings.NewReader(""), stdout, io.Discard)

	// With a single candidate there is nothing to ask
	err := app.Pick(t.Context(), nil, tsu.RunOptions{Path: dir, MaxDepth: eval.DefaultMaxDepth})
	test.Ok(t, err)

	test.Equal(t, stdout.String(), "only one\n")
}

func TestPickNoPrograms(t *testing.T) {
	app := tsu.New(false, "test", strings.NewReader(""), io.Discard, io.Discard)

	err := app.Pick(t.Context(), nil, tsu.RunOptions{Path: t.TempDir(), MaxDepth: eval.DefaultMaxDepth})
	test.Err(t, err)
}

func TestPickCheck(t *testing.T) {
	dir := t.TempDir()

	// Prints before it reaches the unbound name
	src := `{
  "kind": "Tuple",
  "first": {"kind": "Print", "value": {"kind": "Str", "value": "hi"}},
  "second": {"kind": "Var", "text": "missing"}
}`
	test.Ok(t, os.WriteFile(filepath.Join(dir, "unbound.json"), []byte(src), 0o644))

	t.Run("unchecked", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		app := tsu.New(false, "test", strings.NewReader(""), stdout, io.Discard)

		err := app.Pick(t.Context(), nil, tsu.RunOptions{Path: dir, MaxDepth: eval.DefaultMaxDepth})
		test.True(t, errors.Is(err, eval.ErrUnboundName), test.Context("wrong error: %v", err))
		test.Equal(t, stdout.String(), "hi\n")
	})

	t.Run("checked", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		app := tsu.New(false, "test", strings.NewReader(""), stdout, io.Discard)

		err := app.Pick(t.Context(), nil, tsu.RunOptions{Path: dir, MaxDepth: eval.DefaultMaxDepth, Check: true})
		test.True(t, errors.Is(err, resolver.ErrResolve), test.Context("wrong error: %v", err))
		test.Equal(t, stdout.String(), "")
	})
}
