package tsu_test

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/test"
	"go.followtheprocess.codes/tsu/internal/eval"
	"go.followtheprocess.codes/tsu/internal/syntax"
	"go.followtheprocess.codes/tsu/internal/syntax/resolver"
	"go.followtheprocess.codes/tsu/internal/tsu"
	"go.followtheprocess.codes/txtar"
	"go.uber.org/goleak"
)

var (
	update = flag.Bool("update", false, "Update testscript and program golden files")
	clean  = flag.Bool("clean", false, "Clean all snapshots and recreate")
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"run": func() {
			hue.Enabled(false)

			options := tsu.RunOptions{}

			flags := flag.NewFlagSet("run", flag.ExitOnError)
			flags.IntVar(&options.MaxDepth, "max-depth", eval.DefaultMaxDepth, "Maximum evaluation depth")
			flags.BoolVar(&options.Result, "result", false, "Print the final value")
			flags.BoolVar(&options.Check, "check", false, "Check before running")

			if err := flags.Parse(os.Args[1:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1) //nolint:revive // redundant-test-main-exit, this is testscript main
			}

			options.Path = flags.Arg(0)

			app := tsu.New(false, "test", os.Stdin, os.Stdout, os.Stderr)

			err := app.Run(context.Background(), simpleErrorHandler(os.Stderr), options)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1) //nolint:revive // redundant-test-main-exit, this is testscript main
			}
		},
	})
}

func TestRun(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:                 filepath.Join("testdata", "run"),
		UpdateScripts:       *update,
		RequireExplicitExec: true,
		RequireUniqueNames:  true,
	})
}

func TestPrograms(t *testing.T) {
	// Force colour for diffs but only locally
	test.ColorEnabled(os.Getenv("CI") == "")
	hue.Enabled(false)

	pattern := filepath.Join("testdata", "programs", "*.txtar")
	files, err := filepath.Glob(pattern)
	test.Ok(t, err)

	for _, file := range files {
		name := filepath.Base(file)
		t.Run(name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			archive, err := txtar.ParseFile(file)
			test.Ok(t, err)

			ext := ".json"

			src, ok := archive.Read("src.json")
			if !ok {
				ext = ".yaml"
				src, ok = archive.Read("src.yaml")
			}

			test.True(t, ok, test.Context("%s missing src.json or src.yaml", file))

			path := filepath.Join(t.TempDir(), strings.TrimSuffix(name, ".txtar")+ext)
			test.Ok(t, os.WriteFile(path, []byte(src), 0o644))

			maxDepth := eval.DefaultMaxDepth
			if raw, ok := archive.Read("max-depth"); ok {
				maxDepth, err = strconv.Atoi(strings.TrimSpace(raw))
				test.Ok(t, err)
			}

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			app := tsu.New(false, "test", strings.NewReader(""), stdout, stderr)

			options := tsu.RunOptions{
				Path:     path,
				MaxDepth: maxDepth,
				Result:   true,
			}

			err = app.Run(t.Context(), simpleErrorHandler(stderr), options)

			if wantErr, isErr := archive.Read("error"); isErr {
				test.Err(t, err)

				if !*update {
					test.True(
						t,
						strings.Contains(err.Error(), strings.TrimSpace(wantErr)),
						test.Context("error %q does not contain %q", err.Error(), strings.TrimSpace(wantErr)),
					)
				}
			} else {
				test.Ok(t, err)
			}

			got := stdout.String()

			if *update {
				err := archive.Write("stdout", got)
				test.Ok(t, err)

				err = txtar.DumpFile(file, archive)
				test.Ok(t, err)

				return
			}

			want, ok := archive.Read("stdout")
			test.True(t, ok, test.Context("%s missing stdout", file))

			test.Diff(t, got, want)
			test.Equal(t, stderr.String(), "")
		})
	}
}

func TestRunCheck(t *testing.T) {
	path := filepath.Join("testdata", "check", "invalid", "unbound.json")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	app := tsu.New(false, "test", strings.NewReader(""), stdout, stderr)

	options := tsu.RunOptions{Path: path, MaxDepth: eval.DefaultMaxDepth, Check: true}

	err := app.Run(t.Context(), simpleErrorHandler(stderr), options)
	test.Err(t, err)
	test.True(t, errors.Is(err, resolver.ErrResolve))

	// Nothing was run
	test.Equal(t, stdout.String(), "")
	test.Equal(t, stderr.String(), "unbound.rinha:6-13: missing is not defined\n")
}

func TestRunDirectory(t *testing.T) {
	hue.Enabled(false)

	dir := t.TempDir()

	programs := map[string]string{
		"b.json":        `{"kind": "Print", "value": {"kind": "Int", "value": 2}}`,
		"a.json":        `{"kind": "Print", "value": {"kind": "Int", "value": 1}}`,
		"nested/c.yaml": "kind: Print\nvalue:\n  kind: Bool\n  value: true\n",
		"README.md":     "# Not a program",
	}

	for name, contents := range programs {
		path := filepath.Join(dir, name)
		test.Ok(t, os.MkdirAll(filepath.Dir(path), 0o755))
		test.Ok(t, os.WriteFile(path, []byte(contents), 0o644))
	}

	stdout := &bytes.Buffer{}

	app := tsu.New(false, "test", strings.NewReader(""), stdout, io.Discard)

	err := app.Run(t.Context(), nil, tsu.RunOptions{Path: dir, MaxDepth: eval.DefaultMaxDepth})
	test.Ok(t, err)

	want := fmt.Sprintf(
		"%s\n1\n%s\n2\n%s\ntrue\n",
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.json"),
		filepath.Join(dir, "nested", "c.yaml"),
	)

	test.Diff(t, stdout.String(), want)
}

func TestRunEmptyDirectory(t *testing.T) {
	app := tsu.New(false, "test", strings.NewReader(""), io.Discard, io.Discard)

	err := app.Run(t.Context(), nil, tsu.RunOptions{Path: t.TempDir(), MaxDepth: eval.DefaultMaxDepth})
	test.Err(t, err)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	app := tsu.New(false, "test", strings.NewReader(""), io.Discard, io.Discard)

	path := filepath.Join("testdata", "check", "valid", "fib.json")

	err := app.Run(ctx, nil, tsu.RunOptions{Path: path, MaxDepth: eval.DefaultMaxDepth})
	test.True(t, errors.Is(err, context.Canceled), test.Context("expected context.Canceled, got %v", err))
}

func TestRunOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string         // Name of the test case
		errMsg  string         // If we wanted an error, what should it say
		options tsu.RunOptions // The options under test
		wantErr bool           // Whether we want an error
	}{
		{
			name:    "valid",
			options: tsu.RunOptions{Path: "fib.json", MaxDepth: 10},
			wantErr: false,
		},
		{
			name:    "no path",
			options: tsu.RunOptions{MaxDepth: 10},
			wantErr: true,
			errMsg:  "path cannot be empty",
		},
		{
			name:    "zero depth",
			options: tsu.RunOptions{Path: "fib.json"},
			wantErr: true,
			errMsg:  "max-depth must be at least 1, got 0",
		},
		{
			name:    "negative depth",
			options: tsu.RunOptions{Path: "fib.json", MaxDepth: -5},
			wantErr: true,
			errMsg:  "max-depth must be at least 1, got -5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.options.Validate()
			test.WantErr(t, err, tt.wantErr)

			if err != nil {
				test.Equal(t, err.Error(), tt.errMsg)
			}
		})
	}
}

// simpleErrorHandler returns a [syntax.ErrorHandler] that returns a simple, unstyled
// string representation of the error.
func simpleErrorHandler(w io.Writer) syntax.ErrorHandler {
	return func(span syntax.Span, msg string) {
		fmt.Fprintf(w, "%s: %s\n", span, msg)
	}
}
