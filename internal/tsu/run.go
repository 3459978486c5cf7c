package tsu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/tsu/internal/eval"
	"go.followtheprocess.codes/tsu/internal/syntax"
)

// Styles.
const (
	// headerStyle is the style used for the name of each program when
	// running a whole directory.
	headerStyle = hue.Bold

	// resultStyle is the style used to print a program's final value.
	resultStyle = hue.BrightBlack | hue.Italic
)

// RunOptions are the options passed to the run subcommand.
type RunOptions struct {
	// Path is the path (file or directory) of the program(s) to run.
	Path string

	// MaxDepth is the maximum nesting of evaluation, past which a program fails
	// with a stack overflow.
	MaxDepth int

	// Result, if true, prints the value of each program after its output.
	Result bool

	// Check, if true, statically checks each program before running it.
	Check bool

	// Debug enables debug logging.
	Debug bool
}

// Validate reports whether the RunOptions is valid, returning an error
// if it's not.
//
// nil means the options are valid.
func (r RunOptions) Validate() error {
	switch {
	case r.Path == "":
		return errors.New("path cannot be empty")
	case r.MaxDepth < 1:
		return fmt.Errorf("max-depth must be at least 1, got %d", r.MaxDepth)
	default:
		return nil
	}
}

// Run implements the run subcommand.
//
// Every program under options.Path is loaded up front, then each is evaluated in
// turn, in its own empty environment, stopping at the first one that fails.
func (t Tsu) Run(ctx context.Context, handler syntax.ErrorHandler, options RunOptions) error {
	if err := options.Validate(); err != nil {
		return err
	}

	logger := t.logger.Prefixed("run").With(slog.String("path", options.Path))

	logger.Debug(
		"Run configuration",
		slog.String("version", t.version),
		slog.String("options", fmt.Sprintf("%+v", options)),
	)

	paths, err := programPaths(logger, options.Path)
	if err != nil {
		return err
	}

	handler = lockedHandler(handler)

	files, err := loadAll(ctx, logger, paths, handler)
	if err != nil {
		return err
	}

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		if options.Check {
			if err := checkTree(paths[i], file, handler); err != nil {
				return err
			}
		}

		if len(files) > 1 {
			fmt.Fprintln(t.stdout, headerStyle.Text(paths[i]))
		}

		start := time.Now()

		evaluator := eval.New(
			eval.NewWriterSink(t.stdout),
			eval.WithMaxDepth(options.MaxDepth),
			eval.WithLogger(logger),
		)

		value, err := evaluator.Run(file)
		if err != nil {
			return fmt.Errorf("%s failed: %w", paths[i], err)
		}

		logger.Debug("Program finished", slog.String("program", paths[i]), slog.Duration("took", time.Since(start)))

		if options.Result {
			fmt.Fprintln(t.stdout, resultStyle.Text(value.String()))
		}
	}

	return nil
}
