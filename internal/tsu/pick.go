package tsu

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/huh"
	"go.followtheprocess.codes/tsu/internal/syntax"
)

// Pick implements the root command: the user picks a program file found under
// options.Path from an interactive list, and it is run with the remaining options.
func (t Tsu) Pick(ctx context.Context, handler syntax.ErrorHandler, options RunOptions) error {
	logger := t.logger.Prefixed("pick").With(slog.String("path", options.Path))

	paths, err := programPaths(logger, options.Path)
	if err != nil {
		return err
	}

	choice := paths[0]

	if len(paths) > 1 {
		logger.Debug("Prompting for program", slog.Int("choices", len(paths)))

		selection := huh.NewSelect[string]().
			Title("Which program do you want to run?").
			Options(huh.NewOptions(paths...)...).
			Value(&choice)

		form := huh.NewForm(huh.NewGroup(selection)).
			WithInput(t.stdin).
			WithOutput(t.stderr)

		if err := form.RunWithContext(ctx); err != nil {
			return fmt.Errorf("could not pick a program: %w", err)
		}
	}

	logger.Debug("Picked program", slog.String("program", choice))

	options.Path = choice

	return t.Run(ctx, handler, options)
}
