package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/tsu/internal/syntax"
	"go.followtheprocess.codes/tsu/internal/tsu"
)

const checkLong = `
The path argument may be a directory or a file.

If it is the name of a program file, then this file alone is checked
for validity.

If it is a directory, this directory is scanned recursively for all
files with a '.json', '.yaml' or '.yml' extension and any matching files
will be checked concurrently.

Checking never runs a program. It reports malformed trees, names that
are never bound, duplicate parameters and calls that can only fail.
`

// check returns the check subcommand.
func check() (*cli.Command, error) {
	var options tsu.CheckOptions

	return cli.New(
		"check",
		cli.Short("Check programs for errors without running them"),
		cli.Long(checkLong),
		cli.Arg(&options.Path, "path", "Path to check, may be directory or file", cli.ArgDefault(".")),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := tsu.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Check(ctx, syntax.PrettyConsoleHandler(cmd.Stderr()), options)
		}),
	)
}
