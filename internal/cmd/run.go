package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/tsu/internal/eval"
	"go.followtheprocess.codes/tsu/internal/syntax"
	"go.followtheprocess.codes/tsu/internal/tsu"
)

const runLong = `
The path argument may be a program file or a directory.

Programs are syntax trees in the rinha JSON format, or the same
document written as YAML ('.yaml' or '.yml').

If path is a directory, it is scanned recursively for program files
which are run one after the other in lexical order, each starting
from an empty environment. The first program to fail stops the run.

Output from print goes to stdout as the program runs, runtime errors
are reported with the span of the term that raised them.
`

// run returns the tsu run subcommand.
func run() (*cli.Command, error) {
	var options tsu.RunOptions

	return cli.New(
		"run",
		cli.Short("Run one or more programs"),
		cli.Long(runLong),
		cli.Arg(&options.Path, "path", "Path to run, may be directory or file", cli.ArgDefault(".")),
		cli.Flag(
			&options.MaxDepth,
			"max-depth",
			flag.NoShortHand,
			"Maximum evaluation depth",
			cli.FlagDefault(eval.DefaultMaxDepth),
		),
		cli.Flag(&options.Result, "result", 'r', "Print the final value of each program"),
		cli.Flag(&options.Check, "check", 'c', "Statically check each program before running it"),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := tsu.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Run(ctx, syntax.PrettyConsoleHandler(cmd.Stderr()), options)
		}),
	)
}
