// Package cmd implements tsu's CLI.
package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/tsu/internal/eval"
	"go.followtheprocess.codes/tsu/internal/syntax"
	"go.followtheprocess.codes/tsu/internal/tsu"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Build builds and returns the tsu CLI.
func Build() (*cli.Command, error) {
	options := tsu.RunOptions{Path: "."}

	return cli.New(
		"tsu",
		cli.Short("Run programs written as rinha syntax trees"),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Pick a program in the current directory interactively and run it", "tsu"),
		cli.Example("Run a single program", "tsu run ./fib.json"),
		cli.Example("Run every program in a directory, printing each final value", "tsu run ./examples --result"),
		cli.Example("Check a directory of programs for problems", "tsu check ./examples"),
		cli.Example("Convert a program to YAML", "tsu export ./fib.json --format yaml"),
		cli.Flag(
			&options.MaxDepth,
			"max-depth",
			flag.NoShortHand,
			"Maximum evaluation depth",
			cli.FlagDefault(eval.DefaultMaxDepth),
		),
		cli.Flag(&options.Result, "result", 'r', "Print the final value of the program"),
		cli.Flag(&options.Check, "check", 'c', "Statically check the program before running it"),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.SubCommands(run, check, export),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := tsu.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Pick(ctx, syntax.PrettyConsoleHandler(cmd.Stderr()), options)
		}),
	)
}
