package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/tsu/internal/syntax"
	"go.followtheprocess.codes/tsu/internal/tsu"
)

const exportLong = `
Export a program to JSON, YAML or TOML, written to stdout.

Functions are written with the "Function" kind by default. Some tools
only understand the shorter "Fn" kind, pass --short-fn to write that
instead. Either kind is accepted when a program is loaded.
`

// export returns the export subcommand.
func export() (*cli.Command, error) {
	var (
		options tsu.ExportOptions
		file    string
	)

	return cli.New(
		"export",
		cli.Short("Export a program to another format"),
		cli.Long(exportLong),
		cli.Arg(&file, "file", "Path to the program file"),
		cli.Flag(&options.Format, "format", 'f', "Format to export to, one of json, yaml, toml", cli.FlagDefault("json")),
		cli.Flag(&options.ShortFn, "short-fn", flag.NoShortHand, `Write functions with the "Fn" kind`),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := tsu.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Export(ctx, file, syntax.PrettyConsoleHandler(cmd.Stderr()), options)
		}),
	)
}
