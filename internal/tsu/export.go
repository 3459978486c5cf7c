package tsu

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.followtheprocess.codes/tsu/internal/format"
	"go.followtheprocess.codes/tsu/internal/syntax"
)

// ExportOptions are the flags passed to the export subcommand.
type ExportOptions struct {
	// Format is the format of the export e.g. json, yaml, toml.
	Format string

	// ShortFn writes functions with the "Fn" discriminator rather than "Function".
	ShortFn bool

	// Debug controls debug logging.
	Debug bool
}

// Validate reports whether the ExportOptions is valid, returning a non-nil
// error if it's not.
func (e ExportOptions) Validate() error {
	switch format := e.Format; format {
	case "json", "yaml", "toml":
		return nil
	default:
		return fmt.Errorf("invalid option for --format %q, allowed values are 'json', 'yaml', 'toml'", format)
	}
}

// Export handles the export subcommand.
func (t Tsu) Export(ctx context.Context, file string, handler syntax.ErrorHandler, options ExportOptions) error {
	if err := options.Validate(); err != nil {
		return err
	}

	logger := t.logger.Prefixed("export")

	logger.Debug("Export configuration", slog.String("options", fmt.Sprintf("%+v", options)))

	start := time.Now()

	tree, err := loadFile(file, handler)
	if err != nil {
		return err
	}

	logger.Debug("Loaded file successfully", slog.String("file", file), slog.Duration("took", time.Since(start)))

	exporter, err := format.ExporterFor(options.Format, options.ShortFn)
	if err != nil {
		return err
	}

	if err := exporter.Export(t.stdout, tree); err != nil {
		return fmt.Errorf("could not export %s as %s: %w", file, options.Format, err)
	}

	return nil
}
