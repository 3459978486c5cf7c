// Package format provides mechanisms for reading term trees from, and writing them
// to, external document formats.
//
// Notably, the package provides the [Importer] and [Exporter] interfaces for doing this
// in a format-agnostic way, along with the built in JSON, YAML and TOML implementations.
//
// Every format shares the same document shape: one object per term with a "kind"
// discriminator and a "location" object holding "start", "end" and "filename".
package format

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"go.followtheprocess.codes/tsu/internal/syntax"
	"go.followtheprocess.codes/tsu/internal/syntax/ast"
)

// ErrMalformed is returned when a document decodes but does not describe a valid
// term tree, details are reported to the importer's [syntax.ErrorHandler].
var ErrMalformed = errors.New("malformed tree")

// Exporter is the interface defining a mechanism for exporting a program
// into an external format.
type Exporter interface {
	// Export exports the [ast.File] into an external format, written to w.
	Export(w io.Writer, file ast.File) error
}

// Importer is the interface defining a mechanism for importing programs
// from external formats.
type Importer interface {
	// Import imports the data from the external format into an [ast.File].
	Import(r io.Reader) (ast.File, error)
}

// ImporterFor returns the [Importer] for the file at path based on its
// extension, problems with the tree are reported to handler.
func ImporterFor(path string, handler syntax.ErrorHandler) (Importer, error) {
	switch ext := filepath.Ext(path); ext {
	case ".json":
		return JSONImporter{Name: path, Handler: handler}, nil
	case ".yaml", ".yml":
		return YAMLImporter{Name: path, Handler: handler}, nil
	default:
		return nil, fmt.Errorf("unsupported program file extension %q, expected .json, .yaml or .yml", ext)
	}
}

// ExporterFor returns the [Exporter] for the named format. If shortFn is true,
// functions are written with the "Fn" discriminator.
func ExporterFor(format string, shortFn bool) (Exporter, error) {
	switch format {
	case "json":
		return JSONExporter{ShortFn: shortFn}, nil
	case "yaml":
		return YAMLExporter{ShortFn: shortFn}, nil
	case "toml":
		return TOMLExporter{ShortFn: shortFn}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q, allowed values are 'json', 'yaml', 'toml'", format)
	}
}
