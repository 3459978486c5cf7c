package format

import (
	"io"

	"github.com/BurntSushi/toml"
	"go.followtheprocess.codes/tsu/internal/syntax/ast"
)

// TOMLExporter is an [Exporter] that writes programs as TOML documents.
type TOMLExporter struct {
	// ShortFn writes functions with the "Fn" discriminator rather than "Function".
	ShortFn bool
}

// Export implements [Exporter] for [TOMLExporter] and exports the given file
// as a complete TOML document.
func (t TOMLExporter) Export(w io.Writer, file ast.File) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = ""

	return encoder.Encode(documenter{shortFn: t.ShortFn}.document(file))
}
