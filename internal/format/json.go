package format

import (
	"encoding/json"
	"fmt"
	"io"

	"go.followtheprocess.codes/tsu/internal/syntax"
	"go.followtheprocess.codes/tsu/internal/syntax/ast"
)

// JSONExporter is an [Exporter] that writes programs as JSON documents.
type JSONExporter struct {
	// ShortFn writes functions with the "Fn" discriminator rather than "Function".
	ShortFn bool
}

// Export implements [Exporter] for [JSONExporter] and exports the given file
// as a complete JSON document.
func (j JSONExporter) Export(w io.Writer, file ast.File) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(documenter{shortFn: j.ShortFn}.document(file))
}

// JSONImporter is an [Importer] that reads programs from JSON documents.
type JSONImporter struct {
	// Handler is called with every problem found in the tree, may be nil.
	Handler syntax.ErrorHandler

	// Name is used as the program name and filename when the document
	// does not provide them.
	Name string
}

// Import implements [Importer] for [JSONImporter] and imports the given
// JSON document into an [ast.File].
func (j JSONImporter) Import(r io.Reader) (ast.File, error) {
	var doc any

	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	if err := decoder.Decode(&doc); err != nil {
		return ast.File{}, fmt.Errorf("could not decode JSON: %w", err)
	}

	return newBuilder(j.Name, j.Handler).build(doc)
}
