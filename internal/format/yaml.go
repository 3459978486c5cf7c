package format

import (
	"fmt"
	"io"

	"go.followtheprocess.codes/tsu/internal/syntax"
	"go.followtheprocess.codes/tsu/internal/syntax/ast"
	"go.yaml.in/yaml/v4"
)

const yamlIndent = 2

// YAMLExporter is an [Exporter] that writes programs as YAML documents.
type YAMLExporter struct {
	// ShortFn writes functions with the "Fn" discriminator rather than "Function".
	ShortFn bool
}

// Export implements [Exporter] for [YAMLExporter] and exports the given file as
// a complete YAML document.
func (y YAMLExporter) Export(w io.Writer, file ast.File) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(documenter{shortFn: y.ShortFn}.document(file)); err != nil {
		return err
	}

	return encoder.Close()
}

// YAMLImporter is an [Importer] that reads programs from YAML documents, which
// have the same shape as the JSON ones.
type YAMLImporter struct {
	// Handler is called with every problem found in the tree, may be nil.
	Handler syntax.ErrorHandler

	// Name is used as the program name and filename when the document
	// does not provide them.
	Name string
}

// Import implements [Importer] for [YAMLImporter] and imports the given
// YAML document into an [ast.File].
func (y YAMLImporter) Import(r io.Reader) (ast.File, error) {
	var doc any

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return ast.File{}, fmt.Errorf("could not decode YAML: %w", err)
	}

	return newBuilder(y.Name, y.Handler).build(doc)
}
