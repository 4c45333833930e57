package loader

import (
	"errors"
	"sort"

	"github.com/go-openapi/spec"
	"github.com/griffnb/swag2ts/internal/tsgen"
)

// Format is the encoding of an input document.
type Format int

const (
	// FormatAuto picks the format from the file extension, defaulting to JSON.
	FormatAuto Format = iota
	// FormatJSON is a JSON document.
	FormatJSON
	// FormatYAML is a YAML document.
	FormatYAML
)

// ErrNoDefinitions is returned for documents without any model definitions.
var ErrNoDefinitions = errors.New("document has no model definitions")

// Service loads Swagger / OpenAPI documents from disk.
type Service struct {
	format Format
	debug  Debugger
}

// Debugger interface for logging
type Debugger interface {
	Printf(format string, v ...interface{})
}

// Document is a loaded input document.
type Document struct {
	// Path the document was read from. Empty for in-memory documents.
	Path string

	// Swagger holds the decoded document. OpenAPI 3 documents only populate
	// Definitions, taken from components.schemas.
	Swagger *spec.Swagger

	// PropertyOrder maps definition names to their property names in
	// document order. YAML input carries no order and yields sorted names.
	PropertyOrder map[string][]string
}

// Table builds the definition table for the generator.
func (d *Document) Table() tsgen.Table {
	return tsgen.TableFromDefinitions(d.Swagger.Definitions, d.PropertyOrder)
}

// Names returns the definition names in sorted order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.Swagger.Definitions))
	for name := range d.Swagger.Definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Option is a functional option for configuring Service
type Option func(*Service)

// noOpDebugger is a no-op debugger
type noOpDebugger struct{}

func (n *noOpDebugger) Printf(format string, v ...interface{}) {}
