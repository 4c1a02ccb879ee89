package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"tuplegen/internal/plan"
)

// Config holds configuration for code generation.
type Config struct {
	// FileSuffix is appended to the lowercased struct name to form the
	// generated filename.
	FileSuffix string
	// TuplePkg is the import path of the tuple package the generated
	// code depends on.
	TuplePkg string
	// Header is the first comment line of every generated file.
	Header string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		FileSuffix: "_fromtuple.go",
		TuplePkg:   "tuplegen/tuple",
		Header:     "Code generated by tuplegen. DO NOT EDIT.",
	}
}

// Generator generates Go code from tuple mappings.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file. It is placed in
// the annotated struct's own package directory.
type GeneratedFile struct {
	// Dir is the directory the file belongs in.
	Dir string
	// Filename is the base name (e.g., "hello_fromtuple.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the full path of the generated file.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// tupleAccessors are the positional accessor names of the tuple types,
// indexed by tuple position.
var tupleAccessors = [...]string{
	"First", "Second", "Third", "Fourth", "Fifth", "Sixth", "Seventh", "Eighth",
}

// templateData holds all data needed for the fromtuple template.
type templateData struct {
	Header      string
	PackageName string
	Imports     []importSpec
	FuncName    string
	StructName  string
	StructType  string
	TypeParams  string
	ParamName   string
	TupleType   string
	Assignments []assignmentData
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// assignmentData represents a single field assignment in the
// generated composite literal.
type assignmentData struct {
	Field    string
	Accessor string
}

// Generate renders the FromTuple constructor for one mapping.
func (g *Generator) Generate(mapping *plan.TupleMapping) (*GeneratedFile, error) {
	if mapping.Arity() > len(tupleAccessors) {
		return nil, fmt.Errorf("tuple arity %d exceeds the %d declared accessors",
			mapping.Arity(), len(tupleAccessors))
	}

	data := g.buildTemplateData(mapping)

	var buf bytes.Buffer
	if err := fromTupleTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting code for %s: %w", mapping.Struct.Name, err)
	}

	return &GeneratedFile{
		Dir:      mapping.Struct.Pkg.Dir,
		Filename: g.filename(mapping),
		Content:  formatted,
	}, nil
}

// buildTemplateData constructs the template data from a mapping.
func (g *Generator) buildTemplateData(mapping *plan.TupleMapping) *templateData {
	model := mapping.Struct

	data := &templateData{
		Header:      g.config.Header,
		PackageName: model.Pkg.Name,
		FuncName:    model.Name + "FromTuple",
		StructName:  model.Name,
		StructType:  model.Name + model.TypeArgs,
		TypeParams:  model.TypeParams,
		ParamName:   "t",
		TupleType:   g.tupleType(mapping),
	}

	// The parameter of the empty conversion is never read.
	if mapping.Arity() == 0 {
		data.ParamName = "_"
	}

	for _, entry := range mapping.Entries {
		data.Assignments = append(data.Assignments, assignmentData{
			Field:    entry.Field.Name,
			Accessor: tupleAccessors[entry.TuplePos],
		})
	}

	imports := map[string]importSpec{
		g.config.TuplePkg: {Path: g.config.TuplePkg},
	}

	for _, ref := range model.Imports {
		imports[ref.Path] = importSpec{Alias: ref.Alias, Path: ref.Path}
	}

	for _, imp := range imports {
		data.Imports = append(data.Imports, imp)
	}

	sort.Slice(data.Imports, func(i, j int) bool {
		return data.Imports[i].Path < data.Imports[j].Path
	})

	return data
}

// tupleType renders the generated signature's tuple type: the element
// types are the field types in declaration order, so any tuple value
// supplied at this exact type can only be decomposed one way.
func (g *Generator) tupleType(mapping *plan.TupleMapping) string {
	qualifier := path.Base(g.config.TuplePkg)

	if mapping.Arity() == 0 {
		return qualifier + ".Tuple0"
	}

	elems := make([]string, 0, mapping.Arity())
	for _, entry := range mapping.Entries {
		elems = append(elems, entry.Field.TypeKey)
	}

	return fmt.Sprintf("%s.Tuple%d[%s]", qualifier, mapping.Arity(), strings.Join(elems, ", "))
}

func (g *Generator) filename(mapping *plan.TupleMapping) string {
	return strings.ToLower(mapping.Struct.Name) + g.config.FileSuffix
}

// Template for the generated fromtuple file

var fromTupleTemplate = template.Must(template.New("fromtuple").Parse(`// {{.Header}}

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})

// {{.FuncName}} constructs a {{.StructName}} from a tuple of its field
// values in declaration order. The conversion is total: every tuple
// element is assigned to exactly one field.
func {{.FuncName}}{{.TypeParams}}({{.ParamName}} {{.TupleType}}) {{.StructType}} {
{{if .Assignments}}	return {{.StructType}}{
{{range .Assignments}}		{{.Field}}: {{$.ParamName}}.{{.Accessor}}(),
{{end}}	}
{{else}}	return {{.StructType}}{}
{{end}}}
`))
