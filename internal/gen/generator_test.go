package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuplegen/internal/analyze"
	"tuplegen/internal/plan"
)

func buildMapping(t *testing.T, model *analyze.StructModel) *plan.TupleMapping {
	t.Helper()

	mapping, diag := plan.Build(model)
	require.Nil(t, diag)

	return mapping
}

func helloModel() *analyze.StructModel {
	return &analyze.StructModel{
		Name:     "Hello",
		Pkg:      analyze.PackageRef{Name: "hello", Path: "tuplegen/examples/hello", Dir: "examples/hello"},
		Strategy: analyze.StrategyHeterogeneous,
		Fields: []analyze.FieldDescriptor{
			{Name: "message", TypeKey: "string", Index: 0},
			{Name: "time", TypeKey: "int32", Index: 1},
			{Name: "counter", TypeKey: "uint", Index: 2},
		},
	}
}

func TestGenerator_Generate_Hello(t *testing.T) {
	gen := NewGenerator(DefaultConfig())
	file, err := gen.Generate(buildMapping(t, helloModel()))
	require.NoError(t, err)

	assert.Equal(t, "hello_fromtuple.go", file.Filename)
	assert.Equal(t, "examples/hello", file.Dir)

	expected := `// Code generated by tuplegen. DO NOT EDIT.

package hello

import (
	"tuplegen/tuple"
)

// HelloFromTuple constructs a Hello from a tuple of its field
// values in declaration order. The conversion is total: every tuple
// element is assigned to exactly one field.
func HelloFromTuple(t tuple.Tuple3[string, int32, uint]) Hello {
	return Hello{
		message: t.First(),
		time:    t.Second(),
		counter: t.Third(),
	}
}
`

	assert.Equal(t, expected, string(file.Content))
}

func TestGenerator_Generate_Idempotent(t *testing.T) {
	gen := NewGenerator(DefaultConfig())

	first, err := gen.Generate(buildMapping(t, helloModel()))
	require.NoError(t, err)

	second, err := gen.Generate(buildMapping(t, helloModel()))
	require.NoError(t, err)

	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, first.Filename, second.Filename)
}

func TestGenerator_Generate_ZeroFields(t *testing.T) {
	model := &analyze.StructModel{
		Name:     "Empty",
		Pkg:      analyze.PackageRef{Name: "empty", Path: "tuplegen/examples/empty", Dir: "examples/empty"},
		Strategy: analyze.StrategyHeterogeneous,
	}

	gen := NewGenerator(DefaultConfig())
	file, err := gen.Generate(buildMapping(t, model))
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, "func EmptyFromTuple(_ tuple.Tuple0) Empty {")
	assert.Contains(t, content, "return Empty{}")
}

func TestGenerator_Generate_FieldTypeImports(t *testing.T) {
	model := &analyze.StructModel{
		Name:     "Event",
		Pkg:      analyze.PackageRef{Name: "events", Path: "example/events", Dir: "events"},
		Strategy: analyze.StrategyHeterogeneous,
		Fields: []analyze.FieldDescriptor{
			{Name: "name", TypeKey: "string", Index: 0},
			{Name: "at", TypeKey: "time.Time", Index: 1},
		},
		Imports: []analyze.ImportRef{{Path: "time"}},
	}

	gen := NewGenerator(DefaultConfig())
	file, err := gen.Generate(buildMapping(t, model))
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, "\"time\"")
	assert.Contains(t, content, "\"tuplegen/tuple\"")
	assert.Contains(t, content, "tuple.Tuple2[string, time.Time]")

	// Imports are emitted in deterministic sorted order.
	assert.Less(t, strings.Index(content, "\"time\""), strings.Index(content, "\"tuplegen/tuple\""))
}

func TestGenerator_Generate_AliasedImport(t *testing.T) {
	model := &analyze.StructModel{
		Name:     "Holder",
		Pkg:      analyze.PackageRef{Name: "holders", Path: "example/holders", Dir: "holders"},
		Strategy: analyze.StrategyPositional,
		Fields: []analyze.FieldDescriptor{
			{Name: "widget", TypeKey: "th.Widget", Index: 0},
		},
		Imports: []analyze.ImportRef{{Alias: "th", Path: "example.com/things"}},
	}

	gen := NewGenerator(DefaultConfig())
	file, err := gen.Generate(buildMapping(t, model))
	require.NoError(t, err)

	assert.Contains(t, string(file.Content), "th \"example.com/things\"")
}

func TestGenerator_Generate_GenericPassthrough(t *testing.T) {
	model := &analyze.StructModel{
		Name:       "Box",
		Pkg:        analyze.PackageRef{Name: "boxes", Path: "example/boxes", Dir: "boxes"},
		Strategy:   analyze.StrategyPositional,
		TypeParams: "[T any]",
		TypeArgs:   "[T]",
		Fields: []analyze.FieldDescriptor{
			{Name: "value", TypeKey: "T", Index: 0},
			{Name: "count", TypeKey: "int", Index: 1},
		},
	}

	gen := NewGenerator(DefaultConfig())
	file, err := gen.Generate(buildMapping(t, model))
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, "func BoxFromTuple[T any](t tuple.Tuple2[T, int]) Box[T] {")
	assert.Contains(t, content, "return Box[T]{")
}

func TestGenerator_Generate_CustomConfig(t *testing.T) {
	cfg := Config{
		FileSuffix: "_gen.go",
		TuplePkg:   "example.com/pairs",
		Header:     "Code generated by the build. DO NOT EDIT.",
	}

	gen := NewGenerator(cfg)
	file, err := gen.Generate(buildMapping(t, helloModel()))
	require.NoError(t, err)

	assert.Equal(t, "hello_gen.go", file.Filename)

	content := string(file.Content)
	assert.Contains(t, content, "// Code generated by the build. DO NOT EDIT.")
	assert.Contains(t, content, "pairs.Tuple3[string, int32, uint]")
	assert.Contains(t, content, "\"example.com/pairs\"")
}
