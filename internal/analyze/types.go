package analyze

import (
	"go/ast"
	"go/token"
)

//go:generate go tool stringer -type=Strategy -output=strategy_string.go

// Strategy selects how tuple positions are mapped to struct fields.
type Strategy int

const (
	_ Strategy = iota // skip zero value, use it as a default (invalid) value for Strategy

	// StrategyHeterogeneous requires all field types to be pairwise
	// distinct; the tuple signature is sound to decompose by type.
	StrategyHeterogeneous

	// StrategyPositional maps tuple position i to declared field i,
	// repeated field types permitted, types never inspected.
	StrategyPositional
)

// Directive returns the source directive that selects this strategy.
func (s Strategy) Directive() string {
	switch s {
	case StrategyHeterogeneous:
		return DirectivePrefix + "heterogeneous"
	case StrategyPositional:
		return DirectivePrefix + "positional"
	default:
		return ""
	}
}

// FieldDescriptor describes one declared struct field.
// Immutable once extracted; ordering is declaration order.
type FieldDescriptor struct {
	Name    string    // field identifier
	Expr    ast.Expr  // declared type expression
	TypeKey string    // normalized syntactic type key (uniqueness key)
	Index   int       // ordinal in declaration order
	Pos     token.Position
}

// ImportRef is an import required by a field's type expression.
type ImportRef struct {
	Alias string // qualifier used in source ("" means default name)
	Path  string
}

// PackageRef identifies the package a struct was declared in.
type PackageRef struct {
	Name string // package name
	Path string // import path
	Dir  string // directory holding the package's files
}

// StructModel is the extracted model of one annotated struct.
type StructModel struct {
	Name       string
	Pkg        PackageRef
	Strategy   Strategy
	Fields     []FieldDescriptor
	Imports    []ImportRef // imports referenced by field type expressions
	TypeParams string      // rendered type parameter list, e.g. "[T any]", or ""
	TypeArgs   string      // rendered type argument list, e.g. "[T]", or ""
	Pos        token.Position
}

// NumFields returns the number of declared fields.
func (m *StructModel) NumFields() int {
	return len(m.Fields)
}
