package plan

import (
	"tuplegen/internal/analyze"
	"tuplegen/internal/diagnostic"
	"tuplegen/tuple"
)

// Entry assigns one tuple position to one struct field.
type Entry struct {
	TuplePos int
	Field    analyze.FieldDescriptor
}

// TupleMapping is the ordered position-to-field assignment for one
// struct. It is a bijection between tuple positions {0..N-1} and the
// struct's N fields, built once and read thereafter.
type TupleMapping struct {
	Struct  *analyze.StructModel
	Entries []Entry
}

// Arity returns the tuple arity of the mapping.
func (m *TupleMapping) Arity() int {
	return len(m.Entries)
}

// Build validates the struct under its selected strategy and builds
// its TupleMapping. Exactly one of the results is non-nil: a rejected
// struct produces a diagnostic and no mapping.
func Build(model *analyze.StructModel) (*TupleMapping, *diagnostic.Diagnostic) {
	if model.NumFields() > tuple.MaxArity {
		diag := diagnostic.Errorf(diagnostic.CodeTupleArityExceeded, model.Name, "",
			model.Pos,
			"struct has %d fields, the tuple package declares arities up to %d",
			model.NumFields(), tuple.MaxArity)

		return nil, &diag
	}

	if model.Strategy == analyze.StrategyHeterogeneous {
		if diag := VerifyUniqueFieldTypes(model); diag != nil {
			return nil, diag
		}
	}

	// The tuple signature lists field types in declaration order, so
	// position i maps to field i under both strategies. For the
	// heterogeneous strategy the uniqueness check above is what makes
	// this assignment the only possible decomposition of the tuple.
	mapping := &TupleMapping{
		Struct:  model,
		Entries: make([]Entry, 0, model.NumFields()),
	}

	for i, field := range model.Fields {
		mapping.Entries = append(mapping.Entries, Entry{
			TuplePos: i,
			Field:    field,
		})
	}

	return mapping, nil
}

// VerifyUniqueFieldTypes checks that no two fields share a type key.
// The scan runs in declaration order with first-writer-wins seen
// tracking, so the diagnostic deterministically anchors at the field
// that introduces the conflict, never the one it conflicts with.
func VerifyUniqueFieldTypes(model *analyze.StructModel) *diagnostic.Diagnostic {
	seen := make(map[string]analyze.FieldDescriptor, model.NumFields())

	for _, field := range model.Fields {
		first, dup := seen[field.TypeKey]
		if !dup {
			seen[field.TypeKey] = field

			continue
		}

		diag := diagnostic.Errorf(diagnostic.CodeDuplicateFieldType, model.Name, field.Name,
			field.Pos,
			"field types must be unique under %s: %s has type %s, already used by %s",
			model.Strategy.Directive(), field.Name, field.TypeKey, first.Name)

		return &diag
	}

	return nil
}
