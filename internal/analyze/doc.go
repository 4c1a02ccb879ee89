// Package analyze provides package loading and field model extraction.
//
// It uses golang.org/x/tools/go/packages in syntax mode to find type
// declarations carrying a tuplegen directive and extracts an ordered,
// immutable field model for each.
//
// Key types:
//   - Strategy: which conversion strategy a directive selected
//   - StructModel: one annotated struct (name, package, ordered fields)
//   - FieldDescriptor: field name, declared type expression, type key
//
// Type keys are purely syntactic: two fields have the same type iff
// their declared type expressions are textually identical after
// normalization. A named alias is therefore distinct from its target.
package analyze
