// Package gen renders tuple mappings into Go source.
//
// The artifact for a struct is a single <Name>FromTuple function
// emitted into the struct's own package, so unexported structs and
// fields work exactly like a derive would. Output is rendered with
// text/template and normalized with go/format, making repeated runs
// over identical input byte-identical.
package gen
