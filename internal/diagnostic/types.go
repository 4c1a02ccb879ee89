package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// Diagnostic codes. Each identifies a violated rule.
const (
	// CodeUnsupportedShape reports a directive attached to a declaration
	// that is not a named-field struct (alias, interface, map, embedded
	// fields, and so on).
	CodeUnsupportedShape = "UnsupportedShape"

	// CodeDuplicateFieldType reports two fields sharing a type key under
	// the heterogeneous strategy. Anchored at the second occurrence.
	CodeDuplicateFieldType = "DuplicateFieldType"

	// CodeTupleArityExceeded reports a struct with more fields than the
	// largest declared tuple arity.
	CodeTupleArityExceeded = "TupleArityExceeded"

	// CodeUnknownDirective reports an unrecognized tuplegen directive.
	// The type is skipped; this is a warning, not an error.
	CodeUnknownDirective = "UnknownDirective"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Struct identifies which annotated type this relates to (if any).
	Struct string
	// FieldPath identifies which field this relates to (if any).
	FieldPath string
	// Pos is the source position the diagnostic is anchored to.
	Pos token.Position
}

// String returns a formatted diagnostic string in the usual
// "file:line:col: [Code] Struct.Field: message" form.
func (d Diagnostic) String() string {
	var sb strings.Builder

	if d.Pos.IsValid() {
		sb.WriteString(d.Pos.String())
		sb.WriteString(": ")
	}

	if d.Code != "" {
		sb.WriteString("[" + d.Code + "] ")
	}

	if anchor := d.Anchor(); anchor != "" {
		sb.WriteString(anchor)
		sb.WriteString(": ")
	}

	sb.WriteString(d.Message)

	return sb.String()
}

// Anchor returns the struct/field path the diagnostic points at,
// e.g. "NonUnique.second", or "" when unanchored.
func (d Diagnostic) Anchor() string {
	switch {
	case d.Struct != "" && d.FieldPath != "":
		return d.Struct + "." + d.FieldPath
	case d.Struct != "":
		return d.Struct
	default:
		return d.FieldPath
	}
}

// Diagnostics holds all diagnostic information from a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Add appends a diagnostic to the slice matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, structName, fieldPath string, pos token.Position) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:  SeverityError,
		Code:      code,
		Message:   message,
		Struct:    structName,
		FieldPath: fieldPath,
		Pos:       pos,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, structName, fieldPath string, pos token.Position) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:  SeverityWarning,
		Code:      code,
		Message:   message,
		Struct:    structName,
		FieldPath: fieldPath,
		Pos:       pos,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Errorf builds an error diagnostic with a formatted message.
func Errorf(code, structName, fieldPath string, pos token.Position, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity:  SeverityError,
		Code:      code,
		Message:   fmt.Sprintf(format, args...),
		Struct:    structName,
		FieldPath: fieldPath,
		Pos:       pos,
	}
}
