// Package diagnostic provides structured errors and warnings for the
// tuplegen pass, anchored to source positions.
//
// Key capabilities:
//   - Rule-violation errors (unsupported shape, duplicate field type)
//   - Deterministic anchoring at the offending field
//   - Colorized terminal rendering for the CLI
package diagnostic
