// Package plan validates annotated structs and builds the tuple
// position to field mapping the emitter consumes.
//
// Both strategies produce the identity mapping over declaration order;
// the heterogeneous strategy additionally requires all field type keys
// to be pairwise distinct, which is what makes the generated tuple
// signature unambiguous for callers.
package plan
