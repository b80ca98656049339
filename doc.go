// Package jsontree combines, compares and normalizes partial JSON-like
// documents so that a base definition can be progressively overridden
// by fragments.
//
// The value tree itself lives in the ir subpackage. This package holds
// the structural algorithms over it: destructive and copying merge with
// null-as-delete and override semantics, inheritance composition,
// structural intersection and difference, multi-fragment assembly, and
// RFC 7386 merge-patch interop.
package jsontree
