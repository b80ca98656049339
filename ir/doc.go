// Package ir defines the tagged-value document node used throughout
// jsontree, together with its accessors and pointer resolution.
//
// A Node holds exactly one payload matching its type tag: Null, Bool,
// Float, Integer, String, Vector (ordered) or Struct (mapping with
// key-sorted iteration). Every node additionally carries a free-form
// Meta provenance string and a set of string flags; neither participates
// in equality.
//
// Accessors come in two families. The const family (Bool, Float,
// Integer, String, Vector, Struct) panics on a tag mismatch: asking a
// string node for its vector is a programming error, not a runtime
// condition. The mutable family (MutBool, MutFloat, ...) retypes the
// node on mismatch, clearing any previous payload, and returns a
// reference to the freshly default-initialized payload. The mutable
// family is how trees are built up programmatically.
//
// # Related Packages
//
//   - github.com/jeyms233/jsontree - merge, intersect, difference
//   - github.com/jeyms233/jsontree/schema - validation and normalization
//   - github.com/jeyms233/jsontree/gomap - conversion to native Go values
package ir
