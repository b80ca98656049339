// Package schema validates value trees against schema documents and
// normalizes them relative to schema defaults.
//
// Schemas are value trees themselves, registered in a Registry and
// addressed by URI of the form
//
//	scheme:name#pointer
//
// where the optional #pointer selects a sub-schema using the same
// slash-delimited syntax as ir.ResolvePointer. The registry is an
// explicit capability passed to Validate, Minimize and Maximize, so
// test code can run against mock schema sets.
//
// The schema dialect is a small JSON-Schema-like subset: "type",
// "properties", "required", "items", "enum", "additionalProperties",
// "default" and "$ref", plus a "constraint" keyword holding a boolean
// expression evaluated against the candidate value.
package schema
