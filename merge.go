package jsontree

import (
	"github.com/jeyms233/jsontree/debug"
	"github.com/jeyms233/jsontree/ir"
)

type mergeConfig struct {
	ignoreOverride bool
	copyMeta       bool
}

type MergeOption func(*mergeConfig)

// IgnoreOverride disables both the override flag and null-as-delete
// handling: null source positions are kept as-is in dest and flagged
// subtrees deep-merge like any other.
func IgnoreOverride() MergeOption {
	return func(c *mergeConfig) { c.ignoreOverride = true }
}

// CopyMeta propagates source provenance onto dest wherever source data
// lands.
func CopyMeta() MergeOption {
	return func(c *mergeConfig) { c.copyMeta = true }
}

// Merge folds source into dest in place, consuming source: after the
// call source is null and must not be reused. Use MergeCopy to keep
// the source operand.
//
// A null source position deletes the corresponding dest entry. Structs
// merge per key, vectors merge positionally (a longer source extends
// dest), everything else replaces dest wholesale. A source subtree
// carrying the override flag replaces instead of recursing.
func Merge(dest, source *ir.Node, opts ...MergeOption) {
	cfg := &mergeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	merge(dest, source, cfg)
}

// MergeCopy is the non-destructive variant of Merge: the caller's
// source tree is preserved.
func MergeCopy(dest, source *ir.Node, opts ...MergeOption) {
	cfg := &mergeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	merge(dest, source.Clone(), cfg)
}

// Inherit rebuilds descendant as base overridden by descendant:
// fields the descendant does not mention are kept from base, fields it
// sets win, and a null field deletes the inherited value. Base is an
// immutable input and is never modified.
func Inherit(descendant, base *ir.Node) {
	res := base.Clone()
	merge(res, descendant, &mergeConfig{copyMeta: true})
	descendant.TakeFrom(res)
	descendant.Meta = res.Meta
}

func merge(dest, source *ir.Node, cfg *mergeConfig) {
	if debug.Merge() {
		debug.Logf("merge: %s into %s\n", source.Type(), dest.Type())
	}
	switch source.Type() {
	case ir.NullType:
		// tombstone
		if !cfg.ignoreOverride {
			dest.Clear()
		}
	case ir.StructType:
		if dest.Type() != ir.StructType || (!cfg.ignoreOverride && source.HasFlag(ir.FlagOverride)) {
			replace(dest, source, cfg)
			return
		}
		if cfg.copyMeta {
			dest.Meta = source.Meta
		}
		sm := source.Struct()
		dm := dest.Struct()
		for _, key := range source.Keys() {
			child := sm[key]
			if child.IsNull() {
				if !cfg.ignoreOverride {
					delete(dm, key)
				}
				continue
			}
			dc, ok := dm[key]
			if !ok {
				dc = ir.Null()
				dm[key] = dc
			}
			merge(dc, child, cfg)
		}
		source.Clear()
	case ir.VectorType:
		if dest.Type() != ir.VectorType || (!cfg.ignoreOverride && source.HasFlag(ir.FlagOverride)) {
			replace(dest, source, cfg)
			return
		}
		if cfg.copyMeta {
			dest.Meta = source.Meta
		}
		sv := source.Vector()
		dv := dest.Vector()
		n := min(len(sv), len(dv))
		for i := range n {
			merge(dv[i], sv[i], cfg)
		}
		if len(sv) > n {
			mv := dest.MutVector()
			*mv = append(*mv, sv[n:]...)
		}
		source.Clear()
	default:
		replace(dest, source, cfg)
	}
}

// replace moves source's value wholesale over dest's, honoring the
// copyMeta setting.
func replace(dest, source *ir.Node, cfg *mergeConfig) {
	if cfg.copyMeta {
		dest.Meta = source.Meta
	}
	dest.TakeFrom(source)
}
