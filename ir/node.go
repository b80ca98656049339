package ir

import (
	"maps"
	"slices"
	"strings"
)

// FlagOverride marks a subtree that replaces, rather than deep-merges
// into, the corresponding destination subtree.
const FlagOverride = "override"

type Node struct {
	typ Type

	boolV   bool
	floatV  float64
	intV    int64
	stringV string
	vec     []*Node
	obj     map[string]*Node

	// Meta is a free-form provenance marker, typically the identifier of
	// the fragment this node originated from. Excluded from equality.
	Meta string

	flags map[string]struct{}
}

// nullNode is the shared immutable null returned by const lookups of
// missing struct keys. Callers must not mutate it.
var nullNode = &Node{}

func Null() *Node {
	return &Node{}
}

func BoolNode(v bool) *Node {
	return &Node{typ: BoolType, boolV: v}
}

func FloatNode(v float64) *Node {
	return &Node{typ: FloatType, floatV: v}
}

func IntNode(v int64) *Node {
	return &Node{typ: IntegerType, intV: v}
}

func StringNode(v string) *Node {
	return &Node{typ: StringType, stringV: v}
}

func VectorNode(elems ...*Node) *Node {
	return &Node{typ: VectorType, vec: elems}
}

func StructNode() *Node {
	return &Node{typ: StructType, obj: map[string]*Node{}}
}

func (n *Node) Type() Type {
	return n.typ
}

// SetType converts the node to the given type. Any previous payload is
// cleared; containers come back empty.
func (n *Node) SetType(t Type) {
	if n.typ == t {
		return
	}
	n.clearData()
	n.typ = t
	if t == StructType {
		n.obj = map[string]*Node{}
	}
}

// Clear removes all data from the node and sets its type to null.
// Flags are dropped; Meta is kept.
func (n *Node) Clear() {
	n.clearData()
	n.typ = NullType
	n.flags = nil
}

func (n *Node) clearData() {
	n.boolV = false
	n.floatV = 0
	n.intV = 0
	n.stringV = ""
	n.vec = nil
	n.obj = nil
}

// TakeFrom moves src's payload and flags into n, leaving src null and
// consumed. Meta is untouched on both sides; callers that want meta
// propagation copy it explicitly.
func (n *Node) TakeFrom(src *Node) {
	n.clearData()
	n.typ = src.typ
	n.boolV = src.boolV
	n.floatV = src.floatV
	n.intV = src.intV
	n.stringV = src.stringV
	n.vec = src.vec
	n.obj = src.obj
	n.flags = src.flags
	src.clearData()
	src.typ = NullType
	src.flags = nil
}

func (n *Node) IsNull() bool {
	return n.typ == NullType
}

func (n *Node) IsNumber() bool {
	return n.typ == FloatType || n.typ == IntegerType
}

func (n *Node) IsString() bool {
	return n.typ == StringType
}

func (n *Node) IsVector() bool {
	return n.typ == VectorType
}

func (n *Node) IsStruct() bool {
	return n.typ == StructType
}

// IsCompact reports whether the node is a leaf or an empty container.
// Used by the encoder to decide single-line layout.
func (n *Node) IsCompact() bool {
	switch n.typ {
	case VectorType:
		return len(n.vec) == 0
	case StructType:
		return len(n.obj) == 0
	default:
		return true
	}
}

// ContainsBaseData reports whether the node holds non-null data that
// merging cannot meaningfully extend further: any non-null, non-struct
// payload, or a struct with at least one such descendant. Used to seed
// a common base record from many similar fragments.
func (n *Node) ContainsBaseData() bool {
	switch n.typ {
	case NullType:
		return false
	case StructType:
		for _, child := range n.obj {
			if child.ContainsBaseData() {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// SetMeta stamps the node, and with recursive set its whole subtree,
// with the given provenance marker.
func (n *Node) SetMeta(meta string, recursive bool) {
	n.Meta = meta
	if !recursive {
		return
	}
	switch n.typ {
	case VectorType:
		for _, child := range n.vec {
			child.SetMeta(meta, true)
		}
	case StructType:
		for _, child := range n.obj {
			child.SetMeta(meta, true)
		}
	}
}

func (n *Node) SetFlag(flag string) {
	if n.flags == nil {
		n.flags = map[string]struct{}{}
	}
	n.flags[flag] = struct{}{}
}

func (n *Node) ClearFlag(flag string) {
	delete(n.flags, flag)
}

func (n *Node) HasFlag(flag string) bool {
	_, ok := n.flags[flag]
	return ok
}

func (n *Node) Flags() []string {
	return slices.Sorted(maps.Keys(n.flags))
}

// Keys returns the struct keys in sorted order. Empty for non-structs.
func (n *Node) Keys() []string {
	if n.typ != StructType {
		return nil
	}
	return slices.Sorted(maps.Keys(n.obj))
}

func (n *Node) Len() int {
	switch n.typ {
	case VectorType:
		return len(n.vec)
	case StructType:
		return len(n.obj)
	default:
		return 0
	}
}

func (n *Node) Clone() *Node {
	res := &Node{}
	n.CloneTo(res)
	return res
}

func (n *Node) CloneTo(dst *Node) {
	dst.typ = n.typ
	dst.boolV = n.boolV
	dst.floatV = n.floatV
	dst.intV = n.intV
	dst.stringV = n.stringV
	dst.Meta = n.Meta
	dst.vec = nil
	dst.obj = nil
	dst.flags = nil
	if n.flags != nil {
		dst.flags = maps.Clone(n.flags)
	}
	switch n.typ {
	case VectorType:
		dst.vec = make([]*Node, len(n.vec))
		for i, child := range n.vec {
			dst.vec[i] = child.Clone()
		}
	case StructType:
		dst.obj = make(map[string]*Node, len(n.obj))
		for key, child := range n.obj {
			dst.obj[key] = child.Clone()
		}
	}
}

// TryBoolFromString interprets recognized truthy and falsy string
// tokens as a bool. ok reports whether the node is a string holding a
// recognized token.
func (n *Node) TryBoolFromString() (value, ok bool) {
	if n.typ != StringType {
		return false, false
	}
	switch strings.ToLower(n.stringV) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	}
	return false, false
}
