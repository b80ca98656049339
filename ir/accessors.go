package ir

import "fmt"

// The const accessor family returns the payload when the type tag
// matches and panics otherwise: a mismatched const access is a
// programming error, caught during development, never handled at
// runtime. Float additionally accepts an Integer node (numeric
// widening); Integer accepts only Integer.

func (n *Node) Bool() bool {
	if n.typ != BoolType {
		n.badAccess("Bool")
	}
	return n.boolV
}

func (n *Node) Float() float64 {
	switch n.typ {
	case FloatType:
		return n.floatV
	case IntegerType:
		return float64(n.intV)
	}
	n.badAccess("Float")
	return 0
}

func (n *Node) Integer() int64 {
	if n.typ != IntegerType {
		n.badAccess("Integer")
	}
	return n.intV
}

func (n *Node) String() string {
	if n.typ != StringType {
		n.badAccess("String")
	}
	return n.stringV
}

func (n *Node) Vector() []*Node {
	if n.typ != VectorType {
		n.badAccess("Vector")
	}
	return n.vec
}

func (n *Node) Struct() map[string]*Node {
	if n.typ != StructType {
		n.badAccess("Struct")
	}
	return n.obj
}

func (n *Node) badAccess(want string) {
	panic(fmt.Sprintf("ir: %s() access on %s node", want, n.typ))
}

// The mutable accessor family retypes the node on mismatch, clearing
// any previous payload, then hands back a reference to the payload.
// This is how trees are built up programmatically:
//
//	v := n.MutVector()
//	*v = append(*v, ir.IntNode(1))

func (n *Node) MutBool() *bool {
	n.SetType(BoolType)
	return &n.boolV
}

func (n *Node) MutFloat() *float64 {
	n.SetType(FloatType)
	return &n.floatV
}

func (n *Node) MutInteger() *int64 {
	n.SetType(IntegerType)
	return &n.intV
}

func (n *Node) MutString() *string {
	n.SetType(StringType)
	return &n.stringV
}

func (n *Node) MutVector() *[]*Node {
	n.SetType(VectorType)
	return &n.vec
}

func (n *Node) MutStruct() map[string]*Node {
	n.SetType(StructType)
	return n.obj
}

// Append adds a child to the node's vector payload, retyping if
// needed, and returns the child.
func (n *Node) Append(child *Node) *Node {
	n.SetType(VectorType)
	n.vec = append(n.vec, child)
	return child
}

// Field returns the named child, retyping the node to a struct if
// needed and auto-creating a null child for a missing key.
func (n *Node) Field(key string) *Node {
	m := n.MutStruct()
	child, ok := m[key]
	if !ok {
		child = Null()
		m[key] = child
	}
	return child
}

// GetField returns the named child of a struct node without mutating
// the tree; a missing key yields the shared immutable null node.
func (n *Node) GetField(key string) *Node {
	if child, ok := n.Struct()[key]; ok {
		return child
	}
	return nullNode
}

// Elem returns the i'th vector element, retyping the node to a vector
// if needed and growing it with null elements up to i.
func (n *Node) Elem(i int) *Node {
	v := n.MutVector()
	for len(*v) <= i {
		*v = append(*v, Null())
	}
	return (*v)[i]
}

// GetElem returns the i'th element of a vector node. An out-of-range
// index is a contract violation.
func (n *Node) GetElem(i int) *Node {
	v := n.Vector()
	if i < 0 || i >= len(v) {
		panic(fmt.Sprintf("ir: index %d out of range on Vector of len %d", i, len(v)))
	}
	return v[i]
}
