package jsontree

import "github.com/jeyms233/jsontree/ir"

// Intersect returns the structure shared by a and b. Structs intersect
// recursively over keys present on both sides; any other pair yields
// the common value when structurally equal (Integer and Float compare
// numerically) and Null otherwise. With pruneEmpty, struct entries
// whose intersection carries no base data are omitted rather than
// stored as Null.
func Intersect(a, b *ir.Node, pruneEmpty bool) *ir.Node {
	if a.IsStruct() && b.IsStruct() {
		res := ir.StructNode()
		am, bm := a.Struct(), b.Struct()
		rm := res.Struct()
		for _, key := range a.Keys() {
			bv, ok := bm[key]
			if !ok {
				continue
			}
			common := Intersect(am[key], bv, pruneEmpty)
			if pruneEmpty && !common.ContainsBaseData() {
				continue
			}
			rm[key] = common
		}
		return res
	}
	if ir.Equal(a, b) {
		return a.Clone()
	}
	return ir.Null()
}

// IntersectAll folds Intersect left-to-right over nodes; an empty
// input yields Null. Used to synthesize a common base record from many
// similar fragments.
func IntersectAll(nodes []*ir.Node, pruneEmpty bool) *ir.Node {
	if len(nodes) == 0 {
		return ir.Null()
	}
	res := nodes[0].Clone()
	for _, node := range nodes[1:] {
		res = Intersect(res, node, pruneEmpty)
	}
	return res
}
