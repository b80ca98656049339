package jsontree

import "github.com/jeyms233/jsontree/ir"

// Difference computes the minimal patch d such that merging d into a
// copy of base reproduces node. Keys present in base but absent from
// node become explicit Null tombstones so the merge deletes them; keys
// equal on both sides are omitted; differing keys recurse. Outside of
// struct-struct pairs the difference is Null when the values are equal
// and node's own value otherwise.
func Difference(node, base *ir.Node) *ir.Node {
	if node.IsStruct() && base.IsStruct() {
		res := ir.StructNode()
		rm := res.Struct()
		nm, bm := node.Struct(), base.Struct()
		for _, key := range base.Keys() {
			if _, ok := nm[key]; !ok {
				rm[key] = ir.Null()
			}
		}
		for _, key := range node.Keys() {
			nv := nm[key]
			bv, ok := bm[key]
			switch {
			case !ok:
				rm[key] = nv.Clone()
			case ir.Equal(nv, bv):
				// omitted, base already supplies it
			default:
				rm[key] = Difference(nv, bv)
			}
		}
		return res
	}
	if ir.Equal(node, base) {
		return ir.Null()
	}
	res := node.Clone()
	if node.IsVector() && base.IsVector() {
		// positional vector merge cannot express shrinking, so the
		// patch forces wholesale replacement instead
		res.SetFlag(ir.FlagOverride)
	}
	return res
}
