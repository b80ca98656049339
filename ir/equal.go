package ir

// Equal reports deep structural equality of type and payload. Meta and
// flags never participate. Integer and Float nodes compare numerically
// across tags, matching the widening rule of the Float accessor.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.typ != b.typ {
		if a.IsNumber() && b.IsNumber() {
			return a.Float() == b.Float()
		}
		return false
	}
	switch a.typ {
	case NullType:
		return true
	case BoolType:
		return a.boolV == b.boolV
	case FloatType:
		return a.floatV == b.floatV
	case IntegerType:
		return a.intV == b.intV
	case StringType:
		return a.stringV == b.stringV
	case VectorType:
		if len(a.vec) != len(b.vec) {
			return false
		}
		for i := range a.vec {
			if !Equal(a.vec[i], b.vec[i]) {
				return false
			}
		}
		return true
	case StructType:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for key, av := range a.obj {
			bv, ok := b.obj[key]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}
