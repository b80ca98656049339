package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// ResolvePointer resolves a slash-delimited pointer ("/path/to/node")
// against the tree without mutating it. A Struct consumes a segment as
// a key, a Vector as a base-10 index. The empty pointer resolves to
// the node itself. Missing keys, bad indices and scalar intermediates
// are reported as errors wrapping ErrPointer.
func (n *Node) ResolvePointer(pointer string) (*Node, error) {
	segs, err := splitPointer(pointer)
	if err != nil {
		return nil, err
	}
	cur := n
	for i, seg := range segs {
		switch cur.typ {
		case VectorType:
			idx, err := vectorIndex(seg)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at %q: %v", ErrPointer, pointer, prefix(segs, i), err)
			}
			if idx >= len(cur.vec) {
				return nil, fmt.Errorf("%w: %q: index %d out of range at %q", ErrPointer, pointer, idx, prefix(segs, i))
			}
			cur = cur.vec[idx]
		case StructType:
			child, ok := cur.obj[seg]
			if !ok {
				return nil, fmt.Errorf("%w: %q: no key %q at %q", ErrPointer, pointer, seg, prefix(segs, i))
			}
			cur = child
		default:
			return nil, fmt.Errorf("%w: %q: %s node at %q has no children", ErrPointer, pointer, cur.typ, prefix(segs, i))
		}
	}
	return cur, nil
}

// ResolvePointerMut resolves a pointer for mutation, auto-creating
// intermediate struct children for missing keys the way Field does.
// Vector slots are never auto-created; an out-of-range index fails.
func (n *Node) ResolvePointerMut(pointer string) (*Node, error) {
	segs, err := splitPointer(pointer)
	if err != nil {
		return nil, err
	}
	cur := n
	for i, seg := range segs {
		if cur.typ == VectorType {
			idx, err := vectorIndex(seg)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at %q: %v", ErrPointer, pointer, prefix(segs, i), err)
			}
			if idx >= len(cur.vec) {
				return nil, fmt.Errorf("%w: %q: index %d out of range at %q", ErrPointer, pointer, idx, prefix(segs, i))
			}
			cur = cur.vec[idx]
			continue
		}
		cur = cur.Field(seg)
	}
	return cur, nil
}

func splitPointer(pointer string) ([]string, error) {
	if pointer == "" {
		return nil, nil
	}
	if pointer[0] != '/' {
		return nil, fmt.Errorf("%w: %q must start with '/'", ErrPointer, pointer)
	}
	return strings.Split(pointer[1:], "/"), nil
}

func vectorIndex(seg string) (int, error) {
	idx, err := strconv.Atoi(seg)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("segment %q is not a vector index", seg)
	}
	return idx, nil
}

func prefix(segs []string, i int) string {
	if i == 0 {
		return "/"
	}
	return "/" + strings.Join(segs[:i], "/")
}
