package parse

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/jeyms233/jsontree/ir"
)

// YAML parses data as a YAML document and converts it to a value
// tree. YAML is accepted as an alternate fragment syntax for assembly;
// the tree it produces is indistinguishable from a parsed JSON one.
func YAML(data []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return ir.Null(), fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return fromNative(v)
}

func fromNative(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.BoolNode(x), nil
	case string:
		return ir.StringNode(x), nil
	case int:
		return ir.IntNode(int64(x)), nil
	case int64:
		return ir.IntNode(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return ir.FloatNode(float64(x)), nil
		}
		return ir.IntNode(int64(x)), nil
	case float64:
		return ir.FloatNode(x), nil
	case []any:
		node := ir.VectorNode()
		for _, elem := range x {
			child, err := fromNative(elem)
			if err != nil {
				return node, err
			}
			node.Append(child)
		}
		return node, nil
	case map[string]any:
		node := ir.StructNode()
		m := node.Struct()
		for key, elem := range x {
			child, err := fromNative(elem)
			if err != nil {
				return node, err
			}
			m[key] = child
		}
		return node, nil
	case map[any]any:
		node := ir.StructNode()
		m := node.Struct()
		for key, elem := range x {
			child, err := fromNative(elem)
			if err != nil {
				return node, err
			}
			m[fmt.Sprint(key)] = child
		}
		return node, nil
	default:
		return ir.Null(), fmt.Errorf("%w: unsupported YAML value %T", ErrSyntax, v)
	}
}
