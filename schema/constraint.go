package schema

import (
	"github.com/expr-lang/expr"

	"github.com/jeyms233/jsontree/ir"
)

// checkConstraint evaluates a schema "constraint" expression against
// the candidate value, bound as `value`. The expression must yield a
// bool; compile and runtime failures are violations, not panics, since
// constraints arrive with schema data.
func (c *checker) checkConstraint(node *ir.Node, src, path string) {
	env := map[string]any{"value": toNative(node)}
	program, err := expr.Compile(src, expr.Env(env), expr.AsBool())
	if err != nil {
		c.violate(path, "bad constraint %q: %v", src, err)
		return
	}
	out, err := expr.Run(program, env)
	if err != nil {
		c.violate(path, "constraint %q failed: %v", src, err)
		return
	}
	if ok, _ := out.(bool); !ok {
		c.violate(path, "constraint %q not satisfied", src)
	}
}

func toNative(node *ir.Node) any {
	switch node.Type() {
	case ir.BoolType:
		return node.Bool()
	case ir.FloatType:
		return node.Float()
	case ir.IntegerType:
		return node.Integer()
	case ir.StringType:
		return node.String()
	case ir.VectorType:
		res := make([]any, 0, node.Len())
		for _, elem := range node.Vector() {
			res = append(res, toNative(elem))
		}
		return res
	case ir.StructType:
		res := make(map[string]any, node.Len())
		for key, child := range node.Struct() {
			res[key] = toNative(child)
		}
		return res
	default:
		return nil
	}
}
