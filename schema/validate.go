package schema

import (
	"fmt"

	"github.com/jeyms233/jsontree/debug"
	"github.com/jeyms233/jsontree/encode"
	"github.com/jeyms233/jsontree/ir"
)

// Violation is one schema non-compliance, with enough context for an
// operator to locate the offending fragment position.
type Violation struct {
	// DataName identifies the document being checked, as supplied by
	// the caller.
	DataName string

	// Path is the slash-delimited pointer to the violating node.
	Path string

	// Message describes the violation.
	Message string
}

func (v Violation) String() string {
	path := v.Path
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("%s: %s: %s", v.DataName, path, v.Message)
}

// Validate checks node against the schema addressed by uri, reporting
// every violation found. A compliant node yields an empty slice.
// Validation never mutates the tree and never aborts the caller's
// pipeline: whether to proceed with non-compliant data is policy.
// The error return covers an unresolvable root schema only.
func Validate(reg *Registry, node *ir.Node, uri, dataName string) ([]Violation, error) {
	schemaNode, err := reg.Resolve(uri)
	if err != nil {
		return nil, err
	}
	c := &checker{reg: reg, dataName: dataName}
	c.check(node, schemaNode, "")
	if debug.Schema() {
		for _, v := range c.violations {
			debug.Logf("schema: %s\n", v)
		}
	}
	return c.violations, nil
}

const maxSchemaDepth = 128

type checker struct {
	reg        *Registry
	dataName   string
	violations []Violation
	depth      int
}

func (c *checker) violate(path, format string, args ...any) {
	c.violations = append(c.violations, Violation{
		DataName: c.dataName,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (c *checker) check(node, schemaNode *ir.Node, path string) {
	c.depth++
	defer func() { c.depth-- }()
	if c.depth > maxSchemaDepth {
		c.violate(path, "schema nesting exceeds %d levels", maxSchemaDepth)
		return
	}
	if !schemaNode.IsStruct() {
		c.violate(path, "schema node is %s, want Struct", schemaNode.Type())
		return
	}
	sm := schemaNode.Struct()

	if ref, ok := sm["$ref"]; ok {
		if !ref.IsString() {
			c.violate(path, "schema $ref is %s, want String", ref.Type())
			return
		}
		target, err := c.reg.Resolve(ref.String())
		if err != nil {
			c.violate(path, "unresolved $ref %q: %v", ref.String(), err)
			return
		}
		c.check(node, target, path)
		return
	}

	if typ, ok := sm["type"]; ok {
		if !typ.IsString() {
			c.violate(path, "schema type is %s, want String", typ.Type())
			return
		}
		if !c.checkType(node, typ.String(), path) {
			return
		}
	}
	if enum, ok := sm["enum"]; ok && enum.IsVector() {
		c.checkEnum(node, enum, path)
	}
	if constraint, ok := sm["constraint"]; ok && constraint.IsString() {
		c.checkConstraint(node, constraint.String(), path)
	}
	if node.IsStruct() {
		c.checkStruct(node, sm, path)
	}
	if node.IsVector() {
		if items, ok := sm["items"]; ok {
			for i, elem := range node.Vector() {
				c.check(elem, items, fmt.Sprintf("%s/%d", path, i))
			}
		}
	}
}

func (c *checker) checkType(node *ir.Node, want, path string) bool {
	ok := false
	switch want {
	case "null":
		ok = node.IsNull()
	case "boolean":
		ok = node.Type() == ir.BoolType
	case "number":
		ok = node.IsNumber()
	case "integer":
		ok = node.Type() == ir.IntegerType
	case "string":
		ok = node.IsString()
	case "array":
		ok = node.IsVector()
	case "object":
		ok = node.IsStruct()
	default:
		c.violate(path, "schema declares unknown type %q", want)
		return false
	}
	if !ok {
		c.violate(path, "node is %s, schema wants %s", node.Type(), want)
	}
	return ok
}

func (c *checker) checkEnum(node, enum *ir.Node, path string) {
	for _, allowed := range enum.Vector() {
		if ir.Equal(node, allowed) {
			return
		}
	}
	c.violate(path, "value %s not in enum %s",
		encode.JSON(node, true), encode.JSON(enum, true))
}

func (c *checker) checkStruct(node *ir.Node, sm map[string]*ir.Node, path string) {
	nm := node.Struct()
	props := map[string]*ir.Node{}
	if p, ok := sm["properties"]; ok && p.IsStruct() {
		props = p.Struct()
	}
	if req, ok := sm["required"]; ok && req.IsVector() {
		for _, entry := range req.Vector() {
			if !entry.IsString() {
				continue
			}
			name := entry.String()
			if _, ok := nm[name]; !ok {
				c.violate(path, "missing required key %q", name)
			}
		}
	}
	for _, key := range node.Keys() {
		childPath := path + "/" + key
		propSchema, ok := props[key]
		if ok {
			c.check(nm[key], propSchema, childPath)
			continue
		}
		add, has := sm["additionalProperties"]
		if !has {
			continue
		}
		if add.Type() == ir.BoolType {
			if !add.Bool() {
				c.violate(childPath, "key %q not allowed by schema", key)
			}
			continue
		}
		c.check(nm[key], add, childPath)
	}
}
