package schema

import (
	"fmt"

	"github.com/jeyms233/jsontree/ir"
)

// Minimize strips every value from node that equals the schema's
// declared default for its position, reducing a fully-expanded
// document to its meaningful overrides. node should already validate
// against the schema; Maximize is the inverse.
func Minimize(reg *Registry, node *ir.Node, uri string) error {
	schemaNode, err := reg.Resolve(uri)
	if err != nil {
		return err
	}
	n := &normalizer{reg: reg}
	if n.deref(schemaNode, 0) == nil {
		return fmt.Errorf("%w: %s", ErrNotMinimizable, uri)
	}
	n.minimize(node, schemaNode, 0)
	return nil
}

// Maximize injects the schema's declared default for every required
// field missing from node. Applied after Minimize it restores the
// document, provided the document validated and was schema-complete.
func Maximize(reg *Registry, node *ir.Node, uri string) error {
	schemaNode, err := reg.Resolve(uri)
	if err != nil {
		return err
	}
	n := &normalizer{reg: reg}
	if n.deref(schemaNode, 0) == nil {
		return fmt.Errorf("%w: %s", ErrNotMinimizable, uri)
	}
	n.maximize(node, schemaNode, 0)
	return nil
}

type normalizer struct {
	reg *Registry
}

// deref follows $ref chains to the effective schema struct, or nil when
// the schema is unusable for walking.
func (n *normalizer) deref(schemaNode *ir.Node, depth int) map[string]*ir.Node {
	if depth > maxSchemaDepth || !schemaNode.IsStruct() {
		return nil
	}
	sm := schemaNode.Struct()
	ref, ok := sm["$ref"]
	if !ok {
		return sm
	}
	if !ref.IsString() {
		return nil
	}
	target, err := n.reg.Resolve(ref.String())
	if err != nil {
		return nil
	}
	return n.deref(target, depth+1)
}

func (n *normalizer) minimize(node *ir.Node, schemaNode *ir.Node, depth int) {
	if depth > maxSchemaDepth {
		return
	}
	sm := n.deref(schemaNode, depth)
	if sm == nil {
		return
	}
	if node.IsVector() {
		if items, ok := sm["items"]; ok {
			for _, elem := range node.Vector() {
				n.minimize(elem, items, depth+1)
			}
		}
		return
	}
	if !node.IsStruct() {
		return
	}
	nm := node.Struct()
	props := structOrNil(sm["properties"])
	required := requiredSet(sm)
	for _, key := range node.Keys() {
		propSchema, ok := props[key]
		if !ok {
			continue
		}
		child := nm[key]
		pm := n.deref(propSchema, depth+1)
		if pm == nil {
			continue
		}
		if def, has := pm["default"]; has && required[key] && ir.Equal(child, def) {
			delete(nm, key)
			continue
		}
		n.minimize(child, propSchema, depth+1)
	}
}

func (n *normalizer) maximize(node *ir.Node, schemaNode *ir.Node, depth int) {
	if depth > maxSchemaDepth {
		return
	}
	sm := n.deref(schemaNode, depth)
	if sm == nil {
		return
	}
	if node.IsVector() {
		if items, ok := sm["items"]; ok {
			for _, elem := range node.Vector() {
				n.maximize(elem, items, depth+1)
			}
		}
		return
	}
	if !node.IsStruct() {
		return
	}
	nm := node.Struct()
	props := structOrNil(sm["properties"])
	for key := range requiredSet(sm) {
		if _, present := nm[key]; present {
			continue
		}
		propSchema, ok := props[key]
		if !ok {
			continue
		}
		pm := n.deref(propSchema, depth+1)
		if pm == nil {
			continue
		}
		if def, has := pm["default"]; has {
			nm[key] = def.Clone()
		}
	}
	for _, key := range node.Keys() {
		if propSchema, ok := props[key]; ok {
			n.maximize(nm[key], propSchema, depth+1)
		}
	}
}

func structOrNil(node *ir.Node) map[string]*ir.Node {
	if node == nil || !node.IsStruct() {
		return nil
	}
	return node.Struct()
}

func requiredSet(sm map[string]*ir.Node) map[string]bool {
	req, ok := sm["required"]
	if !ok || !req.IsVector() {
		return nil
	}
	res := map[string]bool{}
	for _, entry := range req.Vector() {
		if entry.IsString() {
			res[entry.String()] = true
		}
	}
	return res
}
