package jsontree

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/jeyms233/jsontree/encode"
	"github.com/jeyms233/jsontree/ir"
	"github.com/jeyms233/jsontree/parse"
)

// CreateMergePatch renders the change from base to node as RFC 7386
// merge-patch bytes, for exchanging minimal patches with external
// tooling. Within this module Difference is the native equivalent.
func CreateMergePatch(base, node *ir.Node) ([]byte, error) {
	baseJSON := []byte(encode.JSON(base, true))
	nodeJSON := []byte(encode.JSON(node, true))
	patch, err := jsonpatch.CreateMergePatch(baseJSON, nodeJSON)
	if err != nil {
		return nil, fmt.Errorf("create merge patch: %w", err)
	}
	return patch, nil
}

// ApplyMergePatch applies RFC 7386 merge-patch bytes to doc and
// returns the patched tree. doc is not modified.
func ApplyMergePatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	docJSON := []byte(encode.JSON(doc, true))
	out, err := jsonpatch.MergePatch(docJSON, patch)
	if err != nil {
		return nil, fmt.Errorf("apply merge patch: %w", err)
	}
	res, err := parse.JSON(out)
	if err != nil {
		return nil, fmt.Errorf("apply merge patch: %w", err)
	}
	return res, nil
}
