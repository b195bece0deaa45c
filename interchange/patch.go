package interchange

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/marc-format/marc/ir"
)

// ApplyJSONPatch applies an RFC 6902 patch to node, returning a new tree.
// Object key order of the result is not preserved.
func ApplyJSONPatch(node *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return applyJSON(node, ops.Apply)
}

// ApplyMergePatch applies an RFC 7386 merge patch to node.
func ApplyMergePatch(node *ir.Node, patch []byte) (*ir.Node, error) {
	return applyJSON(node, func(doc []byte) ([]byte, error) {
		return jsonpatch.MergePatch(doc, patch)
	})
}

func applyJSON(node *ir.Node, f func([]byte) ([]byte, error)) (*ir.Node, error) {
	d, err := NodeToJSON(node, false)
	if err != nil {
		return nil, err
	}
	out, err := f(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return NodeFromJSON(out)
}
