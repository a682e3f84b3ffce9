package eval

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	json "github.com/goccy/go-json"

	"github.com/jsonexceller/exceller/ir"
)

func registerMerge() {
	Register("merge", mergeOp)
}

// mergeOp applies b to a as an RFC 7386 JSON merge patch: object
// fields are merged recursively, nulls in b delete fields of a.
func mergeOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	orig, err := json.Marshal(ir.ToAny(args[0]))
	if err != nil {
		return nil, err
	}
	patch, err := json.Marshal(ir.ToAny(args[1]))
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(orig, patch)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	var v any
	if err := json.Unmarshal(merged, &v); err != nil {
		return nil, err
	}
	return ir.FromAny(v)
}
