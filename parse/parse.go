// Package parse decodes schema and context documents into ir nodes.
// Documents are YAML, which admits plain JSON plus comments; object key
// order is preserved, as it determines output field order.
package parse

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/jsonexceller/exceller/ir"
)

func Parse(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	node, err := fromYAML(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return node, nil
}

func fromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := ir.Object()
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("object key %v is not a string", item.Key)
			}
			cy, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			res.SetField(key, cy)
		}
		return res, nil
	case []any:
		vs := make([]*ir.Node, len(x))
		for i, elt := range x {
			cy, err := fromYAML(elt)
			if err != nil {
				return nil, err
			}
			vs[i] = cy
		}
		return ir.FromSlice(vs), nil
	default:
		return ir.FromAny(v)
	}
}
