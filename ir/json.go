package ir

import (
	"fmt"
	"sort"
)

// FromAny converts a decoded JSON value (the map[string]any / []any /
// scalar family) to a node. Map keys are emitted in sorted order; use
// the parse package when source order must survive.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromInt(int64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		res := &Node{Type: ArrayType}
		res.Values = make([]*Node, len(x))
		for i, elt := range x {
			cy, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			cy.Parent = res
			cy.ParentIndex = i
			res.Values[i] = cy
		}
		return res, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		res := Object()
		for _, k := range keys {
			cy, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res.SetField(k, cy)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("cannot represent %T as a JSON value", v)
	}
}

// ToAny converts a node to the map[string]any / []any / scalar family.
// Object field order is lost; this is the bridge to plugin and script
// code operating on plain Go values.
func ToAny(node *Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return nil
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}
