package eval

import (
	"fmt"

	"github.com/jsonexceller/exceller/ir"
)

func numFloat(n *ir.Node) (float64, bool) {
	if n == nil || n.Type != ir.NumberType {
		return 0, false
	}
	if n.Int64 != nil {
		return float64(*n.Int64), true
	}
	if n.Float64 != nil {
		return *n.Float64, true
	}
	return 0, false
}

func numInt(n *ir.Node) (int64, bool) {
	if n == nil || n.Type != ir.NumberType || n.Int64 == nil {
		return 0, false
	}
	return *n.Int64, true
}

func allInts(args []*ir.Node) bool {
	for _, a := range args {
		if _, ok := numInt(a); !ok {
			return false
		}
	}
	return true
}

// equalNodes is structural equality. Numbers compare numerically, so
// 1 == 1.0; object field order does not matter.
func equalNodes(a, b *ir.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	af, aNum := numFloat(a)
	bf, bNum := numFloat(b)
	if aNum || bNum {
		return aNum && bNum && af == bf
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ir.NullType:
		return true
	case ir.BoolType:
		return a.Bool == b.Bool
	case ir.StringType:
		return a.String == b.String
	case ir.ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !equalNodes(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ir.ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, f := range a.Fields {
			bv := ir.Get(b, f.String)
			if bv == nil || !equalNodes(a.Values[i], bv) {
				return false
			}
		}
		return true
	default:
		panic("type")
	}
}

// compareNodes orders two numbers or two strings, returning -1, 0, or 1.
func compareNodes(a, b *ir.Node) (int, error) {
	af, aNum := numFloat(a)
	bf, bNum := numFloat(b)
	if aNum && bNum {
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		default:
			return 0, nil
		}
	}
	if a.Type == ir.StringType && b.Type == ir.StringType {
		switch {
		case a.String < b.String:
			return -1, nil
		case a.String > b.String:
			return 1, nil
		default:
			return 0, nil
		}
	}
	return 0, fmt.Errorf("cannot order %s and %s", a.Type, b.Type)
}

func arity(args []*ir.Node, n int) error {
	if len(args) != n {
		return fmt.Errorf("expected %d args, got %d", n, len(args))
	}
	return nil
}

func atLeast(args []*ir.Node, n int) error {
	if len(args) < n {
		return fmt.Errorf("expected at least %d args, got %d", n, len(args))
	}
	return nil
}
