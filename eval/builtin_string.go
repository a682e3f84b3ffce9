package eval

import (
	"fmt"
	"strings"

	"github.com/jsonexceller/exceller/ir"
)

func registerString() {
	Register("concat", concatOp)
	Register("upper", stringOp(strings.ToUpper))
	Register("lower", stringOp(strings.ToLower))
	Register("trim", stringOp(strings.TrimSpace))
	Register("split", splitOp)
	Register("join", joinOp)
	Register("contains", containsOp)
}

func concatOp(args []*ir.Node) (*ir.Node, error) {
	if err := atLeast(args, 1); err != nil {
		return nil, err
	}
	buf := strings.Builder{}
	for _, a := range args {
		if a.Type != ir.StringType {
			return nil, fmt.Errorf("expected string, got %s", a.Type)
		}
		buf.WriteString(a.String)
	}
	return ir.FromString(buf.String()), nil
}

func stringOp(f func(string) string) Func {
	return func(args []*ir.Node) (*ir.Node, error) {
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		if args[0].Type != ir.StringType {
			return nil, fmt.Errorf("expected string, got %s", args[0].Type)
		}
		return ir.FromString(f(args[0].String)), nil
	}
}

func splitOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	if args[0].Type != ir.StringType || args[1].Type != ir.StringType {
		return nil, fmt.Errorf("expected (string, string), got (%s, %s)", args[0].Type, args[1].Type)
	}
	parts := strings.Split(args[0].String, args[1].String)
	vs := make([]*ir.Node, len(parts))
	for i, p := range parts {
		vs[i] = ir.FromString(p)
	}
	return ir.FromSlice(vs), nil
}

func joinOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	if args[0].Type != ir.ArrayType {
		return nil, fmt.Errorf("expected array, got %s", args[0].Type)
	}
	if args[1].Type != ir.StringType {
		return nil, fmt.Errorf("expected string separator, got %s", args[1].Type)
	}
	parts := make([]string, len(args[0].Values))
	for i, v := range args[0].Values {
		if v.Type != ir.StringType {
			return nil, fmt.Errorf("expected string element, got %s", v.Type)
		}
		parts[i] = v.String
	}
	return ir.FromString(strings.Join(parts, args[1].String)), nil
}

// containsOp tests substring containment for strings and membership
// for arrays.
func containsOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	switch args[0].Type {
	case ir.StringType:
		if args[1].Type != ir.StringType {
			return nil, fmt.Errorf("expected string, got %s", args[1].Type)
		}
		return ir.FromBool(strings.Contains(args[0].String, args[1].String)), nil
	case ir.ArrayType:
		for _, v := range args[0].Values {
			if equalNodes(v, args[1]) {
				return ir.FromBool(true), nil
			}
		}
		return ir.FromBool(false), nil
	default:
		return nil, fmt.Errorf("expected string or array, got %s", args[0].Type)
	}
}
