package eval

import (
	"fmt"
	"math"

	"github.com/jsonexceller/exceller/ir"
)

func registerArith() {
	Register("add", addOp)
	Register("sub", subOp)
	Register("mul", mulOp)
	Register("div", divOp)
	Register("mod", modOp)
	Register("neg", negOp)
	Register("abs", absOp)
	Register("min", minOp)
	Register("max", maxOp)
	Register("sum", sumOp)
}

// addOp sums numbers or concatenates arrays.
func addOp(args []*ir.Node) (*ir.Node, error) {
	if err := atLeast(args, 2); err != nil {
		return nil, err
	}
	if args[0].Type == ir.ArrayType {
		var vs []*ir.Node
		for _, a := range args {
			if a.Type != ir.ArrayType {
				return nil, fmt.Errorf("cannot add %s to array", a.Type)
			}
			vs = append(vs, a.Values...)
		}
		return ir.FromSlice(vs), nil
	}
	if allInts(args) {
		var acc int64
		for _, a := range args {
			v, _ := numInt(a)
			acc += v
		}
		return ir.FromInt(acc), nil
	}
	var acc float64
	for _, a := range args {
		v, ok := numFloat(a)
		if !ok {
			return nil, fmt.Errorf("expected number, got %s", a.Type)
		}
		acc += v
	}
	return ir.FromFloat(acc), nil
}

func subOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	if a, ok := numInt(args[0]); ok {
		if b, ok := numInt(args[1]); ok {
			return ir.FromInt(a - b), nil
		}
	}
	a, b, err := floatPair(args)
	if err != nil {
		return nil, err
	}
	return ir.FromFloat(a - b), nil
}

func mulOp(args []*ir.Node) (*ir.Node, error) {
	if err := atLeast(args, 2); err != nil {
		return nil, err
	}
	if allInts(args) {
		var acc int64 = 1
		for _, a := range args {
			v, _ := numInt(a)
			acc *= v
		}
		return ir.FromInt(acc), nil
	}
	var acc float64 = 1
	for _, a := range args {
		v, ok := numFloat(a)
		if !ok {
			return nil, fmt.Errorf("expected number, got %s", a.Type)
		}
		acc *= v
	}
	return ir.FromFloat(acc), nil
}

// divOp is true division; the result is always a float.
func divOp(args []*ir.Node) (*ir.Node, error) {
	a, b, err := floatPair(args)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, fmt.Errorf("division by zero")
	}
	return ir.FromFloat(a / b), nil
}

func modOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	a, ok := numInt(args[0])
	if !ok {
		return nil, fmt.Errorf("expected integer, got %s", args[0].Type)
	}
	b, ok := numInt(args[1])
	if !ok {
		return nil, fmt.Errorf("expected integer, got %s", args[1].Type)
	}
	if b == 0 {
		return nil, fmt.Errorf("division by zero")
	}
	return ir.FromInt(a % b), nil
}

func negOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 1); err != nil {
		return nil, err
	}
	if v, ok := numInt(args[0]); ok {
		return ir.FromInt(-v), nil
	}
	v, ok := numFloat(args[0])
	if !ok {
		return nil, fmt.Errorf("expected number, got %s", args[0].Type)
	}
	return ir.FromFloat(-v), nil
}

func absOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 1); err != nil {
		return nil, err
	}
	if v, ok := numInt(args[0]); ok {
		if v < 0 {
			v = -v
		}
		return ir.FromInt(v), nil
	}
	v, ok := numFloat(args[0])
	if !ok {
		return nil, fmt.Errorf("expected number, got %s", args[0].Type)
	}
	return ir.FromFloat(math.Abs(v)), nil
}

func minOp(args []*ir.Node) (*ir.Node, error) {
	return extremum(args, -1)
}

func maxOp(args []*ir.Node) (*ir.Node, error) {
	return extremum(args, 1)
}

func extremum(args []*ir.Node, sign int) (*ir.Node, error) {
	if err := atLeast(args, 1); err != nil {
		return nil, err
	}
	best := args[0]
	for _, a := range args[1:] {
		c, err := compareNodes(a, best)
		if err != nil {
			return nil, err
		}
		if c*sign > 0 {
			best = a
		}
	}
	return best.Clone(), nil
}

func sumOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 1); err != nil {
		return nil, err
	}
	if args[0].Type != ir.ArrayType {
		return nil, fmt.Errorf("expected array, got %s", args[0].Type)
	}
	vs := args[0].Values
	if len(vs) == 0 {
		return ir.FromInt(0), nil
	}
	if allInts(vs) {
		var acc int64
		for _, v := range vs {
			n, _ := numInt(v)
			acc += n
		}
		return ir.FromInt(acc), nil
	}
	var acc float64
	for _, v := range vs {
		n, ok := numFloat(v)
		if !ok {
			return nil, fmt.Errorf("expected number, got %s", v.Type)
		}
		acc += n
	}
	return ir.FromFloat(acc), nil
}

func floatPair(args []*ir.Node) (float64, float64, error) {
	if err := arity(args, 2); err != nil {
		return 0, 0, err
	}
	a, ok := numFloat(args[0])
	if !ok {
		return 0, 0, fmt.Errorf("expected number, got %s", args[0].Type)
	}
	b, ok := numFloat(args[1])
	if !ok {
		return 0, 0, fmt.Errorf("expected number, got %s", args[1].Type)
	}
	return a, b, nil
}
