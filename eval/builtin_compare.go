package eval

import "github.com/jsonexceller/exceller/ir"

func registerCompare() {
	Register("eq", eqOp)
	Register("ne", neOp)
	Register("lt", orderOp(func(c int) bool { return c < 0 }))
	Register("le", orderOp(func(c int) bool { return c <= 0 }))
	Register("gt", orderOp(func(c int) bool { return c > 0 }))
	Register("ge", orderOp(func(c int) bool { return c >= 0 }))
}

func eqOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	return ir.FromBool(equalNodes(args[0], args[1])), nil
}

func neOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	return ir.FromBool(!equalNodes(args[0], args[1])), nil
}

func orderOp(holds func(int) bool) Func {
	return func(args []*ir.Node) (*ir.Node, error) {
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		c, err := compareNodes(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return ir.FromBool(holds(c)), nil
	}
}
