package eval

import "github.com/jsonexceller/exceller/ir"

func registerLogic() {
	Register("and", andOp)
	Register("or", orOp)
	Register("not", notOp)
	Register("if", ifOp)
	Register("coalesce", coalesceOp)
}

func andOp(args []*ir.Node) (*ir.Node, error) {
	if err := atLeast(args, 1); err != nil {
		return nil, err
	}
	for _, a := range args {
		if !ir.Truth(a) {
			return ir.FromBool(false), nil
		}
	}
	return ir.FromBool(true), nil
}

func orOp(args []*ir.Node) (*ir.Node, error) {
	if err := atLeast(args, 1); err != nil {
		return nil, err
	}
	for _, a := range args {
		if ir.Truth(a) {
			return ir.FromBool(true), nil
		}
	}
	return ir.FromBool(false), nil
}

func notOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 1); err != nil {
		return nil, err
	}
	return ir.FromBool(!ir.Truth(args[0])), nil
}

// ifOp is an eager ternary: all three arguments are already evaluated
// by the time it selects one.
func ifOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 3); err != nil {
		return nil, err
	}
	if ir.Truth(args[0]) {
		return args[1].Clone(), nil
	}
	return args[2].Clone(), nil
}

func coalesceOp(args []*ir.Node) (*ir.Node, error) {
	if err := atLeast(args, 1); err != nil {
		return nil, err
	}
	for _, a := range args {
		if a.Type != ir.NullType {
			return a.Clone(), nil
		}
	}
	return ir.Null(), nil
}
