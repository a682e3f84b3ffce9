package eval

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsonexceller/exceller/debug"
	"github.com/jsonexceller/exceller/ir"
)

// Expr is a compiled expression: a literal, a register reference, or an
// application of an operation to argument expressions.
type Expr interface {
	Eval(env *Env) (*ir.Node, error)
}

// Compile turns the raw node form of an expression tree into its
// compiled form, validating shape as it goes. Arrays are applications
// (first element selects the operation), strings addressing a register
// are references, everything else is a literal. A single-element array
// evaluates its sole element.
func Compile(node *ir.Node) (Expr, error) {
	if node == nil {
		return nil, errors.New("expression cannot be empty")
	}
	if node.Type != ir.ArrayType {
		return compileOperand(node)
	}
	n := len(node.Values)
	switch n {
	case 0:
		return nil, errors.New("expression cannot be empty")
	case 1:
		return compileOperand(node.Values[0])
	}
	head := node.Values[0]
	if head.Type != ir.StringType {
		return nil, fmt.Errorf("operation selector must be a string, got %s", head.Type)
	}
	args := make([]Expr, 0, n-1)
	for _, v := range node.Values[1:] {
		arg, err := compileOperand(v)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return &callExpr{op: head.String, args: args}, nil
}

func compileOperand(node *ir.Node) (Expr, error) {
	switch node.Type {
	case ir.ArrayType:
		return Compile(node)
	case ir.StringType:
		if IsRef(node.String) {
			return &refExpr{raw: node.String}, nil
		}
		return &literalExpr{node: node}, nil
	default:
		return &literalExpr{node: node}, nil
	}
}

type literalExpr struct {
	node *ir.Node
}

func (x *literalExpr) Eval(env *Env) (*ir.Node, error) {
	return x.node.Clone(), nil
}

type refExpr struct {
	raw string
}

func (x *refExpr) Eval(env *Env) (*ir.Node, error) {
	v, err := env.Resolve(x.raw)
	if err != nil {
		return nil, err
	}
	node, ok := v.(*ir.Node)
	if !ok {
		return nil, &EvalError{Op: x.raw, Err: errors.New("plugin reference is not a value")}
	}
	if debug.Eval() {
		debug.Logf("resolved %s to %v\n", x.raw, node)
	}
	return node, nil
}

type callExpr struct {
	op   string
	args []Expr
}

func (x *callExpr) Eval(env *Env) (*ir.Node, error) {
	fn, err := x.fn(env)
	if err != nil {
		return nil, err
	}
	args := make([]*ir.Node, len(x.args))
	for i, arg := range x.args {
		v, err := arg.Eval(env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	if debug.Op() {
		debug.Logf("apply %s/%d\n", x.op, len(args))
	}
	res, err := fn(args)
	if err != nil {
		return nil, &EvalError{Op: x.op, Err: err}
	}
	if res == nil {
		res = ir.Null()
	}
	return res, nil
}

func (x *callExpr) fn(env *Env) (Func, error) {
	if strings.HasPrefix(x.op, "$1") {
		v, err := env.Resolve(x.op)
		if err != nil {
			return nil, err
		}
		fn, ok := v.(Func)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not invocable", ErrUnknownOp, x.op)
		}
		return fn, nil
	}
	if fn := Lookup(x.op); fn != nil {
		return fn, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOp, x.op)
}
