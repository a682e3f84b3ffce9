package eval

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/jsonexceller/exceller/ir"
)

func registerScript() {
	Register("script", scriptOp)
}

// scriptOp evaluates an expr-lang expression. The first argument is the
// source text; the optional second argument is an object whose fields
// become the expression's variables, typically passed as "$0".
func scriptOp(args []*ir.Node) (*ir.Node, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, fmt.Errorf("expected 1 or 2 args, got %d", len(args))
	}
	if args[0].Type != ir.StringType {
		return nil, fmt.Errorf("expected string source, got %s", args[0].Type)
	}
	env := map[string]any{}
	if len(args) == 2 {
		if args[1].Type != ir.ObjectType {
			return nil, fmt.Errorf("expected object environment, got %s", args[1].Type)
		}
		env = ir.ToAny(args[1]).(map[string]any)
	}
	val, err := expr.Eval(args[0].String, env)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", args[0].String, err)
	}
	return ir.FromAny(val)
}
