package transform

import (
	"fmt"

	"github.com/jsonexceller/exceller/debug"
	"github.com/jsonexceller/exceller/eval"
	"github.com/jsonexceller/exceller/ir"
)

type exprTransformer struct {
	base
	expr eval.Expr
}

func newExpr(s *Schema) (Transformer, error) {
	b, err := newBase(s)
	if err != nil {
		return nil, err
	}
	e, err := eval.Compile(s.Mapping)
	if err != nil {
		return nil, fmt.Errorf("%w: bad expression: %v", ErrSchema, err)
	}
	return &exprTransformer{base: b, expr: e}, nil
}

func (t *exprTransformer) Invoke(env *eval.Env) (*ir.Node, error) {
	scoped, err := t.scope(env)
	if err != nil {
		return nil, err
	}
	ok, err := t.gate(scoped)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	if debug.Invoke() {
		debug.Logf("expr invoke with ctx %v\n", scoped.Context())
	}
	return t.expr.Eval(scoped)
}
