package transform

import (
	"github.com/jsonexceller/exceller/debug"
	"github.com/jsonexceller/exceller/eval"
	"github.com/jsonexceller/exceller/ir"
)

type literalTransformer struct {
	base
	value *ir.Node
}

func newLiteral(s *Schema) (Transformer, error) {
	b, err := newBase(s)
	if err != nil {
		return nil, err
	}
	return &literalTransformer{base: b, value: s.Mapping}, nil
}

func (t *literalTransformer) Invoke(env *eval.Env) (*ir.Node, error) {
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
		debug.Logf("literal -> %v\n", t.value)
	}
	return t.value.Clone(), nil
}
