package transform

import (
	"fmt"

	"github.com/jsonexceller/exceller/eval"
	"github.com/jsonexceller/exceller/ir"
)

type objectTransformer struct {
	base
	keys  []string
	elems []Transformer
}

func newObject(s *Schema) (Transformer, error) {
	b, err := newBase(s)
	if err != nil {
		return nil, err
	}
	if s.Mapping.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: object mapping must be an object, got %s", ErrSchema, s.Mapping.Type)
	}
	n := len(s.Mapping.Fields)
	res := &objectTransformer{
		base:  b,
		keys:  make([]string, n),
		elems: make([]Transformer, n),
	}
	for i, f := range s.Mapping.Fields {
		ct, err := New(s.Mapping.Values[i])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.String, err)
		}
		res.keys[i] = f.String
		res.elems[i] = ct
	}
	return res, nil
}

func (t *objectTransformer) Invoke(env *eval.Env) (*ir.Node, error) {
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
	res := ir.Object()
	for i, elem := range t.elems {
		v, err := elem.Invoke(scoped)
		if err != nil {
			return nil, err
		}
		if v == nil {
			// gated out: the key is absent, not null
			continue
		}
		res.SetField(t.keys[i], v)
	}
	return res, nil
}
