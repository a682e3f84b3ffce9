package transform

import (
	"fmt"

	"github.com/jsonexceller/exceller/eval"
	"github.com/jsonexceller/exceller/ir"
)

type tupleTransformer struct {
	base
	elems []Transformer
}

func newTuple(s *Schema) (Transformer, error) {
	b, err := newBase(s)
	if err != nil {
		return nil, err
	}
	if s.Mapping.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: tuple mapping must be an array, got %s", ErrSchema, s.Mapping.Type)
	}
	elems := make([]Transformer, len(s.Mapping.Values))
	for i, child := range s.Mapping.Values {
		ct, err := New(child)
		if err != nil {
			return nil, fmt.Errorf("tuple element %d: %w", i, err)
		}
		elems[i] = ct
	}
	return &tupleTransformer{base: b, elems: elems}, nil
}

func (t *tupleTransformer) Invoke(env *eval.Env) (*ir.Node, error) {
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
	var vs []*ir.Node
	for _, elem := range t.elems {
		v, err := elem.Invoke(scoped)
		if err != nil {
			return nil, err
		}
		if v == nil {
			// gated out: omit the slot, shifting
			continue
		}
		vs = append(vs, v)
	}
	return ir.FromSlice(vs), nil
}
