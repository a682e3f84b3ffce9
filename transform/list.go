package transform

import (
	"fmt"

	"github.com/jsonexceller/exceller/debug"
	"github.com/jsonexceller/exceller/eval"
	"github.com/jsonexceller/exceller/ir"
)

// Loop bindings the list variant layers into register 0 for each
// element of iter.
const (
	loopItem  = "loop_item"
	loopIndex = "loop_index"
)

type listTransformer struct {
	base
	iter eval.Expr
	each Transformer
}

func newList(s *Schema) (Transformer, error) {
	b, err := newBase(s)
	if err != nil {
		return nil, err
	}
	if s.Mapping.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: list mapping must be an object with iter and each, got %s", ErrSchema, s.Mapping.Type)
	}
	iterNode := ir.Get(s.Mapping, "iter")
	if iterNode == nil {
		return nil, fmt.Errorf("%w: list mapping must have an iter expression", ErrSchema)
	}
	eachNode := ir.Get(s.Mapping, "each")
	if eachNode == nil {
		return nil, fmt.Errorf("%w: list mapping must have an each node", ErrSchema)
	}
	iter, err := eval.Compile(iterNode)
	if err != nil {
		return nil, fmt.Errorf("%w: bad iter expression: %v", ErrSchema, err)
	}
	each, err := New(eachNode)
	if err != nil {
		return nil, fmt.Errorf("each: %w", err)
	}
	return &listTransformer{base: b, iter: iter, each: each}, nil
}

func (t *listTransformer) Invoke(env *eval.Env) (*ir.Node, error) {
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
	it, err := t.iter.Eval(scoped)
	if err != nil {
		return nil, err
	}
	if it.Type != ir.ArrayType {
		return nil, &eval.EvalError{Op: "iter", Err: fmt.Errorf("%s is not iterable", it.Type)}
	}
	if debug.Invoke() {
		debug.Logf("list over %d elements\n", len(it.Values))
	}
	var vs []*ir.Node
	for i, elt := range it.Values {
		loop := ir.Object().
			SetField(loopItem, elt).
			SetField(loopIndex, ir.FromInt(int64(i)))
		v, err := t.each.Invoke(scoped.With(loop, nil))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if v == nil {
			continue
		}
		vs = append(vs, v)
	}
	return ir.FromSlice(vs), nil
}
