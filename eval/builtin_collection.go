package eval

import (
	"fmt"
	"unicode/utf8"

	"github.com/jsonexceller/exceller/ir"
)

func registerCollection() {
	Register("len", lenOp)
	Register("getitem", getitemOp)
	Register("keys", keysOp)
	Register("values", valuesOp)
	Register("range", rangeOp)
	Register("array", arrayOp)
}

func lenOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 1); err != nil {
		return nil, err
	}
	a := args[0]
	switch a.Type {
	case ir.StringType:
		return ir.FromInt(int64(utf8.RuneCountInString(a.String))), nil
	case ir.ArrayType:
		return ir.FromInt(int64(len(a.Values))), nil
	case ir.ObjectType:
		return ir.FromInt(int64(len(a.Fields))), nil
	default:
		return nil, fmt.Errorf("%s has no length", a.Type)
	}
}

// getitemOp indexes an object by field name or an array by position;
// negative positions count from the end.
func getitemOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 2); err != nil {
		return nil, err
	}
	c, key := args[0], args[1]
	switch c.Type {
	case ir.ObjectType:
		if key.Type != ir.StringType {
			return nil, fmt.Errorf("expected string key, got %s", key.Type)
		}
		v := ir.Get(c, key.String)
		if v == nil {
			return nil, fmt.Errorf("%w: no field %q", ir.ErrPathNotFound, key.String)
		}
		return v.Clone(), nil
	case ir.ArrayType:
		i, ok := numInt(key)
		if !ok {
			return nil, fmt.Errorf("expected integer index, got %s", key.Type)
		}
		if i < 0 {
			i += int64(len(c.Values))
		}
		if i < 0 || i >= int64(len(c.Values)) {
			return nil, fmt.Errorf("%w: index %d out of bounds (len %d)", ir.ErrPathNotFound, i, len(c.Values))
		}
		return c.Values[i].Clone(), nil
	default:
		return nil, fmt.Errorf("cannot index %s", c.Type)
	}
}

func keysOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 1); err != nil {
		return nil, err
	}
	if args[0].Type != ir.ObjectType {
		return nil, fmt.Errorf("expected object, got %s", args[0].Type)
	}
	vs := make([]*ir.Node, len(args[0].Fields))
	for i, f := range args[0].Fields {
		vs[i] = ir.FromString(f.String)
	}
	return ir.FromSlice(vs), nil
}

func valuesOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 1); err != nil {
		return nil, err
	}
	if args[0].Type != ir.ObjectType {
		return nil, fmt.Errorf("expected object, got %s", args[0].Type)
	}
	return ir.FromSlice(args[0].Values), nil
}

// rangeOp is range(stop), range(start, stop), or range(start, stop, step).
func rangeOp(args []*ir.Node) (*ir.Node, error) {
	if len(args) < 1 || len(args) > 3 {
		return nil, fmt.Errorf("expected 1 to 3 args, got %d", len(args))
	}
	var start, stop, step int64 = 0, 0, 1
	ints := make([]int64, len(args))
	for i, a := range args {
		v, ok := numInt(a)
		if !ok {
			return nil, fmt.Errorf("expected integer, got %s", a.Type)
		}
		ints[i] = v
	}
	switch len(args) {
	case 1:
		stop = ints[0]
	case 2:
		start, stop = ints[0], ints[1]
	case 3:
		start, stop, step = ints[0], ints[1], ints[2]
	}
	if step == 0 {
		return nil, fmt.Errorf("step cannot be zero")
	}
	var vs []*ir.Node
	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		vs = append(vs, ir.FromInt(i))
	}
	return ir.FromSlice(vs), nil
}

func arrayOp(args []*ir.Node) (*ir.Node, error) {
	return ir.FromSlice(args), nil
}
