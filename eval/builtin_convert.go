package eval

import (
	"fmt"
	"strconv"

	"github.com/jsonexceller/exceller/ir"
)

func registerConvert() {
	Register("str", strOp)
	Register("int", intOp)
	Register("float", floatOp)
	Register("bool", boolOp)
}

func strOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 1); err != nil {
		return nil, err
	}
	a := args[0]
	switch a.Type {
	case ir.StringType:
		return a.Clone(), nil
	case ir.BoolType:
		return ir.FromString(strconv.FormatBool(a.Bool)), nil
	case ir.NumberType:
		if a.Int64 != nil {
			return ir.FromString(strconv.FormatInt(*a.Int64, 10)), nil
		}
		if a.Float64 != nil {
			return ir.FromString(strconv.FormatFloat(*a.Float64, 'g', -1, 64)), nil
		}
		return ir.FromString("0"), nil
	default:
		return nil, fmt.Errorf("cannot convert %s to string", a.Type)
	}
}

func intOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 1); err != nil {
		return nil, err
	}
	a := args[0]
	switch a.Type {
	case ir.NumberType:
		if a.Int64 != nil {
			return a.Clone(), nil
		}
		if a.Float64 != nil {
			return ir.FromInt(int64(*a.Float64)), nil
		}
		return ir.FromInt(0), nil
	case ir.StringType:
		v, err := strconv.ParseInt(a.String, 10, 64)
		if err != nil {
			f, ferr := strconv.ParseFloat(a.String, 64)
			if ferr != nil {
				return nil, fmt.Errorf("cannot convert %q to int", a.String)
			}
			return ir.FromInt(int64(f)), nil
		}
		return ir.FromInt(v), nil
	case ir.BoolType:
		if a.Bool {
			return ir.FromInt(1), nil
		}
		return ir.FromInt(0), nil
	default:
		return nil, fmt.Errorf("cannot convert %s to int", a.Type)
	}
}

func floatOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 1); err != nil {
		return nil, err
	}
	a := args[0]
	switch a.Type {
	case ir.NumberType:
		f, _ := numFloat(a)
		return ir.FromFloat(f), nil
	case ir.StringType:
		f, err := strconv.ParseFloat(a.String, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to float", a.String)
		}
		return ir.FromFloat(f), nil
	default:
		return nil, fmt.Errorf("cannot convert %s to float", a.Type)
	}
}

func boolOp(args []*ir.Node) (*ir.Node, error) {
	if err := arity(args, 1); err != nil {
		return nil, err
	}
	return ir.FromBool(ir.Truth(args[0])), nil
}
