// Package encode serializes ir nodes to JSON, keeping object fields in
// source order.
package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/jsonexceller/exceller/ir"
)

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	eo := &encOpts{}
	for _, f := range opts {
		f(eo)
	}
	e := &encoder{w: w, opts: eo}
	return e.encode(node, 0)
}

type encoder struct {
	w    io.Writer
	opts *encOpts
}

func (e *encoder) encode(node *ir.Node, level int) error {
	if node == nil {
		return e.write("null")
	}
	switch node.Type {
	case ir.NullType:
		return e.write("null")
	case ir.BoolType:
		return e.write(strconv.FormatBool(node.Bool))
	case ir.NumberType:
		if node.Int64 != nil {
			return e.write(strconv.FormatInt(*node.Int64, 10))
		}
		if node.Float64 != nil {
			d, err := json.Marshal(*node.Float64)
			if err != nil {
				return err
			}
			return e.write(string(d))
		}
		return e.write("0")
	case ir.StringType:
		d, err := json.Marshal(node.String)
		if err != nil {
			return err
		}
		return e.write(string(d))
	case ir.ArrayType:
		if len(node.Values) == 0 {
			return e.write("[]")
		}
		if err := e.write("["); err != nil {
			return err
		}
		for i, v := range node.Values {
			if i > 0 {
				if err := e.write(","); err != nil {
					return err
				}
			}
			if err := e.sep(level + 1); err != nil {
				return err
			}
			if err := e.encode(v, level+1); err != nil {
				return err
			}
		}
		if err := e.sep(level); err != nil {
			return err
		}
		return e.write("]")
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			return e.write("{}")
		}
		if err := e.write("{"); err != nil {
			return err
		}
		for i, f := range node.Fields {
			if i > 0 {
				if err := e.write(","); err != nil {
					return err
				}
			}
			if err := e.sep(level + 1); err != nil {
				return err
			}
			d, err := json.Marshal(f.String)
			if err != nil {
				return err
			}
			if err := e.write(string(d) + e.colon()); err != nil {
				return err
			}
			if err := e.encode(node.Values[i], level+1); err != nil {
				return err
			}
		}
		if err := e.sep(level); err != nil {
			return err
		}
		return e.write("}")
	default:
		return fmt.Errorf("cannot encode node type %s", node.Type)
	}
}

func (e *encoder) colon() string {
	if e.opts.indent > 0 {
		return ": "
	}
	return ":"
}

func (e *encoder) sep(level int) error {
	if e.opts.indent == 0 {
		return nil
	}
	return e.write("\n" + strings.Repeat(" ", e.opts.indent*level))
}

func (e *encoder) write(s string) error {
	_, err := io.WriteString(e.w, s)
	return err
}
