package ir

import (
	"sort"
	"strconv"
)

// Node is an order-preserving JSON value. Object fields live in Fields
// with their values at the same index in Values, so encoding an object
// reproduces source order.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	dst.String = y.String
	dst.Bool = y.Bool
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	for i, v := range vs {
		cp := v.Clone()
		cp.Parent = res
		cp.ParentIndex = i
		res.Values[i] = cp
	}
	return res
}

// Object returns an empty object node; populate it with SetField to
// control field order.
func Object() *Node {
	return &Node{Type: ObjectType}
}

// SetField sets field f of object y to v, replacing the value in place
// when the field is already present and appending otherwise.
func (y *Node) SetField(f string, v *Node) *Node {
	cp := v.Clone()
	cp.Parent = y
	cp.ParentField = f
	for i, yf := range y.Fields {
		if yf.String != f {
			continue
		}
		cp.ParentIndex = i
		y.Values[i] = cp
		return y
	}
	fn := FromString(f)
	fn.Parent = y
	fn.ParentIndex = len(y.Fields)
	cp.ParentIndex = len(y.Values)
	y.Fields = append(y.Fields, fn)
	y.Values = append(y.Values, cp)
	return y
}

// Get returns the value of field f of y, or nil if y is not an object
// or has no such field.
func Get(y *Node, f string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for i, yf := range y.Fields {
		if yf.String == f {
			return y.Values[i]
		}
	}
	return nil
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

// FromMap builds an object node with fields in sorted key order, as map
// iteration order would otherwise leak into output.
func FromMap(m map[string]*Node) *Node {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	res := Object()
	for _, k := range keys {
		res.SetField(k, m[k])
	}
	return res
}

func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		return y.Parent.Path() + "." + pathString(y.ParentField)
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}
