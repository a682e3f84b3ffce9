package eval

import (
	"fmt"
	"strings"

	"github.com/jsonexceller/exceller/ir"
)

// Func is the contract of every operation reachable from expressions:
// it receives its arguments fully evaluated, in source order, and
// produces a single value. Funcs complete synchronously.
type Func func(args []*ir.Node) (*ir.Node, error)

// Module is a named bundle of Funcs, addressed as "module:attr".
type Module map[string]Func

// Env is the two-register environment expressions evaluate against:
// register 0 holds the context value, register 1 the plugin table. An
// Env is never mutated after construction; With derives child scopes.
type Env struct {
	ctx     *ir.Node
	plugins map[string]any
}

// NewEnv builds an environment from a context value and a plugin table
// whose entries are Funcs or Modules. Both may be nil.
func NewEnv(ctx *ir.Node, plugins map[string]any) *Env {
	return &Env{ctx: ctx, plugins: plugins}
}

// Context returns register 0, never nil.
func (e *Env) Context() *ir.Node {
	if e == nil || e.ctx == nil {
		return ir.Null()
	}
	return e.ctx
}

// With derives a child environment, shallow-merging ctx over register 0
// and plugins over register 1. Local entries win on collision; the
// receiver is left untouched. Merging only applies when both the
// inherited and local context are objects; otherwise the local value
// replaces the inherited one.
func (e *Env) With(ctx *ir.Node, plugins map[string]any) *Env {
	child := &Env{}
	switch {
	case ctx == nil:
		child.ctx = e.Context()
	case e == nil || e.ctx == nil || e.ctx.Type != ir.ObjectType || ctx.Type != ir.ObjectType:
		child.ctx = ctx
	default:
		merged := e.ctx.Clone()
		for i, f := range ctx.Fields {
			merged.SetField(f.String, ctx.Values[i])
		}
		child.ctx = merged
	}
	n := 0
	if e != nil {
		n = len(e.plugins)
	}
	if n+len(plugins) > 0 {
		child.plugins = make(map[string]any, n+len(plugins))
		if e != nil {
			for k, v := range e.plugins {
				child.plugins[k] = v
			}
		}
		for k, v := range plugins {
			child.plugins[k] = v
		}
	}
	return child
}

// IsRef reports whether s addresses one of the two registers.
func IsRef(s string) bool {
	if len(s) < 2 || s[0] != '$' {
		return false
	}
	if s[1] != '0' && s[1] != '1' {
		return false
	}
	if len(s) == 2 {
		return true
	}
	return s[2] == '.' || s[2] == '['
}

// Resolve looks up a register reference. Register-0 references yield a
// value node; register-1 references yield a Func. The accessor chain is
// walked left to right; a miss is an ir.ErrPathNotFound.
func (e *Env) Resolve(ref string) (any, error) {
	if len(ref) < 2 || ref[0] != '$' {
		return nil, fmt.Errorf("%w: reference %q should start with '$0' or '$1'", ErrInvalidRegister, ref)
	}
	rest := ref[2:]
	switch ref[1] {
	case '0':
		if rest == "" {
			return e.Context().Clone(), nil
		}
		return e.Context().GetPath("$" + rest)
	case '1':
		if len(rest) < 2 || rest[0] != '.' {
			return nil, fmt.Errorf("%w: plugin reference %q requires a name", ErrInvalidRegister, ref)
		}
		return e.fn(rest[1:])
	default:
		return nil, fmt.Errorf("%w: %q does not name register 0 or 1", ErrInvalidRegister, ref)
	}
}

func (e *Env) fn(path string) (Func, error) {
	name, attr, hasAttr := strings.Cut(path, ":")
	var entry any
	if e != nil {
		entry = e.plugins[name]
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: no plugin %q", ErrUnknownOp, name)
	}
	if !hasAttr {
		fn, ok := entry.(Func)
		if !ok {
			return nil, fmt.Errorf("%w: plugin %q is a module, reference an attribute with %q", ErrUnknownOp, name, name+":<attr>")
		}
		return fn, nil
	}
	m, ok := entry.(Module)
	if !ok {
		return nil, fmt.Errorf("%w: plugin %q is not a module", ErrUnknownOp, name)
	}
	fn, ok := m[attr]
	if !ok {
		return nil, fmt.Errorf("%w: no attribute %q in plugin %q", ErrUnknownOp, attr, name)
	}
	return fn, nil
}
