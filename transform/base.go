package transform

import (
	"fmt"
	"strings"

	"github.com/jsonexceller/exceller/eval"
	"github.com/jsonexceller/exceller/ir"
	"github.com/jsonexceller/exceller/plugin"
)

// base carries what every variant shares: the compiled `if` gate, the
// node's own ctx and resolved plugin table, and its computed variables.
type base struct {
	ifExpr   eval.Expr
	ctx      *ir.Node
	plugins  map[string]any
	computed []computedVar
}

type computedVar struct {
	name string
	t    Transformer
}

func newBase(s *Schema) (base, error) {
	b := base{ctx: s.Ctx}
	if s.If != nil {
		e, err := eval.Compile(s.If)
		if err != nil {
			return b, fmt.Errorf("%w: bad if expression: %v", ErrSchema, err)
		}
		b.ifExpr = e
	}
	if s.Plugins != nil {
		p, err := loadPlugins(s.Plugins)
		if err != nil {
			return b, err
		}
		b.plugins = p
	}
	if s.Computed != nil {
		for i, f := range s.Computed.Fields {
			ct, err := New(s.Computed.Values[i])
			if err != nil {
				return b, fmt.Errorf("computed %q: %w", f.String, err)
			}
			b.computed = append(b.computed, computedVar{name: f.String, t: ct})
		}
	}
	return b, nil
}

// loadPlugins resolves a node's plugin table against the global plugin
// registry. The table is an object of name -> "module[:attr]" references
// or an array of bare references named after their module or attribute.
func loadPlugins(node *ir.Node) (map[string]any, error) {
	res := map[string]any{}
	switch node.Type {
	case ir.ObjectType:
		for i, f := range node.Fields {
			v := node.Values[i]
			if v.Type != ir.StringType {
				return nil, fmt.Errorf("%w: plugin %q must be a registry reference string, got %s", ErrSchema, f.String, v.Type)
			}
			p, err := resolvePlugin(v.String)
			if err != nil {
				return nil, err
			}
			res[f.String] = p
		}
	case ir.ArrayType:
		for _, v := range node.Values {
			if v.Type != ir.StringType {
				return nil, fmt.Errorf("%w: plugin entry must be a registry reference string, got %s", ErrSchema, v.Type)
			}
			p, err := resolvePlugin(v.String)
			if err != nil {
				return nil, err
			}
			res[refName(v.String)] = p
		}
	default:
		return nil, fmt.Errorf("%w: plugins must be an object or array, got %s", ErrSchema, node.Type)
	}
	return res, nil
}

func resolvePlugin(ref string) (any, error) {
	mod, attr, hasAttr := strings.Cut(ref, ":")
	p := plugin.Lookup(mod)
	if p == nil {
		return nil, fmt.Errorf("%w: no plugin %q registered", ErrSchema, mod)
	}
	if !hasAttr {
		return p, nil
	}
	m, ok := p.(eval.Module)
	if !ok {
		return nil, fmt.Errorf("%w: plugin %q is not a module", ErrSchema, mod)
	}
	fn, ok := m[attr]
	if !ok {
		return nil, fmt.Errorf("%w: no attribute %q on plugin %q", ErrSchema, attr, mod)
	}
	return fn, nil
}

func refName(ref string) string {
	mod, attr, hasAttr := strings.Cut(ref, ":")
	if hasAttr {
		return attr
	}
	return mod
}

// scope derives the node's environment: its ctx and plugins merged over
// the inherited registers, then computed variables bound in declaration
// order, each visible to the next. Computed variables resolve per
// invocation.
func (b *base) scope(env *eval.Env) (*eval.Env, error) {
	if env == nil {
		env = eval.NewEnv(nil, nil)
	}
	scoped := env.With(b.ctx, b.plugins)
	for _, cv := range b.computed {
		v, err := cv.t.Invoke(scoped)
		if err != nil {
			return nil, fmt.Errorf("computed %q: %w", cv.name, err)
		}
		if v == nil {
			continue
		}
		scoped = scoped.With(ir.Object().SetField(cv.name, v), nil)
	}
	return scoped, nil
}

// gate evaluates the `if` expression; false means the node is omitted.
func (b *base) gate(env *eval.Env) (bool, error) {
	if b.ifExpr == nil {
		return true, nil
	}
	v, err := b.ifExpr.Eval(env)
	if err != nil {
		return false, err
	}
	return ir.Truth(v), nil
}
