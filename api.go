// Package exceller derives JSON output from JSON input, driven by a
// declarative schema document: schema nodes compile into transformer
// trees, whose expressions reach external data and functions through a
// two-register environment (register 0: context, register 1: plugins).
package exceller

import (
	"bytes"

	"github.com/jsonexceller/exceller/eval"
	"github.com/jsonexceller/exceller/ir"
	"github.com/jsonexceller/exceller/parse"
	"github.com/jsonexceller/exceller/transform"
)

// Build compiles a schema node into an invocable transformer.
func Build(schema *ir.Node) (transform.Transformer, error) {
	return transform.New(schema)
}

// BuildBytes parses and compiles a schema document.
func BuildBytes(doc []byte) (transform.Transformer, error) {
	schema, err := parse.Parse(doc)
	if err != nil {
		return nil, err
	}
	return transform.New(schema)
}

// Transform compiles schemaDoc and invokes it with register 0 seeded
// from ctxDoc; an empty ctxDoc means an empty outer environment. A
// schema whose root `if` gate is falsy yields null.
func Transform(schemaDoc, ctxDoc []byte) (*ir.Node, error) {
	t, err := BuildBytes(schemaDoc)
	if err != nil {
		return nil, err
	}
	var env *eval.Env
	if len(bytes.TrimSpace(ctxDoc)) != 0 {
		ctx, err := parse.Parse(ctxDoc)
		if err != nil {
			return nil, err
		}
		env = eval.NewEnv(ctx, nil)
	}
	res, err := t.Invoke(env)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = ir.Null()
	}
	return res, nil
}
