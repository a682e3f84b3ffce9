// Package transform builds invocable transformers from schema nodes.
// Construction (New) is depth-first and happens once; invocation is a
// pure function of the stored mapping and the environment, so a built
// transformer may be invoked concurrently.
package transform

import (
	"github.com/jsonexceller/exceller/eval"
	"github.com/jsonexceller/exceller/ir"
)

// Transformer is the in-memory realization of a schema node.
type Transformer interface {
	// Invoke produces the node's value under env, which may be nil for
	// an empty context and plugin table. A nil node with a nil error
	// means the node's `if` gate was falsy and the node contributes
	// nothing: enclosing objects omit its key, enclosing tuples and
	// lists omit its slot and shift.
	Invoke(env *eval.Env) (*ir.Node, error)
}
