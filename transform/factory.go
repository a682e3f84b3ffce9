package transform

import (
	"fmt"

	"github.com/jsonexceller/exceller/ir"
)

// New builds the transformer variant matching the node's declared type,
// recursively constructing children of composite variants. All shape
// errors surface here, before any invocation.
func New(node *ir.Node) (Transformer, error) {
	s, err := schemaOf(node)
	if err != nil {
		return nil, err
	}
	switch s.Type {
	case "literal":
		return newLiteral(s)
	case "expr":
		return newExpr(s)
	case "tuple":
		return newTuple(s)
	case "list":
		return newList(s)
	case "object":
		return newObject(s)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownType, s.Type)
	}
}
