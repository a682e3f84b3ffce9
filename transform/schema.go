package transform

import (
	"fmt"

	"github.com/jsonexceller/exceller/ir"
)

// Schema is the raw field split of a schema node. Nodes are read-only
// templates; a Schema never changes after parsing.
type Schema struct {
	Type     string
	Mapping  *ir.Node
	Ctx      *ir.Node
	Plugins  *ir.Node
	If       *ir.Node
	Computed *ir.Node
}

func schemaOf(node *ir.Node) (*Schema, error) {
	if node == nil || node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: schema node must be an object", ErrSchema)
	}
	t := ir.Get(node, "type")
	if t == nil {
		return nil, fmt.Errorf("%w (none given)", ErrUnknownType)
	}
	if t.Type != ir.StringType {
		return nil, fmt.Errorf("%w (%s is not a string)", ErrUnknownType, t.Type)
	}
	m := ir.ToMap(node)
	s := &Schema{
		Type:     t.String,
		Mapping:  m["mapping"],
		Ctx:      m["ctx"],
		Plugins:  m["plugins"],
		If:       m["if"],
		Computed: m["computed"],
	}
	if s.Mapping == nil {
		return nil, fmt.Errorf("%w: missing mapping", ErrSchema)
	}
	if s.Ctx != nil && s.Ctx.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: ctx must be an object, got %s", ErrSchema, s.Ctx.Type)
	}
	if s.Computed != nil && s.Computed.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: computed must be an object, got %s", ErrSchema, s.Computed.Type)
	}
	return s, nil
}
