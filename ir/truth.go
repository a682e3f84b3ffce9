package ir

// Truth reports the truthiness of a node: null, false, zero, the empty
// string, and empty containers are falsy, everything else truthy.
func Truth(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Type {
	case ObjectType:
		return len(node.Fields) != 0
	case ArrayType:
		return len(node.Values) != 0
	case StringType:
		return node.String != ""
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64 != 0
		}
		if node.Float64 != nil {
			return *node.Float64 != 0.0
		}
		return false
	case BoolType:
		return node.Bool
	case NullType:
		return false
	default:
		panic("type")
	}
}
