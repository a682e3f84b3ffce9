package encode

import (
	"bytes"
	"fmt"

	"github.com/jsonexceller/exceller/ir"
)

// MustString encodes node compactly, for debug output and tests.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return fmt.Sprintf("[raw ir.Node] %v", node)
	}
	return buf.String()
}
