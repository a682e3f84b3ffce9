package plugin

import (
	"fmt"
	"time"

	"github.com/jsonexceller/exceller/eval"
	"github.com/jsonexceller/exceller/ir"
)

// The time module carries timestamps as RFC 3339 strings, the only
// representation JSON has for them.
func init() {
	Register("time", eval.Module{
		"now":    timeNow,
		"parse":  timeParse,
		"format": timeFormat,
	})
}

// timeNow ignores its arguments: expressions cannot spell a
// zero-argument call, so schemas invoke it as ["$1.now", null].
func timeNow(args []*ir.Node) (*ir.Node, error) {
	return ir.FromString(time.Now().UTC().Format(time.RFC3339)), nil
}

// timeParse parses args[1] with reference layout args[0] and normalizes
// to RFC 3339.
func timeParse(args []*ir.Node) (*ir.Node, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("expected (layout, value), got %d args", len(args))
	}
	if args[0].Type != ir.StringType || args[1].Type != ir.StringType {
		return nil, fmt.Errorf("expected (string, string), got (%s, %s)", args[0].Type, args[1].Type)
	}
	t, err := time.Parse(args[0].String, args[1].String)
	if err != nil {
		return nil, err
	}
	return ir.FromString(t.Format(time.RFC3339)), nil
}

// timeFormat renders RFC 3339 value args[0] with layout args[1].
func timeFormat(args []*ir.Node) (*ir.Node, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("expected (value, layout), got %d args", len(args))
	}
	if args[0].Type != ir.StringType || args[1].Type != ir.StringType {
		return nil, fmt.Errorf("expected (string, string), got (%s, %s)", args[0].Type, args[1].Type)
	}
	t, err := time.Parse(time.RFC3339, args[0].String)
	if err != nil {
		return nil, err
	}
	return ir.FromString(t.Format(args[1].String)), nil
}
