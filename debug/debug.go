// Package debug provides env-var gated logging for the engine. Set
// EXCELLER_DEBUG_EVAL, EXCELLER_DEBUG_OP, or EXCELLER_DEBUG_INVOKE to a
// true value to trace expression evaluation, operation dispatch, or
// transformer invocation.
package debug

import (
	"fmt"
	"os"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/jsonexceller/exceller/encode"
	"github.com/jsonexceller/exceller/ir"
)

type debug struct {
	Eval   bool
	Op     bool
	Invoke bool
}

var d *debug

func init() {
	d = &debug{}
	d.Eval = boolEnv("EXCELLER_DEBUG_EVAL")
	d.Op = boolEnv("EXCELLER_DEBUG_OP")
	d.Invoke = boolEnv("EXCELLER_DEBUG_INVOKE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Eval() bool {
	return d.Eval
}

func Op() bool {
	return d.Op
}

func Invoke() bool {
	return d.Invoke
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.Marshal(a)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = encode.MustString(x)
		case bool, string, float64, int:
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
