package transform

import (
	"errors"
	"testing"
	"time"

	"github.com/jsonexceller/exceller/encode"
	"github.com/jsonexceller/exceller/eval"
	"github.com/jsonexceller/exceller/ir"
	"github.com/jsonexceller/exceller/parse"
	"github.com/jsonexceller/exceller/plugin"
)

func mustParse(t *testing.T, doc string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse %q: %v", doc, err)
	}
	return node
}

func invoke(t *testing.T, schemaDoc, ctxDoc string) (*ir.Node, error) {
	t.Helper()
	tr, err := New(mustParse(t, schemaDoc))
	if err != nil {
		t.Fatalf("New(%q): %v", schemaDoc, err)
	}
	var env *eval.Env
	if ctxDoc != "" {
		env = eval.NewEnv(mustParse(t, ctxDoc), nil)
	}
	return tr.Invoke(env)
}

func TestVariants(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		ctx    string
		want   string
	}{
		{
			name:   "literal",
			schema: `{"type": "literal", "mapping": {"fixed": [1, 2]}}`,
			want:   `{"fixed":[1,2]}`,
		},
		{
			name:   "literal does not evaluate refs",
			schema: `{"type": "literal", "mapping": "$0.rec"}`,
			ctx:    `{"rec": 1}`,
			want:   `"$0.rec"`,
		},
		{
			name:   "expr ref",
			schema: `{"type": "expr", "mapping": "$0.rec"}`,
			ctx:    `{"rec": {"a": 1}}`,
			want:   `{"a":1}`,
		},
		{
			name:   "expr call",
			schema: `{"type": "expr", "mapping": ["add", "$0.a", "$0.b"]}`,
			ctx:    `{"a": 2, "b": 3}`,
			want:   `5`,
		},
		{
			name:   "tuple",
			schema: `{"type": "tuple", "mapping": [{"type": "literal", "mapping": 1}, {"type": "expr", "mapping": "$0.x"}]}`,
			ctx:    `{"x": "two"}`,
			want:   `[1,"two"]`,
		},
		{
			name: "object keeps mapping key order",
			schema: `{"type": "object", "mapping": {
				"b": {"type": "literal", "mapping": 2},
				"a": {"type": "literal", "mapping": 1}
			}}`,
			want: `{"b":2,"a":1}`,
		},
		{
			name: "list",
			schema: `{"type": "list", "mapping": {
				"iter": "$0.items",
				"each": {"type": "expr", "mapping": ["mul", "$0.loop_item", 10]}
			}}`,
			ctx:  `{"items": [1, 2, 3]}`,
			want: `[10,20,30]`,
		},
		{
			name: "list index binding",
			schema: `{"type": "list", "mapping": {
				"iter": ["range", 3],
				"each": {"type": "expr", "mapping": "$0.loop_index"}
			}}`,
			want: `[0,1,2]`,
		},
		{
			name: "nested composition",
			schema: `{"type": "object", "mapping": {
				"total": {"type": "expr", "mapping": ["sum", "$0.xs"]},
				"doubled": {"type": "list", "mapping": {
					"iter": "$0.xs",
					"each": {"type": "expr", "mapping": ["mul", "$0.loop_item", 2]}
				}}
			}}`,
			ctx:  `{"xs": [1, 2]}`,
			want: `{"total":3,"doubled":[2,4]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := invoke(t, tt.schema, tt.ctx)
			if err != nil {
				t.Fatalf("Invoke() error = %v", err)
			}
			if s := encode.MustString(got); s != tt.want {
				t.Errorf("Invoke() = %s, want %s", s, tt.want)
			}
		})
	}
}

func TestCtxPrecedence(t *testing.T) {
	// the node's own ctx wins over the inherited register on collision
	schema := `{"type": "expr", "ctx": {"x": 2}, "mapping": ["array", "$0.x", "$0.y"]}`
	got, err := invoke(t, schema, `{"x": 1, "y": 3}`)
	if err != nil {
		t.Fatal(err)
	}
	if s := encode.MustString(got); s != `[2,3]` {
		t.Errorf("got %s, want [2,3]", s)
	}
}

func TestCtxInheritedByChildren(t *testing.T) {
	schema := `{"type": "object", "ctx": {"base": 10}, "mapping": {
		"v": {"type": "expr", "mapping": ["add", "$0.base", "$0.n"]}
	}}`
	got, err := invoke(t, schema, `{"n": 5}`)
	if err != nil {
		t.Fatal(err)
	}
	if s := encode.MustString(got); s != `{"v":15}` {
		t.Errorf("got %s", s)
	}
}

func TestIfOmission(t *testing.T) {
	t.Run("object drops key", func(t *testing.T) {
		schema := `{"type": "object", "mapping": {
			"keep": {"type": "literal", "mapping": 1},
			"drop": {"type": "literal", "if": ["gt", "$0.n", 10], "mapping": 2}
		}}`
		got, err := invoke(t, schema, `{"n": 3}`)
		if err != nil {
			t.Fatal(err)
		}
		if s := encode.MustString(got); s != `{"keep":1}` {
			t.Errorf("got %s, want {\"keep\":1}", s)
		}
	})
	t.Run("tuple shifts", func(t *testing.T) {
		schema := `{"type": "tuple", "mapping": [
			{"type": "literal", "mapping": 1},
			{"type": "literal", "if": false, "mapping": 2},
			{"type": "literal", "mapping": 3}
		]}`
		got, err := invoke(t, schema, "")
		if err != nil {
			t.Fatal(err)
		}
		if s := encode.MustString(got); s != `[1,3]` {
			t.Errorf("got %s, want [1,3]", s)
		}
	})
	t.Run("list skips elements", func(t *testing.T) {
		schema := `{"type": "list", "mapping": {
			"iter": ["range", 5],
			"each": {"type": "expr", "if": ["eq", ["mod", "$0.loop_item", 2], 0], "mapping": "$0.loop_item"}
		}}`
		got, err := invoke(t, schema, "")
		if err != nil {
			t.Fatal(err)
		}
		if s := encode.MustString(got); s != `[0,2,4]` {
			t.Errorf("got %s, want [0,2,4]", s)
		}
	})
	t.Run("root omission is nil", func(t *testing.T) {
		got, err := invoke(t, `{"type": "literal", "if": 0, "mapping": 1}`, "")
		if err != nil {
			t.Fatal(err)
		}
		if got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})
	t.Run("if sees own ctx", func(t *testing.T) {
		schema := `{"type": "literal", "ctx": {"on": true}, "if": "$0.on", "mapping": 1}`
		got, err := invoke(t, schema, "")
		if err != nil {
			t.Fatal(err)
		}
		if got == nil || *got.Int64 != 1 {
			t.Errorf("got %v, want 1", got)
		}
	})
}

func TestComputed(t *testing.T) {
	// computed variables resolve in declaration order, each visible to
	// the next
	schema := `{"type": "expr",
		"computed": {
			"half": {"type": "expr", "mapping": ["div", "$0.n", 2]},
			"quarter": {"type": "expr", "mapping": ["div", "$0.half", 2]}
		},
		"mapping": ["array", "$0.half", "$0.quarter"]}`
	got, err := invoke(t, schema, `{"n": 8}`)
	if err != nil {
		t.Fatal(err)
	}
	if s := encode.MustString(got); s != `[4,2]` {
		t.Errorf("got %s, want [4,2]", s)
	}
}

func TestComputedPerInvocation(t *testing.T) {
	tr, err := New(mustParse(t, `{"type": "expr",
		"computed": {"m": {"type": "expr", "mapping": ["mul", "$0.n", 2]}},
		"mapping": "$0.m"}`))
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []int64{1, 7} {
		env := eval.NewEnv(ir.Object().SetField("n", ir.FromInt(n)), nil)
		got, err := tr.Invoke(env)
		if err != nil {
			t.Fatal(err)
		}
		if *got.Int64 != 2*n {
			t.Errorf("n=%d: got %d, want %d", n, *got.Int64, 2*n)
		}
	}
}

func TestPlugins(t *testing.T) {
	err := plugin.Register("answer", eval.Func(func(args []*ir.Node) (*ir.Node, error) {
		return ir.FromInt(42), nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	t.Run("named table entry", func(t *testing.T) {
		schema := `{"type": "expr", "plugins": {"a": "answer"}, "mapping": ["$1.a", null]}`
		got, err := invoke(t, schema, "")
		if err != nil {
			t.Fatal(err)
		}
		if *got.Int64 != 42 {
			t.Errorf("got %d, want 42", *got.Int64)
		}
	})
	t.Run("array table", func(t *testing.T) {
		schema := `{"type": "expr", "plugins": ["answer"], "mapping": ["$1.answer", null]}`
		got, err := invoke(t, schema, "")
		if err != nil {
			t.Fatal(err)
		}
		if *got.Int64 != 42 {
			t.Errorf("got %d, want 42", *got.Int64)
		}
	})
	t.Run("module attr", func(t *testing.T) {
		schema := `{"type": "expr", "plugins": {"t": "time"},
			"mapping": ["$1.t:format", "2024-03-01T10:00:00Z", "2006"]}`
		got, err := invoke(t, schema, "")
		if err != nil {
			t.Fatal(err)
		}
		if got.String != "2024" {
			t.Errorf("got %q, want %q", got.String, "2024")
		}
	})
	t.Run("module func taking no input", func(t *testing.T) {
		schema := `{"type": "expr", "plugins": {"t": "time"}, "mapping": ["$1.t:now", null]}`
		got, err := invoke(t, schema, "")
		if err != nil {
			t.Fatal(err)
		}
		if got.Type != ir.StringType {
			t.Fatalf("got %s, want a string timestamp", got.Type)
		}
		if _, err := time.Parse(time.RFC3339, got.String); err != nil {
			t.Errorf("now = %q, not RFC 3339: %v", got.String, err)
		}
	})
	t.Run("attr bound at table", func(t *testing.T) {
		schema := `{"type": "expr", "plugins": {"fmt": "time:format"},
			"mapping": ["$1.fmt", "2024-03-01T10:00:00Z", "01"]}`
		got, err := invoke(t, schema, "")
		if err != nil {
			t.Fatal(err)
		}
		if got.String != "03" {
			t.Errorf("got %q, want %q", got.String, "03")
		}
	})
	t.Run("inherited by children", func(t *testing.T) {
		schema := `{"type": "object", "plugins": {"a": "answer"}, "mapping": {
			"v": {"type": "expr", "mapping": ["$1.a", null]}
		}}`
		got, err := invoke(t, schema, "")
		if err != nil {
			t.Fatal(err)
		}
		if s := encode.MustString(got); s != `{"v":42}` {
			t.Errorf("got %s", s)
		}
	})
}

func TestConstructionErrors(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		target error
	}{
		{"not an object", `[1, 2]`, ErrSchema},
		{"missing type", `{"mapping": 1}`, ErrUnknownType},
		{"non-string type", `{"type": 3, "mapping": 1}`, ErrUnknownType},
		{"unknown type", `{"type": "funky", "mapping": 1}`, ErrUnknownType},
		{"missing mapping", `{"type": "literal"}`, ErrSchema},
		{"non-object ctx", `{"type": "literal", "ctx": 3, "mapping": 1}`, ErrSchema},
		{"non-object computed", `{"type": "literal", "computed": 3, "mapping": 1}`, ErrSchema},
		{"tuple non-array mapping", `{"type": "tuple", "mapping": 1}`, ErrSchema},
		{"object non-object mapping", `{"type": "object", "mapping": 1}`, ErrSchema},
		{"list missing iter", `{"type": "list", "mapping": {"each": {"type": "literal", "mapping": 1}}}`, ErrSchema},
		{"list missing each", `{"type": "list", "mapping": {"iter": "$0.xs"}}`, ErrSchema},
		{"bad if expression", `{"type": "literal", "if": [], "mapping": 1}`, ErrSchema},
		{"bad expression", `{"type": "expr", "mapping": []}`, ErrSchema},
		{"bad nested element", `{"type": "tuple", "mapping": [{"type": "nope", "mapping": 1}]}`, ErrUnknownType},
		{"unregistered plugin", `{"type": "expr", "plugins": {"x": "zzz-none"}, "mapping": 1}`, ErrSchema},
		{"bad plugin table", `{"type": "expr", "plugins": 3, "mapping": 1}`, ErrSchema},
		{"bad computed child", `{"type": "expr", "computed": {"v": {"type": "nope", "mapping": 1}}, "mapping": 1}`, ErrUnknownType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(mustParse(t, tt.schema))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("error = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestInvocationErrors(t *testing.T) {
	t.Run("unknown op", func(t *testing.T) {
		// expression shape is fine at construction; the op resolves at
		// invocation
		_, err := invoke(t, `{"type": "expr", "mapping": ["frobnicate", 1]}`, "")
		if !errors.Is(err, eval.ErrUnknownOp) {
			t.Errorf("error = %v, want ErrUnknownOp", err)
		}
	})
	t.Run("missing path", func(t *testing.T) {
		_, err := invoke(t, `{"type": "expr", "mapping": "$0.zzz"}`, `{"a": 1}`)
		if !errors.Is(err, ir.ErrPathNotFound) {
			t.Errorf("error = %v, want ErrPathNotFound", err)
		}
	})
	t.Run("non-array iter", func(t *testing.T) {
		schema := `{"type": "list", "mapping": {
			"iter": "$0.n",
			"each": {"type": "literal", "mapping": 1}
		}}`
		_, err := invoke(t, schema, `{"n": 3}`)
		var ee *eval.EvalError
		if !errors.As(err, &ee) {
			t.Fatalf("error = %v, want *EvalError", err)
		}
	})
	t.Run("op failure names op", func(t *testing.T) {
		_, err := invoke(t, `{"type": "expr", "mapping": ["div", 1, 0]}`, "")
		var ee *eval.EvalError
		if !errors.As(err, &ee) {
			t.Fatalf("error = %v, want *EvalError", err)
		}
		if ee.Op != "div" {
			t.Errorf("Op = %q, want %q", ee.Op, "div")
		}
	})
	t.Run("computed failure names variable", func(t *testing.T) {
		schema := `{"type": "expr",
			"computed": {"v": {"type": "expr", "mapping": "$0.zzz"}},
			"mapping": 1}`
		_, err := invoke(t, schema, `{"a": 1}`)
		if !errors.Is(err, ir.ErrPathNotFound) {
			t.Errorf("error = %v, want ErrPathNotFound", err)
		}
	})
}

func TestNilEnv(t *testing.T) {
	tr, err := New(mustParse(t, `{"type": "expr", "mapping": ["add", 1, 2]}`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := tr.Invoke(nil)
	if err != nil {
		t.Fatal(err)
	}
	if *got.Int64 != 3 {
		t.Errorf("got %d, want 3", *got.Int64)
	}
}
