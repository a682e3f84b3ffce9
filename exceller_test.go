package exceller

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsonexceller/exceller/encode"
	"github.com/jsonexceller/exceller/eval"
	"github.com/jsonexceller/exceller/ir"
)

func envWith(n int64) *eval.Env {
	return eval.NewEnv(ir.Object().SetField("n", ir.FromInt(n)), nil)
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		ctx    string
		want   any
	}{
		{
			name:   "expr pulls from context",
			schema: `{"type": "expr", "mapping": "$0.rec"}`,
			ctx:    `{"rec": {"a": 1, "b": 2}}`,
			want:   map[string]any{"a": int64(1), "b": int64(2)},
		},
		{
			name:   "expr with own ctx and no outer environment",
			schema: `{"type": "expr", "mapping": ["$0.rec"], "ctx": {"rec": {"foo": {"foo": 1}}}}`,
			ctx:    "",
			want:   map[string]any{"foo": map[string]any{"foo": int64(1)}},
		},
		{
			name: "object of transformers",
			schema: `{"type": "object", "mapping": {
				"a": {"type": "literal", "mapping": 1},
				"b": {"type": "expr", "mapping": ["add", "$0.x", 1]}
			}}`,
			ctx:  `{"x": 1}`,
			want: map[string]any{"a": int64(1), "b": int64(2)},
		},
		{
			name: "list over context array",
			schema: `{"type": "list", "mapping": {
				"iter": "$0.names",
				"each": {"type": "expr", "mapping": ["upper", "$0.loop_item"]}
			}}`,
			ctx:  `{"names": ["ada", "alan"]}`,
			want: []any{"ADA", "ALAN"},
		},
		{
			name:   "empty context document",
			schema: `{"type": "expr", "mapping": ["add", 1, 2]}`,
			ctx:    "",
			want:   int64(3),
		},
		{
			name:   "gated root yields null",
			schema: `{"type": "literal", "if": false, "mapping": 1}`,
			ctx:    "",
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transform([]byte(tt.schema), []byte(tt.ctx))
			if err != nil {
				t.Fatalf("Transform() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, ir.ToAny(got)); diff != "" {
				t.Errorf("Transform() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTransformKeyOrder(t *testing.T) {
	schema := `{"type": "object", "mapping": {
		"b": {"type": "literal", "mapping": 2},
		"a": {"type": "literal", "mapping": 1}
	}}`
	got, err := Transform([]byte(schema), nil)
	if err != nil {
		t.Fatal(err)
	}
	if s := encode.MustString(got); s != `{"b":2,"a":1}` {
		t.Errorf("got %s, want mapping key order preserved", s)
	}
}

func TestBuildOnceInvokeMany(t *testing.T) {
	tr, err := BuildBytes([]byte(`{"type": "expr", "mapping": ["mul", "$0.n", "$0.n"]}`))
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []int64{2, 5} {
		res, err := tr.Invoke(envWith(n))
		if err != nil {
			t.Fatal(err)
		}
		if *res.Int64 != n*n {
			t.Errorf("n=%d: got %d, want %d", n, *res.Int64, n*n)
		}
	}
}

func TestConcurrentInvoke(t *testing.T) {
	// one compiled tree, many invokers: ctx, computed, and list all
	// derive child environments and must never share mutable state
	tr, err := BuildBytes([]byte(`{"type": "object",
		"ctx": {"base": 100},
		"computed": {"scaled": {"type": "expr", "mapping": ["mul", "$0.n", "$0.base"]}},
		"mapping": {
			"scaled": {"type": "expr", "mapping": "$0.scaled"},
			"steps": {"type": "list", "mapping": {
				"iter": ["range", "$0.n"],
				"each": {"type": "expr", "mapping": ["add", "$0.loop_item", "$0.base"]}
			}}
		}}`))
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			n := int64(g%3 + 1)
			env := envWith(n)
			for i := 0; i < 50; i++ {
				res, err := tr.Invoke(env)
				if err != nil {
					t.Errorf("goroutine %d: %v", g, err)
					return
				}
				scaled := ir.Get(res, "scaled")
				if scaled == nil || *scaled.Int64 != 100*n {
					t.Errorf("goroutine %d: scaled = %v, want %d", g, scaled, 100*n)
					return
				}
				steps := ir.Get(res, "steps")
				if steps == nil || int64(len(steps.Values)) != n {
					t.Errorf("goroutine %d: steps = %v, want %d elements", g, steps, n)
					return
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestTransformErrors(t *testing.T) {
	if _, err := Transform([]byte(`{"type": "nope", "mapping": 1}`), nil); err == nil {
		t.Error("expected construction error")
	}
	if _, err := Transform([]byte(`{"type": `), nil); err == nil {
		t.Error("expected parse error")
	}
	if _, err := Transform([]byte(`{"type": "expr", "mapping": "$0.zzz"}`), []byte(`{"a": 1}`)); err == nil {
		t.Error("expected invocation error")
	}
}
