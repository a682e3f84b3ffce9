package parse

import (
	"errors"
	"testing"

	"github.com/jsonexceller/exceller/ir"
)

func TestParseKeyOrder(t *testing.T) {
	node, err := Parse([]byte(`{"z": 1, "a": 2, "m": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType {
		t.Fatalf("got %s, want object", node.Type)
	}
	want := []string{"z", "a", "m"}
	for i, f := range node.Fields {
		if f.String != want[i] {
			t.Errorf("field %d = %q, want %q", i, f.String, want[i])
		}
	}
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		check func(t *testing.T, node *ir.Node)
	}{
		{
			name: "int",
			doc:  "42",
			check: func(t *testing.T, node *ir.Node) {
				if node.Type != ir.NumberType || node.Int64 == nil || *node.Int64 != 42 {
					t.Errorf("got %v", node)
				}
			},
		},
		{
			name: "float",
			doc:  "2.5",
			check: func(t *testing.T, node *ir.Node) {
				if node.Type != ir.NumberType || node.Float64 == nil || *node.Float64 != 2.5 {
					t.Errorf("got %v", node)
				}
			},
		},
		{
			name: "string",
			doc:  `"hi"`,
			check: func(t *testing.T, node *ir.Node) {
				if node.Type != ir.StringType || node.String != "hi" {
					t.Errorf("got %v", node)
				}
			},
		},
		{
			name: "bool",
			doc:  "true",
			check: func(t *testing.T, node *ir.Node) {
				if node.Type != ir.BoolType || !node.Bool {
					t.Errorf("got %v", node)
				}
			},
		},
		{
			name: "null",
			doc:  "null",
			check: func(t *testing.T, node *ir.Node) {
				if node.Type != ir.NullType {
					t.Errorf("got %v", node)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse([]byte(tt.doc))
			if err != nil {
				t.Fatal(err)
			}
			tt.check(t, node)
		})
	}
}

func TestParseNested(t *testing.T) {
	node, err := Parse([]byte(`{"rec": {"a": 1, "b": ["x", "y"]}}`))
	if err != nil {
		t.Fatal(err)
	}
	b, err := node.GetPath("$.rec.b[1]")
	if err != nil {
		t.Fatal(err)
	}
	if b.String != "y" {
		t.Errorf("got %q, want %q", b.String, "y")
	}
}

func TestParseYAMLForm(t *testing.T) {
	node, err := Parse([]byte("type: expr\nmapping: [\"add\", 1, 2]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if ir.Get(node, "type").String != "expr" {
		t.Errorf("type = %v", ir.Get(node, "type"))
	}
	m := ir.Get(node, "mapping")
	if m.Type != ir.ArrayType || len(m.Values) != 3 {
		t.Errorf("mapping = %v", m)
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse([]byte(`{"a": `))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("error = %v, want ErrParse", err)
	}
}
