package plugin

import (
	"testing"

	"github.com/jsonexceller/exceller/eval"
	"github.com/jsonexceller/exceller/ir"
)

func TestRegister(t *testing.T) {
	fn := eval.Func(func(args []*ir.Node) (*ir.Node, error) {
		return ir.Null(), nil
	})
	if err := Register("reg-test", fn); err != nil {
		t.Fatal(err)
	}
	if Lookup("reg-test") == nil {
		t.Error("registered plugin not found")
	}
	if err := Register("reg-test", fn); err == nil {
		t.Error("expected error on duplicate name")
	}
	if err := Register("", fn); err == nil {
		t.Error("expected error on empty name")
	}
	if err := Register("reg-test-bad", 3); err == nil {
		t.Error("expected error on non-invocable plugin")
	}
	if _, ok := All()["reg-test"]; !ok {
		t.Error("All() missing registered plugin")
	}
}

func TestTimeModule(t *testing.T) {
	m, ok := Lookup("time").(eval.Module)
	if !ok {
		t.Fatalf("time plugin = %T, want eval.Module", Lookup("time"))
	}
	got, err := m["parse"]([]*ir.Node{
		ir.FromString("2006-01-02"),
		ir.FromString("2024-03-01"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.String != "2024-03-01T00:00:00Z" {
		t.Errorf("parse = %q", got.String)
	}
	got, err = m["format"]([]*ir.Node{
		ir.FromString("2024-03-01T10:30:00Z"),
		ir.FromString("15:04"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.String != "10:30" {
		t.Errorf("format = %q", got.String)
	}
	if _, err := m["now"](nil); err != nil {
		t.Errorf("now error = %v", err)
	}
	if _, err := m["parse"]([]*ir.Node{ir.FromString("2006-01-02")}); err == nil {
		t.Error("expected arity error")
	}
}
