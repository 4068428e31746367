package types

import (
	"errors"
	"testing"

	rterrors "github.com/statelang/machine-runtime/errors"
)

func testForeignType(name string) *ForeignType {
	return &ForeignType{
		Name:   name,
		Clone:  func(data any) any { return data },
		Free:   func(data any) {},
		Equals: func(a, b any) bool { return a == b },
		Hash:   func(data any) uint32 { return 0 },
	}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(testForeignType("blob")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	ft, ok := reg.Lookup("blob")
	if !ok || ft.Name != "blob" {
		t.Fatalf("Lookup(blob) = %v, %v", ft, ok)
	}
	if _, ok := reg.Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}
}

func TestRegistryRejectsDuplicate(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(testForeignType("blob")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	err := reg.Register(testForeignType("blob"))
	if err == nil {
		t.Fatal("duplicate registration should fail")
	}
	var rtErr *rterrors.Error
	if !errors.As(err, &rtErr) || rtErr.Kind != rterrors.KindDuplicate {
		t.Errorf("want duplicate error, got %v", err)
	}
}

func TestRegistryRejectsIncomplete(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(nil); err == nil {
		t.Error("nil foreign type should fail")
	}
	if err := reg.Register(&ForeignType{Name: "half", Clone: func(any) any { return nil }}); err == nil {
		t.Error("foreign type without full callback set should fail")
	}
}

func TestRegistryNames(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := reg.Register(testForeignType(name)); err != nil {
			t.Fatalf("Register(%s) failed: %v", name, err)
		}
	}

	names := reg.Names()
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}
