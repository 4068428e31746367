package types

import "testing"

func TestTypeString(t *testing.T) {
	tests := []struct {
		name string
		typ  *Type
		want string
	}{
		{"any", Any(), "any"},
		{"bool", Bool(), "bool"},
		{"int", Int(), "int"},
		{"event", Event(), "event"},
		{"machine", Machine(), "machine"},
		{"model", Model(), "model"},
		{"seq", SeqOf(Int()), "seq[int]"},
		{"map", MapOf(Int(), Bool()), "map[int, bool]"},
		{"tuple", Tuple(Int(), Bool()), "(int, bool)"},
		{
			"named tuple",
			NamedTuple(Field{Name: "from", Type: Machine()}, Field{Name: "votes", Type: SeqOf(Int())}),
			"(from: machine, votes: seq[int])",
		},
		{
			"nested",
			SeqOf(MapOf(Int(), Tuple(Any(), Bool()))),
			"seq[map[int, (any, bool)]]",
		},
		{"foreign", ForeignOf(&ForeignType{Name: "blob"}), "foreign<blob>"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.typ.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFieldIndex(t *testing.T) {
	typ := NamedTuple(
		Field{Name: "phase", Type: Int()},
		Field{Name: "decided", Type: Bool()},
	)

	if i, ok := typ.FieldIndex("phase"); !ok || i != 0 {
		t.Errorf("FieldIndex(phase) = %d, %v, want 0, true", i, ok)
	}
	if i, ok := typ.FieldIndex("decided"); !ok || i != 1 {
		t.Errorf("FieldIndex(decided) = %d, %v, want 1, true", i, ok)
	}
	if _, ok := typ.FieldIndex("missing"); ok {
		t.Error("FieldIndex(missing) should not resolve")
	}
}

func TestArity(t *testing.T) {
	if got := Tuple(Int(), Bool(), Any()).Arity(); got != 3 {
		t.Errorf("Arity() = %d, want 3", got)
	}
	if got := Int().Arity(); got != 0 {
		t.Errorf("Arity() = %d, want 0", got)
	}
}
