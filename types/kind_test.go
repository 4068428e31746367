package types

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		want string
		kind Kind
	}{
		{"any", KindAny},
		{"bool", KindBool},
		{"event", KindEvent},
		{"int", KindInt},
		{"machine", KindMachine},
		{"model", KindModel},
		{"foreign", KindForeign},
		{"tuple", KindTuple},
		{"ntuple", KindNamedTuple},
		{"seq", KindSeq},
		{"map", KindMap},
		{"unknown", Kind(255)},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.kind.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestKindIsPrimitive(t *testing.T) {
	primitives := []Kind{KindBool, KindEvent, KindInt, KindMachine, KindModel}
	for _, k := range primitives {
		if !k.IsPrimitive() {
			t.Errorf("%s should be primitive", k)
		}
	}

	nonPrimitives := []Kind{KindAny, KindForeign, KindTuple, KindNamedTuple, KindSeq, KindMap}
	for _, k := range nonPrimitives {
		if k.IsPrimitive() {
			t.Errorf("%s should not be primitive", k)
		}
	}
}

func TestKindIsRef(t *testing.T) {
	refs := []Kind{KindEvent, KindMachine, KindModel}
	for _, k := range refs {
		if !k.IsRef() {
			t.Errorf("%s should admit null", k)
		}
	}

	nonRefs := []Kind{KindAny, KindBool, KindInt, KindForeign, KindTuple, KindNamedTuple, KindSeq, KindMap}
	for _, k := range nonRefs {
		if k.IsRef() {
			t.Errorf("%s should not admit null", k)
		}
	}
}
