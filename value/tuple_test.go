package value

import (
	"testing"

	rterrors "github.com/statelang/machine-runtime/errors"
	"github.com/statelang/machine-runtime/types"
)

func TestTupleDefaultAndSet(t *testing.T) {
	// Default of (int, bool) is (0, false); setting index 1 yields (0, true).
	tup := MkDefault(types.Tuple(types.Int(), types.Bool()))
	defer tup.Free()

	first := tup.TupleGet(0)
	if first.Int() != 0 {
		t.Errorf("default slot 0 = %d, want 0", first.Int())
	}
	first.Free()

	second := tup.TupleGet(1)
	if second.Bool() {
		t.Error("default slot 1 = true, want false")
	}
	second.Free()

	b := MkBool(true)
	tup.TupleSet(1, b)
	b.Free()

	if got := tup.String(); got != "(0, true)" {
		t.Errorf("tuple = %s, want (0, true)", got)
	}
}

func TestTupleSetWrongKindIsFatal(t *testing.T) {
	tup := MkDefault(types.Tuple(types.Int(), types.Bool()))
	defer tup.Free()

	n := MkInt(7)
	defer n.Free()
	wantViolation(t, rterrors.KindTypeMismatch, func() { tup.TupleSet(1, n) })
}

func TestTupleAnySlotHoldsAnyKind(t *testing.T) {
	tup := MkDefault(types.Tuple(types.Any(), types.Int()))
	defer tup.Free()

	for _, elem := range []*Value{MkBool(true), MkInt(3), MkMachine(1)} {
		tup.TupleSet(0, elem)
		got := tup.TupleGet(0)
		if !Equal(got, elem) {
			t.Errorf("any slot holds %s, want %s", got, elem)
		}
		got.Free()
		elem.Free()
	}
}

func TestTupleIndexOutOfRangeIsFatal(t *testing.T) {
	tup := MkDefault(types.Tuple(types.Int(), types.Bool()))
	defer tup.Free()

	wantViolation(t, rterrors.KindOutOfBounds, func() { tup.TupleGet(2) })
	wantViolation(t, rterrors.KindOutOfBounds, func() { tup.TupleGet(-1) })
	v := MkInt(0)
	defer v.Free()
	wantViolation(t, rterrors.KindOutOfBounds, func() { tup.TupleSet(2, v) })
}

func TestTupleOpsOnNonTupleAreFatal(t *testing.T) {
	n := MkInt(1)
	defer n.Free()
	wantViolation(t, rterrors.KindKindMismatch, func() { n.TupleGet(0) })
}

func TestNamedTuple(t *testing.T) {
	typ := types.NamedTuple(
		types.Field{Name: "from", Type: types.Machine()},
		types.Field{Name: "decided", Type: types.Bool()},
	)
	tup := MkDefault(typ)
	defer tup.Free()

	from := tup.TupleGetNamed("from")
	if !from.IsNull() {
		t.Error("default machine field should be null")
	}
	from.Free()

	m := MkMachine(4)
	tup.TupleSetNamed("from", m)
	m.Free()

	got := tup.TupleGetNamed("from")
	if got.Machine() != 4 {
		t.Errorf("from = %d, want 4", got.Machine())
	}
	got.Free()

	if tup.String() != "(from: machine(4), decided: false)" {
		t.Errorf("unexpected rendering %s", tup)
	}
}

func TestNamedTupleUnknownFieldIsFatal(t *testing.T) {
	typ := types.NamedTuple(types.Field{Name: "phase", Type: types.Int()})
	tup := MkDefault(typ)
	defer tup.Free()

	wantViolation(t, rterrors.KindFieldUnknown, func() { tup.TupleGetNamed("missing") })
	v := MkInt(0)
	defer v.Free()
	wantViolation(t, rterrors.KindFieldUnknown, func() { tup.TupleSetNamed("missing", v) })
}

func TestTupleSetReplacesWholeSlot(t *testing.T) {
	inner := types.Tuple(types.Int(), types.Int())
	tup := MkDefault(types.Tuple(inner, types.Bool()))
	defer tup.Free()

	pair := MkDefault(inner)
	one := MkInt(1)
	pair.TupleSet(0, one)
	one.Free()

	tup.TupleSet(0, pair)
	pair.Free()

	got := tup.TupleGet(0)
	defer got.Free()
	if got.String() != "(1, 0)" {
		t.Errorf("slot 0 = %s, want (1, 0)", got)
	}
}

func TestTupleGetReturnsIndependentClone(t *testing.T) {
	tup := MkDefault(types.Tuple(types.Int()))
	defer tup.Free()

	got := tup.TupleGet(0)
	got.SetInt(99)
	got.Free()

	again := tup.TupleGet(0)
	defer again.Free()
	if again.Int() != 0 {
		t.Errorf("mutating a returned clone leaked into the tuple: %d", again.Int())
	}
}
