package value

import (
	"github.com/statelang/machine-runtime/errors"
	"github.com/statelang/machine-runtime/types"
)

// Contract violations abort via panic: once generated code and the value
// graph disagree, continuing would corrupt machine state.

func fail(err *errors.Error) {
	panic(err)
}

// mustKind checks a primitive accessor precondition.
func (v *Value) mustKind(k types.Kind, op string) {
	if v == nil {
		fail(errors.New(errors.PhaseAccess, errors.KindInvalidInput).
			Path(op).
			Detail("nil value").
			Build())
	}
	if v.kind != k {
		fail(errors.KindMismatch(errors.PhaseAccess, []string{op}, v.kind.String(), k.String()))
	}
}

// mustTuple admits both positional and named tuples.
func (v *Value) mustTuple(op string) {
	if v == nil || (v.kind != types.KindTuple && v.kind != types.KindNamedTuple) {
		got := "nil"
		if v != nil {
			got = v.kind.String()
		}
		fail(errors.KindMismatch(errors.PhaseAccess, []string{op}, got, "tuple"))
	}
}

// conforms is the boundary shape check applied when a value enters a typed
// container slot: wildcard slots admit anything, ref-kinded slots admit
// null, and concrete slots admit only their own kind. Deeper structure is
// the producing compiler's responsibility.
func conforms(elem *Value, t *types.Type) bool {
	if t == nil || t.Kind == types.KindAny {
		return true
	}
	if elem.IsNull() {
		return t.Kind.IsRef()
	}
	return elem.kind == t.Kind
}

func mustConform(elem *Value, t *types.Type, op string) {
	if elem == nil {
		fail(errors.New(errors.PhaseMutate, errors.KindInvalidInput).
			Path(op).
			Detail("nil value").
			Build())
	}
	if !conforms(elem, t) {
		fail(errors.TypeMismatch(errors.PhaseMutate, []string{op}, elem.kind.String(), t.String()))
	}
}
