package value

import (
	"github.com/statelang/machine-runtime/errors"
	"github.com/statelang/machine-runtime/types"
)

// TupleGet gets the element at index. The result is a clone owned by the
// caller. Index must satisfy 0 <= index < arity.
func (v *Value) TupleGet(index int) *Value {
	v.mustTuple("TupleGet")
	if index < 0 || index >= len(v.tuple) {
		fail(errors.OutOfBounds(errors.PhaseAccess, []string{"TupleGet"}, index, len(v.tuple)))
	}
	return v.tuple[index].Clone()
}

// TupleSet replaces the element at index with a clone of elem, freeing the
// previous occupant. The whole sub-value is replaced, never merged. elem must
// conform to the slot's declared type; the caller keeps ownership of elem.
func (v *Value) TupleSet(index int, elem *Value) {
	v.mustTuple("TupleSet")
	if index < 0 || index >= len(v.tuple) {
		fail(errors.OutOfBounds(errors.PhaseMutate, []string{"TupleSet"}, index, len(v.tuple)))
	}
	mustConform(elem, v.slotType(index), "TupleSet")
	old := v.tuple[index]
	v.tuple[index] = elem.Clone()
	old.Free()
}

// TupleGetNamed gets the element with the given field name.
// An unknown name is a contract violation.
func (v *Value) TupleGetNamed(name string) *Value {
	v.mustTuple("TupleGetNamed")
	index, ok := v.typ.FieldIndex(name)
	if !ok {
		fail(errors.FieldUnknown(errors.PhaseAccess, []string{"TupleGetNamed"}, name))
	}
	return v.tuple[index].Clone()
}

// TupleSetNamed replaces the element with the given field name by a clone of
// elem, freeing the previous occupant.
func (v *Value) TupleSetNamed(name string, elem *Value) {
	v.mustTuple("TupleSetNamed")
	index, ok := v.typ.FieldIndex(name)
	if !ok {
		fail(errors.FieldUnknown(errors.PhaseMutate, []string{"TupleSetNamed"}, name))
	}
	mustConform(elem, v.slotType(index), "TupleSetNamed")
	old := v.tuple[index]
	v.tuple[index] = elem.Clone()
	old.Free()
}

// TupleArity returns the number of slots.
func (v *Value) TupleArity() int {
	v.mustTuple("TupleArity")
	return len(v.tuple)
}

func (v *Value) slotType(index int) *types.Type {
	if v.typ != nil && index < len(v.typ.Fields) {
		return v.typ.Fields[index].Type
	}
	return nil
}
