package value

import (
	"github.com/statelang/machine-runtime/errors"
	"github.com/statelang/machine-runtime/types"
)

// seqValue is a contiguous owned array. len(vals) is the size; cap(vals) is
// the capacity. Capacity grows by doubling and never shrinks.
type seqValue struct {
	vals []*Value
}

const seqMinCapacity = 4

// SeqGet gets the element at index. The result is a clone owned by the
// caller. Index must satisfy 0 <= index < size.
func (v *Value) SeqGet(index int) *Value {
	v.mustKind(types.KindSeq, "SeqGet")
	if index < 0 || index >= len(v.seq.vals) {
		fail(errors.OutOfBounds(errors.PhaseAccess, []string{"SeqGet"}, index, len(v.seq.vals)))
	}
	return v.seq.vals[index].Clone()
}

// SeqUpdate replaces the element at index with a clone of elem, freeing the
// previous occupant. A value must already exist at index.
func (v *Value) SeqUpdate(index int, elem *Value) {
	v.mustKind(types.KindSeq, "SeqUpdate")
	if index < 0 || index >= len(v.seq.vals) {
		fail(errors.OutOfBounds(errors.PhaseMutate, []string{"SeqUpdate"}, index, len(v.seq.vals)))
	}
	mustConform(elem, v.elemType(), "SeqUpdate")
	old := v.seq.vals[index]
	v.seq.vals[index] = elem.Clone()
	old.Free()
}

// SeqInsert inserts a clone of elem at index, 0 <= index <= size. Elements at
// positions >= index shift up by one; elements below index are unchanged.
func (v *Value) SeqInsert(index int, elem *Value) {
	v.mustKind(types.KindSeq, "SeqInsert")
	if index < 0 || index > len(v.seq.vals) {
		fail(errors.OutOfBounds(errors.PhaseMutate, []string{"SeqInsert"}, index, len(v.seq.vals)))
	}
	mustConform(elem, v.elemType(), "SeqInsert")
	v.seqInsertOwned(index, elem.Clone())
}

// SeqRemove removes the element at index, freeing it. Elements above index
// shift down by one; capacity is unaffected.
func (v *Value) SeqRemove(index int) {
	v.mustKind(types.KindSeq, "SeqRemove")
	size := len(v.seq.vals)
	if index < 0 || index >= size {
		fail(errors.OutOfBounds(errors.PhaseMutate, []string{"SeqRemove"}, index, size))
	}
	old := v.seq.vals[index]
	copy(v.seq.vals[index:], v.seq.vals[index+1:])
	v.seq.vals[size-1] = nil
	v.seq.vals = v.seq.vals[:size-1]
	old.Free()
}

// SeqSize returns the number of elements.
func (v *Value) SeqSize() int {
	v.mustKind(types.KindSeq, "SeqSize")
	return len(v.seq.vals)
}

// seqInsertOwned installs elem without cloning; ownership transfers to v.
func (v *Value) seqInsertOwned(index int, elem *Value) {
	size := len(v.seq.vals)
	if size == cap(v.seq.vals) {
		grown := make([]*Value, size, growCapacity(cap(v.seq.vals)))
		copy(grown, v.seq.vals)
		v.seq.vals = grown
	}
	v.seq.vals = v.seq.vals[:size+1]
	copy(v.seq.vals[index+1:], v.seq.vals[index:size])
	v.seq.vals[index] = elem
}

func growCapacity(capacity int) int {
	if capacity < seqMinCapacity {
		return seqMinCapacity
	}
	return capacity * 2
}

func (v *Value) elemType() *types.Type {
	if v.typ != nil {
		return v.typ.Elem
	}
	return nil
}
