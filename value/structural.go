package value

import (
	"github.com/statelang/machine-runtime/errors"
	"github.com/statelang/machine-runtime/types"
)

// MkDefault synthesizes the canonical zero-value of a type:
//
//	any                  null
//	bool                 false
//	int                  0
//	event/machine/model  null
//	foreign              nil payload
//	seq/map              empty
//	tuple                field-wise defaults
//
// The caller owns the result.
func MkDefault(t *types.Type) *Value {
	if t == nil {
		fail(errors.New(errors.PhaseConstruct, errors.KindInvalidInput).
			Detail("nil type").
			Build())
	}
	switch t.Kind {
	case types.KindAny:
		return &Value{typ: t, kind: types.KindEvent, scalar: int64(NullID)}
	case types.KindBool:
		return &Value{typ: t, kind: types.KindBool}
	case types.KindInt:
		return &Value{typ: t, kind: types.KindInt}
	case types.KindEvent, types.KindMachine, types.KindModel:
		return &Value{typ: t, kind: t.Kind, scalar: int64(NullID)}
	case types.KindForeign:
		return &Value{typ: t, kind: types.KindForeign, foreign: foreignPayload{ft: t.Foreign}}
	case types.KindTuple, types.KindNamedTuple:
		v := &Value{typ: t, kind: t.Kind, tuple: make([]*Value, len(t.Fields))}
		for i, f := range t.Fields {
			v.tuple[i] = MkDefault(f.Type)
		}
		return v
	case types.KindSeq:
		return &Value{typ: t, kind: types.KindSeq}
	case types.KindMap:
		return &Value{typ: t, kind: types.KindMap, hmap: newMapValue()}
	default:
		fail(errors.New(errors.PhaseConstruct, errors.KindInvalidInput).
			Got(t.Kind.String()).
			Detail("cannot synthesize default").
			Build())
		return nil
	}
}

// Clone deeply copies v. The copy is independently owned: mutating it never
// affects v. Foreign payloads are cloned through their registered callback.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	out := &Value{typ: v.typ, kind: v.kind, scalar: v.scalar}
	switch v.kind {
	case types.KindForeign:
		out.foreign.ft = v.foreign.ft
		if v.foreign.data != nil {
			out.foreign.data = v.foreign.ft.Clone(v.foreign.data)
		}
	case types.KindTuple, types.KindNamedTuple:
		out.tuple = make([]*Value, len(v.tuple))
		for i, elem := range v.tuple {
			out.tuple[i] = elem.Clone()
		}
	case types.KindSeq:
		if len(v.seq.vals) > 0 {
			out.seq.vals = make([]*Value, len(v.seq.vals))
			for i, elem := range v.seq.vals {
				out.seq.vals[i] = elem.Clone()
			}
		}
	case types.KindMap:
		m := &mapValue{buckets: make([]*mapNode, len(v.hmap.buckets))}
		for n := v.hmap.first; n != nil; n = n.insertNext {
			m.adoptAppend(n.key.Clone(), n.val.Clone(), n.hash)
		}
		out.hmap = m
	case kindFreed:
		fail(errors.New(errors.PhaseAccess, errors.KindDoubleFree).
			Path("Clone").
			Detail("value already freed").
			Build())
	}
	return out
}

// Free recursively releases v and everything it owns. It is the only legal
// way to destroy a value produced by this package, and must be called
// exactly once per value.
func (v *Value) Free() {
	if v == nil {
		fail(errors.New(errors.PhaseFree, errors.KindInvalidInput).
			Detail("nil value").
			Build())
	}
	if v.kind == kindFreed {
		fail(errors.New(errors.PhaseFree, errors.KindDoubleFree).
			Detail("value already freed").
			Build())
	}
	switch v.kind {
	case types.KindForeign:
		if v.foreign.data != nil {
			v.foreign.ft.Free(v.foreign.data)
		}
		v.foreign = foreignPayload{}
	case types.KindTuple, types.KindNamedTuple:
		for _, elem := range v.tuple {
			elem.Free()
		}
		v.tuple = nil
	case types.KindSeq:
		for _, elem := range v.seq.vals {
			elem.Free()
		}
		v.seq.vals = nil
	case types.KindMap:
		for n := v.hmap.first; n != nil; {
			next := n.insertNext
			n.key.Free()
			n.val.Free()
			n = next
		}
		v.hmap = nil
	}
	v.typ = nil
	v.kind = kindFreed
}

// Equal reports structural equivalence. Primitives compare by scalar,
// tuples and sequences element-wise by position, maps by key/value-pair
// membership independent of insertion order, and foreign values through
// their registered callback. The null sentinel compares equal to itself
// regardless of which reference kind carries it.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.IsNull() || b.IsNull() {
		return a.IsNull() && b.IsNull()
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case types.KindBool, types.KindInt:
		return a.scalar == b.scalar
	case types.KindEvent, types.KindMachine, types.KindModel:
		return uint32(a.scalar) == uint32(b.scalar)
	case types.KindForeign:
		if !sameForeignType(a.foreign.ft, b.foreign.ft) {
			return false
		}
		if a.foreign.data == nil || b.foreign.data == nil {
			return a.foreign.data == nil && b.foreign.data == nil
		}
		return a.foreign.ft.Equals(a.foreign.data, b.foreign.data)
	case types.KindTuple, types.KindNamedTuple:
		if len(a.tuple) != len(b.tuple) {
			return false
		}
		for i := range a.tuple {
			if !Equal(a.tuple[i], b.tuple[i]) {
				return false
			}
		}
		return true
	case types.KindSeq:
		if len(a.seq.vals) != len(b.seq.vals) {
			return false
		}
		for i := range a.seq.vals {
			if !Equal(a.seq.vals[i], b.seq.vals[i]) {
				return false
			}
		}
		return true
	case types.KindMap:
		if a.hmap.size != b.hmap.size {
			return false
		}
		for n := a.hmap.first; n != nil; n = n.insertNext {
			bn := b.hmap.lookup(n.key, n.hash)
			if bn == nil || !Equal(n.val, bn.val) {
				return false
			}
		}
		return true
	}
	return false
}

// FNV-1a, folded over value structure.
const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619
	nullHash    = 0x811c9dc5 // all nulls hash alike, whatever their ref kind
)

func fnvMix(h, x uint32) uint32 {
	for i := 0; i < 4; i++ {
		h ^= (x >> (8 * uint(i))) & 0xff
		h *= fnvPrime32
	}
	return h
}

// HashCode returns a structural hash consistent with Equal: equal values
// always produce the same code. Map hashing combines per-pair hashes
// commutatively, so it is independent of insertion order, matching map
// equality.
func (v *Value) HashCode() uint32 {
	if v.IsNull() {
		return nullHash
	}
	h := fnvMix(fnvOffset32, uint32(v.kind))
	switch v.kind {
	case types.KindBool, types.KindEvent, types.KindMachine, types.KindModel:
		return fnvMix(h, uint32(v.scalar))
	case types.KindInt:
		h = fnvMix(h, uint32(uint64(v.scalar)))
		return fnvMix(h, uint32(uint64(v.scalar)>>32))
	case types.KindForeign:
		if v.foreign.data == nil {
			return fnvMix(h, 0)
		}
		return fnvMix(h, v.foreign.ft.Hash(v.foreign.data))
	case types.KindTuple, types.KindNamedTuple:
		for _, elem := range v.tuple {
			h = fnvMix(h, elem.HashCode())
		}
		return h
	case types.KindSeq:
		for _, elem := range v.seq.vals {
			h = fnvMix(h, elem.HashCode())
		}
		return h
	case types.KindMap:
		var sum uint32
		for n := v.hmap.first; n != nil; n = n.insertNext {
			sum += fnvMix(n.hash, n.val.HashCode())
		}
		return fnvMix(h, sum)
	}
	return h
}

// Inhabits reports whether v structurally conforms to t, recursively.
// Everything inhabits the wildcard; null inhabits every reference type.
func (v *Value) Inhabits(t *types.Type) bool {
	if v == nil || t == nil {
		return false
	}
	if t.Kind == types.KindAny {
		return true
	}
	if v.IsNull() {
		return t.Kind.IsRef()
	}
	if v.kind != t.Kind {
		return false
	}
	switch t.Kind {
	case types.KindBool, types.KindEvent, types.KindInt, types.KindMachine, types.KindModel:
		return true
	case types.KindForeign:
		return sameForeignType(v.foreign.ft, t.Foreign)
	case types.KindTuple, types.KindNamedTuple:
		if len(v.tuple) != len(t.Fields) {
			return false
		}
		for i, f := range t.Fields {
			if t.Kind == types.KindNamedTuple && v.typ.Fields[i].Name != f.Name {
				return false
			}
			if !v.tuple[i].Inhabits(f.Type) {
				return false
			}
		}
		return true
	case types.KindSeq:
		for _, elem := range v.seq.vals {
			if !elem.Inhabits(t.Elem) {
				return false
			}
		}
		return true
	case types.KindMap:
		for n := v.hmap.first; n != nil; n = n.insertNext {
			if !n.key.Inhabits(t.Key) || !n.val.Inhabits(t.Val) {
				return false
			}
		}
		return true
	}
	return false
}

// Cast produces a clone of v narrowed to t. This is a checked narrowing,
// not a conversion: v must inhabit t, and no coercion of primitives occurs.
// Casting to a non-inhabited type is a contract violation.
func Cast(v *Value, t *types.Type) *Value {
	if !v.Inhabits(t) {
		got := "nil"
		if v != nil {
			got = v.kind.String()
		}
		fail(errors.TypeMismatch(errors.PhaseCast, []string{"Cast"}, got, t.String()))
	}
	return castClone(v, t)
}

// castClone rebuilds v with t threaded through its type tags. Where t is the
// wildcard the value keeps its own, more specific type.
func castClone(v *Value, t *types.Type) *Value {
	if t.Kind == types.KindAny {
		return v.Clone()
	}
	if v.IsNull() {
		return &Value{typ: t, kind: t.Kind, scalar: int64(NullID)}
	}
	out := &Value{typ: t, kind: t.Kind, scalar: v.scalar}
	switch t.Kind {
	case types.KindForeign:
		out.foreign.ft = v.foreign.ft
		if v.foreign.data != nil {
			out.foreign.data = v.foreign.ft.Clone(v.foreign.data)
		}
	case types.KindTuple, types.KindNamedTuple:
		out.tuple = make([]*Value, len(v.tuple))
		for i, elem := range v.tuple {
			out.tuple[i] = castClone(elem, t.Fields[i].Type)
		}
	case types.KindSeq:
		if len(v.seq.vals) > 0 {
			out.seq.vals = make([]*Value, len(v.seq.vals))
			for i, elem := range v.seq.vals {
				out.seq.vals[i] = castClone(elem, t.Elem)
			}
		}
	case types.KindMap:
		m := &mapValue{buckets: make([]*mapNode, len(v.hmap.buckets))}
		for n := v.hmap.first; n != nil; n = n.insertNext {
			m.adoptAppend(castClone(n.key, t.Key), castClone(n.val, t.Val), n.hash)
		}
		out.hmap = m
	}
	return out
}

func sameForeignType(a, b *types.ForeignType) bool {
	if a == b {
		return a != nil
	}
	return a != nil && b != nil && a.Name == b.Name
}
