package value

import (
	"math"
	"strconv"
	"strings"

	"github.com/statelang/machine-runtime/errors"
	"github.com/statelang/machine-runtime/types"
)

// NullID is the reference id of the null sentinel. A null value is usable
// wherever an event, machine, or model reference is expected.
const NullID uint32 = math.MaxUint32 - 1

// kindFreed marks a value released by Free. Any later use trips the kind
// checks; a second Free is reported as a double free.
const kindFreed types.Kind = 0xFE

// Value is the uniform runtime representation of a language-level datum.
// The zero Value is not usable; values come from the Mk* constructors or
// from MkDefault and are destroyed with Free.
type Value struct {
	typ     *types.Type
	tuple   []*Value
	seq     seqValue
	hmap    *mapValue
	foreign foreignPayload
	scalar  int64
	kind    types.Kind
}

// foreignPayload pairs opaque data with the foreign type that owns its
// clone/free/equals/hash behavior. data == nil is the default foreign value
// and never reaches the callbacks.
type foreignPayload struct {
	ft   *types.ForeignType
	data any
}

// MkBool makes a boolean value.
func MkBool(b bool) *Value {
	v := &Value{typ: types.Bool(), kind: types.KindBool}
	if b {
		v.scalar = 1
	}
	return v
}

// MkInt makes an integer value.
func MkInt(n int64) *Value {
	return &Value{typ: types.Int(), kind: types.KindInt, scalar: n}
}

// MkEvent makes an event reference value.
func MkEvent(id uint32) *Value {
	return &Value{typ: types.Event(), kind: types.KindEvent, scalar: int64(id)}
}

// MkMachine makes a machine reference value.
func MkMachine(id uint32) *Value {
	return &Value{typ: types.Machine(), kind: types.KindMachine, scalar: int64(id)}
}

// MkModel makes a model machine reference value.
func MkModel(id uint32) *Value {
	return &Value{typ: types.Model(), kind: types.KindModel, scalar: int64(id)}
}

// MkNull makes the null sentinel.
func MkNull() *Value {
	return &Value{typ: types.Event(), kind: types.KindEvent, scalar: int64(NullID)}
}

// MkForeign makes a foreign value. A non-nil payload is cloned through the
// foreign type's Clone callback; the caller keeps ownership of data.
func MkForeign(ft *types.ForeignType, data any) *Value {
	if ft == nil {
		fail(errors.New(errors.PhaseConstruct, errors.KindInvalidInput).
			Detail("foreign value requires a foreign type").
			Build())
	}
	v := &Value{typ: types.ForeignOf(ft), kind: types.KindForeign}
	v.foreign.ft = ft
	if data != nil {
		v.foreign.data = ft.Clone(data)
	}
	return v
}

// Kind returns the value's concrete kind tag.
func (v *Value) Kind() types.Kind {
	return v.kind
}

// Type returns the type descriptor the value was produced under.
func (v *Value) Type() *types.Type {
	return v.typ
}

// IsNull reports whether v is the null sentinel.
func (v *Value) IsNull() bool {
	return v != nil && v.kind.IsRef() && uint32(v.scalar) == NullID
}

// Bool gets the value of a boolean.
func (v *Value) Bool() bool {
	v.mustKind(types.KindBool, "Bool")
	return v.scalar != 0
}

// SetBool sets the value of a boolean in place.
func (v *Value) SetBool(b bool) {
	v.mustKind(types.KindBool, "SetBool")
	if b {
		v.scalar = 1
	} else {
		v.scalar = 0
	}
}

// Int gets the value of an integer.
func (v *Value) Int() int64 {
	v.mustKind(types.KindInt, "Int")
	return v.scalar
}

// SetInt sets the value of an integer in place.
func (v *Value) SetInt(n int64) {
	v.mustKind(types.KindInt, "SetInt")
	v.scalar = n
}

// Event gets an event id.
func (v *Value) Event() uint32 {
	v.mustKind(types.KindEvent, "Event")
	return uint32(v.scalar)
}

// SetEvent sets an event id in place.
func (v *Value) SetEvent(id uint32) {
	v.mustKind(types.KindEvent, "SetEvent")
	v.scalar = int64(id)
}

// Machine gets a machine id.
func (v *Value) Machine() uint32 {
	v.mustKind(types.KindMachine, "Machine")
	return uint32(v.scalar)
}

// SetMachine sets a machine id in place.
func (v *Value) SetMachine(id uint32) {
	v.mustKind(types.KindMachine, "SetMachine")
	v.scalar = int64(id)
}

// Model gets a model machine id.
func (v *Value) Model() uint32 {
	v.mustKind(types.KindModel, "Model")
	return uint32(v.scalar)
}

// SetModel sets a model machine id in place.
func (v *Value) SetModel(id uint32) {
	v.mustKind(types.KindModel, "SetModel")
	v.scalar = int64(id)
}

// ForeignData returns the opaque foreign payload without transferring
// ownership. Callers must treat it as read-only.
func (v *Value) ForeignData() any {
	v.mustKind(types.KindForeign, "ForeignData")
	return v.foreign.data
}

// String renders the value for debugging and inspection. Maps render in
// insertion order.
func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	if v.IsNull() {
		return "null"
	}
	switch v.kind {
	case types.KindBool:
		if v.scalar != 0 {
			return "true"
		}
		return "false"
	case types.KindInt:
		return strconv.FormatInt(v.scalar, 10)
	case types.KindEvent, types.KindMachine, types.KindModel:
		return v.kind.String() + "(" + strconv.FormatUint(uint64(uint32(v.scalar)), 10) + ")"
	case types.KindForeign:
		if v.foreign.data == nil {
			return "foreign<" + v.foreign.ft.Name + ">(nil)"
		}
		return "foreign<" + v.foreign.ft.Name + ">"
	case types.KindTuple, types.KindNamedTuple:
		var b strings.Builder
		b.WriteByte('(')
		for i, elem := range v.tuple {
			if i > 0 {
				b.WriteString(", ")
			}
			if v.kind == types.KindNamedTuple && i < len(v.typ.Fields) {
				b.WriteString(v.typ.Fields[i].Name)
				b.WriteString(": ")
			}
			b.WriteString(elem.String())
		}
		b.WriteByte(')')
		return b.String()
	case types.KindSeq:
		var b strings.Builder
		b.WriteByte('[')
		for i, elem := range v.seq.vals {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(elem.String())
		}
		b.WriteByte(']')
		return b.String()
	case types.KindMap:
		var b strings.Builder
		b.WriteByte('{')
		i := 0
		for n := v.hmap.first; n != nil; n = n.insertNext {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(n.key.String())
			b.WriteString(": ")
			b.WriteString(n.val.String())
			i++
		}
		b.WriteByte('}')
		return b.String()
	case kindFreed:
		return "<freed>"
	default:
		return "<" + v.kind.String() + ">"
	}
}
