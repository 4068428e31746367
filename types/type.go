package types

import (
	"strings"
)

// Type describes the shape a value is expected to inhabit.
//
// Which payload fields are populated depends on Kind: Fields for tuples,
// Elem for sequences, Key/Val for maps, Foreign for foreign types.
// Primitive kinds and Any carry no payload.
type Type struct {
	Elem    *Type
	Key     *Type
	Val     *Type
	Foreign *ForeignType
	Fields  []Field
	Kind    Kind
}

// Field is one positional slot of a tuple type. Name is empty for
// positional tuples and non-empty for every field of a named tuple.
type Field struct {
	Type *Type
	Name string
}

var (
	anyType     = &Type{Kind: KindAny}
	boolType    = &Type{Kind: KindBool}
	eventType   = &Type{Kind: KindEvent}
	intType     = &Type{Kind: KindInt}
	machineType = &Type{Kind: KindMachine}
	modelType   = &Type{Kind: KindModel}
)

// Any returns the wildcard type.
func Any() *Type { return anyType }

// Bool returns the boolean type.
func Bool() *Type { return boolType }

// Event returns the event reference type.
func Event() *Type { return eventType }

// Int returns the integer type.
func Int() *Type { return intType }

// Machine returns the machine reference type.
func Machine() *Type { return machineType }

// Model returns the model machine reference type.
func Model() *Type { return modelType }

// Tuple returns a positional tuple type over elems. Arity is len(elems).
func Tuple(elems ...*Type) *Type {
	fields := make([]Field, len(elems))
	for i, e := range elems {
		fields[i] = Field{Type: e}
	}
	return &Type{Kind: KindTuple, Fields: fields}
}

// NamedTuple returns a named tuple type. Field order is significant: the
// declaration order is the positional order.
func NamedTuple(fields ...Field) *Type {
	return &Type{Kind: KindNamedTuple, Fields: fields}
}

// SeqOf returns a sequence type with the given element type.
func SeqOf(elem *Type) *Type {
	return &Type{Kind: KindSeq, Elem: elem}
}

// MapOf returns a map type with the given key and value types.
func MapOf(key, val *Type) *Type {
	return &Type{Kind: KindMap, Key: key, Val: val}
}

// ForeignOf returns a foreign type descriptor for ft.
func ForeignOf(ft *ForeignType) *Type {
	return &Type{Kind: KindForeign, Foreign: ft}
}

// Arity returns the number of tuple fields; zero for non-tuple kinds.
func (t *Type) Arity() int {
	return len(t.Fields)
}

// FieldIndex resolves a named-tuple field name to its positional index.
func (t *Type) FieldIndex(name string) (int, bool) {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return i, true
		}
	}
	return 0, false
}

// String renders a readable type expression, e.g. "(from: machine, votes: seq[int])".
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case KindForeign:
		if t.Foreign != nil {
			return "foreign<" + t.Foreign.Name + ">"
		}
		return "foreign<?>"
	case KindTuple, KindNamedTuple:
		var b strings.Builder
		b.WriteByte('(')
		for i, f := range t.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			if f.Name != "" {
				b.WriteString(f.Name)
				b.WriteString(": ")
			}
			b.WriteString(f.Type.String())
		}
		b.WriteByte(')')
		return b.String()
	case KindSeq:
		return "seq[" + t.Elem.String() + "]"
	case KindMap:
		return "map[" + t.Key.String() + ", " + t.Val.String() + "]"
	default:
		return t.Kind.String()
	}
}
