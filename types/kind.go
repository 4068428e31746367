package types

// Kind discriminates type descriptors and runtime values.
type Kind uint8

const (
	KindAny Kind = iota
	KindBool
	KindEvent
	KindInt
	KindMachine
	KindModel
	KindForeign
	KindTuple
	KindNamedTuple
	KindSeq
	KindMap
)

var kindNames = [...]string{
	KindAny:        "any",
	KindBool:       "bool",
	KindEvent:      "event",
	KindInt:        "int",
	KindMachine:    "machine",
	KindModel:      "model",
	KindForeign:    "foreign",
	KindTuple:      "tuple",
	KindNamedTuple: "ntuple",
	KindSeq:        "seq",
	KindMap:        "map",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsPrimitive reports whether k is a scalar kind.
func (k Kind) IsPrimitive() bool {
	return k >= KindBool && k <= KindModel
}

// IsRef reports whether values of k admit the null sentinel.
func (k Kind) IsRef() bool {
	return k == KindEvent || k == KindMachine || k == KindModel
}
