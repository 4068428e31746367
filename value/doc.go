// Package value implements the dynamic value runtime: the uniform,
// type-tagged representation of every datum a generated state machine
// manipulates.
//
// # Representation
//
// A Value is a discriminated union over the kinds
//
//	bool  event  int  machine  model  foreign  tuple  ntuple  seq  map
//
// plus the distinguished null sentinel, usable wherever an event, machine,
// or model reference is expected. Each Value carries the type descriptor it
// was produced under; the tag of a value never diverges from that type.
// Slots typed as the wildcard "any" may hold a value of any concrete kind.
//
// # Containers
//
//	Tuple     fixed-arity ordered slots, optionally field-named
//	Seq       contiguous growable array, amortized doubling
//	Map       chained hash buckets plus an insertion-order linked list,
//	          so enumeration is deterministic and history-stable
//
// # Ownership
//
// Every value exclusively owns its children. Mutators clone their inputs and
// free what they replace; accessors return clones; Free releases a value
// deeply, exactly once. The MapUpdateMove variant transfers ownership
// instead of cloning for controlled bulk construction.
//
// # Contract violations
//
// A kind-mismatched accessor, an out-of-range index, an unknown tuple field,
// MapGet on an absent key, or a cast to a non-inhabited type indicates a
// broken invariant between generated code and this library. These panic with
// a structured *errors.Error rather than returning an error: the value graph
// can no longer be trusted. Designed outcomes (MapExists false, MapRemove of
// an absent key, empty containers) are ordinary results.
//
// The package is purely single-threaded: values are never shared between
// owners, so there is no internal locking.
package value
