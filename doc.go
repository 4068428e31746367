// Package machineruntime provides the dynamic value runtime for a compiled
// state-machine modeling language.
//
// Programs in the language are state machines exchanging typed messages.
// Every runtime datum a machine touches (booleans, integers, event and
// machine references, foreign payloads, tuples, sequences, maps) flows
// through one uniform, type-tagged value representation with explicit
// single-owner lifecycle semantics.
//
// # Architecture Overview
//
// The library is organized into small packages with distinct responsibilities:
//
//	machineruntime/      Root package with this overview
//	├── types/           Type descriptors: kinds, shapes, foreign types
//	├── value/           The value runtime: containers, clone/free, equality
//	├── typespec/        YAML syntax for type-descriptor definitions
//	├── errors/          Structured error types for debugging
//	└── cmd/pview/       CLI inspector for typespec files and default values
//
// # Quick Start
//
// Build a map value and enumerate it:
//
//	t := types.MapOf(types.Int(), types.Bool())
//	m := value.MkDefault(t)
//	defer m.Free()
//
//	k := value.MkInt(7)
//	v := value.MkBool(true)
//	m.MapUpdate(k, v)
//	k.Free()
//	v.Free()
//
//	keys := m.MapKeys() // fresh sequence, insertion order
//	defer keys.Free()
//
// # Ownership Model
//
// Every value exclusively owns its nested values. Container mutators clone
// their inputs; accessors return clones; Free releases a value and everything
// it owns, exactly once. No value is ever reachable from two owners, which is
// what lets a concurrent machine engine run on top of this library without
// locking message payloads.
//
// # Error Model
//
// Contract violations between generated machine code and this library
// (kind-mismatched accessors, out-of-range indexes, Get on an absent map key)
// panic with a structured *errors.Error. Designed outcomes, such as an
// absent key on Exists or removing a missing key, are ordinary results.
package machineruntime
