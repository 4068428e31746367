package types

import (
	"sort"

	"github.com/statelang/machine-runtime/errors"
)

// ForeignType is the identity and behavior of an opaque foreign payload.
// The runtime never inspects foreign data; clone, free, equality, and hash
// are delegated entirely to these callbacks. Callbacks are never invoked on
// a nil payload (the default foreign value).
type ForeignType struct {
	Clone  func(data any) any
	Free   func(data any)
	Equals func(a, b any) bool
	Hash   func(data any) uint32
	Name   string
}

// Registry resolves foreign type names to their registered ForeignType.
// It is passed explicitly to consumers such as the typespec parser; the
// library keeps no global registration state.
type Registry struct {
	byName map[string]*ForeignType
}

// NewRegistry returns an empty foreign-type registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*ForeignType)}
}

// Register adds ft to the registry. The name must be non-empty and unique,
// and all four callbacks must be present.
func (r *Registry) Register(ft *ForeignType) error {
	if ft == nil || ft.Name == "" {
		return errors.New(errors.PhaseRegistry, errors.KindInvalidInput).
			Detail("foreign type must have a name").
			Build()
	}
	if ft.Clone == nil || ft.Free == nil || ft.Equals == nil || ft.Hash == nil {
		return errors.New(errors.PhaseRegistry, errors.KindInvalidInput).
			Path(ft.Name).
			Detail("foreign type must register clone, free, equals, and hash callbacks").
			Build()
	}
	if _, ok := r.byName[ft.Name]; ok {
		return errors.New(errors.PhaseRegistry, errors.KindDuplicate).
			Path(ft.Name).
			Detail("foreign type already registered").
			Build()
	}
	r.byName[ft.Name] = ft
	return nil
}

// Lookup resolves a foreign type by name.
func (r *Registry) Lookup(name string) (*ForeignType, bool) {
	ft, ok := r.byName[name]
	return ft, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
