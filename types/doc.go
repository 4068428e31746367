// Package types defines the type descriptors consumed by the value runtime.
//
// A Type describes the expected shape of a value: a primitive kind, the
// arity and (optionally named) field types of a tuple, the element type of a
// sequence, the key and value types of a map, the identity of a foreign type,
// or the wildcard Any. Type descriptors are produced by the compiler
// front-end; this library only reads them.
//
// Types are immutable once constructed and may be freely shared between
// values. The wildcard Any may appear as an inner type but values themselves
// always carry a concrete kind.
//
// Foreign types pair a stable name with clone/free/equals/hash callbacks over
// an opaque payload. Callbacks are registered in an explicit Registry that is
// passed to whoever needs to resolve foreign type names; there is no global
// registration state.
package types
