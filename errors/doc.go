// Package errors provides structured error types for the machine-runtime library.
//
// Errors are categorized by Phase (which operation class failed) and Kind
// (error category). The Error type carries context for debugging generated
// machine code: the access path into the value, the value kind seen, and the
// type that was expected.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAccess, errors.KindKindMismatch).
//		Path("payload", "votes").
//		Got("bool").
//		Want("int").
//		Detail("primitive accessor on wrong kind").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.KindMismatch(errors.PhaseAccess, path, "bool", "int")
//	err := errors.OutOfBounds(errors.PhaseMutate, path, 10, 5)
//
// All errors implement the standard error interface and support errors.Is/As.
//
// The value package panics with *Error on contract violations; the typespec
// package returns *Error for recoverable parse failures.
package errors
