package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which class of operation the error occurred in
type Phase string

const (
	PhaseConstruct Phase = "construct" // value construction and default synthesis
	PhaseAccess    Phase = "access"    // typed getters
	PhaseMutate    Phase = "mutate"    // container mutation
	PhaseCast      Phase = "cast"      // checked narrowing
	PhaseFree      Phase = "free"      // value release
	PhaseParse     Phase = "parse"     // typespec parsing
	PhaseRegistry  Phase = "registry"  // foreign-type registration
)

// Kind categorizes the error
type Kind string

const (
	KindKindMismatch Kind = "kind_mismatch"
	KindOutOfBounds  Kind = "out_of_bounds"
	KindFieldUnknown Kind = "field_unknown"
	KindKeyMissing   Kind = "key_missing"
	KindTypeMismatch Kind = "type_mismatch"
	KindDoubleFree   Kind = "double_free"
	KindInvalidSpec  Kind = "invalid_spec"
	KindDuplicate    Kind = "duplicate"
	KindNotFound     Kind = "not_found"
	KindInvalidInput Kind = "invalid_input"
)

// Error is the structured error type used throughout the runtime
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Got    string
	Want   string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Got != "" || e.Want != "" {
		b.WriteString(": ")
		if e.Got != "" && e.Want != "" {
			b.WriteString("got ")
			b.WriteString(e.Got)
			b.WriteString(", want ")
			b.WriteString(e.Want)
		} else if e.Got != "" {
			b.WriteString("got ")
			b.WriteString(e.Got)
		} else {
			b.WriteString("want ")
			b.WriteString(e.Want)
		}
	}

	if e.Detail != "" {
		if e.Got != "" || e.Want != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the access path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Got sets the value kind that was seen
func (b *Builder) Got(k string) *Builder {
	b.err.Got = k
	return b
}

// Want sets the type or kind that was expected
func (b *Builder) Want(t string) *Builder {
	b.err.Want = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// KindMismatch creates a kind mismatch error
func KindMismatch(phase Phase, path []string, got, want string) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindKindMismatch,
		Path:  path,
		Got:   got,
		Want:  want,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// FieldUnknown creates an unknown field error
func FieldUnknown(phase Phase, path []string, fieldName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldUnknown,
		Path:   path,
		Detail: fmt.Sprintf("unknown field %q", fieldName),
	}
}

// KeyMissing creates an absent map key error
func KeyMissing(phase Phase, path []string, key string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindKeyMissing,
		Path:   path,
		Detail: fmt.Sprintf("key %s not present in map", key),
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, got, want string) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindTypeMismatch,
		Path:  path,
		Got:   got,
		Want:  want,
	}
}

// InvalidSpec creates an invalid typespec error
func InvalidSpec(path []string, detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidSpec,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
