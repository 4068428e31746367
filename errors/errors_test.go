package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseAccess,
				Kind:   KindKindMismatch,
				Path:   []string{"payload", "votes"},
				Got:    "bool",
				Want:   "int",
				Detail: "primitive accessor on wrong kind",
			},
			contains: []string{"[access]", "kind_mismatch", "payload.votes", "bool", "int", "wrong kind"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseMutate,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[mutate]", "out_of_bounds"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindInvalidSpec,
				Detail: "bad declaration",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[parse]", "invalid_spec", "bad declaration", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseParse,
		Kind:  KindInvalidSpec,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseAccess,
		Kind:  KindKindMismatch,
		Path:  []string{"foo"},
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseAccess, Kind: KindKindMismatch}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseMutate, Kind: KindKindMismatch}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseAccess, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseAccess, Kind: KindKindMismatch}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseCast, KindTypeMismatch).
		Path("msg", "payload").
		Got("seq[int]").
		Want("map[int,int]").
		Value(42).
		Cause(cause).
		Detail("cast from %s", "seq").
		Build()

	if err.Phase != PhaseCast {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseCast)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "msg" || err.Path[1] != "payload" {
		t.Errorf("Path = %v, want [msg payload]", err.Path)
	}
	if err.Got != "seq[int]" {
		t.Errorf("Got = %v, want 'seq[int]'", err.Got)
	}
	if err.Want != "map[int,int]" {
		t.Errorf("Want = %v, want 'map[int,int]'", err.Want)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "cast from seq" {
		t.Errorf("Detail = %v, want 'cast from seq'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("KindMismatch", func(t *testing.T) {
		err := KindMismatch(PhaseAccess, []string{"x"}, "event", "machine")
		if err.Kind != KindKindMismatch || err.Got != "event" || err.Want != "machine" {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseMutate, nil, 10, 5)
		if err.Kind != KindOutOfBounds || err.Value != 10 {
			t.Errorf("unexpected error: %v", err)
		}
		if !strings.Contains(err.Error(), "index 10") {
			t.Errorf("message missing index: %v", err)
		}
	})

	t.Run("FieldUnknown", func(t *testing.T) {
		err := FieldUnknown(PhaseAccess, nil, "coordinator")
		if err.Kind != KindFieldUnknown || !strings.Contains(err.Detail, "coordinator") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("KeyMissing", func(t *testing.T) {
		err := KeyMissing(PhaseAccess, nil, "7")
		if err.Kind != KindKeyMissing || !strings.Contains(err.Detail, "7") {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
