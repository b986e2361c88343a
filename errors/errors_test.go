package errors

import (
	"errors"
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
				Kind:   KindOutOfBounds,
				Detail: "index 7 out of bounds (length 3)",
			},
			contains: []string{"[access]", "out_of_bounds", "index 7", "length 3"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseInit,
				Kind:  KindAlreadyInitialized,
			},
			contains: []string{"[init]", "already_initialized"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseAlloc,
				Kind:   KindAllocation,
				Detail: "failed to allocate 1024 elements",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[alloc]", "allocation", "1024", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsSubstring(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseRegistry,
		Kind:  KindClosed,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	// Test with errors.Unwrap
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseAccess,
		Kind:   KindOutOfBounds,
		Detail: "index 1 out of bounds (length 0)",
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseAccess, Kind: KindOutOfBounds}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseClone, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseAccess, Kind: KindNotInitialized}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseAccess, Kind: KindOutOfBounds}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseRegistry, KindNotFound).
		Value(uint32(42)).
		Cause(cause).
		Detail("handle %d revoked by %s", 42, "close").
		Build()

	if err.Phase != PhaseRegistry {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseRegistry)
	}
	if err.Kind != KindNotFound {
		t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
	}
	if err.Value != uint32(42) {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "handle 42 revoked by close" {
		t.Errorf("Detail = %v, want 'handle 42 revoked by close'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseAccess, 10, 5)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != 10 {
			t.Errorf("Value = %v, want 10", err.Value)
		}
		if !containsSubstring(err.Detail, "10") || !containsSubstring(err.Detail, "5") {
			t.Errorf("Detail = %v, should contain index and length", err.Detail)
		}
	})

	t.Run("NotInitialized", func(t *testing.T) {
		err := NotInitialized("shared array")
		if err.Kind != KindNotInitialized {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotInitialized)
		}
		if !containsSubstring(err.Detail, "shared array") {
			t.Errorf("Detail = %v, should name the subject", err.Detail)
		}
	})

	t.Run("AlreadyInitialized", func(t *testing.T) {
		err := AlreadyInitialized("shared array")
		if err.Kind != KindAlreadyInitialized {
			t.Errorf("Kind = %v, want %v", err.Kind, KindAlreadyInitialized)
		}
		if err.Phase != PhaseInit {
			t.Errorf("Phase = %v, want %v", err.Phase, PhaseInit)
		}
	})

	t.Run("AllocationFailed", func(t *testing.T) {
		err := AllocationFailed(1024, errors.New("oom"))
		if err.Kind != KindAllocation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindAllocation)
		}
		if !containsSubstring(err.Detail, "1024") {
			t.Errorf("Detail = %v, should contain size", err.Detail)
		}
	})

	t.Run("Closed", func(t *testing.T) {
		err := Closed("registry")
		if err.Kind != KindClosed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindClosed)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound("array handle", 9)
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if err.Value != uint32(9) {
			t.Errorf("Value = %v, want 9", err.Value)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseInit, "negative length -3")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("inner")
		err := Wrap(PhaseRegistry, KindClosed, cause, "track rejected")
		if !errors.Is(errors.Unwrap(err), cause) {
			t.Error("wrapped cause not reachable via Unwrap")
		}
		if !containsSubstring(err.Error(), "inner") {
			t.Errorf("Error() = %v, should contain cause", err.Error())
		}
	})
}

func containsSubstring(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return len(substr) == 0
}
