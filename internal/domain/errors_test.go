package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{"no fields", nil, "validation error"},
		{"one field", map[string]string{"name": MsgRequired}, "validation error: name: is required"},
		{
			"fields sorted",
			map[string]string{"name": MsgRequired, "email": "is malformed"},
			"validation error: email: is malformed; name: is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := (&ValidationError{Fields: tt.fields}).Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_SurvivesWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("adding project: %w", &ValidationError{Fields: map[string]string{"name": MsgRequired}})

	if !errors.Is(err, ErrValidation) {
		t.Error("wrapped ValidationError does not match ErrValidation")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatal("errors.As did not find *ValidationError")
	}
	if got := verr.Fields["name"]; got != MsgRequired {
		t.Errorf("Fields[name] = %q, want %q", got, MsgRequired)
	}
}

func TestErrorKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"not found", fmt.Errorf("project p1: %w", ErrNotFound), "not_found"},
		{"validation sentinel", ErrValidation, "validation"},
		{"validation fields", &ValidationError{Fields: map[string]string{"a": "b"}}, "validation"},
		{"conflict", ErrConflict, "conflict"},
		{"forbidden", ErrForbidden, "forbidden"},
		{"unavailable", fmt.Errorf("HTTP 503: %w", ErrUnavailable), "unavailable"},
		{"joined reports first class", errors.Join(ErrUnavailable, ErrNotFound), "not_found"},
		{"unclassified", errors.New("boom"), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ErrorKind(tt.err); got != tt.want {
				t.Errorf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
