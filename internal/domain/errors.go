package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// Failure classes shared by the backend clients, the effects and the HTTP
// adapter. Wrap them with %w and test with errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// kinds is checked in order, so a chain joining several sentinels reports
// the first one listed here.
var kinds = []struct {
	sentinel error
	kind     string
}{
	{ErrValidation, "validation"},
	{ErrNotFound, "not_found"},
	{ErrConflict, "conflict"},
	{ErrForbidden, "forbidden"},
	{ErrUnavailable, "unavailable"},
}

// ValidationError lists per-field problems keyed by field name. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ErrorKind names the failure class of err as a stable lowercase string
// suitable for Fail payloads and problem responses. Nil yields "" and errors
// outside every class yield "unknown".
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.sentinel) {
			return k.kind
		}
	}
	return "unknown"
}
