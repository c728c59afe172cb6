package store

import (
	"encoding/json"
	"errors"

	"github.com/jsamuelsen11/taskboard/internal/domain"
)

// Failure is the structured form of the error string carried by FAIL
// actions.
type Failure struct {
	Kind    string            `json:"kind"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// FailurePayload serializes err into the JSON string carried by FAIL
// actions. The kind is derived from the domain sentinel err wraps.
func FailurePayload(err error) string {
	if err == nil {
		return ""
	}
	f := Failure{Kind: domain.ErrorKind(err), Message: err.Error()}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		f.Fields = verr.Fields
	}
	b, mErr := json.Marshal(f)
	if mErr != nil {
		return err.Error()
	}
	return string(b)
}

// ParseFailure decodes a FAIL payload. Payloads that are not JSON (for
// example from an older producer) come back as an "unknown" failure whose
// message is the raw payload.
func ParseFailure(payload string) Failure {
	var f Failure
	if err := json.Unmarshal([]byte(payload), &f); err != nil || f.Kind == "" {
		return Failure{Kind: "unknown", Message: payload}
	}
	return f
}
