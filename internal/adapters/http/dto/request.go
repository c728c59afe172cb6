package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/jsamuelsen11/taskboard/internal/domain"
)

const msgRequired = "is required"

// DispatchRequest is the JSON body of POST /api/v1/actions: an intent type
// and its payload, decoded later by the action registry.
type DispatchRequest struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Validate checks that the type is present and the payload, when given, is
// a JSON object. Returns a *domain.ValidationError if any checks fail.
func (r *DispatchRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Type) == "" {
		fields["type"] = msgRequired
	}
	if p := bytes.TrimSpace(r.Payload); len(p) > 0 && !bytes.Equal(p, []byte("null")) && p[0] != '{' {
		fields["payload"] = "must be a JSON object"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
