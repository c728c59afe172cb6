package dto_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard/internal/domain"
)

func TestDispatchRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        dto.DispatchRequest
		wantFields []string
	}{
		{
			name: "type with object payload",
			req:  dto.DispatchRequest{Type: "[Project] Add", Payload: json.RawMessage(`{"Project":{"Name":"X"}}`)},
		},
		{
			name: "type without payload",
			req:  dto.DispatchRequest{Type: "[Auth] Logout"},
		},
		{
			name: "null payload",
			req:  dto.DispatchRequest{Type: "[Project] Load", Payload: json.RawMessage(`null`)},
		},
		{
			name:       "missing type",
			req:        dto.DispatchRequest{Type: "  "},
			wantFields: []string{"type"},
		},
		{
			name:       "array payload",
			req:        dto.DispatchRequest{Type: "[Project] Load", Payload: json.RawMessage(` [1]`)},
			wantFields: []string{"payload"},
		},
		{
			name:       "everything wrong",
			req:        dto.DispatchRequest{Payload: json.RawMessage(`"x"`)},
			wantFields: []string{"type", "payload"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *domain.ValidationError", err)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Errorf("fields = %v, want keys %v", verr.Fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("missing field %q in %v", f, verr.Fields)
				}
			}
		})
	}
}

func TestDispatchRequest_DecodesRawPayload(t *testing.T) {
	t.Parallel()

	var req dto.DispatchRequest
	body := `{"type":"[Task] Move","payload":{"TaskID":"t1","TaskListID":"L2"}}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if req.Type != "[Task] Move" {
		t.Errorf("Type = %q", req.Type)
	}
	if string(req.Payload) != `{"TaskID":"t1","TaskListID":"L2"}` {
		t.Errorf("Payload = %s", req.Payload)
	}
}
