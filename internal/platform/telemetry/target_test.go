package telemetry

import "testing"

func TestResolveTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		exporter, endpoint string
		want               target
		wantErr            bool
	}{
		{exporter: "stdout", want: target{}},
		{exporter: "otlp", endpoint: "http://collector:4318", want: target{otlp: true, host: "collector:4318", insecure: true}},
		{exporter: "otlp", endpoint: "https://otel.example.com", want: target{otlp: true, host: "otel.example.com"}},
		{exporter: "otlp", endpoint: "collector:4318", want: target{otlp: true, host: "collector:4318", insecure: true}},
		{exporter: "otlp", wantErr: true},
		{exporter: "jaeger", endpoint: "http://x", wantErr: true},
		{exporter: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.exporter+" "+tt.endpoint, func(t *testing.T) {
			t.Parallel()

			got, err := resolveTarget(tt.exporter, tt.endpoint)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("target = %+v, want %+v", got, tt.want)
			}
		})
	}
}
