package telemetry_test

import (
	"context"
	"slices"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/taskboard/internal/platform/telemetry"
)

// Init* replace the global providers, so these tests do not run in parallel.

func TestInitTracer(t *testing.T) {
	tests := []struct {
		name, exporter, endpoint string
		wantErr                  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unknown exporter", exporter: "zipkin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp, err := telemetry.InitTracer(context.Background(), "taskboard-test", tt.exporter, tt.endpoint)
			if tt.wantErr {
				if err == nil {
					t.Fatal("InitTracer succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("InitTracer: %v", err)
			}
			// No collector runs in tests; the OTLP flush may fail.
			t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

			fields := otel.GetTextMapPropagator().Fields()
			for _, want := range []string{"traceparent", "baggage"} {
				if !slices.Contains(fields, want) {
					t.Errorf("propagator fields = %v, want %q", fields, want)
				}
			}
		})
	}
}

func TestInitMeter(t *testing.T) {
	tests := []struct {
		name, exporter, endpoint string
		wantErr                  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "https://collector.example.com"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unknown exporter", exporter: "prometheus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mp, err := telemetry.InitMeter(context.Background(), "taskboard-test", tt.exporter, tt.endpoint)
			if (err != nil) != tt.wantErr {
				t.Fatalf("InitMeter error = %v, wantErr %v", err, tt.wantErr)
			}
			if mp != nil {
				t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
			}
		})
	}
}

func TestNewMetrics_RecordsUnderExpectedNames(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := telemetry.NewMetrics(mp, "taskboard-test")
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	ctx := context.Background()
	m.ServerRequestDuration.Record(ctx, 0.01)
	m.ServerRequestTotal.Add(ctx, 1)
	m.ClientRequestDuration.Record(ctx, 0.02)
	m.ClientRequestTotal.Add(ctx, 1)
	m.StoreActionTotal.Add(ctx, 1)
	m.StoreEffectDuration.Record(ctx, 0.03)
	m.StoreEffectFailures.Add(ctx, 1)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	var names []string
	for _, sm := range rm.ScopeMetrics {
		if sm.Scope.Name != "taskboard-test" {
			t.Errorf("scope = %q, want taskboard-test", sm.Scope.Name)
		}
		for _, md := range sm.Metrics {
			names = append(names, md.Name)
		}
	}

	for _, want := range []string{
		"http.server.request.duration",
		"http.server.request.total",
		"http.client.request.duration",
		"http.client.request.total",
		"store.actions.dispatched",
		"store.effect.duration",
		"store.effect.failures",
	} {
		if !slices.Contains(names, want) {
			t.Errorf("collected %v, missing %q", names, want)
		}
	}
}

func TestNewMetrics_NoopProvider(t *testing.T) {
	t.Parallel()

	m, err := telemetry.NewMetrics(noop.NewMeterProvider(), "taskboard-test")
	if err != nil {
		t.Fatalf("NewMetrics(noop): %v", err)
	}
	if m.StoreActionTotal == nil || m.StoreEffectFailures == nil {
		t.Errorf("instruments missing: %+v", m)
	}
}
