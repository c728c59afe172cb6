// Package telemetry sets up OpenTelemetry tracing and metrics for the board.
// Spans and measurements go to stdout during development and to an
// OTLP/HTTP collector in deployment.
//
//	tp, err := telemetry.InitTracer(ctx, "taskboard", telemetry.ExporterOTLP, "http://collector:4318")
//	mp, err := telemetry.InitMeter(ctx, "taskboard", telemetry.ExporterOTLP, "http://collector:4318")
//	metrics, err := telemetry.NewMetrics(mp, "taskboard")
//
// Both providers are registered globally and must be shut down on exit.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted by InitTracer and InitMeter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// target is a resolved exporter destination. host and insecure only apply
// to OTLP.
type target struct {
	otlp     bool
	host     string
	insecure bool
}

func resolveTarget(exporter, endpoint string) (target, error) {
	switch exporter {
	case ExporterStdout:
		return target{}, nil
	case ExporterOTLP:
	default:
		return target{}, fmt.Errorf("unsupported exporter %q", exporter)
	}
	if endpoint == "" {
		return target{}, errors.New("otlp exporter requires an endpoint")
	}

	t := target{otlp: true, host: endpoint, insecure: true}
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		t.host, t.insecure = u.Host, u.Scheme != "https"
	}
	return t, nil
}

// InitTracer registers a global TracerProvider exporting to exporter, along
// with W3C trace-context and baggage propagation.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	t, err := resolveTarget(exporter, endpoint)
	if err != nil {
		return nil, err
	}
	res, err := serviceResource(serviceName)
	if err != nil {
		return nil, err
	}

	var spans sdktrace.SpanExporter
	if t.otlp {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(t.host)}
		if t.insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		spans, err = otlptracehttp.New(ctx, opts...)
	} else {
		spans, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter registers a global MeterProvider exporting periodically to
// exporter.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	t, err := resolveTarget(exporter, endpoint)
	if err != nil {
		return nil, err
	}
	res, err := serviceResource(serviceName)
	if err != nil {
		return nil, err
	}

	var exp sdkmetric.Exporter
	if t.otlp {
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(t.host)}
		if t.insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		exp, err = otlpmetrichttp.New(ctx, opts...)
	} else {
		exp, err = stdoutmetric.New()
	}
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

func serviceResource(serviceName string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	return res, nil
}
