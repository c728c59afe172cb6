package main

import (
	"context"
	"errors"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/taskboard/internal/platform/config"
	"github.com/jsamuelsen11/taskboard/internal/platform/telemetry"
)

// providers holds the SDK providers installed at startup. Every field is
// nil when telemetry is disabled.
type providers struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

func (p *providers) shutdown(ctx context.Context) error {
	var errs []error
	if p.tracer != nil {
		if err := p.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flushing traces: %w", err))
		}
	}
	if p.meter != nil {
		if err := p.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flushing metrics: %w", err))
		}
	}
	return errors.Join(errs...)
}

func startTelemetry(ctx context.Context, cfg config.TelemetryConfig) (p *providers, err error) {
	p = &providers{}
	if !cfg.Enabled {
		return p, nil
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, p.shutdown(ctx))
			p = nil
		}
	}()

	if p.tracer, err = telemetry.InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint); err != nil {
		return p, fmt.Errorf("tracer: %w", err)
	}
	if p.meter, err = telemetry.InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint); err != nil {
		return p, fmt.Errorf("meter: %w", err)
	}
	if p.metrics, err = telemetry.NewMetrics(p.meter, cfg.ServiceName); err != nil {
		return p, fmt.Errorf("instruments: %w", err)
	}
	return p, nil
}
