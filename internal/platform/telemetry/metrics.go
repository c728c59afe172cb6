package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys shared by spans and metrics.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrAction      = attribute.Key("store.action")
	AttrEffect      = attribute.Key("store.effect")
	AttrFailureKind = attribute.Key("store.failure_kind")
)

// Metrics are the instruments recorded by the HTTP server, the backend
// client and the store.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	StoreActionTotal    metric.Int64Counter
	StoreEffectDuration metric.Float64Histogram
	StoreEffectFailures metric.Int64Counter
}

// NewMetrics creates every instrument on a meter named serviceName. All
// creation errors are reported together.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	b := instruments{meter: mp.Meter(serviceName)}

	m := &Metrics{
		ServerRequestDuration: b.seconds("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    b.count("http.server.request.total", "Incoming HTTP requests", "{request}"),
		ClientRequestDuration: b.seconds("http.client.request.duration", "Duration of backend requests"),
		ClientRequestTotal:    b.count("http.client.request.total", "Backend requests", "{request}"),
		StoreActionTotal:      b.count("store.actions.dispatched", "Actions reduced by the dispatch loop", "{action}"),
		StoreEffectDuration:   b.seconds("store.effect.duration", "Duration of effect runs"),
		StoreEffectFailures:   b.count("store.effect.failures", "Fail actions emitted by effects", "{action}"),
	}
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}
	return m, nil
}

type instruments struct {
	meter metric.Meter
	errs  []error
}

func (b *instruments) count(name, desc, unit string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	b.check(name, err)
	return c
}

func (b *instruments) seconds(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	b.check(name, err)
	return h
}

func (b *instruments) check(name string, err error) {
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("creating %s: %w", name, err))
	}
}
