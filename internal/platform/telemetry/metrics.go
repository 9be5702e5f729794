package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrSlug        = attribute.Key("landing.slug")
)

// Values for AttrResult on landing metrics.
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Metrics holds the instruments shared by the server, the preview service,
// and the smoke client.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	LandingPreviewTotal   metric.Int64Counter
	LandingLoadDuration   metric.Float64Histogram
}

// NewMetrics creates every instrument on a meter scoped to serviceName. All
// creation errors are reported together.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	b := &instruments{meter: mp.Meter(serviceName)}

	m := &Metrics{
		ServerRequestDuration: b.histogram("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    b.counter("http.server.request.total", "Total number of incoming HTTP requests", "{request}"),
		ClientRequestDuration: b.histogram("http.client.request.duration", "Duration of outgoing HTTP requests"),
		ClientRequestTotal:    b.counter("http.client.request.total", "Total number of outgoing HTTP requests", "{request}"),
		LandingPreviewTotal:   b.counter("landing.preview.total", "Total number of landing preview loads by slug and result", "{preview}"),
		LandingLoadDuration:   b.histogram("landing.load.duration", "Duration of landing view loads"),
	}
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// instruments collects creation errors so NewMetrics reads as a table.
type instruments struct {
	meter metric.Meter
	errs  []error
}

// histogram creates a float histogram measured in seconds.
func (b *instruments) histogram(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return h
}

func (b *instruments) counter(name, desc, unit string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return c
}
