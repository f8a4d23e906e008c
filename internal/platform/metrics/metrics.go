package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"itemservice/internal/platform/validation"
)

const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"

	ScopeField  = "field"
	ScopeObject = "object"
)

type Provider struct {
	RequestsTotal    metric.Int64Counter
	RequestDuration  metric.Float64Histogram
	RequestsInFlight metric.Int64UpDownCounter

	ValidationRuns       metric.Int64Counter
	ValidationViolations metric.Int64Counter
	UnresolvedMessages   metric.Int64Counter

	registry *prometheus.Registry
}

func NewProvider() (*Provider, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter("itemservice")

	p := &Provider{registry: registry}

	if p.RequestsTotal, err = meter.Int64Counter(
		"http_requests",
		metric.WithDescription("Total number of HTTP requests"),
	); err != nil {
		return nil, err
	}

	if p.RequestDuration, err = meter.Float64Histogram(
		"http_request_duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	); err != nil {
		return nil, err
	}

	if p.RequestsInFlight, err = meter.Int64UpDownCounter(
		"http_requests_in_flight",
		metric.WithDescription("Number of HTTP requests currently in flight"),
	); err != nil {
		return nil, err
	}

	if p.ValidationRuns, err = meter.Int64Counter(
		"validation_runs",
		metric.WithDescription("Validation runs by object and outcome"),
	); err != nil {
		return nil, err
	}

	if p.ValidationViolations, err = meter.Int64Counter(
		"validation_violations",
		metric.WithDescription("Recorded violations by object, code and scope"),
	); err != nil {
		return nil, err
	}

	if p.UnresolvedMessages, err = meter.Int64Counter(
		"validation_unresolved_messages",
		metric.WithDescription("Violations rendered without a catalog entry"),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RecordValidation counts one run and each violation it produced.
func (p *Provider) RecordValidation(ctx context.Context, violations *validation.Violations) {
	object := attribute.String("object", violations.ObjectName())

	outcome := OutcomeValid
	if violations.HasViolations() {
		outcome = OutcomeInvalid
	}
	p.ValidationRuns.Add(ctx, 1, metric.WithAttributes(object, attribute.String("outcome", outcome)))

	for _, v := range violations.FieldViolations() {
		p.ValidationViolations.Add(ctx, 1, metric.WithAttributes(
			object, attribute.String("code", v.ErrorCode), attribute.String("scope", ScopeField)))
	}
	for _, v := range violations.ObjectViolations() {
		p.ValidationViolations.Add(ctx, 1, metric.WithAttributes(
			object, attribute.String("code", v.ErrorCode), attribute.String("scope", ScopeObject)))
	}
}

func (p *Provider) RecordUnresolved(ctx context.Context, code string) {
	p.UnresolvedMessages.Add(ctx, 1, metric.WithAttributes(attribute.String("code", code)))
}

func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
