// Package telemetry sets up OpenTelemetry tracing and metrics export over OTLP.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/jsamuelsen/advisor-dashboard/internal/platform/config"
)

const shutdownTimeout = 5 * time.Second

// Config holds telemetry configuration.
type Config struct {
	Enabled      bool
	Endpoint     string
	ServiceName  string
	Version      string
	Environment  string
	SamplingRate float64
}

// ConfigFrom builds a telemetry Config from the application config. The
// service name falls back to the application name.
func ConfigFrom(cfg *config.Config) *Config {
	name := cfg.Telemetry.ServiceName
	if name == "" {
		name = cfg.App.Name
	}

	return &Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  name,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	}
}

// Provider flushes the installed SDK providers on shutdown. The zero value,
// returned for a disabled config, does nothing.
type Provider struct {
	shutdowns []func(context.Context) error
}

// Enabled reports whether anything is exported.
func (p *Provider) Enabled() bool {
	return len(p.shutdowns) > 0
}

// New installs global tracer and meter providers exporting over OTLP gRPC to
// cfg.Endpoint, plus the W3C trace context and baggage propagators. When
// cfg is disabled the otel globals stay noop and otelgin records nothing.
func New(ctx context.Context, cfg *Config) (*Provider, error) {
	if !cfg.Enabled {
		return &Provider{}, nil
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.Version),
		semconv.DeploymentEnvironment(cfg.Environment),
	))
	if err != nil {
		return nil, fmt.Errorf("telemetry resource: %w", err)
	}

	p := &Provider{}

	// WithEndpointURL picks plaintext for http:// and TLS for https://.
	spans, err := otlptracegrpc.New(ctx, otlptracegrpc.WithEndpointURL(cfg.Endpoint))
	if err != nil {
		return nil, fmt.Errorf("telemetry trace exporter: %w", err)
	}

	tp := trace.NewTracerProvider(
		trace.WithResource(res),
		trace.WithBatcher(spans),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(cfg.SamplingRate))),
	)
	p.shutdowns = append(p.shutdowns, tp.Shutdown)

	points, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithEndpointURL(cfg.Endpoint))
	if err != nil {
		return nil, errors.Join(fmt.Errorf("telemetry metric exporter: %w", err), p.Shutdown(ctx))
	}

	mp := metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(metric.NewPeriodicReader(points)),
	)
	p.shutdowns = append(p.shutdowns, mp.Shutdown)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return p, nil
}

// Shutdown flushes pending spans and metric points, newest provider first,
// giving up after shutdownTimeout.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var errs []error
	for i := len(p.shutdowns) - 1; i >= 0; i-- {
		errs = append(errs, p.shutdowns[i](ctx))
	}

	return errors.Join(errs...)
}
