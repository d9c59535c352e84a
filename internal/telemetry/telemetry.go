// Package telemetry exports navigation traces over OTLP/HTTP when an
// endpoint is configured.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/alexisbeaulieu97/atlas/internal/config"
	"github.com/alexisbeaulieu97/atlas/internal/navigation"
)

const (
	tracerName = "github.com/alexisbeaulieu97/atlas/navigation"

	// SpanNavigationChange names the span recorded for every committed change.
	SpanNavigationChange = "navigation.change"
)

// Provider owns the tracer used by navigation observers.
type Provider struct {
	sdk    *sdktrace.TracerProvider
	tracer oteltrace.Tracer
}

// Setup returns an exporting provider when cfg.Endpoint is set and a no-op
// provider otherwise.
func Setup(ctx context.Context, cfg config.TelemetryConfig) (*Provider, error) {
	if cfg.Endpoint == "" {
		return Disabled(), nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "atlas"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return NewProvider(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewProvider wraps an SDK tracer provider.
func NewProvider(tp *sdktrace.TracerProvider) *Provider {
	return &Provider{sdk: tp, tracer: tp.Tracer(tracerName)}
}

// Disabled returns a provider whose spans are dropped.
func Disabled() *Provider {
	return &Provider{tracer: noop.NewTracerProvider().Tracer(tracerName)}
}

// Enabled reports whether spans leave the process.
func (p *Provider) Enabled() bool {
	return p != nil && p.sdk != nil
}

// Tracer returns the navigation tracer.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(tracerName)
	}
	return p.tracer
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}

// NavigationObserver records one span per committed navigation change.
func NavigationObserver(tracer oteltrace.Tracer, scope string) navigation.Observer {
	return func(state navigation.State) error {
		previous, _ := state.Previous()
		_, span := tracer.Start(context.Background(), SpanNavigationChange,
			oteltrace.WithAttributes(
				attribute.String("atlas.scope", scope),
				attribute.String("atlas.active", state.Active.String()),
				attribute.String("atlas.previous", previous.String()),
				attribute.Int("atlas.history_depth", state.Depth()),
			),
		)
		span.End()
		return nil
	}
}
