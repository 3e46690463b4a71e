// Package otel configures OpenTelemetry tracing for the website process.
package otel

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/pleromasprings/website/internal/platform/config"
)

const (
	// EnvEndpoint names the OTLP/HTTP collector URL variable.
	EnvEndpoint = "PLEROMA_OTEL_ENDPOINT"
	// EnvEnabled can force tracing off with "false".
	EnvEnabled = "PLEROMA_OTEL_ENABLED"
)

// Config controls trace export.
type Config struct {
	Endpoint    string  `env:"PLEROMA_OTEL_ENDPOINT"`
	Enabled     bool    `env:"PLEROMA_OTEL_ENABLED" envDefault:"true"`
	Environment string  `env:"PLEROMA_OTEL_ENVIRONMENT"`
	SampleRatio float64 `env:"PLEROMA_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// Exporting reports whether spans leave the process.
func (c Config) Exporting() bool {
	return c.Enabled && strings.TrimSpace(c.Endpoint) != ""
}

// LoadConfig reads tracing settings from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("otel config: %w", err)
	}
	return cfg, nil
}

// Setup loads Config from the environment and installs tracing for service.
func Setup(ctx context.Context, service string) (func(context.Context) error, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return noopShutdown, err
	}
	return SetupWithConfig(ctx, service, cfg)
}

// SetupWithConfig installs the W3C trace context propagator and, when
// exporting, a batching tracer provider. The returned function flushes
// pending spans.
func SetupWithConfig(ctx context.Context, service string, cfg Config) (func(context.Context) error, error) {
	otel.SetTextMapPropagator(propagation.TraceContext{})
	if !cfg.Exporting() {
		return noopShutdown, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(strings.TrimSpace(cfg.Endpoint)))
	if err != nil {
		return noopShutdown, fmt.Errorf("otlp exporter: %w", err)
	}

	attrs := []attribute.KeyValue{semconv.ServiceName(service)}
	if env := strings.TrimSpace(cfg.Environment); env != "" {
		attrs = append(attrs, semconv.DeploymentEnvironment(env))
	}
	res, err := resource.New(ctx, resource.WithAttributes(attrs...))
	if err != nil {
		return noopShutdown, fmt.Errorf("otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sampler(cfg.SampleRatio))),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

func sampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.AlwaysSample()
	case ratio <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.TraceIDRatioBased(ratio)
	}
}

func noopShutdown(context.Context) error { return nil }
