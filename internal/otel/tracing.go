// Package otel configures OpenTelemetry tracing for the API and the site
// from the standard OTEL_* environment variables.
package otel

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"folio/internal/logger"
)

// ShutdownFunc flushes pending spans and stops the provider.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Settings is the tracing configuration read from the environment.
type Settings struct {
	Disabled    bool
	ServiceName string
	Environment string
	Protocol    string
	Endpoint    string
	Sampler     string
	SamplerArg  string
}

// SettingsFromEnv reads OTEL_* variables; serviceName applies when OTEL_SERVICE_NAME is unset.
func SettingsFromEnv(serviceName string) Settings {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT")
	if endpoint == "" {
		endpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	}
	return Settings{
		Disabled:    os.Getenv("OTEL_SDK_DISABLED") == "true",
		ServiceName: envOr("OTEL_SERVICE_NAME", serviceName),
		Environment: envOr("APP_ENV", "development"),
		Protocol:    envOr("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc"),
		Endpoint:    endpoint,
		Sampler:     envOr("OTEL_TRACES_SAMPLER", "parentbased_traceidratio"),
		SamplerArg:  envOr("OTEL_TRACES_SAMPLER_ARG", "1.0"),
	}
}

// Init installs the W3C propagators and, unless disabled, a batching OTLP
// tracer provider. An exporter that cannot be built leaves propagation
// only; tracing never blocks startup.
func Init(ctx context.Context, serviceName string, log logger.Logger) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	s := SettingsFromEnv(serviceName)
	log = log.With(logger.String("component", "tracing"), logger.String("service", s.ServiceName))
	if s.Disabled {
		log.Info("tracing_configured", logger.Bool("tracing_enabled", false))
		return noopShutdown, nil
	}

	exporter, err := newExporter(ctx, s.Protocol)
	if err != nil {
		log.Error("tracing_init_failed", logger.Error(err))
		return noopShutdown, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(s.ServiceName),
			semconv.DeploymentEnvironment(s.Environment),
		),
		resource.WithFromEnv(),
		resource.WithHost(),
		resource.WithTelemetrySDK(),
	)
	if err != nil {
		_ = exporter.Shutdown(ctx)
		return nil, fmt.Errorf("tracing resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(newSampler(s.Sampler, s.SamplerArg)),
	)
	otel.SetTracerProvider(tp)

	log.Info("tracing_configured",
		logger.Bool("tracing_enabled", true),
		logger.String("otlp_protocol", s.Protocol),
		logger.String("otlp_endpoint", s.Endpoint),
		logger.String("sampler", s.Sampler),
	)
	return tp.Shutdown, nil
}

func newExporter(ctx context.Context, protocol string) (*otlptrace.Exporter, error) {
	switch protocol {
	case "grpc":
		return otlptracegrpc.New(ctx)
	case "http/protobuf", "http":
		return otlptracehttp.New(ctx)
	}
	return nil, fmt.Errorf("unsupported OTLP protocol: %s", protocol)
}

// newSampler maps OTEL_TRACES_SAMPLER names to samplers. An invalid ratio
// means 1.0; unknown names sample everything under a parent decision.
func newSampler(name, arg string) sdktrace.Sampler {
	ratio, err := strconv.ParseFloat(arg, 64)
	if err != nil || ratio < 0 || ratio > 1 {
		ratio = 1
	}

	samplers := map[string]sdktrace.Sampler{
		"always_on":                sdktrace.AlwaysSample(),
		"always_off":               sdktrace.NeverSample(),
		"traceidratio":             sdktrace.TraceIDRatioBased(ratio),
		"parentbased_always_on":    sdktrace.ParentBased(sdktrace.AlwaysSample()),
		"parentbased_always_off":   sdktrace.ParentBased(sdktrace.NeverSample()),
		"parentbased_traceidratio": sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio)),
	}
	if s, ok := samplers[name]; ok {
		return s
	}
	return sdktrace.ParentBased(sdktrace.AlwaysSample())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
