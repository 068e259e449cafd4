package otel

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.uber.org/zap"
)

// Init initializes the OpenTelemetry tracer provider with an OTLP exporter.
// The returned function flushes and shuts the provider down.
//
// The exporter protocol and endpoint follow the standard OTEL_* environment
// variables. When the SDK is disabled or the exporter cannot be built the
// process degrades to propagation-only instead of failing startup.
func Init(ctx context.Context, log *zap.Logger) (func(context.Context) error, error) {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})

	if os.Getenv("OTEL_SDK_DISABLED") == "true" {
		otel.SetTextMapPropagator(propagator)
		log.Info("otel sdk disabled, tracing off")
		return func(context.Context) error { return nil }, nil
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "clienthub"
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
		),
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	protocol := os.Getenv("OTEL_EXPORTER_OTLP_PROTOCOL")
	if protocol == "" {
		protocol = "grpc" // default OTLP protocol
	}

	var exporter *otlptrace.Exporter
	var expErr error

	switch protocol {
	case "grpc":
		exporter, expErr = otlptracegrpc.New(ctx)
	case "http/protobuf":
		exporter, expErr = otlptracehttp.New(ctx)
	default:
		expErr = fmt.Errorf("unsupported OTLP protocol: %s", protocol)
	}

	if expErr != nil {
		log.Warn("otlp exporter unavailable, tracing degraded to propagation only", zap.Error(expErr))
		otel.SetTextMapPropagator(propagator)
		return func(context.Context) error { return nil }, nil
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
		trace.WithSampler(getSampler()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagator)

	log.Info("otel tracing initialized",
		zap.String("service_name", serviceName),
		zap.String("protocol", protocol))

	return tp.Shutdown, nil
}

// getSampler honors OTEL_TRACES_SAMPLER; parent-based always-on when unset.
func getSampler() trace.Sampler {
	switch os.Getenv("OTEL_TRACES_SAMPLER") {
	case "always_off":
		return trace.NeverSample()
	case "always_on":
		return trace.AlwaysSample()
	case "traceidratio":
		// Ratio comes from OTEL_TRACES_SAMPLER_ARG via the SDK default when
		// parsable; fall back to always sampling otherwise.
		if arg := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); arg != "" {
			var ratio float64
			if _, err := fmt.Sscanf(arg, "%f", &ratio); err == nil {
				return trace.ParentBased(trace.TraceIDRatioBased(ratio))
			}
		}
		return trace.ParentBased(trace.AlwaysSample())
	default:
		return trace.ParentBased(trace.AlwaysSample())
	}
}
