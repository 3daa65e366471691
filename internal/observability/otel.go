// Package observability wires OpenTelemetry traces and logs and builds the
// zap logger that feeds both the console and the OTLP log pipeline.
package observability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultTracesPath = "/v1/traces"
	defaultLogsPath   = "/v1/logs"
)

// Settings describes the OTLP/HTTP collector. An empty Endpoint disables export.
type Settings struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	AuthHeader     string
	Insecure       bool
}

func (s Settings) Enabled() bool {
	return s.Endpoint != ""
}

// ShutdownFunc flushes and stops a provider.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

func (s Settings) resource() (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(s.ServiceName),
			semconv.ServiceVersion(s.ServiceVersion),
		),
	)
}

func (s Settings) headers() map[string]string {
	if s.AuthHeader == "" {
		return nil
	}
	return map[string]string{"Authorization": s.AuthHeader}
}

// SetupTracingSDK installs the global tracer provider and the W3C propagators.
// Without an endpoint the global no-op provider is returned.
func SetupTracingSDK(ctx context.Context, s Settings) (trace.TracerProvider, ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !s.Enabled() {
		return otel.GetTracerProvider(), noopShutdown, nil
	}

	res, err := s.resource()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create resource: %w", err)
	}

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(s.Endpoint),
		otlptracehttp.WithURLPath(defaultTracesPath),
		otlptracehttp.WithHeaders(s.headers()),
	}
	if s.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to setup OTLP trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithMaxQueueSize(2048),
			sdktrace.WithBatchTimeout(5*time.Second),
		),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp, tp.Shutdown, nil
}

// SetupLoggingSDK installs the global logger provider used by the otelzap bridge.
func SetupLoggingSDK(ctx context.Context, s Settings) (ShutdownFunc, error) {
	if !s.Enabled() {
		return noopShutdown, nil
	}

	res, err := s.resource()
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	opts := []otlploghttp.Option{
		otlploghttp.WithEndpoint(s.Endpoint),
		otlploghttp.WithURLPath(defaultLogsPath),
		otlploghttp.WithHeaders(s.headers()),
	}
	if s.Insecure {
		opts = append(opts, otlploghttp.WithInsecure())
	}

	exporter, err := otlploghttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to setup OTLP log exporter: %w", err)
	}

	lp := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter,
			sdklog.WithExportTimeout(30*time.Second),
			sdklog.WithMaxQueueSize(2048),
		)),
	)
	global.SetLoggerProvider(lp)

	return lp.Shutdown, nil
}

// JoinShutdown runs fns in reverse order and joins their errors.
func JoinShutdown(fns ...ShutdownFunc) ShutdownFunc {
	return func(ctx context.Context) error {
		var err error
		for i := len(fns) - 1; i >= 0; i-- {
			if fns[i] != nil {
				err = errors.Join(err, fns[i](ctx))
			}
		}
		return err
	}
}
