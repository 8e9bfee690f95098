package support

import (
	"context"
	"net"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc/credentials"
)

const (
	TraceNone    = "none"
	TraceConsole = "console"
	TraceOTLP    = "otlp"
	TraceJaeger  = "jaeger"
)

const ServiceName = "webtemp"

const defaultJaegerEndpoint = "http://localhost:14268/api/traces"

func ConsoleExporter() (trace.SpanExporter, error) {
	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}

// OTLPExporter ships spans over gRPC. Loopback collectors are reached without TLS.
func OTLPExporter(ctx context.Context, endpoint string, headers map[string]string) (*otlptrace.Exporter, error) {
	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithHeaders(headers),
	}
	if isLoopback(endpoint) {
		opts = append(opts, otlptracegrpc.WithInsecure())
	} else {
		opts = append(opts, otlptracegrpc.WithTLSCredentials(credentials.NewClientTLSFromCert(nil, "")))
	}

	client := otlptracegrpc.NewClient(opts...)
	return otlptrace.New(ctx, client)
}

func JaegerExporter(endpoint string) (*jaeger.Exporter, error) {
	if endpoint == "" {
		endpoint = defaultJaegerEndpoint
	}
	return jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(endpoint)))
}

func isLoopback(endpoint string) bool {
	host, _, err := net.SplitHostPort(endpoint)
	if err != nil {
		host = endpoint
	}
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func exporter(ctx context.Context, cfg Config) (trace.SpanExporter, error) {
	switch cfg.Trace {
	case TraceConsole:
		return ConsoleExporter()
	case TraceOTLP:
		return OTLPExporter(ctx, cfg.TraceEndpoint, nil)
	case TraceJaeger:
		return JaegerExporter(cfg.TraceEndpoint)
	case TraceNone, "":
		return nil, nil
	}

	return nil, errors.Errorf("unknown trace exporter %q", cfg.Trace)
}

// TracerProvider builds the provider selected by cfg and installs it globally.
// The returned cleanup flushes and shuts it down.
func TracerProvider(ctx context.Context, cfg Config) (*trace.TracerProvider, func(), error) {
	exp, err := exporter(ctx, cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create trace exporter")
	}

	opts := []trace.TracerProviderOption{
		trace.WithResource(resource.NewSchemaless(attribute.String("service.name", ServiceName))),
	}
	if exp != nil {
		opts = append(opts, trace.WithBatcher(exp))
	}

	provider := trace.NewTracerProvider(opts...)
	otel.SetTracerProvider(provider)

	cleanup := func() {
		_ = provider.Shutdown(context.Background())
	}

	return provider, cleanup, nil
}
