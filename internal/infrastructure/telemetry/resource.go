// Package telemetry exports OwnerIQ traces, logs and metrics over OTLP/gRPC
// and runs the optional Pyroscope profiler. Every signal is off unless
// configured, in which case the global OpenTelemetry no-op providers stay in
// place and instrumentation costs nothing.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

const shutdownTimeout = 10 * time.Second

// Collector is the OTLP/gRPC endpoint shared by all signals.
type Collector struct {
	Endpoint string // host:port
	Insecure bool
}

// Service identifies this process in exported telemetry.
type Service struct {
	Name        string
	Version     string
	Environment string
}

func (s Service) resource() (*resource.Resource, error) {
	version := s.Version
	if version == "" {
		version = "dev"
	}
	attrs := []attribute.KeyValue{
		semconv.ServiceName(s.Name),
		semconv.ServiceVersion(version),
	}
	if s.Environment != "" {
		attrs = append(attrs, attribute.String("deployment.environment.name", s.Environment))
	}
	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(semconv.SchemaURL, attrs...))
	if err != nil {
		return nil, fmt.Errorf("telemetry resource: %w", err)
	}
	return res, nil
}

// shutdownWithin runs an SDK shutdown bounded by shutdownTimeout.
func shutdownWithin(ctx context.Context, signal string, shutdown func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown %s provider: %w", signal, err)
	}
	return nil
}
