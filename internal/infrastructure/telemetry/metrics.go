package telemetry

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

const defaultExportInterval = time.Minute

type MetricsConfig struct {
	Enabled        bool
	Collector      Collector
	Service        Service
	ExportInterval time.Duration
}

// MeterProvider pushes OpenTelemetry metrics to the collector. The
// Prometheus registry in the metrics package is scraped independently.
type MeterProvider struct {
	provider *sdkmetric.MeterProvider
}

func NewMeterProvider(ctx context.Context, cfg MetricsConfig, logger *zap.Logger) (*MeterProvider, error) {
	mp := &MeterProvider{}
	log := logger.Named("telemetry")
	if !cfg.Enabled {
		log.Info("OTLP metrics disabled")
		return mp, nil
	}

	interval := cfg.ExportInterval
	if interval <= 0 {
		interval = defaultExportInterval
	}
	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.Collector.Endpoint)}
	if cfg.Collector.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create OTLP metric exporter: %w", err)
	}
	res, err := cfg.Service.resource()
	if err != nil {
		return nil, err
	}

	mp.provider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))),
	)
	otel.SetMeterProvider(mp.provider)
	log.Info("OTLP metrics enabled",
		zap.String("collector", cfg.Collector.Endpoint),
		zap.Duration("interval", interval),
	)
	return mp, nil
}

// Meter falls back to the global provider when metrics are disabled.
func (mp *MeterProvider) Meter(name string) metric.Meter {
	if mp.provider == nil {
		return otel.GetMeterProvider().Meter(name)
	}
	return mp.provider.Meter(name)
}

func (mp *MeterProvider) IsEnabled() bool { return mp.provider != nil }

func (mp *MeterProvider) Shutdown(ctx context.Context) error {
	if mp.provider == nil {
		return nil
	}
	return shutdownWithin(ctx, "meter", mp.provider.Shutdown)
}

// StatsSource is satisfied by *sql.DB.
type StatsSource interface {
	Stats() sql.DBStats
}

// RegisterDBPoolMetrics reports connection pool usage on every collection.
// The returned registration must be unregistered before the pool closes.
func RegisterDBPoolMetrics(meter metric.Meter, db StatsSource) (metric.Registration, error) {
	connections, err := meter.Int64ObservableGauge("db_pool_connections",
		metric.WithDescription("Number of connections in the pool by state"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return nil, err
	}
	maxOpen, err := meter.Int64ObservableGauge("db_pool_connections_max",
		metric.WithDescription("Maximum number of open connections"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return nil, err
	}
	waits, err := meter.Int64ObservableCounter("db_pool_wait_total",
		metric.WithDescription("Total number of connections waited for"),
	)
	if err != nil {
		return nil, err
	}

	inUse := metric.WithAttributes(attribute.String("state", "in_use"))
	idle := metric.WithAttributes(attribute.String("state", "idle"))

	return meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		stats := db.Stats()
		o.ObserveInt64(connections, int64(stats.InUse), inUse)
		o.ObserveInt64(connections, int64(stats.Idle), idle)
		o.ObserveInt64(maxOpen, int64(stats.MaxOpenConnections))
		o.ObserveInt64(waits, stats.WaitCount)
		return nil
	}, connections, maxOpen, waits)
}
