package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogsConfig struct {
	Enabled   bool
	Collector Collector
	Service   Service
}

// LoggerProvider ships zap records to the collector next to the regular
// log output.
type LoggerProvider struct {
	provider *sdklog.LoggerProvider
	scope    string
}

func NewLoggerProvider(ctx context.Context, cfg LogsConfig, logger *zap.Logger) (*LoggerProvider, error) {
	lp := &LoggerProvider{scope: cfg.Service.Name}
	log := logger.Named("telemetry")
	if !cfg.Enabled {
		log.Info("OTLP logs disabled")
		return lp, nil
	}

	opts := []otlploggrpc.Option{otlploggrpc.WithEndpoint(cfg.Collector.Endpoint)}
	if cfg.Collector.Insecure {
		opts = append(opts, otlploggrpc.WithInsecure())
	}
	exporter, err := otlploggrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create OTLP log exporter: %w", err)
	}
	res, err := cfg.Service.resource()
	if err != nil {
		return nil, err
	}

	lp.provider = sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)
	global.SetLoggerProvider(lp.provider)
	log.Info("OTLP logs enabled", zap.String("collector", cfg.Collector.Endpoint))
	return lp, nil
}

func (lp *LoggerProvider) IsEnabled() bool { return lp.provider != nil }

// Bridge tees base into the OTLP pipeline for records at level and above.
// With logs disabled base is returned as is.
func (lp *LoggerProvider) Bridge(base *zap.Logger, level zapcore.Level) *zap.Logger {
	if lp.provider == nil {
		return base
	}
	exported := &levelFilterCore{
		Core:     otelzap.NewCore(lp.scope, otelzap.WithLoggerProvider(lp.provider)),
		minLevel: level,
	}
	return base.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, exported)
	}))
}

func (lp *LoggerProvider) Shutdown(ctx context.Context) error {
	if lp.provider == nil {
		return nil
	}
	return shutdownWithin(ctx, "logger", lp.provider.Shutdown)
}

// levelFilterCore puts a floor under the otelzap core, which exports every
// level it is given.
type levelFilterCore struct {
	zapcore.Core
	minLevel zapcore.Level
}

func (c *levelFilterCore) Enabled(lvl zapcore.Level) bool {
	return lvl >= c.minLevel && c.Core.Enabled(lvl)
}

func (c *levelFilterCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(entry.Level) {
		return ce
	}
	return c.Core.Check(entry, ce)
}

func (c *levelFilterCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelFilterCore{Core: c.Core.With(fields), minLevel: c.minLevel}
}
