package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds configuration for database spans.
type DBTracingConfig struct {
	Enabled         bool
	LogFullSQL      bool // keep bound variables in db.statement (development only)
	SlowQueryThresh time.Duration
	DBSystem        string
}

// DefaultDBTracingConfig returns tracing off, variables hidden, 200ms slow threshold.
func DefaultDBTracingConfig() DBTracingConfig {
	return DBTracingConfig{
		SlowQueryThresh: 200 * time.Millisecond,
		DBSystem:        "postgresql",
	}
}

type queryStartKey struct{}

// DBTracingPlugin registers otelgorm plus callbacks that annotate each span
// with the table, affected rows, errors and slow-query markers.
type DBTracingPlugin struct {
	config DBTracingConfig
	logger *zap.Logger
}

// NewDBTracingPlugin creates a plugin; thresholds <= 0 fall back to the default.
func NewDBTracingPlugin(cfg DBTracingConfig, logger *zap.Logger) *DBTracingPlugin {
	if cfg.SlowQueryThresh <= 0 {
		cfg.SlowQueryThresh = DefaultDBTracingConfig().SlowQueryThresh
	}
	if cfg.DBSystem == "" {
		cfg.DBSystem = DefaultDBTracingConfig().DBSystem
	}
	return &DBTracingPlugin{config: cfg, logger: logger}
}

// Register installs the plugin on db. A disabled config is a no-op.
func (p *DBTracingPlugin) Register(db *gorm.DB) error {
	if !p.config.Enabled {
		p.logger.Debug("Database tracing disabled")
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(p.config.DBSystem)}
	if !p.config.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}
	if err := p.registerCallbacks(db); err != nil {
		return err
	}

	p.logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", p.config.LogFullSQL),
		zap.Duration("slow_query_threshold", p.config.SlowQueryThresh),
	)
	return nil
}

func (p *DBTracingPlugin) registerCallbacks(db *gorm.DB) error {
	cb := db.Callback()
	registrations := []func() error{
		func() error { return cb.Create().Before("gorm:create").Register("owneriq_trace:before_create", p.before) },
		func() error { return cb.Query().Before("gorm:query").Register("owneriq_trace:before_query", p.before) },
		func() error { return cb.Update().Before("gorm:update").Register("owneriq_trace:before_update", p.before) },
		func() error { return cb.Delete().Before("gorm:delete").Register("owneriq_trace:before_delete", p.before) },
		func() error { return cb.Row().Before("gorm:row").Register("owneriq_trace:before_row", p.before) },
		func() error { return cb.Raw().Before("gorm:raw").Register("owneriq_trace:before_raw", p.before) },
		func() error { return cb.Create().After("gorm:create").Register("owneriq_trace:after_create", p.after) },
		func() error { return cb.Query().After("gorm:query").Register("owneriq_trace:after_query", p.after) },
		func() error { return cb.Update().After("gorm:update").Register("owneriq_trace:after_update", p.after) },
		func() error { return cb.Delete().After("gorm:delete").Register("owneriq_trace:after_delete", p.after) },
		func() error { return cb.Row().After("gorm:row").Register("owneriq_trace:after_row", p.after) },
		func() error { return cb.Raw().After("gorm:raw").Register("owneriq_trace:after_raw", p.after) },
	}
	for _, register := range registrations {
		if err := register(); err != nil {
			return err
		}
	}
	return nil
}

func (p *DBTracingPlugin) before(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartKey{}, time.Now())
	}
}

func (p *DBTracingPlugin) after(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	if db.Statement.RowsAffected >= 0 {
		span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	}
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}

	start, ok := ctx.Value(queryStartKey{}).(time.Time)
	if !ok {
		return
	}
	if elapsed := time.Since(start); elapsed > p.config.SlowQueryThresh {
		span.SetAttributes(
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
		)
		span.AddEvent("slow_query_warning", trace.WithAttributes(
			attribute.Int64("duration_ms", elapsed.Milliseconds()),
			attribute.Int64("threshold_ms", p.config.SlowQueryThresh.Milliseconds()),
		))
	}
}
