package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// GormLogger routes GORM output through zap. Statements carry the request
// scope and trace ids of the context they ran in. Record-not-found is never
// logged: repositories translate it to a domain error.
type GormLogger struct {
	logger *zap.Logger
	level  gormlogger.LogLevel
	slow   time.Duration
}

type GormLoggerOption func(*GormLogger)

// WithSlowThreshold sets the duration above which statements log at warn
// level. Zero disables slow query logging.
func WithSlowThreshold(d time.Duration) GormLoggerOption {
	return func(l *GormLogger) { l.slow = d }
}

func NewGormLogger(base *zap.Logger, level gormlogger.LogLevel, opts ...GormLoggerOption) *GormLogger {
	l := &GormLogger{
		logger: base.Named("gorm").WithOptions(zap.AddCallerSkip(2)),
		level:  level,
		slow:   defaultSlowQueryThreshold,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) scoped(ctx context.Context) *zap.Logger {
	return WithTraceContext(ctx, l.logger).With(scopeFields(ctx)...)
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Info {
		l.scoped(ctx).Sugar().Infof(msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Warn {
		l.scoped(ctx).Sugar().Warnf(msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Error {
		l.scoped(ctx).Sugar().Errorf(msg, data...)
	}
}

// Trace logs one executed statement: failures at error, slow statements at
// warn and everything else at debug when the level is Info.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gormlogger.ErrRecordNotFound)
	slow := l.slow > 0 && elapsed > l.slow

	switch {
	case failed && l.level >= gormlogger.Error:
	case slow && l.level >= gormlogger.Warn:
	case l.level >= gormlogger.Info && !failed:
	default:
		return
	}

	query, rows := fc()
	fields := []zap.Field{
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
		zap.String("sql", query),
	}
	log := l.scoped(ctx)

	switch {
	case failed:
		log.Error("SQL error", append(fields, zap.Error(err))...)
	case slow:
		log.Warn("Slow SQL", append(fields, zap.Duration("threshold", l.slow))...)
	default:
		log.Debug("SQL", fields...)
	}
}

// MapGormLogLevel maps the application log level onto GORM's. Unknown
// values map to Warn.
func MapGormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
