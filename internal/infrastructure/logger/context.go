package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type contextKey string

const (
	LoggerKey    contextKey = "logger"
	RequestIDKey contextKey = "request_id"
	// OwnerIDKey holds the data scope owner. It differs from UserIDKey in
	// demo mode.
	OwnerIDKey contextKey = "owner_id"
	UserIDKey  contextKey = "user_id"
)

// WithContext stores logger in ctx. Store the bare logger: L adds the
// request scope fields on every call.
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// FromContext returns the stored logger or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func WithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, OwnerIDKey, ownerID)
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func GetRequestID(ctx context.Context) string { return stringValue(ctx, RequestIDKey) }

func GetOwnerID(ctx context.Context) string { return stringValue(ctx, OwnerIDKey) }

func GetUserID(ctx context.Context) string { return stringValue(ctx, UserIDKey) }

func stringValue(ctx context.Context, key contextKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}

// GetTraceID returns the active trace id, or "" outside a sampled span.
func GetTraceID(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		return sc.TraceID().String()
	}
	return ""
}

// GetSpanID returns the active span id, or "".
func GetSpanID(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		return sc.SpanID().String()
	}
	return ""
}

// WithTraceContext adds trace_id and span_id to logger when ctx carries a
// valid span.
func WithTraceContext(ctx context.Context, logger *zap.Logger) *zap.Logger {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return logger
	}
	return logger.With(
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	)
}

// scopeFields collects the request, owner and user ids present in ctx.
func scopeFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, 3)
	for _, kv := range []struct {
		name  string
		value string
	}{
		{"request_id", GetRequestID(ctx)},
		{"owner_id", GetOwnerID(ctx)},
		{"user_id", GetUserID(ctx)},
	} {
		if kv.value != "" {
			fields = append(fields, zap.String(kv.name, kv.value))
		}
	}
	return fields
}

// ContextLogger logs through the context's logger with trace and request
// scope fields attached.
type ContextLogger struct {
	ctx    context.Context
	logger *zap.Logger
}

// L is the logger services should use:
//
//	logger.L(ctx).Info("schedule regenerated", zap.String("property_id", id))
func L(ctx context.Context) *ContextLogger {
	return &ContextLogger{ctx: ctx, logger: FromContext(ctx)}
}

func (cl *ContextLogger) enriched() *zap.Logger {
	return WithTraceContext(cl.ctx, cl.logger).With(scopeFields(cl.ctx)...)
}

// With returns a child logger carrying fields in addition to the scope.
func (cl *ContextLogger) With(fields ...zap.Field) *ContextLogger {
	return &ContextLogger{ctx: cl.ctx, logger: cl.logger.With(fields...)}
}

func (cl *ContextLogger) Debug(msg string, fields ...zap.Field) { cl.enriched().Debug(msg, fields...) }

func (cl *ContextLogger) Info(msg string, fields ...zap.Field) { cl.enriched().Info(msg, fields...) }

func (cl *ContextLogger) Warn(msg string, fields ...zap.Field) { cl.enriched().Warn(msg, fields...) }

func (cl *ContextLogger) Error(msg string, fields ...zap.Field) { cl.enriched().Error(msg, fields...) }

// Zap returns the enriched logger for APIs that take a *zap.Logger.
func (cl *ContextLogger) Zap() *zap.Logger { return cl.enriched() }

func (cl *ContextLogger) Sugar() *zap.SugaredLogger { return cl.enriched().Sugar() }
