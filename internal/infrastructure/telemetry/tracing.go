package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName names the tracer used for application service spans.
const TracerName = "owneriq-backend"

// Span attribute keys shared by the application services.
const (
	SpanAttrOwnerID    = "owner.id"
	SpanAttrPropertyID = "property.id"
	SpanAttrBatchID    = "batch.id"
	SpanAttrStep       = "onboarding.step"
	SpanAttrEvent      = "onboarding.event"
	SpanAttrDocType    = "document.type"
	SpanAttrFormat     = "report.format"
	SpanAttrCount      = "result.count"
)

// WithAttribute sets one attribute at span start. value is converted with
// the same rules as SetAttributes.
func WithAttribute(key string, value any) trace.SpanStartOption {
	return trace.WithAttributes(toAttribute(key, value))
}

// StartSpan starts an internal span on the global provider. The caller ends
// it, usually through End:
//
//	ctx, span := telemetry.StartSpan(ctx, "onboarding.advance")
//	defer func() { telemetry.End(span, err) }()
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	opts = append([]trace.SpanStartOption{trace.WithSpanKind(trace.SpanKindInternal)}, opts...)
	return otel.Tracer(TracerName).Start(ctx, name, opts...)
}

// StartServiceSpan names the span "{service}.{method}".
func StartServiceSpan(ctx context.Context, service, method string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return StartSpan(ctx, service+"."+method, opts...)
}

// SetAttributes adds alternating key/value pairs. Pairs with a non-string
// key and a trailing unpaired key are dropped.
func SetAttributes(span trace.Span, keyValues ...any) {
	if span == nil {
		return
	}
	span.SetAttributes(pairs(keyValues)...)
}

// RecordError records err and marks the span failed.
func RecordError(span trace.Span, err error, opts ...trace.EventOption) {
	if span == nil || err == nil {
		return
	}
	span.RecordError(err, opts...)
	span.SetStatus(codes.Error, err.Error())
}

// End ends span, recording err first when it is non-nil.
func End(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		RecordError(span, err)
	}
	span.End()
}

// AddEvent adds a time-stamped event with key/value attributes.
func AddEvent(span trace.Span, name string, keyValues ...any) {
	if span == nil {
		return
	}
	span.AddEvent(name, trace.WithAttributes(pairs(keyValues)...))
}

func pairs(keyValues []any) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(keyValues)/2)
	for i := 0; i+1 < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			continue
		}
		attrs = append(attrs, toAttribute(key, keyValues[i+1]))
	}
	return attrs
}

func toAttribute(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case bool:
		return attribute.Bool(key, v)
	case []string:
		return attribute.StringSlice(key, v)
	case fmt.Stringer:
		return attribute.String(key, v.String())
	default:
		return attribute.String(key, fmt.Sprintf("%v", v))
	}
}
