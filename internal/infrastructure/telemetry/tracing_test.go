package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(original)
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func attrMap(attrs []attribute.KeyValue) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[string(a.Key)] = a.Value.Emit()
	}
	return m
}

func TestStartServiceSpan(t *testing.T) {
	sr := setupTestTracer(t)
	propertyID := uuid.New()

	_, span := telemetry.StartServiceSpan(context.Background(), "mortgage", "generate_schedule",
		telemetry.WithAttribute(telemetry.SpanAttrPropertyID, propertyID),
		trace.WithSpanKind(trace.SpanKindServer),
	)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "mortgage.generate_schedule", spans[0].Name())
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())
	assert.Equal(t, propertyID.String(), attrMap(spans[0].Attributes())[telemetry.SpanAttrPropertyID])
}

func TestSetAttributes_SkipsMalformedPairs(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := telemetry.StartSpan(context.Background(), "onboarding.advance")
	telemetry.SetAttributes(span,
		telemetry.SpanAttrOwnerID, "owner-1",
		telemetry.SpanAttrStep, 2,
		42, "ignored",
		"dangling",
	)
	span.End()

	attrs := attrMap(sr.Ended()[0].Attributes())
	assert.Equal(t, "owner-1", attrs[telemetry.SpanAttrOwnerID])
	assert.Equal(t, "2", attrs[telemetry.SpanAttrStep])
	assert.NotContains(t, attrs, "dangling")
	assert.Len(t, attrs, 2)
}

func TestEnd_RecordsError(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := telemetry.StartSpan(context.Background(), "upload")
	telemetry.End(span, errors.New("bucket unavailable"))

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "bucket unavailable", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "exception", ended[0].Events()[0].Name)
}

func TestEnd_WithoutErrorLeavesStatusUnset(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := telemetry.StartSpan(context.Background(), "upload")
	telemetry.End(span, nil)

	assert.Equal(t, codes.Unset, sr.Ended()[0].Status().Code)
}

func TestAddEvent(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := telemetry.StartSpan(context.Background(), "wizard")
	telemetry.AddEvent(span, "effect_applied", "effect", "OpenBatch")
	span.End()

	events := sr.Ended()[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "effect_applied", events[0].Name)
	assert.Equal(t, "OpenBatch", attrMap(events[0].Attributes)["effect"])
}

func TestStartSpan_DefaultsToInternal(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := telemetry.StartSpan(context.Background(), "report.render")
	span.End()

	assert.Equal(t, trace.SpanKindInternal, sr.Ended()[0].SpanKind())
	assert.Equal(t, telemetry.TracerName, sr.Ended()[0].InstrumentationScope().Name)
}

func TestNilSpanHelpers(t *testing.T) {
	assert.NotPanics(t, func() {
		telemetry.SetAttributes(nil, "k", "v")
		telemetry.RecordError(nil, errors.New("x"))
		telemetry.AddEvent(nil, "e")
		telemetry.End(nil, errors.New("x"))
	})
}
