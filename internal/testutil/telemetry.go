package testutil

import (
	"testing"

	"fittracker/internal/observability"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// ObserveTelemetry routes the global tracer provider and observability.Logger
// into in-memory recorders for the duration of the test.
func ObserveTelemetry(t testing.TB) (*tracetest.SpanRecorder, *observer.ObservedLogs) {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	oldTP := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))

	core, logs := observer.New(zap.DebugLevel)
	oldLogger := observability.Logger
	observability.Logger = zap.New(core)

	t.Cleanup(func() {
		otel.SetTracerProvider(oldTP)
		observability.Logger = oldLogger
	})

	return sr, logs
}

// SpanAttributes flattens the attributes of span into a string map.
func SpanAttributes(span sdktrace.ReadOnlySpan) map[string]string {
	attrs := make(map[string]string, len(span.Attributes()))
	for _, kv := range span.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	return attrs
}
