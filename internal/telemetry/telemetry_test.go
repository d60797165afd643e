package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func restoreGlobalProvider(t *testing.T) {
	t.Helper()

	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })
}

func TestTracer(t *testing.T) {
	// Given: a recording provider installed globally
	restoreGlobalProvider(t)
	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	// When: a span is started from the game tracer
	_, span := Tracer("game").Start(context.Background(), "connectfour.play")
	span.End()

	// Then: it is recorded under the prefixed instrumentation scope
	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "connectfour.play", spans[0].Name())
	assert.Equal(t, "connectfour/game", spans[0].InstrumentationScope().Name)
}

func TestSetup(t *testing.T) {
	// Given: an exporter endpoint nothing listens on
	restoreGlobalProvider(t)
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://127.0.0.1:1")
	ctx := context.Background()

	// When: setting up tracing
	shutdown, err := Setup(ctx, "connectfour", "test")

	// Then: the global provider is the SDK one and shuts down cleanly
	require.NoError(t, err)
	assert.IsType(t, &sdktrace.TracerProvider{}, otel.GetTracerProvider())
	_, span := Tracer("game").Start(ctx, "connectfour.play")
	assert.True(t, span.SpanContext().IsValid())

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	assert.NoError(t, shutdown(shutdownCtx))
}
