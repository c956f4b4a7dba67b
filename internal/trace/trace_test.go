package trace

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabled(t *testing.T) {
	require.NoError(t, InitWithConfig(Config{}))

	ctx, span := StartSpan(context.Background(), "charges.Calculate")
	span.End()

	assert.False(t, Enabled())
	assert.False(t, span.SpanContext().IsValid())
	_, _, ok := GetTraceFields(ctx)
	assert.False(t, ok)
	assert.NoError(t, Shutdown(context.Background()))
}

func TestEnabledExportsOnShutdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWithConfig(Config{Enabled: true, Output: &buf}))
	t.Cleanup(func() { _ = InitWithConfig(Config{}) })

	ctx, span := StartSpan(context.Background(), "charges.Calculate")
	traceID, spanID, ok := GetTraceFields(ctx)
	require.True(t, ok)
	assert.Equal(t, span.SpanContext().TraceID().String(), traceID)
	assert.Equal(t, span.SpanContext().SpanID().String(), spanID)
	span.End()

	require.NoError(t, Shutdown(context.Background()))
	assert.Contains(t, buf.String(), "charges.Calculate")
	assert.Contains(t, buf.String(), "sl-calculator")
}
