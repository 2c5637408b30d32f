package providers

import (
	"context"
	"synthink/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTracingProvider_DisabledIsNoop(t *testing.T) {
	tp, err := NewTracingProvider(&structures.Config{}, &cacheTestLogger{})
	require.NoError(t, err)

	_, span := tp.Start(context.Background(), "poem.generate")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestNewTracingProvider_EnabledWithoutEndpointIsNoop(t *testing.T) {
	conf := &structures.Config{Tracing: structures.TracingConfig{Enabled: true}}
	tp, err := NewTracingProvider(conf, &cacheTestLogger{})
	require.NoError(t, err)

	_, span := tp.Start(context.Background(), "poem.generate")
	assert.False(t, span.SpanContext().IsValid())
}

func TestNewTracingProvider_Enabled(t *testing.T) {
	conf := &structures.Config{
		Version: "1.2.0",
		Tracing: structures.TracingConfig{Enabled: true, Endpoint: "127.0.0.1:4317", SampleRate: 1},
	}
	tp, err := NewTracingProvider(conf, &cacheTestLogger{})
	require.NoError(t, err)

	_, span := tp.Start(context.Background(), "poem.generate")
	assert.True(t, span.SpanContext().IsValid())
	assert.True(t, span.SpanContext().IsSampled())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = tp.Shutdown(ctx)
}
