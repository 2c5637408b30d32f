package providers

import (
	"synthink/internal/structures"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func swapRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()
	reg := prometheus.NewRegistry()
	prevRegisterer, prevGatherer := prometheus.DefaultRegisterer, prometheus.DefaultGatherer
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = prevRegisterer
		prometheus.DefaultGatherer = prevGatherer
	})
	return reg
}

// counterValue reads one counter series from reg by name and label values.
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	series:
		for _, m := range f.GetMetric() {
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue series
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	// Ensure no-op methods don't panic
	m.IncRequestsTotal("/test", 200)
	m.ObserveRequestDuration("/test", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncGenerationsTotal("gemini", 200)
	m.ObserveProviderDuration("gemini", time.Second)
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	reg := swapRegistry(t)

	conf := &structures.Config{
		Version:  "1.2.0",
		Metrics:  structures.MetricsConfig{Enabled: true},
		Provider: structures.ProviderConfig{Kind: "gemini"},
	}
	m := NewMetricsProvider(conf)
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "synthink_build_info")
}

func TestMetricsProvider_GenerationOutcomes(t *testing.T) {
	reg := swapRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf)

	m.IncGenerationsTotal("gemini", 200)
	m.IncGenerationsTotal("gemini", 200)
	m.IncGenerationsTotal("gemini", 429)
	m.IncGenerationsTotal("gemini", 503)
	m.IncGenerationsTotal("gemini", 500)
	m.IncRequestsTotal("/api/generate", 200)
	m.ObserveRequestDuration("/api/generate", 5*time.Millisecond)
	m.ObserveProviderDuration("gemini", 800*time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()

	gen := "synthink_generations_total"
	assert.Equal(t, 2.0, counterValue(t, reg, gen, map[string]string{"provider": "gemini", "outcome": "ok"}))
	assert.Equal(t, 1.0, counterValue(t, reg, gen, map[string]string{"provider": "gemini", "outcome": "quota"}))
	assert.Equal(t, 1.0, counterValue(t, reg, gen, map[string]string{"provider": "gemini", "outcome": "overloaded"}))
	assert.Equal(t, 1.0, counterValue(t, reg, gen, map[string]string{"provider": "gemini", "outcome": "error"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "synthink_requests_total", map[string]string{"endpoint": "/api/generate", "status": "2xx"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "synthink_cache_hits_total", nil))
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{429, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, httpStatusBucket(tt.code))
	}
}
