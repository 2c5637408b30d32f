package providers

import (
	"synthink/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncGenerationsTotal(provider string, status int)
	ObserveProviderDuration(provider string, duration time.Duration)
}

type MetricsProvider struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	generationsTotal *prometheus.CounterVec
	providerDuration *prometheus.HistogramVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncGenerationsTotal(provider string, status int) {
	m.generationsTotal.WithLabelValues(provider, generationOutcome(status)).Inc()
}

func (m *MetricsProvider) ObserveProviderDuration(provider string, duration time.Duration) {
	m.providerDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func generationOutcome(status int) string {
	switch {
	case status < 300:
		return "ok"
	case status == 429:
		return "quota"
	case status == 503:
		return "overloaded"
	default:
		return "error"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "synthink_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "synthink_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "synthink_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "synthink_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		generationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "synthink_generations_total",
			Help: "Total number of poem generation attempts by outcome",
		}, []string{"provider", "outcome"}),

		providerDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "synthink_provider_duration_seconds",
			Help:    "Duration of upstream provider calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}, []string{"provider"}),
	}

	promauto.NewGauge(prometheus.GaugeOpts{
		Name:        "synthink_build_info",
		Help:        "Build information",
		ConstLabels: prometheus.Labels{"version": conf.Version, "provider": conf.Provider.Kind},
	}).Set(1)

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                  {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)  {}
func (n *noopMetrics) IncCacheHits()                                     {}
func (n *noopMetrics) IncCacheMisses()                                   {}
func (n *noopMetrics) IncGenerationsTotal(_ string, _ int)               {}
func (n *noopMetrics) ObserveProviderDuration(_ string, _ time.Duration) {}
