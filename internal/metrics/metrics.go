// Package metrics provides Prometheus metrics for schedule generation and
// the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Generation results.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Manager owns the metrics. A nil *Manager records nothing.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	schedulesGenerated *prometheus.CounterVec
	generationSeconds  prometheus.Histogram
	scheduleDays       prometheus.Histogram
	httpRequests       *prometheus.CounterVec
}

// NewManager creates a metrics manager. Without WithRegistry the metrics go
// to a fresh registry rather than the global default.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "rrsched",
		histogramBuckets: prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.schedulesGenerated = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "schedules_generated_total",
		Help:      "Schedule generation attempts by result",
	}, []string{"result"})

	m.generationSeconds = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "schedule_generation_seconds",
		Help:      "Time spent building and shuffling a schedule",
		Buckets:   m.histogramBuckets,
	})

	m.scheduleDays = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "schedule_days",
		Help:      "Number of days in generated schedules",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status code",
	}, []string{"route", "method", "code"})
}

// ObserveGeneration records one generation attempt. days is ignored unless
// result is ResultOK.
func (m *Manager) ObserveGeneration(result string, elapsed time.Duration, days int) {
	if m == nil {
		return
	}
	m.schedulesGenerated.WithLabelValues(result).Inc()
	if result != ResultOK {
		return
	}
	m.generationSeconds.Observe(elapsed.Seconds())
	m.scheduleDays.Observe(float64(days))
}

// RecordHTTPRequest counts one served request.
func (m *Manager) RecordHTTPRequest(route, method string, code int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
}

// Registry returns the registry the metrics live on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
