// Package metrics exposes Prometheus instrumentation for the HTTP layer, the
// matching usecase and the stats cache.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Manager struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	matchEvaluations *prometheus.CounterVec
	matchDuration    prometheus.Histogram
	matchedPersonnel prometheus.Histogram
	gapEntries       prometheus.Counter
	labelIssues      *prometheus.CounterVec

	cacheRequests *prometheus.CounterVec
	wsClients     prometheus.Gauge
}

// NewManager registers every collector on a private registry unless
// WithRegistry is given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "skillmatrix",
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	f := promauto.With(m.registry)

	m.httpRequests = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	m.httpRequestDuration = f.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   m.buckets,
	}, []string{"method", "route"})

	m.matchEvaluations = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "matching",
		Name:      "evaluations_total",
		Help:      "Project match evaluations by outcome.",
	}, []string{"outcome"})

	m.matchDuration = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "matching",
		Name:      "evaluation_duration_seconds",
		Help:      "Time spent fetching inputs and evaluating a project match.",
		Buckets:   m.buckets,
	})

	m.matchedPersonnel = f.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "matching",
		Name:      "matched_personnel",
		Help:      "Size of the match set per evaluation.",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
	})

	m.gapEntries = f.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "matching",
		Name:      "gap_entries_total",
		Help:      "Shortage entries emitted by gap analysis.",
	})

	m.labelIssues = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "matching",
		Name:      "unknown_labels_total",
		Help:      "Stored proficiency labels outside the known scale, by source.",
	}, []string{"source"})

	m.cacheRequests = f.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "cache",
		Name:      "requests_total",
		Help:      "Stats cache lookups by result.",
	}, []string{"result"})

	m.wsClients = f.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "ws",
		Name:      "clients",
		Help:      "Connected websocket clients.",
	})

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Manager) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Manager) ObserveHTTP(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(dur.Seconds())
}

func (m *Manager) ObserveMatch(outcome string, matched, gaps int, dur time.Duration) {
	if m == nil {
		return
	}
	m.matchEvaluations.WithLabelValues(outcome).Inc()
	m.matchDuration.Observe(dur.Seconds())
	m.matchedPersonnel.Observe(float64(matched))
	if gaps > 0 {
		m.gapEntries.Add(float64(gaps))
	}
}

func (m *Manager) IncLabelIssue(source string) {
	if m == nil {
		return
	}
	m.labelIssues.WithLabelValues(source).Inc()
}

func (m *Manager) IncCache(result string) {
	if m == nil {
		return
	}
	m.cacheRequests.WithLabelValues(result).Inc()
}

func (m *Manager) SetWSClients(n int) {
	if m == nil {
		return
	}
	m.wsClients.Set(float64(n))
}
