package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "painel"

// Metrics holds the Prometheus collectors of the service on a private registry
type Metrics struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	datasetRecords  *prometheus.GaugeVec
	datasetLoads    *prometheus.CounterVec
	viewCacheLookup *prometheus.CounterVec
}

// NewMetrics registers all collectors, including the Go and process collectors
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{Namespace: metricsNamespace}),
		prometheus.NewGoCollector(),
	)

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"method", "route"}),
		datasetRecords: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "dataset_records",
			Help:      "Records in the currently installed dataset.",
		}, []string{"source"}),
		datasetLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "dataset_load_total",
			Help:      "Dataset load attempts by source and status.",
		}, []string{"source", "status"}),
		viewCacheLookup: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "view_cache_requests_total",
			Help:      "View cache lookups by result.",
		}, []string{"result"}),
	}

	registry.MustRegister(m.httpRequests, m.httpDuration, m.datasetRecords, m.datasetLoads, m.viewCacheLookup)
	return m
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) DatasetLoaded(source string, records int) {
	m.datasetLoads.WithLabelValues(source, "success").Inc()
	m.datasetRecords.WithLabelValues(source).Set(float64(records))
}

func (m *Metrics) DatasetLoadFailed(source string) {
	m.datasetLoads.WithLabelValues(source, "failure").Inc()
}

func (m *Metrics) ViewCacheHit() {
	m.viewCacheLookup.WithLabelValues("hit").Inc()
}

func (m *Metrics) ViewCacheMiss() {
	m.viewCacheLookup.WithLabelValues("miss").Inc()
}
