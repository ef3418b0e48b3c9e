package infrastructure

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetricsCollector implements the MetricsCollector port on a
// private Prometheus registry
type PrometheusMetricsCollector struct {
	registry         *prometheus.Registry
	upstreamCalls    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	pipelineOutcomes *prometheus.CounterVec
	notifications    *prometheus.CounterVec
}

// NewPrometheusMetricsCollector registers the dashboard metrics plus the Go
// and process collectors
func NewPrometheusMetricsCollector() *PrometheusMetricsCollector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &PrometheusMetricsCollector{
		registry: registry,
		upstreamCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weatherdash",
			Name:      "weather_api_calls_total",
			Help:      "Upstream weather API calls by endpoint and result.",
		}, []string{"endpoint", "success"}),
		upstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weatherdash",
			Name:      "weather_api_call_duration_seconds",
			Help:      "Upstream weather API call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		pipelineOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weatherdash",
			Name:      "pipeline_outcomes_total",
			Help:      "Completed dashboard refreshes by outcome.",
		}, []string{"outcome"}),
		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weatherdash",
			Name:      "notifications_total",
			Help:      "Notifications shown by kind.",
		}, []string{"kind"}),
	}
}

func (m *PrometheusMetricsCollector) RecordWeatherAPICall(endpoint string, success bool, duration time.Duration) {
	m.upstreamCalls.WithLabelValues(endpoint, strconv.FormatBool(success)).Inc()
	m.upstreamDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) RecordPipelineOutcome(outcome string) {
	m.pipelineOutcomes.WithLabelValues(outcome).Inc()
}

func (m *PrometheusMetricsCollector) RecordNotification(kind string) {
	m.notifications.WithLabelValues(kind).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}
