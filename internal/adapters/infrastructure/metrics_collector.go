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

const metricsNamespace = "newsletter"

// PrometheusMetricsCollector implements the MetricsCollector port.
// Each instance owns its registry.
type PrometheusMetricsCollector struct {
	registry        *prometheus.Registry
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	emailsSent      *prometheus.CounterVec
	issuesPublished *prometheus.CounterVec
	loginAttempts   *prometheus.CounterVec
	replays         prometheus.Counter
}

// NewPrometheusMetricsCollector registers all application metrics plus the
// Go runtime and process collectors
func NewPrometheusMetricsCollector() *PrometheusMetricsCollector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &PrometheusMetricsCollector{
		registry: registry,
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_requests_total",
				Help:      "The total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		emailsSent: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "emails_sent_total",
				Help:      "The total number of outbound email attempts",
			},
			[]string{"kind", "result"},
		),
		issuesPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "issues_published_total",
				Help:      "The total number of newsletter publish requests by outcome",
			},
			[]string{"outcome"},
		),
		loginAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "login_attempts_total",
				Help:      "The total number of credential checks",
			},
			[]string{"result"},
		),
		replays: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "idempotency_replays_total",
				Help:      "The total number of publish requests answered from a stored outcome",
			},
		),
	}
}

func (m *PrometheusMetricsCollector) RecordEmailSent(kind string, success bool) {
	m.emailsSent.WithLabelValues(kind, resultLabel(success)).Inc()
}

func (m *PrometheusMetricsCollector) RecordIssuePublished(outcome string) {
	m.issuesPublished.WithLabelValues(outcome).Inc()
}

func (m *PrometheusMetricsCollector) RecordIdempotencyReplay() {
	m.replays.Inc()
}

func (m *PrometheusMetricsCollector) RecordLoginAttempt(success bool) {
	m.loginAttempts.WithLabelValues(resultLabel(success)).Inc()
}

func (m *PrometheusMetricsCollector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Registry exposes the underlying registry
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func resultLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
