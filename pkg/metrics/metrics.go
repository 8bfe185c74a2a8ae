package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор Prometheus-метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках передается nil
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal      *prometheus.CounterVec
	HTTPRequestDuration    *prometheus.HistogramVec
	FlowMutationsTotal     *prometheus.CounterVec
	ProfessionalFetchTotal *prometheus.CounterVec
	WatchSubscribers       prometheus.Gauge
}

// New регистрирует метрики в собственном registry
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),
		FlowMutationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_flow_mutations_total",
			Help:        "Committed booking flow mutations by operation",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		ProfessionalFetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "professional_fetch_total",
			Help:        "Available professionals requests by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		WatchSubscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "booking_flow_watch_subscribers",
			Help:        "Open booking flow watch connections",
			ConstLabels: constLabels,
		}),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.FlowMutationsTotal,
		m.ProfessionalFetchTotal,
		m.WatchSubscribers,
	)

	return m
}

// Handler HTTP-обработчик для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) RecordFlowMutation(operation string) {
	if m == nil {
		return
	}
	m.FlowMutationsTotal.WithLabelValues(operation).Inc()
}

func (m *Metrics) RecordProfessionalFetch(outcome string) {
	if m == nil {
		return
	}
	m.ProfessionalFetchTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) WatchOpened() {
	if m == nil {
		return
	}
	m.WatchSubscribers.Inc()
}

func (m *Metrics) WatchClosed() {
	if m == nil {
		return
	}
	m.WatchSubscribers.Dec()
}
