package api

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors on a private registry.
type Metrics struct {
	Analyses        *prometheus.CounterVec
	Insights        prometheus.Counter
	RequestDuration *prometheus.HistogramVec
	registry        *prometheus.Registry
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		Analyses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vitalsense_analyses_total",
				Help: "Symptom analyses by resulting risk level",
			},
			[]string{"risk"},
		),
		Insights: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "vitalsense_insights_total",
				Help: "History insight reports generated",
			},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vitalsense_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		registry: registry,
	}
	registry.MustRegister(m.Analyses, m.Insights, m.RequestDuration)
	return m
}

func (m *Metrics) ObserveAnalysis(risk string) {
	m.Analyses.WithLabelValues(risk).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, seconds float64) {
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(seconds)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
