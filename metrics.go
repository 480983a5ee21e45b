package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics tracks rule evaluation outcomes for the /metrics endpoint.
type metrics struct {
	registry *prometheus.Registry

	// Evaluations by outcome: "true", "false" or "error"
	evaluationsTotal *prometheus.CounterVec

	// Combined compile plus evaluate duration
	evaluationDuration prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		evaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rulegate",
				Name:      "rule_evaluations_total",
				Help:      "Total number of rule evaluations by outcome",
			},
			[]string{"outcome"},
		),
		evaluationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "rulegate",
				Name:      "rule_evaluation_duration_seconds",
				Help:      "Duration of rule compilation and evaluation in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.000001, 2, 15),
			},
		),
	}

	m.registry.MustRegister(m.evaluationsTotal, m.evaluationDuration)

	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metrics) observe(outcome string, seconds float64) {
	m.evaluationsTotal.WithLabelValues(outcome).Inc()
	m.evaluationDuration.Observe(seconds)
}
