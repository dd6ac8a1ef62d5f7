// Package metrics exposes Prometheus counters for the client services.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lumina_client"

// Insight outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeFallback = "fallback"
)

// Metrics groups the counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	insightsTotal *prometheus.CounterVec
	authOpsTotal  *prometheus.CounterVec
}

// New registers the counters with reg. Pass prometheus.NewRegistry() in
// tests to avoid clashes on the default registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		insightsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "insights_total",
				Help:      "Insight requests by category and outcome (success or fallback).",
			},
			[]string{"category", "outcome"},
		),
		authOpsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "auth_operations_total",
				Help:      "Signup, login and logout calls by result.",
			},
			[]string{"op", "result"},
		),
	}
}

// ObserveInsight counts one insight request with its outcome.
func (m *Metrics) ObserveInsight(category, outcome string) {
	if m == nil {
		return
	}
	m.insightsTotal.WithLabelValues(category, outcome).Inc()
}

// ObserveAuth counts one auth call as "ok" or "error" depending on err.
func (m *Metrics) ObserveAuth(op string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.authOpsTotal.WithLabelValues(op, result).Inc()
}

// InsightCount reports the current value of one insight series.
func (m *Metrics) InsightCount(category, outcome string) float64 {
	if m == nil {
		return 0
	}
	return counterValue(m.insightsTotal.WithLabelValues(category, outcome))
}

// AuthCount reports the current value of one auth series.
func (m *Metrics) AuthCount(op, result string) float64 {
	if m == nil {
		return 0
	}
	return counterValue(m.authOpsTotal.WithLabelValues(op, result))
}
