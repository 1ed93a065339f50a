// Package metrics holds the Prometheus collectors for membership queries.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder records automaton decisions.
type Recorder struct {
	decisions *prometheus.CounterVec
	inputLen  *prometheus.HistogramVec
	duration  *prometheus.HistogramVec
}

// New creates a Recorder and registers its collectors with reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dfa_decisions_total",
				Help: "Total number of membership queries by automaton and result",
			},
			[]string{"automaton", "result"},
		),
		inputLen: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dfa_input_length",
				Help:    "Length in characters of queried inputs",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"automaton"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dfa_decision_duration_seconds",
				Help:    "Duration of membership queries",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"automaton"},
		),
	}
	reg.MustRegister(r.decisions, r.inputLen, r.duration)
	return r
}

// Observe records one decision.
func (r *Recorder) Observe(automaton string, accepted bool, inputLen int, elapsed time.Duration) {
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	r.decisions.WithLabelValues(automaton, result).Inc()
	r.inputLen.WithLabelValues(automaton).Observe(float64(inputLen))
	r.duration.WithLabelValues(automaton).Observe(elapsed.Seconds())
}
