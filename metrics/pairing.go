package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "swiss"

// PairingMetrics tracks round generation. All collectors are registered on
// the registry passed to NewPairingMetrics.
type PairingMetrics struct {
	roundsGenerated  *prometheus.CounterVec
	byeSwaps         prometheus.Counter
	failures         *prometheus.CounterVec
	generationTiming prometheus.Histogram
}

func NewPairingMetrics(registry *prometheus.Registry) *PairingMetrics {
	m := &PairingMetrics{
		roundsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pairing",
			Name:      "rounds_generated_total",
			Help:      "Rounds paired, labelled by whether the round carried a bye.",
		}, []string{"bye"}),
		byeSwaps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pairing",
			Name:      "bye_swaps_total",
			Help:      "Seat exchanges performed while reassigning byes.",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pairing",
			Name:      "failures_total",
			Help:      "Pairing requests that failed, labelled by reason.",
		}, []string{"reason"}),
		generationTiming: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pairing",
			Name:      "generation_seconds",
			Help:      "Time spent loading standings and pairing a round.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if registry != nil {
		registry.MustRegister(m.roundsGenerated, m.byeSwaps, m.failures, m.generationTiming)
	}
	return m
}

func (m *PairingMetrics) RoundGenerated(hasBye bool, swaps int, seconds float64) {
	label := "false"
	if hasBye {
		label = "true"
	}
	m.roundsGenerated.WithLabelValues(label).Inc()
	m.byeSwaps.Add(float64(swaps))
	m.generationTiming.Observe(seconds)
}

func (m *PairingMetrics) RoundFailed(reason string) {
	m.failures.WithLabelValues(reason).Inc()
}
