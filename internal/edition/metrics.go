package edition

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	shuffleRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "giftshuffler_shuffle_runs_total",
		Help: "Shuffle runs by outcome",
	}, []string{"outcome"})

	shuffleAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "giftshuffler_shuffle_attempts",
		Help:    "Permutations drawn per successful shuffle",
		Buckets: []float64{1, 2, 5, 10, 50, 100, 500, 1000},
	})

	shuffleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "giftshuffler_shuffle_duration_seconds",
		Help:    "Time to run a shuffle, including storage round trips",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
	})
)

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	if k := KindOf(err); k != "" {
		return string(k)
	}
	return "error"
}
