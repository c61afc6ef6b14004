// SPDX-License-Identifier: MIT

package bench

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	solverSequential = "sequential"
	solverParallel   = "parallel"

	resultOK       = "ok"
	resultMismatch = "mismatch"
	resultError    = "error"
)

// metrics are registered per Driver so several drivers (and tests) never
// collide on the default registry.
type metrics struct {
	// solveDuration tracks wall-clock time of every timed solve
	solveDuration *prometheus.HistogramVec

	// speedup holds the latest speedup ratio per worker count
	speedup *prometheus.GaugeVec

	// trials counts finished trials by result
	trials *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		solveDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fwbench_solve_duration_seconds",
			Help:    "Floyd-Warshall solve duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 18), // 0.1ms to ~13s
		}, []string{"solver", "workers"}),
		speedup: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fwbench_speedup_ratio",
			Help: "Sequential elapsed time divided by parallel elapsed time",
		}, []string{"workers"}),
		trials: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fwbench_trials_total",
			Help: "Parallel trials by result",
		}, []string{"result"}),
	}
}

func workersLabel(n int) string {
	return strconv.Itoa(n)
}
