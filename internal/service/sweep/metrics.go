package sweep

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// runsTotal counts sweep runs.
	// Labels: result (ok, error)
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contracts",
		Subsystem: "sweep",
		Name:      "runs_total",
		Help:      "Total sweep runs by result",
	}, []string{"result"})

	// runDuration measures how long one sweep takes.
	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "contracts",
		Subsystem: "sweep",
		Name:      "duration_seconds",
		Help:      "Sweep run duration in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
	})

	// itemsTotal counts contracts and tasks that hit a threshold.
	// Labels: pass (contract, task), outcome (notified, failed)
	itemsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contracts",
		Subsystem: "sweep",
		Name:      "items_total",
		Help:      "Sweep items that reached a threshold, by outcome",
	}, []string{"pass", "outcome"})
)
