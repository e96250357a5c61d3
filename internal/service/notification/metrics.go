package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// createdTotal counts persisted notifications.
	// Labels: type
	createdTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contracts",
		Subsystem: "notification",
		Name:      "created_total",
		Help:      "Total notifications persisted",
	}, []string{"type"})

	// emailTotal counts email dispatch attempts.
	// Labels: result (sent, failed, skipped)
	emailTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contracts",
		Subsystem: "notification",
		Name:      "email_total",
		Help:      "Email dispatch attempts by result",
	}, []string{"result"})
)
