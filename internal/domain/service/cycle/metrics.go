package cycle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	cyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "valuebets",
		Name:      "cycles_total",
		Help:      "Finished aggregation cycles by outcome.",
	}, []string{"result"})

	cycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "valuebets",
		Name:      "cycle_duration_seconds",
		Help:      "Wall time of one fetch-compute-emit cycle.",
		Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
	})

	recommendationsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "valuebets",
		Name:      "recommendations_computed_total",
		Help:      "Recommendations produced by the engine before dedup.",
	})

	emittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "valuebets",
		Name:      "recommendations_emitted_total",
		Help:      "Recommendations sent per tier.",
	}, []string{"tier"})

	notifyFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "valuebets",
		Name:      "notify_failures_total",
		Help:      "Failed notification sends per tier.",
	}, []string{"tier"})

	persistFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "valuebets",
		Name:      "persist_failures_total",
		Help:      "Bet rows that could not be written.",
	})
)
