// Package metrics holds the prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Instrumentation struct {
	// counters
	CounterRequests         *prometheus.CounterVec
	CounterScansAnalyzed    prometheus.Counter
	CounterUnparsableScans  prometheus.Counter
	CounterSafetyAdvisories prometheus.Counter

	// histograms
	HistRequestDuration prometheus.Histogram
}

func New(namespace, subsystem string) *Instrumentation {
	return NewWithRegisterer(namespace, subsystem, prometheus.DefaultRegisterer)
}

// NewTest registers against a throwaway registry so parallel tests do not
// collide on metric names.
func NewTest() *Instrumentation {
	return NewWithRegisterer("fitsight", "test_server", prometheus.NewRegistry())
}

func NewWithRegisterer(namespace, subsystem string, reg prometheus.Registerer) *Instrumentation {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterScansAnalyzed := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "scans_analyzed",
		Help:      "The total number of body-composition scans analyzed",
	})
	counterUnparsableScans := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "scans_unparsable",
		Help:      "The total number of vision replies with no usable JSON",
	})
	counterSafetyAdvisories := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "safety_advisories",
		Help:      "The total number of rapid-change advisories raised",
	})

	histReqDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 60},
			Name:      "request_duration_seconds",
			Help:      "Total duration of all requests",
		},
	)

	return &Instrumentation{
		CounterRequests:         counterRequests,
		CounterScansAnalyzed:    counterScansAnalyzed,
		CounterUnparsableScans:  counterUnparsableScans,
		CounterSafetyAdvisories: counterSafetyAdvisories,
		HistRequestDuration:     histReqDuration,
	}
}
