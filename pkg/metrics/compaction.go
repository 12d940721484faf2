package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diskcompact_runs_total",
			Help: "Total number of compaction runs",
		},
		[]string{"policy"},
	)

	UnitsMoved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diskcompact_units_moved_total",
			Help: "Total number of storage units relocated",
		},
		[]string{"policy"},
	)

	SegmentsRelocated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diskcompact_segments_relocated_total",
			Help: "Total number of occupied segments that left their original position",
		},
		[]string{"policy"},
	)

	SegmentSplits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diskcompact_segment_splits_total",
			Help: "Total number of partial moves that left a remainder behind",
		},
		[]string{"policy"},
	)

	InvariantViolations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diskcompact_invariant_violations_total",
			Help: "Total number of layouts that failed validation",
		},
		[]string{"policy"},
	)

	RunDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "diskcompact_run_duration_seconds",
			Help:    "Histogram of compaction run durations",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"policy"},
	)

	LastChecksum = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "diskcompact_last_checksum",
			Help: "Checksum of the most recent compacted layout",
		},
		[]string{"policy"},
	)

	MediumUnits = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "diskcompact_medium_units",
		Help: "Length of the most recently loaded medium in units",
	})
)
