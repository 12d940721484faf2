package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	prometheus.MustRegister(RunsTotal, UnitsMoved, SegmentsRelocated, SegmentSplits, InvariantViolations)
	prometheus.MustRegister(RunDuration, LastChecksum, MediumUnits)
}

// PushRun records one finished compaction run.
func PushRun(policy string, unitsMoved, relocated, splits int, elapsedSeconds float64) {
	RunsTotal.WithLabelValues(policy).Inc()
	UnitsMoved.WithLabelValues(policy).Add(float64(unitsMoved))
	SegmentsRelocated.WithLabelValues(policy).Add(float64(relocated))
	SegmentSplits.WithLabelValues(policy).Add(float64(splits))
	RunDuration.WithLabelValues(policy).Observe(elapsedSeconds)
}

func PushChecksum(policy string, checksum int64) {
	LastChecksum.WithLabelValues(policy).Set(float64(checksum))
}

func PushViolation(policy string) {
	InvariantViolations.WithLabelValues(policy).Inc()
}

// WriteTextfile dumps the default registry in the text exposition format,
// suitable for a node_exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
