package compaction

import (
	"fmt"
	"time"

	"github.com/downfa11-org/diskcompact/pkg/disk"
	"github.com/downfa11-org/diskcompact/pkg/metrics"
	"github.com/downfa11-org/diskcompact/util"
)

// Run compacts m under p and records the run. With verify set, the result
// is checked for coverage, disjointness and per-identity conservation, and
// whole-file results additionally for splits and rightward moves.
func Run(p Policy, m *disk.Medium, verify bool) (*Result, error) {
	started := time.Now()
	res, err := Compact(p, m)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(started)

	metrics.PushRun(string(p), res.Stats.UnitsMoved, res.Stats.SegmentsRelocated, res.Stats.Splits, elapsed.Seconds())
	util.WithFields(map[string]interface{}{
		"policy":    string(p),
		"moved":     res.Stats.UnitsMoved,
		"relocated": res.Stats.SegmentsRelocated,
		"splits":    res.Stats.Splits,
		"elapsed":   elapsed,
	}).Debug("compaction finished")

	if verify {
		if err := Verify(m, res); err != nil {
			metrics.PushViolation(string(p))
			return nil, err
		}
	}
	return res, nil
}

// Verify checks res against the medium it was computed from.
func Verify(before *disk.Medium, res *Result) error {
	if err := res.Medium.Validate(); err != nil {
		return fmt.Errorf("%s result: %w", res.Policy, err)
	}
	if err := disk.CheckConservation(before, res.Medium); err != nil {
		return fmt.Errorf("%s result: %w", res.Policy, err)
	}
	if res.Policy == PolicyWhole {
		if err := checkWholeMoves(before, res.Medium); err != nil {
			return fmt.Errorf("%s result: %w", res.Policy, err)
		}
	}
	return nil
}

func checkWholeMoves(before, after *disk.Medium) error {
	origin := make(map[int]int, len(before.Occupied))
	for _, s := range before.Occupied {
		origin[s.ID] = s.Start
	}
	for _, s := range after.Occupied {
		start, ok := origin[s.ID]
		if !ok {
			return disk.Violationf("identity %d appeared during compaction", s.ID)
		}
		if s.Start > start {
			return disk.Violationf("%s moved right from %d", s, start)
		}
	}
	if len(after.Occupied) != len(before.Occupied) {
		return disk.Violationf("segment count changed from %d to %d", len(before.Occupied), len(after.Occupied))
	}
	return nil
}
