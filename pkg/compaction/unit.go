package compaction

import (
	"github.com/downfa11-org/diskcompact/pkg/disk"
	"github.com/downfa11-org/diskcompact/pkg/types"
)

// CompactUnits fills free space from the left with units taken from the
// right end of the medium until no free unit precedes an occupied one.
//
// Units are moved in batches: the tail of the rightmost segment fills as much
// of the leftmost free segment as both allow. Each batch is the run of
// single-unit moves the unit-by-unit procedure would make, so split points
// are identical even when one segment spans several free segments.
func CompactUnits(m *disk.Medium) *Result {
	work := m.Clone()
	disk.SortOccupied(work.Occupied)
	free := disk.NormalizeFree(work.Free)

	occ := work.Occupied
	moved := make([]types.OccupiedSegment, 0, len(free))
	vacated := make([]types.FreeSegment, 0, len(free))
	var stats Stats

	fi := 0
	for len(occ) > 0 && fi < len(free) {
		last := &occ[len(occ)-1]
		f := &free[fi]
		if f.Start >= last.Start {
			break
		}

		n := min(last.Length, f.Length)
		moved = append(moved, types.OccupiedSegment{ID: last.ID, Start: f.Start, Length: n})
		vacated = append(vacated, types.FreeSegment{Start: last.End() - n, Length: n})
		stats.UnitsMoved += n

		last.Length -= n
		f.Start += n
		f.Length -= n

		if f.Length == 0 {
			fi++
		}
		if last.Length == 0 {
			occ = occ[:len(occ)-1]
			stats.SegmentsRelocated++
		} else {
			stats.Splits++
		}
	}

	occupied := make([]types.OccupiedSegment, 0, len(occ)+len(moved))
	occupied = append(occupied, occ...)
	occupied = append(occupied, moved...)
	disk.SortOccupied(occupied)

	remaining := append(free[fi:], vacated...)

	return &Result{
		Policy: PolicyUnit,
		Medium: &disk.Medium{
			Occupied: occupied,
			Free:     disk.NormalizeFree(remaining),
			Total:    work.Total,
			Files:    work.Files,
		},
		Stats: stats,
	}
}
