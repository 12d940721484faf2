package compaction

import (
	"cmp"
	"slices"

	"github.com/downfa11-org/diskcompact/pkg/disk"
	"github.com/downfa11-org/diskcompact/pkg/types"
)

// CompactWhole visits files from the highest identity down and moves each
// one, unsplit, into the leftmost free segment that fits and lies strictly
// to its left. Files that find no such segment stay where they are.
func CompactWhole(m *disk.Medium) *Result {
	work := m.Clone()
	occ := work.Occupied
	slices.SortFunc(occ, func(a, b types.OccupiedSegment) int {
		if c := cmp.Compare(b.ID, a.ID); c != 0 {
			return c
		}
		return cmp.Compare(b.Start, a.Start)
	})

	idx := NewFreeIndex(disk.NormalizeFree(work.Free))
	var stats Stats

	for i := range occ {
		s := &occ[i]
		f, ok := idx.FirstFit(s.Length)
		if !ok || f.Start >= s.Start {
			continue
		}

		idx.Delete(f)
		if f.Length > s.Length {
			idx.Insert(types.FreeSegment{Start: f.Start + s.Length, Length: f.Length - s.Length})
		}
		idx.Insert(types.FreeSegment{Start: s.Start, Length: s.Length})

		s.Start = f.Start
		stats.UnitsMoved += s.Length
		stats.SegmentsRelocated++
	}

	disk.SortOccupied(occ)

	return &Result{
		Policy: PolicyWhole,
		Medium: &disk.Medium{
			Occupied: occ,
			Free:     disk.NormalizeFree(idx.Segments()),
			Total:    work.Total,
			Files:    work.Files,
		},
		Stats: stats,
	}
}
