// Package checksum scores a compacted layout.
package checksum

import (
	"github.com/downfa11-org/diskcompact/pkg/disk"
	"github.com/downfa11-org/diskcompact/pkg/types"
)

// Segment returns the sum of id*position over every unit of s.
func Segment(s types.OccupiedSegment) int64 {
	start, n := int64(s.Start), int64(s.Length)
	if n <= 0 {
		return 0
	}
	return int64(s.ID) * (start*n + n*(n-1)/2)
}

// Sum adds Segment over segs. Order does not matter.
func Sum(segs []types.OccupiedSegment) int64 {
	var total int64
	for _, s := range segs {
		total += Segment(s)
	}
	return total
}

func Of(m *disk.Medium) int64 {
	return Sum(m.Occupied)
}
