package disk

import (
	"cmp"
	"slices"

	"github.com/downfa11-org/diskcompact/pkg/types"
)

// Medium is a linear storage range [0, Total) partitioned into occupied and free segments.
type Medium struct {
	Occupied []types.OccupiedSegment
	Free     []types.FreeSegment
	Total    int

	// Files counts the identities handed out by the parser, empty files included.
	Files int
}

// Clone returns a deep copy so a compactor can own it exclusively.
func (m *Medium) Clone() *Medium {
	return &Medium{
		Occupied: slices.Clone(m.Occupied),
		Free:     slices.Clone(m.Free),
		Total:    m.Total,
		Files:    m.Files,
	}
}

func (m *Medium) OccupiedUnits() int {
	total := 0
	for _, s := range m.Occupied {
		total += s.Length
	}
	return total
}

func (m *Medium) FreeUnits() int {
	total := 0
	for _, s := range m.Free {
		total += s.Length
	}
	return total
}

// FileUnits returns the number of occupied units held by each identity.
func (m *Medium) FileUnits() map[int]int {
	units := make(map[int]int, m.Files)
	for _, s := range m.Occupied {
		units[s.ID] += s.Length
	}
	return units
}

// Render draws one character per unit: the identity digit for occupied
// units ('#' once identities exceed a single digit) and '.' for free ones.
func (m *Medium) Render() string {
	buf := make([]byte, m.Total)
	for i := range buf {
		buf[i] = '.'
	}
	for _, s := range m.Occupied {
		c := byte('#')
		if s.ID < 10 {
			c = byte('0' + s.ID)
		}
		for p := s.Start; p < s.End() && p < m.Total; p++ {
			buf[p] = c
		}
	}
	return string(buf)
}

// SortOccupied orders segments by start.
func SortOccupied(segs []types.OccupiedSegment) {
	slices.SortFunc(segs, func(a, b types.OccupiedSegment) int {
		return cmp.Compare(a.Start, b.Start)
	})
}

// NormalizeFree sorts free segments by start, drops empty ones and merges
// adjacent runs so every free segment is maximal.
func NormalizeFree(free []types.FreeSegment) []types.FreeSegment {
	sorted := slices.Clone(free)
	slices.SortFunc(sorted, func(a, b types.FreeSegment) int {
		return cmp.Compare(a.Start, b.Start)
	})

	out := sorted[:0]
	for _, f := range sorted {
		if f.Length <= 0 {
			continue
		}
		if n := len(out); n > 0 && out[n-1].End() == f.Start {
			out[n-1].Length += f.Length
			continue
		}
		out = append(out, f)
	}
	return out
}
