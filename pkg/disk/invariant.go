package disk

import (
	"cmp"
	stderrors "errors"
	"slices"

	"github.com/pkg/errors"
)

// ErrInvariantViolation marks a layout that no correct compactor can produce.
// It signals a bug, never bad input.
var ErrInvariantViolation = stderrors.New("invariant violation")

// Violationf wraps ErrInvariantViolation with a stack trace.
func Violationf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvariantViolation, format, args...)
}

type span struct {
	start, length int
}

// Validate checks that the segments are sorted, non-empty, pairwise disjoint
// and cover [0, Total) without gaps, and that identities are in range.
func (m *Medium) Validate() error {
	spans := make([]span, 0, len(m.Occupied)+len(m.Free))

	for i, s := range m.Occupied {
		if i > 0 && m.Occupied[i-1].Start >= s.Start {
			return Violationf("occupied segments out of order at %s", s)
		}
		if s.Length <= 0 {
			return Violationf("empty occupied segment %s", s)
		}
		if s.ID < 0 || s.ID >= m.Files {
			return Violationf("identity %d outside [0,%d)", s.ID, m.Files)
		}
		spans = append(spans, span{start: s.Start, length: s.Length})
	}
	for i, f := range m.Free {
		if i > 0 && m.Free[i-1].Start >= f.Start {
			return Violationf("free segments out of order at %s", f)
		}
		if f.Length <= 0 {
			return Violationf("empty free segment %s", f)
		}
		spans = append(spans, span{start: f.Start, length: f.Length})
	}

	slices.SortFunc(spans, func(a, b span) int {
		return cmp.Compare(a.start, b.start)
	})

	pos := 0
	for _, sp := range spans {
		switch {
		case sp.start < pos:
			return Violationf("segment at %d overlaps previous segment ending at %d", sp.start, pos)
		case sp.start > pos:
			return Violationf("gap [%d,%d) not covered by any segment", pos, sp.start)
		}
		pos = sp.start + sp.length
	}
	if pos != m.Total {
		return Violationf("segments cover [0,%d), medium length is %d", pos, m.Total)
	}
	return nil
}

// CheckConservation verifies that every identity holds as many units in
// after as it did in before.
func CheckConservation(before, after *Medium) error {
	if b, a := before.OccupiedUnits(), after.OccupiedUnits(); b != a {
		return Violationf("occupied units changed from %d to %d", b, a)
	}
	if before.Total != after.Total {
		return Violationf("medium length changed from %d to %d", before.Total, after.Total)
	}
	want := before.FileUnits()
	got := after.FileUnits()
	for id, n := range want {
		if got[id] != n {
			return Violationf("identity %d holds %d units, expected %d", id, got[id], n)
		}
	}
	if len(got) != len(want) {
		return Violationf("identity count changed from %d to %d", len(want), len(got))
	}
	return nil
}
