package types

import "fmt"

// OccupiedSegment is a contiguous run of units owned by one file identity.
type OccupiedSegment struct {
	ID     int
	Start  int
	Length int
}

// End returns the first unit past the segment.
func (s OccupiedSegment) End() int {
	return s.Start + s.Length
}

func (s OccupiedSegment) String() string {
	return fmt.Sprintf("Occupied(%d,%d,%d)", s.ID, s.Start, s.Length)
}

// FreeSegment is a contiguous run of unassigned units. Free segments carry no identity.
type FreeSegment struct {
	Start  int
	Length int
}

func (s FreeSegment) End() int {
	return s.Start + s.Length
}

func (s FreeSegment) String() string {
	return fmt.Sprintf("Free(%d,%d)", s.Start, s.Length)
}
