package compaction

import (
	"errors"
	"fmt"
	"strings"

	"github.com/downfa11-org/diskcompact/pkg/disk"
)

// Policy selects how occupied data is relocated.
type Policy string

const (
	// PolicyUnit moves single units from the right end into the leftmost free unit.
	PolicyUnit Policy = "unit"
	// PolicyWhole moves entire files into the leftmost free segment that fits.
	PolicyWhole Policy = "whole"
)

var ErrUnknownPolicy = errors.New("unknown compaction policy")

// Policies lists every policy in reporting order.
var Policies = []Policy{PolicyUnit, PolicyWhole}

func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "unit", "a":
		return PolicyUnit, nil
	case "whole", "b":
		return PolicyWhole, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// Label names the policy the way results are printed.
func (p Policy) Label() string {
	switch p {
	case PolicyUnit:
		return "policy A"
	case PolicyWhole:
		return "policy B"
	default:
		return string(p)
	}
}

type Stats struct {
	UnitsMoved        int
	SegmentsRelocated int
	Splits            int
}

// Result is the compacted layout. The input medium is left untouched.
type Result struct {
	Policy Policy
	Medium *disk.Medium
	Stats  Stats
}

// Compact applies p to a private copy of m.
func Compact(p Policy, m *disk.Medium) (*Result, error) {
	switch p {
	case PolicyUnit:
		return CompactUnits(m), nil
	case PolicyWhole:
		return CompactWhole(m), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(p))
	}
}
