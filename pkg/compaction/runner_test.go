package compaction_test

import (
	"errors"
	"testing"

	"github.com/downfa11-org/diskcompact/pkg/compaction"
	"github.com/downfa11-org/diskcompact/pkg/disk"
	"github.com/downfa11-org/diskcompact/pkg/metrics"
	"github.com/downfa11-org/diskcompact/pkg/types"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(c prometheus.Counter) float64 {
	m := &dto.Metric{}
	_ = c.Write(m)
	return m.GetCounter().GetValue()
}

func TestRun_RecordsMetrics(t *testing.T) {
	m := mustParse(t, "2333133121414131402")

	runs := counterValue(metrics.RunsTotal.WithLabelValues("whole"))
	moved := counterValue(metrics.UnitsMoved.WithLabelValues("whole"))

	res, err := compaction.Run(compaction.PolicyWhole, m, true)
	require.NoError(t, err)

	assert.Equal(t, runs+1, counterValue(metrics.RunsTotal.WithLabelValues("whole")))
	assert.Equal(t, moved+float64(res.Stats.UnitsMoved), counterValue(metrics.UnitsMoved.WithLabelValues("whole")))
}

func TestRun_BothPoliciesFromOneParse(t *testing.T) {
	m := mustParse(t, "2333133121414131402")

	a, err := compaction.Run(compaction.PolicyUnit, m, true)
	require.NoError(t, err)
	b, err := compaction.Run(compaction.PolicyWhole, m, true)
	require.NoError(t, err)

	assert.Equal(t, "0099811188827773336446555566..............", a.Medium.Render())
	assert.Equal(t, "00992111777.44.333....5555.6666.....8888..", b.Medium.Render())
}

func TestRun_UnknownPolicy(t *testing.T) {
	_, err := compaction.Run(compaction.Policy("zigzag"), mustParse(t, "12345"), true)
	assert.ErrorIs(t, err, compaction.ErrUnknownPolicy)
}

func TestVerify_DetectsBrokenResults(t *testing.T) {
	m := mustParse(t, "12345")

	tests := []struct {
		name   string
		result *compaction.Result
	}{
		{
			name: "LostUnits",
			result: &compaction.Result{
				Policy: compaction.PolicyUnit,
				Medium: &disk.Medium{
					Occupied: []types.OccupiedSegment{{ID: 0, Start: 0, Length: 1}, {ID: 1, Start: 1, Length: 3}},
					Free:     []types.FreeSegment{{Start: 4, Length: 11}},
					Total:    15, Files: 3,
				},
			},
		},
		{
			name: "SplitFile",
			result: &compaction.Result{
				Policy: compaction.PolicyWhole,
				Medium: &disk.Medium{
					Occupied: []types.OccupiedSegment{
						{ID: 0, Start: 0, Length: 1},
						{ID: 2, Start: 1, Length: 2},
						{ID: 1, Start: 3, Length: 3},
						{ID: 2, Start: 6, Length: 3},
					},
					Free:  []types.FreeSegment{{Start: 9, Length: 6}},
					Total: 15, Files: 3,
				},
			},
		},
		{
			name: "MovedRight",
			result: &compaction.Result{
				Policy: compaction.PolicyWhole,
				Medium: &disk.Medium{
					Occupied: []types.OccupiedSegment{
						{ID: 0, Start: 1, Length: 1},
						{ID: 1, Start: 3, Length: 3},
						{ID: 2, Start: 10, Length: 5},
					},
					Free:  []types.FreeSegment{{Start: 0, Length: 1}, {Start: 2, Length: 1}, {Start: 6, Length: 4}},
					Total: 15, Files: 3,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := compaction.Verify(m, tt.result)
			require.Error(t, err)
			assert.True(t, errors.Is(err, disk.ErrInvariantViolation), "got %v", err)
		})
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want compaction.Policy
		ok   bool
	}{
		{"unit", compaction.PolicyUnit, true},
		{"A", compaction.PolicyUnit, true},
		{" whole ", compaction.PolicyWhole, true},
		{"b", compaction.PolicyWhole, true},
		{"both", "", false},
	}
	for _, tt := range tests {
		got, err := compaction.ParsePolicy(tt.in)
		if tt.ok {
			assert.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, got, tt.in)
		} else {
			assert.ErrorIs(t, err, compaction.ErrUnknownPolicy, tt.in)
		}
	}
	assert.Equal(t, "policy A", compaction.PolicyUnit.Label())
	assert.Equal(t, "policy B", compaction.PolicyWhole.Label())
}
