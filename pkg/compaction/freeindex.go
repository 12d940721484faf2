package compaction

import (
	"github.com/downfa11-org/diskcompact/pkg/types"
	"github.com/google/btree"
)

const btreeDegree = 16

// FreeIndex keeps free segments bucketed by length, each bucket ordered by
// start. The leftmost segment of at least n units is the smallest minimum
// across buckets n..max.
type FreeIndex struct {
	buckets []*btree.BTreeG[types.FreeSegment]
	size    int
}

func lessByStart(a, b types.FreeSegment) bool {
	return a.Start < b.Start
}

func NewFreeIndex(free []types.FreeSegment) *FreeIndex {
	idx := &FreeIndex{}
	for _, f := range free {
		idx.Insert(f)
	}
	return idx
}

func (idx *FreeIndex) bucket(length int) *btree.BTreeG[types.FreeSegment] {
	for len(idx.buckets) <= length {
		idx.buckets = append(idx.buckets, nil)
	}
	if idx.buckets[length] == nil {
		idx.buckets[length] = btree.NewG(btreeDegree, lessByStart)
	}
	return idx.buckets[length]
}

// Insert adds f. Empty segments are ignored.
func (idx *FreeIndex) Insert(f types.FreeSegment) {
	if f.Length <= 0 {
		return
	}
	if _, replaced := idx.bucket(f.Length).ReplaceOrInsert(f); !replaced {
		idx.size++
	}
}

// Delete removes f and reports whether it was present.
func (idx *FreeIndex) Delete(f types.FreeSegment) bool {
	if f.Length <= 0 || f.Length >= len(idx.buckets) || idx.buckets[f.Length] == nil {
		return false
	}
	if _, ok := idx.buckets[f.Length].Delete(f); ok {
		idx.size--
		return true
	}
	return false
}

// FirstFit returns the leftmost free segment holding at least n units.
func (idx *FreeIndex) FirstFit(n int) (types.FreeSegment, bool) {
	var best types.FreeSegment
	found := false
	if n < 1 {
		n = 1
	}
	for l := n; l < len(idx.buckets); l++ {
		b := idx.buckets[l]
		if b == nil {
			continue
		}
		if f, ok := b.Min(); ok && (!found || f.Start < best.Start) {
			best, found = f, true
		}
	}
	return best, found
}

func (idx *FreeIndex) Len() int {
	return idx.size
}

// Segments returns every indexed segment in no particular order.
func (idx *FreeIndex) Segments() []types.FreeSegment {
	out := make([]types.FreeSegment, 0, idx.size)
	for _, b := range idx.buckets {
		if b == nil {
			continue
		}
		b.Ascend(func(f types.FreeSegment) bool {
			out = append(out, f)
			return true
		})
	}
	return out
}
