package almanac

import (
	"slices"

	"github.com/google/btree"

	"github.com/katalvlaran/almanac/remap"
)

// seedSetDegree is the btree node degree; seed lists are short.
const seedSetDegree = 8

// seedSet is the union of the seed ranges as disjoint, non-adjacent
// intervals ordered by Lo. Read-only after construction.
type seedSet struct {
	tree *btree.BTreeG[remap.Interval]
}

func lessByLo(a, b remap.Interval) bool {
	return a.Lo < b.Lo
}

// newSeedSet merges overlapping and touching intervals and indexes them.
func newSeedSet(ranges []remap.Interval) *seedSet {
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b remap.Interval) int {
		switch {
		case a.Lo < b.Lo:
			return -1
		case a.Lo > b.Lo:
			return 1
		}
		return 0
	})

	t := btree.NewG(seedSetDegree, lessByLo)
	var cur remap.Interval
	open := false
	for _, iv := range sorted {
		if iv.Empty() {
			continue
		}
		if open && (cur.Hi == ^uint64(0) || iv.Lo <= cur.Hi+1) {
			cur.Hi = max(cur.Hi, iv.Hi)
			continue
		}
		if open {
			t.ReplaceOrInsert(cur)
		}
		cur, open = iv, true
	}
	if open {
		t.ReplaceOrInsert(cur)
	}
	return &seedSet{tree: t}
}

// Len returns the number of merged intervals.
func (s *seedSet) Len() int {
	return s.tree.Len()
}

// Contains reports whether v lies in any interval.
func (s *seedSet) Contains(v uint64) bool {
	found := false
	s.tree.DescendLessOrEqual(remap.Interval{Lo: v}, func(iv remap.Interval) bool {
		found = iv.Contains(v)
		return false
	})
	return found
}

// FirstIn returns the smallest member of the set inside iv.
func (s *seedSet) FirstIn(iv remap.Interval) (uint64, bool) {
	if iv.Empty() {
		return 0, false
	}
	if s.Contains(iv.Lo) {
		return iv.Lo, true
	}
	var (
		v  uint64
		ok bool
	)
	s.tree.AscendGreaterOrEqual(remap.Interval{Lo: iv.Lo}, func(m remap.Interval) bool {
		if m.Lo <= iv.Hi {
			v, ok = m.Lo, true
		}
		return false
	})
	return v, ok
}
