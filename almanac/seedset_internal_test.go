package almanac

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/almanac/remap"
)

// TestSeedSet_Merge folds overlapping and touching ranges together.
func TestSeedSet_Merge(t *testing.T) {
	s := newSeedSet([]remap.Interval{
		{Lo: 50, Hi: 60},
		{Lo: 10, Hi: 20},
		{Lo: 21, Hi: 25}, // touches [10..20]
		{Lo: 55, Hi: 70}, // overlaps [50..60]
		{Lo: 5, Hi: 4},   // empty
		{Lo: 90, Hi: 90},
	})
	assert.Equal(t, 3, s.Len())

	for _, v := range []uint64{10, 20, 21, 25, 50, 70, 90} {
		assert.True(t, s.Contains(v), "%d should be a member", v)
	}
	for _, v := range []uint64{0, 9, 26, 49, 71, 89, 91} {
		assert.False(t, s.Contains(v), "%d should not be a member", v)
	}
}

// TestSeedSet_FirstIn finds the smallest member within an interval.
func TestSeedSet_FirstIn(t *testing.T) {
	s := newSeedSet([]remap.Interval{{Lo: 10, Hi: 20}, {Lo: 40, Hi: 50}})

	cases := []struct {
		iv   remap.Interval
		want uint64
		ok   bool
	}{
		{remap.Interval{Lo: 0, Hi: 5}, 0, false},
		{remap.Interval{Lo: 0, Hi: 10}, 10, true},
		{remap.Interval{Lo: 15, Hi: 100}, 15, true},
		{remap.Interval{Lo: 21, Hi: 39}, 0, false},
		{remap.Interval{Lo: 21, Hi: 45}, 40, true},
		{remap.Interval{Lo: 51, Hi: math.MaxUint64}, 0, false},
		{remap.Interval{Lo: 9, Hi: 8}, 0, false},
	}
	for _, tc := range cases {
		got, ok := s.FirstIn(tc.iv)
		assert.Equal(t, tc.ok, ok, "FirstIn(%v)", tc.iv)
		if tc.ok {
			assert.Equal(t, tc.want, got, "FirstIn(%v)", tc.iv)
		}
	}
}

// TestSeedSet_TopOfDomain merges a range ending at math.MaxUint64 without overflow.
func TestSeedSet_TopOfDomain(t *testing.T) {
	s := newSeedSet([]remap.Interval{{Lo: 100, Hi: math.MaxUint64}, {Lo: 200, Hi: 300}})
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains(math.MaxUint64))
	assert.False(t, s.Contains(99))
}

// TestSaturating covers the overflow helpers used by the parallel scan.
func TestSaturating(t *testing.T) {
	assert.Equal(t, uint64(7), satAdd(3, 4))
	assert.Equal(t, uint64(math.MaxUint64), satAdd(math.MaxUint64, 1))
	assert.Equal(t, uint64(12), satMul(3, 4))
	assert.Equal(t, uint64(0), satMul(0, math.MaxUint64))
	assert.Equal(t, uint64(math.MaxUint64), satMul(1<<40, 1<<40))
}
