package almanac

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/almanac/remap"
)

// Almanac is an immutable seven-stage pipeline plus the seeds it was
// declared with.
type Almanac struct {
	seeds      []uint64
	stages     [StageCount]*remap.VirtualMap
	seedRanges []remap.Interval
	seedSet    *seedSet
}

// New assembles an Almanac from seeds and one VirtualMap per Stage.
// Returns ErrMissingStage (naming the first absent stage in pipeline order)
// if any stage is absent or nil; no partial pipeline is ever built.
// The seeds slice is copied; the maps are shared and must not be mutated
// afterwards.
func New(seeds []uint64, stages map[Stage]*remap.VirtualMap) (*Almanac, error) {
	a := &Almanac{seeds: slices.Clone(seeds)}
	for _, s := range Stages() {
		m := stages[s]
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingStage, s)
		}
		a.stages[s] = m
	}
	a.seedRanges = pairSeeds(a.seeds)
	a.seedSet = newSeedSet(a.seedRanges)

	return a, nil
}

// NewFromNamed assembles an Almanac from stage tables keyed by their exact
// input names ("seed-to-soil", …) holding (destination start, source start,
// length) triples. Names that are not one of the seven stages are ignored.
func NewFromNamed(seeds []uint64, tables map[string][][3]uint64) (*Almanac, error) {
	stages := make(map[Stage]*remap.VirtualMap, StageCount)
	for name, triples := range tables {
		s, ok := ParseStage(name)
		if !ok {
			continue
		}
		stages[s] = remap.FromTriples(triples)
	}
	return New(seeds, stages)
}

// pairSeeds groups seeds as (start, length) pairs into closed intervals
// [start, start+length]. A trailing unpaired seed is dropped.
func pairSeeds(seeds []uint64) []remap.Interval {
	out := make([]remap.Interval, 0, len(seeds)/2)
	for i := 0; i+1 < len(seeds); i += 2 {
		out = append(out, remap.Span(seeds[i], seeds[i+1]))
	}
	return out
}

// Seeds returns a copy of the declared seeds.
func (a *Almanac) Seeds() []uint64 {
	return slices.Clone(a.seeds)
}

// SeedRanges returns a copy of the derived seed ranges in declaration order.
func (a *Almanac) SeedRanges() []remap.Interval {
	return slices.Clone(a.seedRanges)
}

// Incomplete reports whether the seed list has an odd length, leaving the
// last seed without a length.
func (a *Almanac) Incomplete() bool {
	return len(a.seeds)%2 == 1
}

// Stage returns the VirtualMap backing s, or nil for an unknown stage.
func (a *Almanac) Stage(s Stage) *remap.VirtualMap {
	if s < 0 || int(s) >= StageCount {
		return nil
	}
	return a.stages[s]
}

// Locate maps seed through every stage in forward order.
func (a *Almanac) Locate(seed uint64) uint64 {
	v := seed
	for _, m := range a.stages {
		v = m.Lookup(v)
	}
	return v
}

// Invert maps location back through every stage in reverse order.
func (a *Almanac) Invert(location uint64) uint64 {
	v := location
	for i := StageCount - 1; i >= 0; i-- {
		v = a.stages[i].ReverseLookup(v)
	}
	return v
}

// Trace is Locate that keeps every intermediate value.
func (a *Almanac) Trace(seed uint64) Instruction {
	var path [StageCount + 1]uint64
	path[0] = seed
	for i, m := range a.stages {
		path[i+1] = m.Lookup(path[i])
	}
	return instructionFromPath(path)
}

// AllLocations yields (seed, location) for every literal seed, in
// declaration order. The sequence is lazy and can be ranged over repeatedly.
func (a *Almanac) AllLocations() iter.Seq2[uint64, uint64] {
	return func(yield func(uint64, uint64) bool) {
		for _, s := range a.seeds {
			if !yield(s, a.Locate(s)) {
				return
			}
		}
	}
}

// Instructions traces every literal seed, in declaration order.
func (a *Almanac) Instructions() []Instruction {
	out := make([]Instruction, 0, len(a.seeds))
	for _, s := range a.seeds {
		out = append(out, a.Trace(s))
	}
	return out
}

// LowestLocation returns the trace of the literal seed with the smallest
// location. Ties keep the earliest seed. ok is false when there are no seeds.
func (a *Almanac) LowestLocation() (best Instruction, ok bool) {
	for _, s := range a.seeds {
		in := a.Trace(s)
		if !ok || in.Location < best.Location {
			best, ok = in, true
		}
	}
	return best, ok
}

// InSeedRange reports whether seed lies in any declared seed range.
func (a *Almanac) InSeedRange(seed uint64) bool {
	return a.seedSet.Contains(seed)
}
