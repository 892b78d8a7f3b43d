// Package almanac composes seven remap.VirtualMap stages into a fixed
// seed → location pipeline and searches for the smallest location whose
// inverted seed falls inside a declared seed range.
//
// 🚀 Pipeline
//
//	seed ─▶ soil ─▶ fertilizer ─▶ water ─▶ light ─▶ temperature ─▶ humidity ─▶ location
//
//	Locate threads a seed forward through Lookup of every stage; Invert
//	threads a location backward through ReverseLookup in the exact reverse
//	order; Trace records every intermediate value as an Instruction.
//
// 🔎 Search
//
//	MinimalValidLocation returns the smallest location L such that
//	Invert(L) lies in one of SeedRanges(). Three strategies are available
//	and return identical answers for every input:
//	  • StrategyScan     - try L = 0, 1, 2, … sequentially (reference)
//	  • StrategyParallel - scan consecutive blocks on a worker pool; the
//	                       smallest hit of the earliest batch wins
//	  • StrategyInterval - push the whole location domain backward as
//	                       interval pieces and intersect with seed ranges
//
// ⚙️ Usage:
//
//	a, err := almanac.New(seeds, stages)
//	if err != nil {
//	    return err // ErrMissingStage
//	}
//	loc := a.Locate(79)
//	best, err := a.MinimalValidLocation(
//	    almanac.WithStrategy(almanac.StrategyInterval),
//	)
//
// Seed ranges pair consecutive seeds as (start, length) and cover the
// closed interval [start, start+length], one value more than the usual
// reading of "length". The convention matches remap.NewRange.
//
// An Almanac is immutable after New and safe for concurrent use.
package almanac
