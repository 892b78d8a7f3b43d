// Package remap implements piecewise-linear interval maps over non-negative
// integers, the building block of the almanac pipeline.
//
// 🚀 What is a VirtualMap?
//
//	A VirtualMap is an ordered list of Ranges. Each Range translates a closed
//	source interval onto a destination interval of the same size by a
//	constant offset. Values not covered by any Range pass through unchanged
//	(identity fallback).
//
//	    source       destination
//	    [98..100] ──▶ [50..52]
//	    [50..98]  ──▶ [52..100]
//	    anything else ──▶ itself
//
// ✨ Key properties:
//   - first matching Range wins, in declaration order, for both directions
//   - Lookup (source → destination) and ReverseLookup (destination → source)
//   - ReverseImage splits a whole interval of outputs into translated pieces
//     with exactly the same first-match semantics as ReverseLookup
//
// ⚠️ Length convention:
//
//	NewRange(dst, src, length) covers the closed interval [src, src+length],
//	i.e. length+1 values. A Range of length 0 therefore maps exactly one
//	value. This convention is deliberate and must be preserved by callers
//	that compare against reference answers.
//
// ⚙️ Usage:
//
//	m := remap.NewVirtualMap()
//	m.Insert(98, 2, 50)  // sourceStart, length, destinationStart
//	m.Insert(50, 48, 52)
//	m.Lookup(79)         // 81
//	m.ReverseLookup(81)  // 79
//	m.Lookup(10)         // 10 (identity)
//
// Complexity:
//
//   - Lookup, ReverseLookup: O(R) for R ranges
//   - ReverseImage:          O(R·P) for P produced pieces
//
// A VirtualMap is not safe for concurrent Insert; once built it is read-only
// and may be queried from any number of goroutines.
package remap
