// Package almanac is the module root of a range-remapping engine: values are
// translated through a fixed chain of piecewise-linear lookup tables, and
// the smallest output reachable from a set of input ranges is searched for.
//
// 🚀 What is in here?
//
//	• remap/    - Interval, Range and VirtualMap: first-match-wins interval
//	              maps with identity fallback, forward and reverse
//	• almanac/  - the seven-stage seed → location pipeline, traces, seed
//	              ranges and the minimal-location search (scan, parallel,
//	              interval strategies)
//	• parser/   - text almanac parser and YAML fixtures
//	• cmd/almanac - CLI: solve, trace, search, version
//
// Quick ASCII example:
//
//	seed 79 ─▶ soil 81 ─▶ fertilizer 81 ─▶ water 81 ─▶ light 74
//	        ─▶ temperature 78 ─▶ humidity 78 ─▶ location 82
//
//	go install github.com/katalvlaran/almanac/cmd/almanac@latest
package almanac
