package remap

import "fmt"

// Interval is a closed interval [Lo, Hi] of non-negative integers.
// An Interval with Lo > Hi is empty.
type Interval struct {
	Lo, Hi uint64
}

// Span returns the closed interval [start, start+length].
func Span(start, length uint64) Interval {
	return Interval{Lo: start, Hi: start + length}
}

// Contains reports whether v lies within [Lo, Hi].
func (iv Interval) Contains(v uint64) bool {
	return iv.Lo <= v && v <= iv.Hi
}

// Empty reports whether the interval holds no values.
func (iv Interval) Empty() bool {
	return iv.Lo > iv.Hi
}

// Len returns Hi-Lo+1, the number of values in the interval.
// The full uint64 domain saturates at math.MaxUint64.
func (iv Interval) Len() uint64 {
	if iv.Empty() {
		return 0
	}
	n := iv.Hi - iv.Lo
	if n == ^uint64(0) {
		return n
	}
	return n + 1
}

// Intersect returns the overlap of iv and o and whether it is non-empty.
func (iv Interval) Intersect(o Interval) (Interval, bool) {
	lo, hi := max(iv.Lo, o.Lo), min(iv.Hi, o.Hi)
	if lo > hi {
		return Interval{}, false
	}
	return Interval{Lo: lo, Hi: hi}, true
}

// String renders the interval as "[lo..hi]".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d..%d]", iv.Lo, iv.Hi)
}

// Range is a single mapping rule: every value of Source is translated onto
// Destination by the constant offset Destination.Lo - Source.Lo.
// Source and Destination always have the same length. Immutable.
type Range struct {
	Source      Interval
	Destination Interval
}

// NewRange builds a Range from an almanac triple (destination start,
// source start, length). Both intervals are closed and span length+1 values.
// No validation is performed.
func NewRange(destinationStart, sourceStart, length uint64) Range {
	return Range{
		Source:      Span(sourceStart, length),
		Destination: Span(destinationStart, length),
	}
}

// Translate maps v from Source into Destination. ok is false when v is not
// covered by Source.
func (r Range) Translate(v uint64) (out uint64, ok bool) {
	if !r.Source.Contains(v) {
		return v, false
	}
	return r.Destination.Lo + (v - r.Source.Lo), true
}

// Reverse maps v from Destination back into Source. ok is false when v is
// not covered by Destination.
func (r Range) Reverse(v uint64) (out uint64, ok bool) {
	if !r.Destination.Contains(v) {
		return v, false
	}
	return r.Source.Lo + (v - r.Destination.Lo), true
}

// Piece is one fragment of a ReverseImage: every value From.Lo+k maps to
// To.Lo+k. From and To have the same length.
type Piece struct {
	From Interval
	To   Interval
}

// Map translates v (which must lie in From) into To.
func (p Piece) Map(v uint64) uint64 {
	return p.To.Lo + (v - p.From.Lo)
}
