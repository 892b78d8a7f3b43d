package remap

// VirtualMap is one pipeline stage: an ordered list of Ranges queried with
// first-match-wins semantics and identity fallback.
type VirtualMap struct {
	ranges []Range
}

// NewVirtualMap returns an empty map. An empty map is the identity.
func NewVirtualMap() *VirtualMap {
	return &VirtualMap{ranges: make([]Range, 0, 4)}
}

// FromTriples builds a VirtualMap from (destination start, source start,
// length) triples in declaration order.
func FromTriples(triples [][3]uint64) *VirtualMap {
	m := &VirtualMap{ranges: make([]Range, 0, len(triples))}
	for _, t := range triples {
		m.Insert(t[1], t[2], t[0])
	}
	return m
}

// Insert appends a Range covering [sourceStart, sourceStart+length] mapped
// onto [destinationStart, destinationStart+length].
// Later inserts never shadow earlier ones.
func (m *VirtualMap) Insert(sourceStart, length, destinationStart uint64) {
	m.ranges = append(m.ranges, NewRange(destinationStart, sourceStart, length))
}

// Len returns the number of Ranges.
func (m *VirtualMap) Len() int {
	return len(m.ranges)
}

// Ranges returns a copy of the Ranges in declaration order.
func (m *VirtualMap) Ranges() []Range {
	out := make([]Range, len(m.ranges))
	copy(out, m.ranges)
	return out
}

// Lookup returns the translation of v by the first Range whose Source
// contains v, or v itself when no Range matches.
// Complexity: O(R).
func (m *VirtualMap) Lookup(v uint64) uint64 {
	for _, r := range m.ranges {
		if out, ok := r.Translate(v); ok {
			return out
		}
	}
	return v
}

// ReverseLookup returns the pre-image of v under the first Range whose
// Destination contains v, or v itself when no Range matches.
// Note that ReverseLookup is not in general the inverse of Lookup: it scans
// destinations with its own first-match order.
// Complexity: O(R).
func (m *VirtualMap) ReverseLookup(v uint64) uint64 {
	for _, r := range m.ranges {
		if out, ok := r.Reverse(v); ok {
			return out
		}
	}
	return v
}

// ReverseImage splits iv into Pieces such that for every v in iv exactly one
// Piece p has p.From.Contains(v), and p.Map(v) == m.ReverseLookup(v).
// Pieces are not sorted.
//
// Algorithm:
//  1. unclaimed = {iv}
//  2. For each Range r in declaration order, intersect every unclaimed
//     fragment with r.Destination; the overlap becomes a Piece translated
//     into r.Source, the (at most two) leftovers stay unclaimed.
//  3. Remaining unclaimed fragments map onto themselves.
//
// Complexity: O(R·P) where P is the number of produced pieces.
func (m *VirtualMap) ReverseImage(iv Interval) []Piece {
	if iv.Empty() {
		return nil
	}
	unclaimed := []Interval{iv}
	pieces := make([]Piece, 0, len(m.ranges)+1)
	next := make([]Interval, 0, 2)
	for _, r := range m.ranges {
		next = next[:0]
		for _, frag := range unclaimed {
			hit, ok := frag.Intersect(r.Destination)
			if !ok {
				next = append(next, frag)
				continue
			}
			lo := r.Source.Lo + (hit.Lo - r.Destination.Lo)
			pieces = append(pieces, Piece{
				From: hit,
				To:   Interval{Lo: lo, Hi: lo + (hit.Hi - hit.Lo)},
			})
			if frag.Lo < hit.Lo {
				next = append(next, Interval{Lo: frag.Lo, Hi: hit.Lo - 1})
			}
			if frag.Hi > hit.Hi {
				next = append(next, Interval{Lo: hit.Hi + 1, Hi: frag.Hi})
			}
		}
		unclaimed, next = next, unclaimed
		if len(unclaimed) == 0 {
			return pieces
		}
	}
	for _, frag := range unclaimed {
		pieces = append(pieces, Piece{From: frag, To: frag})
	}
	return pieces
}
