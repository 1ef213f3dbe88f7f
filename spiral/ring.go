package spiral

// RingOffset returns the position at which the given ring starts: 0 for
// ring 0 (the center alone), 3·ring·(ring−1)+1 otherwise.
// Complexity: O(1).
func RingOffset(ring int) int {
	if ring == 0 {
		return 0
	}

	return 3*(ring-1)*ring + 1
}

// Ring returns the index of the ring containing the given position, i.e.
// the unique ring with RingOffset(ring) ≤ pos < RingOffset(ring+1).
// Panics if pos is negative.
// Complexity: O(√pos) — one offset probe per ring.
func Ring(pos int) int {
	if pos < 0 {
		panic("spiral: negative position")
	}

	ring := 0
	for RingOffset(ring+1) <= pos {
		ring++
	}

	return ring
}

// RingSize returns the number of hexes on the given ring: 1 for ring 0,
// 6·ring otherwise.
// Complexity: O(1).
func RingSize(ring int) int {
	if ring == 0 {
		return 1
	}

	return EdgeCount * ring
}

// RingPositions returns every position of the given ring in spiral order,
// from its first tip around to the position preceding the next ring.
// Complexity: O(ring) time and memory.
func RingPositions(ring int) []int {
	poss := make([]int, RingSize(ring))
	offset := RingOffset(ring)
	for i := range poss {
		poss[i] = offset + i
	}

	return poss
}

// IsAtRingTip reports whether the given position sits on one of the six
// tips (corners) of its ring. The center is its own degenerate tip.
func IsAtRingTip(pos int) bool {
	ring := Ring(pos)
	offset := RingOffset(ring)
	for n := 0; n < EdgeCount; n++ {
		if pos == offset+n*ring {
			return true
		}
	}

	return false
}

// RingEdgeIndex returns the index of the ring edge the given position
// belongs to, DirTop (0) for the top edge and increasing clockwise up to 5.
// A tip belongs to the edge it opens. The center belongs to no edge;
// passing 0 panics.
func RingEdgeIndex(pos int) int {
	if pos == 0 {
		panic("spiral: the center belongs to no ring edge")
	}

	ring := Ring(pos)

	return (pos - RingOffset(ring)) / ring
}
