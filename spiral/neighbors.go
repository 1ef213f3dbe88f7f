package spiral

// RingNeighbors returns the two same-ring neighbors of a non-center
// position as [previous, next]. The ring wraps around: the previous
// neighbor of a ring's first position is the last position of that same
// ring, and the next neighbor of the last position is the first.
// Panics for the center, which has no ring to share.
func RingNeighbors(pos int) [2]int {
	if pos == 0 {
		panic("spiral: the center has no same-ring neighbors")
	}

	ring := Ring(pos)

	switch {
	case pos == RingOffset(ring):
		return [2]int{RingOffset(ring+1) - 1, pos + 1}
	case pos == RingOffset(ring+1)-1:
		return [2]int{pos - 1, RingOffset(ring)}
	default:
		return [2]int{pos - 1, pos + 1}
	}
}

// Neighbors returns the six neighbors of the given position, always in the
// same absolute clockwise order: slot DirTop holds the hex directly above
// pos, and the remaining slots follow clockwise. The center's neighbors
// are the whole first ring, [1 2 3 4 5 6].
//
// Internally the six are assembled in a canonical edge-relative order
// (upper ring, same-ring successor, lower ring, same-ring predecessor) and
// rotated right by the edge index, which keeps the absolute orientation
// identical across all six edges of a ring.
func Neighbors(pos int) [6]int {
	ring := Ring(pos)
	if ring == 0 {
		return [6]int{1, 2, 3, 4, 5, 6}
	}

	edgeIdx := RingEdgeIndex(pos)

	var poss [6]int
	if IsAtRingTip(pos) {
		// 1 neighbor from the lower ring, 3 from the upper ring, 2 from the same ring.
		lower := RingOffset(ring-1) + (ring-1)*edgeIdx
		ringNbrs := RingNeighbors(pos)
		// The tip's outward counterpart on the upper ring; at the end of a
		// ring the spiral has already wrapped, so the counterpart of the
		// last tip is the next ring's second-to-last position.
		var upperTip int
		if pos == RingOffset(ring+1)-1 {
			upperTip = RingOffset(ring+2) - 2
		} else {
			upperTip = RingOffset(ring+1) + (ring+1)*edgeIdx
		}
		upperNbrs := RingNeighbors(upperTip)

		poss = [6]int{upperTip, upperNbrs[1], ringNbrs[1], lower, ringNbrs[0], upperNbrs[0]}
	} else {
		// 2 neighbors from each of the lower, upper and same rings.
		ringPos := pos - RingOffset(ring)
		tipOffset := ringPos - edgeIdx*ring
		var lower1, lower2 int
		if pos == RingOffset(ring+1)-1 {
			// The ring's final position leans on its own first position
			// and on the first position of the lower ring.
			lower1, lower2 = RingOffset(ring)-1, RingOffset(ring-1)
		} else {
			lower1 = RingOffset(ring-1) + edgeIdx*(ring-1) + tipOffset - 1
			lower2 = lower1 + 1
		}
		ringNbrs := RingNeighbors(pos)
		upper1 := RingOffset(ring+1) + edgeIdx*(ring+1) + tipOffset
		upper2 := upper1 + 1

		poss = [6]int{upper1, upper2, ringNbrs[1], lower2, lower1, ringNbrs[0]}
	}

	return rotateRight(poss, edgeIdx)
}

// rotateRight shifts every element n slots to the right, wrapping around.
func rotateRight(poss [6]int, n int) [6]int {
	var out [6]int
	for i, p := range poss {
		out[(i+n)%len(poss)] = p
	}

	return out
}

// AreNeighbors reports whether the two given positions border each other.
func AreNeighbors(pos1, pos2 int) bool {
	for _, n := range Neighbors(pos1) {
		if n == pos2 {
			return true
		}
	}

	return false
}
