package cube

import "github.com/ljedrz/hex-spiral/spiral"

// Cube is a cube coordinate (q, r, s). Valid coordinates satisfy
// q + r + s = 0; the zero value is the central hex.
type Cube struct {
	Q, R, S int32
}

// New builds a Cube from its three components.
func New(q, r, s int32) Cube {
	return Cube{Q: q, R: r, S: s}
}

// Sum returns q + r + s, which is 0 for every valid coordinate.
func (c Cube) Sum() int32 {
	return c.Q + c.R + c.S
}

// AbsMax returns the largest absolute component. For a valid coordinate it
// equals the index of the ring the hex sits on.
func (c Cube) AbsMax() int32 {
	return max(abs(c.Q), abs(c.R), abs(c.S))
}

// Add returns the component-wise sum of two coordinates.
func (c Cube) Add(o Cube) Cube {
	return Cube{Q: c.Q + o.Q, R: c.R + o.R, S: c.S + o.S}
}

// Sub returns the component-wise difference of two coordinates.
func (c Cube) Sub(o Cube) Cube {
	return Cube{Q: c.Q - o.Q, R: c.R - o.R, S: c.S - o.S}
}

// Distance returns the hex distance between two coordinates: the fewest
// neighbor steps from one to the other.
func Distance(a, b Cube) int32 {
	return a.Sub(b).AbsMax()
}

// FromSpiral converts a spiral position to its cube coordinate. The q and r
// components are evaluated with a growing truncated triangle wave over the
// position's ring, phase-shifted by 0 and 4 respectively; s follows from
// the q + r + s = 0 invariant.
// Complexity: O(√pos) for the ring lookup, O(1) arithmetic.
func FromSpiral(pos int) Cube {
	// The origin is a special case: (0, 0, 0).
	if pos == 0 {
		return Cube{}
	}

	ring := spiral.Ring(pos)
	offset := spiral.RingOffset(ring)

	q := growingTruncTri(float32(pos), float32(ring), float32(offset), 0)
	r := growingTruncTri(float32(pos), float32(ring), float32(offset), 4)

	return Cube{Q: q, R: r, S: -q - r}
}

// ToSpiral converts a cube coordinate to its spiral position. Returns
// ErrInvalidCube when the components do not sum to zero, and ErrNotFound
// when no position on the candidate ring converts back to c (unreachable
// for coordinates that satisfy the invariant).
// Complexity: O(k²) where k is the coordinate's ring index.
func ToSpiral(c Cube) (int, error) {
	if c == (Cube{}) {
		return 0, nil
	}
	if c.Sum() != 0 {
		return 0, ErrInvalidCube
	}

	// The largest absolute component pins down the ring, leaving its 6k
	// positions as the only candidates.
	ring := int(c.AbsMax())
	offset := spiral.RingOffset(ring)
	for pos := offset; pos < offset+spiral.RingSize(ring); pos++ {
		if FromSpiral(pos) == c {
			return pos, nil
		}
	}

	return 0, ErrNotFound
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}

	return v
}
