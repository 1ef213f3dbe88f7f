package geom

import (
	"math"

	"github.com/ljedrz/hex-spiral/cube"
	"github.com/ljedrz/hex-spiral/spiral"
)

// A is the angular width of one hexagon slice: 2π/6. The horizontal and
// vertical pixel steps of the grid are r·cos(A) and r·sin(A).
const A = 2 * math.Pi / 6

// tipVector returns the offset of the tip opening the given edge of ring k,
// in multiples of the horizontal and vertical pixel steps. Substituting a
// step count for k yields the per-hex step along that edge's direction.
func tipVector(edge int, k float64) (xm, ym float64) {
	switch edge {
	case spiral.DirTop:
		return 0, -2 * k
	case spiral.DirTopRight:
		return 3 * k, -k
	case spiral.DirBottomRight:
		return 3 * k, k
	case spiral.DirBottom:
		return 0, 2 * k
	case spiral.DirBottomLeft:
		return -3 * k, k
	case spiral.DirTopLeft:
		return -3 * k, -k
	default:
		panic("geom: edge index out of range")
	}
}

// PosToPoint returns the pixel center of the hex at the given spiral
// position, for hexes of radius r drawn around the window center (cx, cy).
// The y axis grows downward, as in screen coordinates.
func PosToPoint(pos int, r, cx, cy float64) (x, y float64) {
	if pos == 0 {
		return cx, cy
	}

	ring := spiral.Ring(pos)
	edgeIdx := spiral.RingEdgeIndex(pos)

	if spiral.IsAtRingTip(pos) {
		xm, ym := tipVector(edgeIdx, float64(ring))

		return cx + xm*r*math.Cos(A), cy + ym*r*math.Sin(A)
	}

	offset := spiral.RingOffset(ring)
	tipOffset := pos - offset - edgeIdx*ring
	tipPos := offset + edgeIdx*ring

	// Start from the tip opening the edge and step tipOffset hexes along
	// the edge's direction, which is two slots clockwise from the tip's own.
	tipX, tipY := PosToPoint(tipPos, r, cx, cy)
	xm, ym := tipVector((edgeIdx+2)%spiral.EdgeCount, float64(tipOffset))

	return tipX + xm*r*math.Cos(A), tipY + ym*r*math.Sin(A)
}

// PointToPos returns the spiral position of the hex whose face contains the
// pixel (x, y), for hexes of radius r drawn around the window center
// (cx, cy). It inverts PosToPoint: the pixel delta is converted to
// fractional axial coordinates with the standard flat-top inverse, rounded
// to the nearest valid cube coordinate, and resolved through cube.ToSpiral.
func PointToPos(x, y, cx, cy, r float64) (int, error) {
	dx, dy := x-cx, y-cy

	// PosToPoint places the hex with cube coordinate (q, r) at
	// x = 3/2·q·size, y = √3·(q/2 + r)·size; this is the matrix inverse.
	fq := dx * 2 / 3 / r
	fr := (-dx/3 + math.Sqrt(3)/3*dy) / r

	return cube.ToSpiral(roundToCube(fq, fr))
}

// roundToCube snaps fractional axial coordinates to the nearest valid cube
// coordinate, recomputing the component with the largest rounding error
// from the other two so that q + r + s = 0 holds.
func roundToCube(q, r float64) cube.Cube {
	s := -q - r
	rq, rr, rs := math.Round(q), math.Round(r), math.Round(s)
	dq, dr, ds := math.Abs(rq-q), math.Abs(rr-r), math.Abs(rs-s)

	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	default:
		rs = -rq - rr
	}

	return cube.New(int32(rq), int32(rr), int32(rs))
}
