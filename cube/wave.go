package cube

import "math"

// growingTruncTri evaluates y = f(x) where f is a truncated triangle wave
// of base period p = 6 and base amplitude 1.5, both multiplied by the cycle
// number c (the ring index), so the wave grows taller and broader with each
// ring. xPrime is the x at which the current cycle began and phi is a phase
// shift selecting the axis: 0 yields q, 4 yields r.
//
// The arithmetic is deliberately single-precision: the closed form is
// defined over float32 and the truncated integer outputs must reproduce it
// exactly.
func growingTruncTri(x, c, xPrime, phi float32) int32 {
	// The base period of the triangle wave during cycle 1 (the number of
	// sides a hexagon has).
	const p = 6.0

	// How far along the current cycle x is.
	offsetX := x - xPrime

	// The modulo form of the triangle wave equation
	// (https://en.wikipedia.org/wiki/Triangle_wave), with the period and
	// amplitude scaled by the cycle number.
	s := offsetX - (c/4)*(2*phi+p)
	pStar := c * p

	// The wave before truncation.
	y1 := 6/p*abs32(modulo(s, pStar)-c*p/2) - 1.5*c

	// Truncate so the amplitude never exceeds the cycle number, clamping
	// the waveform to the hexagonal face of the current ring.
	if abs32(y1) > c {
		if y1 > 0 {
			return int32(c)
		}

		return int32(-c)
	}

	return int32(y1)
}

// modulo is the non-negative remainder of a/b; math.Mod alone keeps the
// sign of a.
func modulo(a, b float32) float32 {
	rem := float32(math.Mod(float64(a), float64(b)))

	return float32(math.Mod(float64(rem+b), float64(b)))
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
