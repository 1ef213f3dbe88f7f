// Package cube converts between single-coordinate spiral positions and the
// standard cube (q, r, s) hex coordinates, where every valid coordinate
// satisfies q + r + s = 0 and the origin (0, 0, 0) is the central hex.
//
// What:
//
//   - Cube is the (q, r, s) value type, with the usual coordinate algebra
//     (Add, Sub, Distance) and the AbsMax/Sum accessors.
//   - FromSpiral evaluates a closed form: each of q and r is a growing
//     truncated triangle wave over the position's ring, phase-shifted to
//     select the axis; s follows from the invariant.
//   - ToSpiral inverts the conversion by scanning the one ring the
//     coordinate can sit on, pinned down by its largest absolute component.
//
// Why:
//
//   - Cube coordinates make distances, lines and rotations trivial, while
//     spiral positions make storage trivial; games want both.
//   - The closed form avoids walking the spiral: FromSpiral is O(1) past
//     the ring lookup.
//
// Complexity:
//
//   - FromSpiral: O(√pos) (ring lookup), O(1) arithmetic.
//   - ToSpiral:   O(k²) for ring k — 6k candidates, each converted forward.
//
// Errors:
//
//   - ErrInvalidCube: the components do not sum to zero.
//   - ErrNotFound: no position on the candidate ring matched (defensive;
//     unreachable for coordinates that satisfy the invariant).
//
// See https://www.redblobgames.com/grids/hexagons/ for the cube coordinate
// system itself.
package cube
