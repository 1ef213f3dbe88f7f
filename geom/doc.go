// Package geom projects spiral positions onto a 2D plane and back, for a
// flat-topped hexagonal grid drawn around an arbitrary window center.
//
// What:
//
//   - PosToPoint maps a spiral position to the pixel center of its hex,
//     given the hex radius and the window center. Ring tips are offset
//     straight from the center via a per-edge vector table; edge hexes
//     recurse to the tip opening their edge and step along it.
//   - PointToPos maps a pixel back to the position of the hex whose face
//     contains it: the pixel delta becomes fractional axial coordinates
//     through the standard flat-top inverse, is rounded to the nearest
//     valid cube coordinate, and resolved with cube.ToSpiral.
//
// Why:
//
//   - Rendering layers need hex centers; input layers need hit testing.
//     Both stay backend-agnostic: plain float pairs in, plain floats out.
//
// Complexity:
//
//   - PosToPoint: O(√pos) — ring decomposition plus one recursion level.
//   - PointToPos: O(k²) for the hex's ring k, dominated by cube.ToSpiral.
//
// Errors:
//
//   - PointToPos forwards cube.ToSpiral errors; a rounded coordinate always
//     satisfies the cube invariant, so they are defensive only.
package geom
