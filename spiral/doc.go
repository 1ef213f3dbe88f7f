// Package spiral implements the single-coordinate addressing scheme of a
// flat-topped hexagonal grid: position 0 is the central hex, and further
// hexes live on concentric rings, indexed clockwise starting from the hex
// above the previous ring's first position.
//
// What:
//
//   - RingOffset, Ring, RingSize, RingPositions decompose a position into
//     its containing ring.
//   - IsAtRingTip and RingEdgeIndex classify a position as one of the six
//     ring corners or a member of one of the six ring edges.
//   - Neighbors returns the six bordering positions, always in the same
//     absolute clockwise order (index 0 above the hex); RingNeighbors
//     returns the two same-ring ones, wrapping at the ring boundary.
//   - Walker / Walk step through the grid in one of the six directions.
//   - IsPathConsistent and AreGrouped decide contiguity and connectedness
//     of arbitrary position sets.
//
// Why:
//
//   - Game boards: one int per hex instead of a coordinate pair.
//   - Dense storage: a spiral-indexed slice covers any disk of rings.
//   - Adjacency logic: neighbor sets, paths and territories without a
//     grid data structure.
//
// Complexity:
//
//   - Ring(pos): O(√pos); every classifier and Neighbors builds on it.
//   - AreGrouped(poss): O(n²·α(n)) pairwise union-find, Memory: O(n).
//
// All functions are pure; violated preconditions (negative positions, the
// center where a ring position is required, directions outside 0..5) panic.
package spiral
