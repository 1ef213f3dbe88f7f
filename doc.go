// Package hexspiral addresses flat-topped hexagonal grids with a single
// integer coordinate: a clockwise spiral where the central hex is position 0,
// positions 1..6 form the first ring starting from the top, positions 7..18
// the second ring, and so on outward without bound.
//
// 🚀 What is hex-spiral?
//
//	A small, pure library that brings together:
//		• Ring decomposition: ring index, ring offsets, tip & edge classification
//		• Neighbor enumeration: the six neighbors of any hex, always in the
//		  same absolute clockwise order
//		• Cube conversion: closed-form spiral → (q, r, s) and its inverse
//		• Geometric projection: spiral position → pixel center, and back
//		• Predicates: contiguous paths and connected groups of hexes
//
// ✨ Why choose hex-spiral?
//
//   - One coordinate – grid state fits in plain ints, slices and maps
//   - Stateless – every operation is a pure function, safe from any goroutine
//   - Pure Go – no cgo, no rendering backend, no hidden deps
//
// Everything is organized under three subpackages:
//
//	spiral/ — ring decomposition, neighbors, directional walks, path & group predicates
//	cube/   — conversion between spiral positions and cube (q, r, s) coordinates
//	geom/   — 2D projection of spiral positions and its inverse
//
// Quick ASCII example, the center and its first ring:
//
//	      __
//	   __/1 \__
//	  /6 \__/2 \
//	  \__/0 \__/
//	  /5 \__/3 \
//	  \__/4 \__/
//	     \__/
//
// Consumers are expected to be rendering or game-logic layers: pass positions
// in, get neighbors or points back, and keep your own grid state.
package hexspiral
