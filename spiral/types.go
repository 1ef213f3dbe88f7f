// Package spiral defines the shared constants of the spiral coordinate
// system: the edge count of a ring and the six clockwise direction names.
package spiral

// EdgeCount is the number of edges (and tips) every ring has.
const EdgeCount = 6

// The six directions a hex can be left in, clockwise from the top.
// Neighbors(pos)[DirTop] is the hex directly above pos, and the remaining
// slots follow clockwise. The same values index ring edges: edge DirTop is
// the top edge of a ring, opened by its first tip.
const (
	DirTop = iota
	DirTopRight
	DirBottomRight
	DirBottom
	DirBottomLeft
	DirTopLeft
)
