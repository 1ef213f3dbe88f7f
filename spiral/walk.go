package spiral

import "iter"

// Walker steps through the grid one hex at a time in a fixed direction,
// DirTop (0) through DirTopLeft (5). It carries only its own iteration
// state; advancing it never mutates anything shared.
type Walker struct {
	pos int
	dir int
}

// NewWalker returns a Walker standing at pos and facing the given
// direction. Panics unless 0 ≤ dir ≤ 5.
func NewWalker(pos, dir int) *Walker {
	if dir < 0 || dir >= EdgeCount {
		panic("spiral: direction out of range")
	}

	return &Walker{pos: pos, dir: dir}
}

// Pos returns the position the Walker is currently at.
func (w *Walker) Pos() int {
	return w.pos
}

// Next advances the Walker one hex in its direction and returns the new
// position. The first call returns the neighbor of the starting position,
// not the starting position itself.
func (w *Walker) Next() int {
	w.pos = Neighbors(w.pos)[w.dir]

	return w.pos
}

// Walk returns the infinite sequence of positions visited when repeatedly
// stepping from pos in the given direction. The starting position itself
// is not yielded. Panics unless 0 ≤ dir ≤ 5.
func Walk(pos, dir int) iter.Seq[int] {
	if dir < 0 || dir >= EdgeCount {
		panic("spiral: direction out of range")
	}

	return func(yield func(int) bool) {
		w := NewWalker(pos, dir)
		for yield(w.Next()) {
		}
	}
}
