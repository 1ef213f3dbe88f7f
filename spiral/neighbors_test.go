package spiral_test

import (
	"testing"

	"github.com/ljedrz/hex-spiral/spiral"
	"github.com/stretchr/testify/assert"
)

func TestRingNeighbors(t *testing.T) {
	cases := []struct {
		pos  int
		want [2]int
	}{
		{1, [2]int{6, 2}},
		{2, [2]int{1, 3}},
		{3, [2]int{2, 4}},
		{4, [2]int{3, 5}},
		{5, [2]int{4, 6}},
		{6, [2]int{5, 1}},
		{18, [2]int{17, 7}},
		{58, [2]int{57, 59}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, spiral.RingNeighbors(tc.pos), "pos %d", tc.pos)
	}
}

func TestRingNeighborsPanicsOnCenter(t *testing.T) {
	assert.Panics(t, func() { spiral.RingNeighbors(0) })
}

func TestCenterNeighbors(t *testing.T) {
	assert.Equal(t, [6]int{1, 2, 3, 4, 5, 6}, spiral.Neighbors(0))
}

// TestTipNeighbors pins the neighbor arrays of ring tips, including the
// wrap at the last tip of a ring.
func TestTipNeighbors(t *testing.T) {
	cases := []struct {
		pos  int
		want [6]int
	}{
		{1, [6]int{7, 8, 2, 0, 6, 18}},
		{2, [6]int{8, 9, 10, 3, 0, 1}},
		{3, [6]int{2, 10, 11, 12, 4, 0}},
		{4, [6]int{0, 3, 12, 13, 14, 5}},
		{5, [6]int{6, 0, 4, 14, 15, 16}},
		{6, [6]int{18, 1, 0, 5, 16, 17}},
		{7, [6]int{19, 20, 8, 1, 18, 36}},
		{9, [6]int{21, 22, 23, 10, 2, 8}},
		{11, [6]int{10, 24, 25, 26, 12, 3}},
		{13, [6]int{4, 12, 27, 28, 29, 14}},
		{15, [6]int{16, 5, 14, 30, 31, 32}},
		{17, [6]int{35, 18, 6, 16, 33, 34}},
		{28, [6]int{13, 27, 48, 49, 50, 29}},
		{53, [6]int{54, 31, 52, 80, 81, 82}},
		{57, [6]int{87, 58, 34, 56, 85, 86}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, spiral.Neighbors(tc.pos), "pos %d", tc.pos)
	}
}

// TestEdgeNeighbors pins the neighbor arrays of non-tip positions on every
// edge of rings 2 and 4, including the final position of a ring.
func TestEdgeNeighbors(t *testing.T) {
	cases := []struct {
		pos  int
		want [6]int
	}{
		{8, [6]int{20, 21, 9, 2, 1, 7}},
		{10, [6]int{9, 23, 24, 11, 3, 2}},
		{12, [6]int{3, 11, 26, 27, 13, 4}},
		{14, [6]int{5, 4, 13, 29, 30, 15}},
		{16, [6]int{17, 6, 5, 15, 32, 33}},
		{18, [6]int{36, 7, 1, 6, 17, 35}},
		{38, [6]int{62, 63, 39, 20, 19, 37}},
		{40, [6]int{64, 65, 41, 22, 21, 39}},
		{42, [6]int{41, 67, 68, 43, 23, 22}},
		{44, [6]int{43, 69, 70, 45, 25, 24}},
		{46, [6]int{25, 45, 72, 73, 47, 26}},
		{48, [6]int{27, 47, 74, 75, 49, 28}},
		{50, [6]int{29, 28, 49, 77, 78, 51}},
		{52, [6]int{31, 30, 51, 79, 80, 53}},
		{54, [6]int{55, 32, 31, 53, 82, 83}},
		{56, [6]int{57, 34, 33, 55, 84, 85}},
		{58, [6]int{88, 59, 35, 34, 57, 87}},
		{60, [6]int{90, 37, 19, 36, 59, 89}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, spiral.Neighbors(tc.pos), "pos %d", tc.pos)
	}
}

// TestNeighborSymmetry checks that the neighbor relation is symmetric over
// a large prefix of the spiral.
func TestNeighborSymmetry(t *testing.T) {
	const n = 2_000
	for pos := 0; pos < n; pos++ {
		for _, nbr := range spiral.Neighbors(pos) {
			if !spiral.AreNeighbors(nbr, pos) {
				t.Fatalf("%d neighbors %d but not vice versa", pos, nbr)
			}
		}
	}
}

// TestNeighborsDistinct checks that every position has six distinct
// neighbors, none of them the position itself.
func TestNeighborsDistinct(t *testing.T) {
	const n = 10_000
	for pos := 0; pos < n; pos++ {
		seen := make(map[int]bool, 6)
		for _, nbr := range spiral.Neighbors(pos) {
			if nbr == pos {
				t.Fatalf("pos %d lists itself as a neighbor", pos)
			}
			if seen[nbr] {
				t.Fatalf("pos %d lists neighbor %d twice", pos, nbr)
			}
			seen[nbr] = true
		}
	}
}

// TestNeighborOrientation checks the rotational convention: undoing the
// per-edge rotation must put the same-ring successor and predecessor back
// in their canonical slots (2 and 5 on an edge, 2 and 4 on a tip).
func TestNeighborOrientation(t *testing.T) {
	const n = 5_000
	for pos := 1; pos < n; pos++ {
		edge := spiral.RingEdgeIndex(pos)
		predSlot := 5
		if spiral.IsAtRingTip(pos) {
			predSlot = 4
		}
		nbrs := spiral.Neighbors(pos)
		ringNbrs := spiral.RingNeighbors(pos)
		if got := nbrs[(2+edge)%spiral.EdgeCount]; got != ringNbrs[1] {
			t.Fatalf("pos %d: successor slot holds %d; want %d", pos, got, ringNbrs[1])
		}
		if got := nbrs[(predSlot+edge)%spiral.EdgeCount]; got != ringNbrs[0] {
			t.Fatalf("pos %d: predecessor slot holds %d; want %d", pos, got, ringNbrs[0])
		}
	}
}

// TestNeighborRingSpread checks how neighbors distribute across rings:
// tips touch 1 inner, 2 same-ring and 3 outer hexes, edge hexes 2 of each.
func TestNeighborRingSpread(t *testing.T) {
	const n = 5_000
	for pos := 1; pos < n; pos++ {
		ring := spiral.Ring(pos)
		var inner, same, outer int
		for _, nbr := range spiral.Neighbors(pos) {
			switch spiral.Ring(nbr) {
			case ring - 1:
				inner++
			case ring:
				same++
			case ring + 1:
				outer++
			default:
				t.Fatalf("pos %d: neighbor %d more than one ring away", pos, nbr)
			}
		}
		wantInner, wantOuter := 2, 2
		if spiral.IsAtRingTip(pos) {
			wantInner, wantOuter = 1, 3
		}
		if inner != wantInner || same != 2 || outer != wantOuter {
			t.Fatalf("pos %d: ring spread %d/%d/%d; want %d/2/%d",
				pos, inner, same, outer, wantInner, wantOuter)
		}
	}
}
