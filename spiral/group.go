package spiral

// IsPathConsistent reports whether the given positions form a contiguous
// path, i.e. every pair of subsequent entries are neighbors.
// Panics when fewer than two positions are supplied.
// Complexity: O(n·√max(poss)).
func IsPathConsistent(poss []int) bool {
	if len(poss) < 2 {
		panic("spiral: a path needs at least two positions")
	}

	for i := 1; i < len(poss); i++ {
		if !AreNeighbors(poss[i-1], poss[i]) {
			return false
		}
	}

	return true
}

// AreGrouped reports whether the given positions form a single connected
// group: every position can reach every other through a chain of
// neighboring positions drawn from the same set. Empty and single-element
// sets are trivially grouped; duplicates denote the same hex.
//
// The neighbor relation restricted to the set is closed with a disjoint-set
// structure (path compression + union by rank), then every position is
// checked to share the single root.
// Complexity: O(n²·α(n)) over the pair scan, Memory: O(n).
func AreGrouped(poss []int) bool {
	if len(poss) < 2 {
		return true
	}

	uf := newUnionFind(poss)
	for i, p1 := range poss {
		for _, p2 := range poss[i+1:] {
			// The relation is symmetric, so one direction suffices.
			if AreNeighbors(p1, p2) {
				uf.union(p1, p2)
			}
		}
	}

	root := uf.find(poss[0])
	for _, p := range poss[1:] {
		if uf.find(p) != root {
			return false
		}
	}

	return true
}

// unionFind is a disjoint-set structure over positions.
type unionFind struct {
	parent map[int]int
	rank   map[int]int
}

func newUnionFind(poss []int) *unionFind {
	uf := &unionFind{
		parent: make(map[int]int, len(poss)),
		rank:   make(map[int]int, len(poss)),
	}
	for _, p := range poss {
		uf.parent[p] = p
	}

	return uf
}

// find walks up to the root of p's set, compressing the path as it goes.
func (uf *unionFind) find(p int) int {
	for uf.parent[p] != p {
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

// union merges the sets containing p1 and p2, attaching by rank.
func (uf *unionFind) union(p1, p2 int) {
	root1, root2 := uf.find(p1), uf.find(p2)
	if root1 == root2 {
		return
	}

	if uf.rank[root1] < uf.rank[root2] {
		root1, root2 = root2, root1
	}
	uf.parent[root2] = root1
	if uf.rank[root1] == uf.rank[root2] {
		uf.rank[root1]++
	}
}
