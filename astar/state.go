package astar

import (
	"math"

	"github.com/katalvlaran/gridastar/gridgraph"
)

const (
	// unvisited marks a cell never enqueued. Any real F compares below it.
	unvisited = math.MaxInt
	// noParent marks the start cell and unreached cells.
	noParent = -1
)

// searchState holds the per-search tables, indexed row-major:
// best-known F, parent index and closed flags. best and parent only change
// together and best never increases for a cell.
type searchState struct {
	grid        *gridgraph.Grid
	best        []int
	parent      []int
	closed      []bool
	closedOrder []gridgraph.Cell
}

func newSearchState(g *gridgraph.Grid) *searchState {
	n := g.Size()
	s := &searchState{
		grid:   g,
		best:   make([]int, n),
		parent: make([]int, n),
		closed: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		s.best[i] = unvisited
		s.parent[i] = noParent
	}
	return s
}

// seen reports whether cell i has ever been enqueued.
func (s *searchState) seen(i int) bool { return s.best[i] != unvisited }

// improves reports whether f would lower cell i's best-known cost.
func (s *searchState) improves(i, f int) bool {
	return !s.seen(i) || f < s.best[i]
}

// record stores a strictly better route to i through parent p.
func (s *searchState) record(i, p, f int) {
	s.best[i] = f
	s.parent[i] = p
}

func (s *searchState) isClosed(i int) bool { return s.closed[i] }

// close marks i expanded. It returns false when i was already closed.
func (s *searchState) close(i int) bool {
	if s.closed[i] {
		return false
	}
	s.closed[i] = true
	s.closedOrder = append(s.closedOrder, s.grid.Coordinate(i))
	return true
}

// stale reports whether a popped node no longer reflects its cell's best cost.
func (s *searchState) stale(n *searchNode) bool {
	return s.closed[n.idx] || n.f != s.best[n.idx]
}
