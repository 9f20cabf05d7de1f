package astar

import "github.com/katalvlaran/gridastar/gridgraph"

// reconstruct walks parent links from goal back to the start and returns the
// cells in start→goal order. ok is false when goal was never reached: it has
// no parent and is not the start itself.
func (s *searchState) reconstruct(start, goal int) (path []gridgraph.Cell, ok bool) {
	if s.parent[goal] == noParent && goal != start {
		return nil, false
	}
	for at := goal; at != noParent; at = s.parent[at] {
		path = append(path, s.grid.Coordinate(at))
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
