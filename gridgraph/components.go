package gridgraph

// ConnectedComponents finds all contiguous regions of free cells under the
// grid's move rules (g.Conn offsets filtered by IsValidTransition, so a
// Conn8 region never links through a cut corner).
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in ascending index order.
//
// To convert an index back to a Cell, use Coordinate(idx).
//
// Time:   O(Rows·Cols·d), where d = 4 or 8.
// Memory: O(Rows·Cols) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	labels := g.Regions()
	var comps [][]int
	for i, l := range labels {
		if l < 0 {
			continue
		}
		if l == len(comps) {
			comps = append(comps, nil)
		}
		comps[l] = append(comps[l], i)
	}
	return comps
}

// Regions labels every cell with the id of its free region, numbered from 0
// in row-major order of first appearance. Blocked cells are labelled -1.
func (g *Grid) Regions() []int {
	total := g.Size()
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}

	next := 0
	for i0 := 0; i0 < total; i0++ {
		if g.blocked[i0] || labels[i0] >= 0 {
			continue
		}
		// BFS to flood the region
		queue := []int{i0}
		labels[i0] = next
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range g.neighborOffsets {
				v := u.Add(d)
				if !g.IsValidTransition(u, v) {
					continue
				}
				vi := g.index(v)
				if labels[vi] < 0 {
					labels[vi] = next
					queue = append(queue, vi)
				}
			}
		}
		next++
	}
	return labels
}

// Connected reports whether a and b are both free and lie in the same region.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.IsTraversable(a) || !g.IsTraversable(b) {
		return false
	}
	labels := g.Regions()
	return labels[g.index(a)] == labels[g.index(b)]
}
