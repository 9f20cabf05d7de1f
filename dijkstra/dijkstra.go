// Package dijkstra implements Dijkstra's shortest-path algorithm on a gridgraph.Grid.
//
// Dijkstra computes the minimum-cost route from a single source cell to all
// other reachable cells, with every legal move priced by a non-negative
// step cost. It processes cells in order of increasing distance using a
// min-heap priority queue, relaxing moves and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O(V·d·log V) where V = Rows×Cols and d = moves per cell.
//   - Each cell is extracted at most once: V extractions from the heap.
//   - Each move relaxation may push a new entry into the heap: up to V·d pushes.
//   - Space: O(V·d) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We price every offset of the grid's move set upfront and fail fast on a negative cost.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridastar/gridgraph"
)

// Dijkstra computes shortest distances from the source cell (Options.Source)
// to all other traversable cells of g.
//
// Returns:
//
//   - dist: map from every traversable cell to its minimum distance
//     (math.MaxInt64 if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest route to v goes through u.
//     The source and unreachable cells have no entry.
//   - err:  error if inputs are invalid or if a negative step cost is detected.
//
// Preconditions and validation (in order):
//  1. Source must be provided (ErrNoSource).
//  2. g must be non-nil (ErrNilGrid).
//  3. Source must be in bounds and free (ErrSourceNotTraversable).
//  4. No move may have a negative cost (ErrNegativeStep).
func Dijkstra(g *gridgraph.Grid, opts ...Option) (map[gridgraph.Cell]int64, map[gridgraph.Cell]gridgraph.Cell, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided
	if !cfg.hasSource {
		return nil, nil, ErrNoSource
	}

	// 3) Validate grid is non-nil
	if g == nil {
		return nil, nil, ErrNilGrid
	}

	// 4) Validate Source is traversable
	if !g.IsTraversable(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrSourceNotTraversable, cfg.Source)
	}

	// 5) Price the move set once. Fail fast with ErrNegativeStep.
	offsets := g.NeighborOffsets()
	costs := make(map[gridgraph.Offset]int64, len(offsets))
	for _, o := range offsets {
		c := cfg.StepCost(o)
		if c < 0 {
			return nil, nil, fmt.Errorf("%w: offset %+v cost=%d", ErrNegativeStep, o, c)
		}
		costs[o] = int64(c)
	}

	// 6) Prepare data structures for the algorithm.
	V := g.Size()
	r := &runner{
		g:       g,
		options: cfg,
		costs:   costs,
		dist:    make(map[gridgraph.Cell]int64, V),
		visited: make(map[gridgraph.Cell]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make(map[gridgraph.Cell]gridgraph.Cell, V)
	}

	// 7) Initialize algorithm state and run main loop.
	r.init()
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.Grid                   // The input grid; read-only.
	options Options                           // Configuration options.
	costs   map[gridgraph.Offset]int64        // Offset → step cost.
	dist    map[gridgraph.Cell]int64          // Cell → current best distance from Source.
	prev    map[gridgraph.Cell]gridgraph.Cell // Cell → predecessor on the shortest route.
	visited map[gridgraph.Cell]bool           // Tracks if a cell's distance is finalized.
	pq      nodePQ                            // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist = +∞ for every traversable cell and pushes Source=0 into the heap.
func (r *runner) init() {
	for row := 0; row < r.g.Rows; row++ {
		for col := 0; col < r.g.Cols; col++ {
			c := gridgraph.Cell{Row: row, Col: col}
			if r.g.IsTraversable(c) {
				r.dist[c] = math.MaxInt64
			}
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{cell: r.options.Source, dist: 0})
}

// process is the core loop. It stops when the heap empties or the
// minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)

		// 2) Skip stale heap entry.
		if r.visited[item.cell] {
			continue
		}

		// 3) Beyond MaxDistance: nothing left to explore.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize and relax.
		r.visited[item.cell] = true
		r.relax(item.cell)
	}
}

// relax tries every legal move out of u and records strictly shorter routes.
func (r *runner) relax(u gridgraph.Cell) {
	for _, v := range r.g.Neighbors(u) {
		w := r.costs[gridgraph.Offset{DR: v.Row - u.Row, DC: v.Col - u.Col}]
		newDist := r.dist[u] + w

		if newDist > r.options.MaxDistance {
			continue
		}
		// strictly better only, so equal routes keep the first predecessor
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{cell: v, dist: newDist})
	}
}

// nodeItem represents a cell and its current distance from the source.
type nodeItem struct {
	cell gridgraph.Cell
	dist int64
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// PathTo rebuilds the source→dest route from a predecessor map returned
// with WithReturnPath. ok is false when dest is unreachable.
func PathTo(prev map[gridgraph.Cell]gridgraph.Cell, source, dest gridgraph.Cell) (path []gridgraph.Cell, ok bool) {
	for cur := dest; ; {
		path = append(path, cur)
		if cur == source {
			break
		}
		p, found := prev[cur]
		if !found {
			return nil, false
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
