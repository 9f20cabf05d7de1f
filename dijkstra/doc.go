// Package dijkstra provides an exact shortest-route oracle over a gridgraph.Grid
// with non-negative step costs.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost route from a single source cell to all
//     reachable cells in O(V·d·log V) time, where V = Rows×Cols and d = moves per cell.
//   - It relies on a min-heap (priority queue) to always expand the next-closest cell.
//   - It follows the grid's own move rules: Conn4 or Conn8, no corner cutting.
//   - Supports optional path reconstruction, distance caps and custom step costs.
//
// When to use:
//
//   - To cross-check A* results: with the same step cost, dist[goal] must equal
//     the A* path cost whenever the heuristic is admissible.
//   - To obtain distance fields from one cell to every other cell.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, returns a “predecessor” map; see PathTo.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - StepCost: any non-negative per-offset price; gridgraph.EuclideanStep by default.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:
//     Returned if Source was not supplied.
//   - ErrNilGrid:
//     Returned if you pass a nil *gridgraph.Grid.
//   - ErrSourceNotTraversable:
//     Returned if the source cell is out of bounds or an obstacle.
//   - ErrNegativeStep:
//     Returned if the step cost prices any move below zero (checked once, upfront).
//   - ErrBadMaxDistance:
//     Returned (via panic) if you set MaxDistance to a negative value.
//
// API reference:
//
//	func Dijkstra(
//	    g *gridgraph.Grid,
//	    opts ...Option,
//	) (dist map[gridgraph.Cell]int64, prev map[gridgraph.Cell]gridgraph.Cell, err error)
//
//	  - dist:    dist[c] = minimal distance from Source to c, or math.MaxInt64 if unreachable.
//	             Obstacle cells have no entry.
//	  - prev:    prev[c] = immediate predecessor of c on one shortest route from Source.
//	             Nil if ReturnPath=false.
//
// Thread safety:
//
//   - A Grid is immutable, so any number of Dijkstra calls may share one.
package dijkstra
