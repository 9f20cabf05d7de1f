// Package gridgraph treats a 2D grid of cells as a graph of free and blocked
// squares, the search space for the astar, bfs and dijkstra packages.
//
// What:
//
//   - Grid wraps a rectangular [][]int obstacle map with a tunable ObstacleThreshold.
//   - Answers bounds, traversability and move-legality queries in O(1).
//   - Exposes the move set (neighbor offsets) implied by its connectivity.
//   - Identifies connected regions of free cells.
//
// Why:
//
//   - Game maps and robot occupancy grids: legal-move checks for path search.
//   - Quick reachability answers before paying for a search.
//
// Coordinates:
//
//   - Cell{Row, Col}; values[row][col] in the constructor input.
//   - Row-major index: Row*Cols + Col (Index / Coordinate).
//
// Movement:
//
//   - Conn4: N, W, E, S; each step costs StepUnit (10).
//   - Conn8: adds the four diagonals at EuclideanStep = 14. A diagonal move is
//     legal only when neither orthogonal cell it passes between is blocked
//     (no corner cutting).
//
// Complexity:
//
//   - NewGrid:             O(Rows×Cols), Memory: O(Rows×Cols).
//   - IsValidTransition:   O(1).
//   - ConnectedComponents: O(Rows×Cols×d), Memory: O(Rows×Cols)  (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadOffset: a move set holds a zero or repeated offset.
//
// Immutability:
//
//	A Grid never changes after NewGrid returns, so any number of goroutines
//	may query it and run independent searches over it at the same time.
package gridgraph
