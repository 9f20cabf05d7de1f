// Package gridastar finds least-cost paths on 2-D obstacle grids with A*.
//
// 🚀 What is gridastar?
//
//	A small, dependency-light toolkit for grid path planning:
//		• Grids: immutable obstacle maps with 4- or 8-connectivity
//		• A*: optimal search with pluggable heuristics, step costs and hooks
//		• Stepper: drive a search one expansion at a time
//		• Oracles: grid BFS and Dijkstra for cross-checking results
//		• Regions: free-cell components to answer reachability up front
//
// ✨ Guarantees
//
//   - Optimal paths whenever the heuristic is admissible (the defaults are)
//   - Deterministic: equal inputs give equal paths and expansion orders
//   - No global state; one grid may serve many concurrent searches
//   - No corner cutting on diagonal moves
//
// Packages:
//
//	gridgraph/      Grid, Cell, Offset, connectivity and regions
//	astar/          A* engine, heuristics, Stepper, Result
//	bfs/            breadth-first traversal over grid cells
//	dijkstra/       uniform-cost distances over grid cells
//	config/         HCL run configuration and the reference layout
//	logging/        slog setup and context carriage
//	metrics/        Prometheus search counters
//	cmd/astargrid/  command-line front end
//
// Quick example:
//
//	g, _ := gridgraph.From2D([][]int{
//		{0, 0, 0},
//		{1, 1, 0},
//		{0, 0, 0},
//	}, gridgraph.Conn4)
//	res, _ := astar.Search(g, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 0})
//	fmt.Println(res.Cost, res.Path) // 60 [(0,0) (0,1) (0,2) (1,2) (2,2) (2,1) (2,0)]
//
//	go install github.com/katalvlaran/gridastar/cmd/astargrid@latest
package gridastar
