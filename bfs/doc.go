// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning fewest-move distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing move count from a start cell.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from cell → moves from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a cell is enqueued)
//   - OnVisit   (when visiting; may abort with an error)
//   - Stops with the context error once WithContext's context is done.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Follows the grid's own move rules (Conn4/Conn8, no corner cutting).
//
// Why
//
//   - Reference distances for the A* search: on a Conn4 grid every move
//     costs gridgraph.StepUnit, so Depth[goal]×StepUnit is the optimal cost.
//   - Reachability from a cell without paying for a heap.
//
// Determinism
//
//	Neighbors are enqueued in the grid's fixed offset order, so the visit
//	sequence is fully reproducible.
//
// Complexity (V = Rows×Cols, d = |offsets|)
//
//   - Time:   O(V·d)   (each cell dequeued once, each move tried once)
//   - Memory: O(V)     (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	// Basic BFS with no options:
//	result, err := bfs.BFS(g, gridgraph.Cell{Row: 0, Col: 0})
//	if err != nil {
//	    // handle one of:
//	    // ErrGridNil, ErrStartNotTraversable, ErrOptionViolation, or hook errors
//	}
//
//	// With functional options:
//	result, err := bfs.BFS(
//	    g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(c gridgraph.Cell, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGridNil              if the grid pointer is nil.
//   - ErrStartNotTraversable  if the start cell is out of bounds or blocked.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
