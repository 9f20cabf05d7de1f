// Package astar finds minimum-cost paths between two cells of a gridgraph.Grid
// using A* best-first search with an admissible heuristic.
//
// Overview:
//
//   - Each frontier entry carries G (cost so far), H (estimate to the goal)
//     and F = G + H. The entry with the lowest F is expanded next.
//   - Ties on F go to the larger G (the deeper candidate); remaining ties
//     pop in push order, so a search is fully deterministic.
//   - Costs are integers: an orthogonal step is gridgraph.StepUnit (10),
//     a diagonal one 14. The default heuristic is Manhattan for 4-directional
//     move sets and Octile when diagonals are present.
//   - Diagonal moves may not cut a corner: both orthogonally adjacent cells
//     must be free.
//
// Lifecycle:
//
//	NewStepper → StateReady
//	Step       → StateRunning → StateGoalFound | StateExhausted
//
// Search drives a Stepper to completion. Step exposes one expansion at a
// time for visualisers and tests.
//
// Key features:
//
//   - Functional options: WithMoveSet, WithStepCost, WithHeuristic,
//     WithMaxExpansions, WithContext.
//   - Hooks: WithOnExpand fires when a cell is closed, WithOnEnqueue on every
//     frontier push.
//   - Result introspection: Closed, Predecessor and BestCost expose the
//     tables as they stood at termination.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:         nil grid.
//   - ErrInvalidStart:    start out of bounds or an obstacle.
//   - ErrInvalidGoal:     goal out of bounds or an obstacle.
//   - ErrOptionViolation: malformed option (empty move set, negative limit, non-positive step cost).
//   - ErrNoPath:          frontier exhausted; the Result is still returned.
//   - ErrExpansionLimit:  WithMaxExpansions cap hit before a terminal state.
//
// Performance and complexity:
//
//   - Time:  O(V·d·log V), V = Rows×Cols, d = |move set|.
//   - Space: O(V) tables plus O(V·d) worst-case frontier entries.
//
// Thread safety:
//
//   - A Grid is read-only during a search; any number of searches may share it.
//   - A single Stepper must not be driven from several goroutines.
//
// Example:
//
//	g, _ := gridgraph.From2D(values, gridgraph.Conn4)
//	res, err := astar.Search(g, gridgraph.Cell{Row: 2, Col: 4}, gridgraph.Cell{Row: 8, Col: 6})
//	if errors.Is(err, astar.ErrNoPath) {
//	    // unreachable
//	}
//	fmt.Println(res.Cost, res.Path)
package astar
