package astar

import "github.com/katalvlaran/gridastar/gridgraph"

// Heuristic returns a non-negative estimate of the cost from a to b.
type Heuristic func(a, b gridgraph.Cell) int

// StepCost returns the cost of one move by the given offset.
type StepCost func(o gridgraph.Offset) int

// diagonalStep is the integer cost of one diagonal move.
var diagonalStep = gridgraph.EuclideanStep(gridgraph.Offset{DR: 1, DC: 1})

// Manhattan is (|Δrow| + |Δcol|) · StepUnit. Exact on an empty grid with
// 4-directional movement, hence admissible for Conn4.
func Manhattan(a, b gridgraph.Cell) int {
	return (abs(a.Row-b.Row) + abs(a.Col-b.Col)) * gridgraph.StepUnit
}

// Octile is the exact empty-grid cost with 8-directional movement:
// min(Δ) diagonal steps plus the remaining straight steps.
// Admissible for Conn8 where Manhattan overestimates.
func Octile(a, b gridgraph.Cell) int {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	lo, hi := dr, dc
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo*diagonalStep + (hi-lo)*gridgraph.StepUnit
}

// Zero always returns 0, reducing A* to uniform-cost search.
func Zero(_, _ gridgraph.Cell) int {
	return 0
}

// defaultHeuristic picks Octile when the move set has a diagonal, Manhattan otherwise.
func defaultHeuristic(moves []gridgraph.Offset) Heuristic {
	for _, m := range moves {
		if m.Diagonal() {
			return Octile
		}
	}
	return Manhattan
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
