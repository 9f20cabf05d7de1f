// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a gridgraph.Grid.
//
// Dijkstra computes the minimum-cost route from a single source cell to all
// other reachable cells. Each legal move is priced by a step-cost function
// (gridgraph.EuclideanStep by default: 10 orthogonal, 14 diagonal).
//
// Options:
//
//	– Source:      starting cell (required; must be in bounds and free).
//	– ReturnPath:  if true, return the predecessor map for path reconstruction.
//	– MaxDistance: optional cap on distances to explore; cells beyond this are skipped.
//	– StepCost:    prices each move; must never be negative.
//
// Errors (sentinel):
//
//	– ErrNoSource             if no Source option was given.
//	– ErrNilGrid              if the provided grid pointer is nil.
//	– ErrSourceNotTraversable if the source is out of bounds or blocked.
//	– ErrNegativeStep         if the step cost is negative for any move.
//	– ErrBadMaxDistance       if MaxDistance < 0.
//
// Example usage:
//
//	dist, prev, err := Dijkstra(
//	    g,
//	    Source(gridgraph.Cell{Row: 0, Col: 0}),
//	    WithReturnPath(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Distance to (2,2): %d\n", dist[gridgraph.Cell{Row: 2, Col: 2}])
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridastar/gridgraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that Dijkstra was called without a Source option.
	ErrNoSource = errors.New("dijkstra: source cell not set")

	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrSourceNotTraversable indicates that the source cell is out of bounds or blocked.
	ErrSourceNotTraversable = errors.New("dijkstra: source cell is out of bounds or blocked")

	// ErrNegativeStep indicates that the step-cost function priced a move below zero.
	ErrNegativeStep = errors.New("dijkstra: negative step cost encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting cell (must be in bounds and free).
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – optional cap on distances to explore (cells beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// StepCost    – prices one move. Default gridgraph.EuclideanStep.
type Options struct {
	Source      gridgraph.Cell               // The source cell
	ReturnPath  bool                         // Whether to return the predecessor map
	MaxDistance int64                        // Maximum distance to explore
	StepCost    func(o gridgraph.Offset) int // Cost of a single move

	hasSource bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell. Must be supplied.
func Source(c gridgraph.Cell) Option {
	return func(o *Options) {
		o.Source = c
		o.hasSource = true
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values cause ErrBadMaxDistance.
// Default (if not set) is math.MaxInt64 (no cap).
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithStepCost overrides the per-move cost. A nil fn is ignored.
func WithStepCost(fn func(o gridgraph.Offset) int) Option {
	return func(o *Options) {
		if fn != nil {
			o.StepCost = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Source:      unset (Dijkstra fails with ErrNoSource).
//   - ReturnPath:  false (predecessor map not returned).
//   - MaxDistance: math.MaxInt64 (no distance limit; explore all reachable).
//   - StepCost:    gridgraph.EuclideanStep.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
		StepCost:    gridgraph.EuclideanStep,
	}
}
