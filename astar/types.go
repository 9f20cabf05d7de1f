// Package astar defines core types, configuration options and sentinel
// errors for A* search over a gridgraph.Grid.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridastar/gridgraph"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed in.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidStart indicates that the start cell is out of bounds or blocked.
	// Detected before any search work is done.
	ErrInvalidStart = errors.New("astar: start cell is out of bounds or blocked")

	// ErrInvalidGoal indicates that the goal cell is out of bounds or blocked.
	// Detected before any search work is done.
	ErrInvalidGoal = errors.New("astar: goal cell is out of bounds or blocked")

	// ErrNoPath indicates that the frontier was exhausted without reaching the goal.
	// This is an expected outcome; the accompanying Result is still populated.
	ErrNoPath = errors.New("astar: no path between start and goal")

	// ErrExpansionLimit indicates that WithMaxExpansions stopped the search early.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// State is the position of a search in its lifecycle:
//
//	StateReady → StateRunning → {StateGoalFound, StateExhausted}
type State int

const (
	// StateReady: start node seeded, nothing expanded yet.
	StateReady State = iota
	// StateRunning: at least one expansion done, frontier not yet resolved.
	StateRunning
	// StateGoalFound: the goal was popped from the frontier. Terminal.
	StateGoalFound
	// StateExhausted: the frontier emptied without reaching the goal. Terminal.
	StateExhausted
)

// String returns a lower-case state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateGoalFound:
		return "goal_found"
	case StateExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further Step can change the state.
func (s State) Terminal() bool {
	return s == StateGoalFound || s == StateExhausted
}

// Option configures A* behavior via functional arguments.
// If an Option is invalid (e.g. negative limit), it is recorded internally
// and surfaced as ErrOptionViolation when the search is constructed.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation; checked once per expansion.
	Ctx context.Context

	// MoveSet is the list of neighbor offsets to try from each cell.
	// nil means the grid's own offsets (Conn4 or Conn8).
	MoveSet []gridgraph.Offset

	// StepCost prices a single move. Must return > 0 for every offset.
	StepCost StepCost

	// Heuristic estimates remaining cost to the goal. nil picks Manhattan
	// for orthogonal move sets and Octile when diagonals are present.
	Heuristic Heuristic

	// MaxExpansions, if > 0, caps the number of cells expanded.
	// A value of 0 disables the cap.
	MaxExpansions int

	// OnExpand is called when a cell is closed, with its G and F.
	OnExpand func(c gridgraph.Cell, g, f int)

	// OnEnqueue is called for every frontier push caused by relaxation.
	OnEnqueue func(from, to gridgraph.Cell, g, f int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with defaults:
//   - context.Background()
//   - grid move set, EuclideanStep costs, heuristic chosen from the move set
//   - no expansion cap
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		StepCost:  gridgraph.EuclideanStep,
		OnExpand:  func(gridgraph.Cell, int, int) {},
		OnEnqueue: func(gridgraph.Cell, gridgraph.Cell, int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMoveSet replaces the grid's neighbor offsets. The set must be
// non-empty with non-zero, unique offsets.
func WithMoveSet(offsets []gridgraph.Offset) Option {
	return func(o *Options) {
		if len(offsets) == 0 {
			o.err = fmt.Errorf("%w: empty move set", ErrOptionViolation)
			return
		}
		if err := gridgraph.ValidateOffsets(offsets); err != nil {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, err)
			return
		}
		o.MoveSet = append([]gridgraph.Offset(nil), offsets...)
	}
}

// WithStepCost sets the per-move cost function.
func WithStepCost(fn StepCost) Option {
	return func(o *Options) {
		if fn != nil {
			o.StepCost = fn
		}
	}
}

// WithHeuristic sets the remaining-cost estimate. It must be admissible for
// the move set in use or the returned path may not be optimal.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithMaxExpansions stops the search with ErrExpansionLimit after n expansions.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run when a cell is closed.
func WithOnExpand(fn func(c gridgraph.Cell, g, f int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a callback run on each frontier push.
func WithOnEnqueue(fn func(from, to gridgraph.Cell, g, f int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Path: cells from Start to Goal inclusive (nil when Found is false).
//   - Cost: accumulated step cost of Path (G of the goal).
//   - Expanded: number of cells closed.
//   - Found: whether the goal was reached.
type Result struct {
	Start, Goal gridgraph.Cell
	Path        []gridgraph.Cell
	Cost        int
	Expanded    int
	Found       bool

	state *searchState
}

// Closed returns the closed cells in the order they were expanded.
func (r *Result) Closed() []gridgraph.Cell {
	if r.state == nil {
		return nil
	}
	out := make([]gridgraph.Cell, len(r.state.closedOrder))
	copy(out, r.state.closedOrder)
	return out
}

// Predecessor returns the parent recorded for c at termination.
// ok is false for the start cell, unreached cells and out-of-bounds cells.
func (r *Result) Predecessor(c gridgraph.Cell) (gridgraph.Cell, bool) {
	if r.state == nil || !r.state.grid.InBounds(c) {
		return gridgraph.Cell{}, false
	}
	p := r.state.parent[r.state.grid.Index(c)]
	if p == noParent {
		return gridgraph.Cell{}, false
	}
	return r.state.grid.Coordinate(p), true
}

// BestCost returns the lowest F ever stored for c.
// ok is false when c was never enqueued.
func (r *Result) BestCost(c gridgraph.Cell) (int, bool) {
	if r.state == nil || !r.state.grid.InBounds(c) {
		return 0, false
	}
	i := r.state.grid.Index(c)
	if !r.state.seen(i) {
		return 0, false
	}
	return r.state.best[i], true
}
