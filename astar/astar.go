// Package astar implements A* best-first search between two cells of a
// gridgraph.Grid.
//
// Complexity:
//
//   - Time:  O(V·d·log V) where V = Rows×Cols and d = |move set|.
//   - Each cell is closed at most once: at most V expansions.
//   - Each relaxation may push one duplicate entry: at most V·d pushes.
//   - Space: O(V + V·d) for the tables and the lazy frontier.
//
// Notes on implementation choices:
//
//   - Preconditions (traversable start and goal) are checked before any table is allocated.
//   - We use a "lazy" decrease-key strategy: duplicates are pushed and stale ones skipped on pop.
//   - A relaxation happens only for a strictly lower F, so per-cell cost never increases.
//   - No I/O: observability is offered through the OnExpand / OnEnqueue hooks.
package astar

import (
	"fmt"

	"github.com/katalvlaran/gridastar/gridgraph"
)

// Search finds a minimum-cost path from start to goal over g.
//
// Returns:
//
//   - res: always non-nil once preconditions pass; res.Found reports success.
//   - err: nil on success; ErrNoPath (wrapped) when the goal is unreachable;
//     ErrExpansionLimit or the context error when the search was cut short.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrOptionViolation).
//  3. start must be in bounds and free (ErrInvalidStart).
//  4. goal must be in bounds and free (ErrInvalidGoal).
//
// Options customization:
//
//   - WithMoveSet(offsets), WithStepCost(fn), WithHeuristic(h)
//   - WithMaxExpansions(n), WithContext(ctx)
//   - WithOnExpand(fn), WithOnEnqueue(fn)
func Search(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (*Result, error) {
	s, err := NewStepper(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}
	if err = s.Run(); err != nil {
		return s.Result(), err
	}
	res := s.Result()
	if !res.Found {
		return res, fmt.Errorf("%w: %v → %v", ErrNoPath, start, goal)
	}

	return res, nil
}

// Stepper runs one search an expansion at a time. It is not safe for
// concurrent use; independent Steppers may share one Grid.
type Stepper struct {
	grid      *gridgraph.Grid
	opts      Options
	start     gridgraph.Cell
	goal      gridgraph.Cell
	startIdx  int
	goalIdx   int
	moves     []gridgraph.Offset
	stepCosts []int // stepCosts[k] prices moves[k]
	heuristic Heuristic

	state    *searchState
	open     *frontier
	status   State
	expanded int
	goalG    int
}

// NewStepper validates the inputs and seeds the frontier with the start
// node (G=0, H=h(start,goal)). The returned Stepper is in StateReady.
func NewStepper(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (*Stepper, error) {
	// 1) Validate grid
	if g == nil {
		return nil, ErrNilGrid
	}

	// 2) Build options and catch any invalid ones immediately
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate endpoints before allocating anything
	if !g.IsTraversable(start) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStart, start)
	}
	if !g.IsTraversable(goal) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGoal, goal)
	}

	// 4) Resolve move set, step costs and heuristic
	moves := cfg.MoveSet
	if moves == nil {
		moves = g.NeighborOffsets()
	}
	costs := make([]int, len(moves))
	for k, m := range moves {
		c := cfg.StepCost(m)
		if c <= 0 {
			return nil, fmt.Errorf("%w: step cost for %+v must be positive, got %d", ErrOptionViolation, m, c)
		}
		costs[k] = c
	}
	h := cfg.Heuristic
	if h == nil {
		h = defaultHeuristic(moves)
	}

	s := &Stepper{
		grid:      g,
		opts:      cfg,
		start:     start,
		goal:      goal,
		startIdx:  g.Index(start),
		goalIdx:   g.Index(goal),
		moves:     moves,
		stepCosts: costs,
		heuristic: h,
		state:     newSearchState(g),
		open:      newFrontier(g.Size()),
		status:    StateReady,
	}
	s.seed()

	return s, nil
}

// seed pushes the start node and records its F.
func (s *Stepper) seed() {
	h := s.heuristic(s.start, s.goal)
	n := &searchNode{cell: s.start, idx: s.startIdx, g: 0, h: h, f: h}
	s.state.best[s.startIdx] = n.f
	s.open.push(n)
}

// State returns the current lifecycle state.
func (s *Stepper) State() State { return s.status }

// Expanded returns the number of cells closed so far.
func (s *Stepper) Expanded() int { return s.expanded }

// FrontierLen returns the number of entries, stale ones included, in the open set.
func (s *Stepper) FrontierLen() int { return s.open.len() }

// Step performs one expansion: it pops the best live node, closes it and,
// unless it is the goal, relaxes its neighbors. Stale entries are discarded
// before the exhaustion and limit checks and never count as an expansion.
// Once the state is terminal, Step is a no-op returning the same state.
func (s *Stepper) Step() (State, error) {
	if s.status.Terminal() {
		return s.status, nil
	}
	// cancellation check (once per step)
	select {
	case <-s.opts.Ctx.Done():
		return s.status, s.opts.Ctx.Err()
	default:
	}

	// 1) Drop stale duplicates so only live entries remain at the top.
	for !s.open.empty() && s.state.stale(s.open.peek()) {
		s.open.popBest()
	}

	// 2) Empty frontier: no path exists.
	if s.open.empty() {
		s.status = StateExhausted
		return s.status, nil
	}
	if s.opts.MaxExpansions > 0 && s.expanded >= s.opts.MaxExpansions {
		return s.status, fmt.Errorf("%w: %d", ErrExpansionLimit, s.opts.MaxExpansions)
	}

	// 3) Expand the best live node.
	n := s.open.popBest()
	s.state.close(n.idx)
	s.expanded++
	s.status = StateRunning
	s.opts.OnExpand(n.cell, n.g, n.f)

	// 4) Goal reached.
	if n.idx == s.goalIdx {
		s.status = StateGoalFound
		s.goalG = n.g
		return s.status, nil
	}

	// 5) Relax neighbors.
	s.relax(n)
	return s.status, nil
}

// relax scores every legal, open neighbor of n and records the ones whose
// candidate F strictly beats their best-known F (or that were never seen).
func (s *Stepper) relax(n *searchNode) {
	for k, off := range s.moves {
		next := n.cell.Add(off)
		if !s.grid.IsValidTransition(n.cell, next) {
			continue
		}
		ni := s.grid.Index(next)
		if s.state.isClosed(ni) {
			continue
		}

		g := n.g + s.stepCosts[k]
		h := s.heuristic(next, s.goal)
		f := g + h
		if !s.state.improves(ni, f) {
			continue
		}

		s.state.record(ni, n.idx, f)
		s.open.push(&searchNode{cell: next, idx: ni, g: g, h: h, f: f})
		s.opts.OnEnqueue(n.cell, next, g, f)
	}
}

// Run steps until a terminal state or an error.
func (s *Stepper) Run() error {
	for !s.status.Terminal() {
		if _, err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Result snapshots the outcome. Path and Cost are set only in StateGoalFound.
// The returned Result shares the Stepper's tables; do not Step afterwards
// if the Result's introspection methods must stay stable.
func (s *Stepper) Result() *Result {
	res := &Result{
		Start:    s.start,
		Goal:     s.goal,
		Expanded: s.expanded,
		state:    s.state,
	}
	if s.status != StateGoalFound {
		return res
	}
	path, ok := s.state.reconstruct(s.startIdx, s.goalIdx)
	if !ok {
		return res
	}
	res.Path = path
	res.Cost = s.goalG
	res.Found = true

	return res
}
