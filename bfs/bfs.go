// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning fewest-move distances, parent links, and visit order.
//
// BFS explores cells in increasing move count from a start cell,
// with optional hooks and depth limiting.
// Every move counts as one, diagonal or not, so on a Conn4 grid
// Depth×gridgraph.StepUnit is the optimal A* cost.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridastar/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  gridgraph.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *gridgraph.Grid
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool // row-major
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGridNil or ErrStartNotTraversable for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *gridgraph.Grid, start gridgraph.Cell, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start cell
	if !g.IsTraversable(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotTraversable, start)
	}

	// Prepare walker
	n := g.Size()
	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]gridgraph.Cell, 0, n),
			Depth:  make(map[gridgraph.Cell]int, n),
			Parent: make(map[gridgraph.Cell]gridgraph.Cell, n),
		},
	}

	// Seed queue with start cell (no parent)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks c visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(c gridgraph.Cell, d int, parent *gridgraph.Cell) {
	w.visited[w.grid.Index(c)] = true
	w.res.Depth[c] = d
	if parent != nil {
		w.res.Parent[c] = *parent
	}
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.cell)
	if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.cell, err)
	}
	return nil
}

// enqueueNeighbors applies MaxDepth to every legal move and enqueues each
// unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range w.grid.Neighbors(item.cell) {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		// first time seen?
		if !w.visited[w.grid.Index(nbr)] {
			parent := item.cell
			w.enqueue(nbr, nextDepth, &parent)
		}
	}
	return nil
}
