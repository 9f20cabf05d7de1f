package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridastar/bfs"
	"github.com/katalvlaran/gridastar/gridgraph"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on an open 3×3 grid.
// Neighbors are tried N, W, E, S, so each layer appears in that order.
func ExampleBFS_gridTraversal() {
	g, _ := gridgraph.From2D([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}, gridgraph.Conn4)

	res, err := bfs.BFS(g, gridgraph.Cell{Row: 0, Col: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [(0,0) (0,1) (1,0) (0,2) (1,1) (2,0) (1,2) (2,1) (2,2)]
}

// ExampleBFSResult_PathTo finds the fewest-move route around a wall.
func ExampleBFSResult_PathTo() {
	g, _ := gridgraph.From2D([][]int{
		{0, 0, 0},
		{1, 1, 0},
		{0, 0, 0},
	}, gridgraph.Conn4)

	res, err := bfs.BFS(g, gridgraph.Cell{Row: 0, Col: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	goal := gridgraph.Cell{Row: 2, Col: 0}
	path, err := res.PathTo(goal)
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path, res.Depth[goal])
	// Output:
	// [(0,0) (0,1) (0,2) (1,2) (2,2) (2,1) (2,0)] 6
}

// ExampleBFS_depthLimitOnRow shows applying WithMaxDepth to a 1×10 row.
// With depth=2 we only visit the first three cells.
func ExampleBFS_depthLimitOnRow() {
	g, _ := gridgraph.From2D([][]int{make([]int, 10)}, gridgraph.Conn4)

	res, err := bfs.BFS(g, gridgraph.Cell{}, bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [(0,0) (0,1) (0,2)]
}

// ExampleBFS_hooksAndCancellation demonstrates the hooks alongside context
// cancellation on a 1×7 row.
func ExampleBFS_hooksAndCancellation() {
	g, _ := gridgraph.From2D([][]int{make([]int, 7)}, gridgraph.Conn4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var enqSeq, visSeq []string
	hookVisit := func(c gridgraph.Cell, d int) error {
		visSeq = append(visSeq, fmt.Sprintf("V%v@%d", c, d))
		if d == 3 {
			cancel() // force mid-traversal cancellation
		}
		return nil
	}

	_, err := bfs.BFS(
		g, gridgraph.Cell{},
		bfs.WithContext(ctx),
		bfs.WithOnEnqueue(func(c gridgraph.Cell, d int) { enqSeq = append(enqSeq, fmt.Sprintf("E%v@%d", c, d)) }),
		bfs.WithOnVisit(hookVisit),
	)

	fmt.Println("error:", err)
	fmt.Println("Enqueued:", enqSeq)
	fmt.Println("Visited: ", visSeq)
	// Output:
	// error: context canceled
	// Enqueued: [E(0,0)@0 E(0,1)@1 E(0,2)@2 E(0,3)@3]
	// Visited:  [V(0,0)@0 V(0,1)@1 V(0,2)@2 V(0,3)@3]
}
