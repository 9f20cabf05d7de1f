package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridastar/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid and bounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty or ragged inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGrid_DoesNotAlias checks that mutating the input after construction
// leaves the grid unchanged.
func TestNewGrid_DoesNotAlias(t *testing.T) {
	values := [][]int{{0, 0}, {0, 0}}
	g, err := gridgraph.From2D(values, gridgraph.Conn4)
	if err != nil {
		t.Fatalf("From2D error: %v", err)
	}
	values[0][1] = 1
	if !g.IsTraversable(gridgraph.Cell{Row: 0, Col: 1}) {
		t.Error("grid changed after input mutation")
	}
	if g.ObstacleCount() != 0 {
		t.Errorf("ObstacleCount = %d; want 0", g.ObstacleCount())
	}
}

// TestObstacleThreshold checks that values at or above the threshold block.
func TestObstacleThreshold(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.ObstacleThreshold = 5
	g, err := gridgraph.NewGrid([][]int{{0, 4, 5, 9}}, opts)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	want := []bool{true, true, false, false}
	for col, w := range want {
		if got := g.IsTraversable(gridgraph.Cell{Row: 0, Col: col}); got != w {
			t.Errorf("IsTraversable(0,%d) = %v; want %v", col, got, w)
		}
	}
	if g.ObstacleCount() != 2 {
		t.Errorf("ObstacleCount = %d; want 2", g.ObstacleCount())
	}
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	g, err := gridgraph.From2D(grid, gridgraph.Conn4)
	if err != nil {
		t.Fatalf("From2D error: %v", err)
	}

	valid := []gridgraph.Cell{{0, 0}, {1, 2}, {1, 1}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	invalid := []gridgraph.Cell{{-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
		if g.IsTraversable(c) {
			t.Errorf("IsTraversable(%v)=true for out-of-bounds cell", c)
		}
	}
}

//----------------------------------------------------------------------------//
// Move legality Tests
//----------------------------------------------------------------------------//

// TestIsValidTransition covers obstacles, bounds and corner cutting.
func TestIsValidTransition(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	g, err := gridgraph.From2D(grid, gridgraph.Conn8)
	if err != nil {
		t.Fatalf("From2D error: %v", err)
	}
	cases := []struct {
		name     string
		from, to gridgraph.Cell
		want     bool
	}{
		{"Orthogonal", gridgraph.Cell{1, 1}, gridgraph.Cell{2, 1}, true},
		{"IntoObstacle", gridgraph.Cell{1, 1}, gridgraph.Cell{0, 1}, false},
		{"OutOfBounds", gridgraph.Cell{0, 0}, gridgraph.Cell{-1, 0}, false},
		{"DiagonalClear", gridgraph.Cell{1, 1}, gridgraph.Cell{2, 2}, true},
		{"DiagonalOpenCorners", gridgraph.Cell{1, 1}, gridgraph.Cell{2, 0}, true},
		{"DiagonalCutsRightCorner", gridgraph.Cell{1, 1}, gridgraph.Cell{0, 2}, false},
		{"DiagonalCutsLeftCorner", gridgraph.Cell{1, 1}, gridgraph.Cell{0, 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.IsValidTransition(tc.from, tc.to); got != tc.want {
				t.Errorf("IsValidTransition(%v,%v) = %v; want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

// TestNeighborOffsets checks move-set size, order and copy semantics.
func TestNeighborOffsets(t *testing.T) {
	g4, _ := gridgraph.From2D([][]int{{0}}, gridgraph.Conn4)
	off := g4.NeighborOffsets()
	want := []gridgraph.Offset{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
	if len(off) != len(want) {
		t.Fatalf("Conn4 offsets = %v; want %v", off, want)
	}
	for i := range want {
		if off[i] != want[i] {
			t.Errorf("Conn4 offset[%d] = %v; want %v", i, off[i], want[i])
		}
	}
	off[0] = gridgraph.Offset{DR: 5, DC: 5}
	if g4.NeighborOffsets()[0] != want[0] {
		t.Error("NeighborOffsets leaked internal slice")
	}

	g8, _ := gridgraph.From2D([][]int{{0}}, gridgraph.Conn8)
	diag := 0
	for _, o := range g8.NeighborOffsets() {
		if o.Diagonal() {
			diag++
		}
	}
	if diag != 4 || len(g8.NeighborOffsets()) != 8 {
		t.Errorf("Conn8: %d offsets with %d diagonals; want 8 and 4", len(g8.NeighborOffsets()), diag)
	}
}

// TestEuclideanStep pins the integer step costs.
func TestEuclideanStep(t *testing.T) {
	if got := gridgraph.EuclideanStep(gridgraph.Offset{DR: 0, DC: 1}); got != 10 {
		t.Errorf("orthogonal step = %d; want 10", got)
	}
	if got := gridgraph.EuclideanStep(gridgraph.Offset{DR: -1, DC: 1}); got != 14 {
		t.Errorf("diagonal step = %d; want 14", got)
	}
	if got := gridgraph.EuclideanStep(gridgraph.Offset{DR: 2, DC: 1}); got != 22 {
		t.Errorf("knight step = %d; want 22", got)
	}
}

// TestValidateOffsets rejects zero and duplicate offsets.
func TestValidateOffsets(t *testing.T) {
	if err := gridgraph.ValidateOffsets([]gridgraph.Offset{{0, 1}, {1, 0}}); err != nil {
		t.Errorf("valid set: unexpected error %v", err)
	}
	if err := gridgraph.ValidateOffsets([]gridgraph.Offset{{0, 0}}); !errors.Is(err, gridgraph.ErrBadOffset) {
		t.Errorf("zero offset: got %v; want ErrBadOffset", err)
	}
	if err := gridgraph.ValidateOffsets([]gridgraph.Offset{{0, 1}, {0, 1}}); !errors.Is(err, gridgraph.ErrBadOffset) {
		t.Errorf("duplicate offset: got %v; want ErrBadOffset", err)
	}
}

// TestIndexCoordinateRoundTrip walks every cell of a 3×4 grid.
func TestIndexCoordinateRoundTrip(t *testing.T) {
	g, _ := gridgraph.From2D(make3x4(), gridgraph.Conn4)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := gridgraph.Cell{Row: r, Col: c}
			if back := g.Coordinate(g.Index(cell)); back != cell {
				t.Errorf("Coordinate(Index(%v)) = %v", cell, back)
			}
		}
	}
}

func make3x4() [][]int {
	return [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
}
