// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 3×4 grid
// with orthogonal connectivity (Conn4).
//
// Grid (0 = free, 1 = obstacle):
//
//	1 0 0 1
//	0 0 1 1
//	1 1 0 0
//
// Expected: 2 regions of sizes 4 and 2.
//
// Complexity: O(W·H·4) time, O(W·H) memory.
func TestConnectedComponents_Simple4(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 1},
		{0, 0, 1, 1},
		{1, 1, 0, 0},
	}
	g, err := From2D(grid, Conn4)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := g.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_NoCornerCutting checks that Conn8 regions do not
// link through a diagonal squeezed between two obstacles.
//
// Grid:
//
//	0 1
//	1 0
//
// Expect: 2 components of size 1.
func TestConnectedComponents_NoCornerCutting(t *testing.T) {
	grid := [][]int{
		{0, 1},
		{1, 0},
	}
	g, err := From2D(grid, Conn8)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}
	comps := g.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	if g.Connected(Cell{0, 0}, Cell{1, 1}) {
		t.Error("Connected((0,0),(1,1)) = true; want false")
	}
}

// TestConnectedComponents_Diagonal8 checks an L-shaped region whose diagonal
// (0,0)→(1,1) is legal under Conn8 because one side stays open.
//
// Grid:
//
//	0 0
//	1 0
//
// Both connectivities give a single region of size 3.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{0, 0},
		{1, 0},
	}
	for _, conn := range []Connectivity{Conn4, Conn8} {
		g, _ := From2D(grid, conn)
		comps := g.ConnectedComponents()
		if len(comps) != 1 || len(comps[0]) != 3 {
			t.Errorf("%v: components = %v; want one of size 3", conn, comps)
		}
	}
}

// TestConnectedComponents_EdgeCases tests edge cases:
//   - fully blocked grid → zero components
//   - single free cell → one component of size 1
func TestConnectedComponents_EdgeCases(t *testing.T) {
	g1, _ := From2D([][]int{{1, 1}, {1, 1}}, Conn4)
	if comps := g1.ConnectedComponents(); len(comps) != 0 {
		t.Errorf("all blocked: got %d components; want 0", len(comps))
	}

	g2, _ := From2D([][]int{{1, 0}}, Conn4)
	comps := g2.ConnectedComponents()
	if len(comps) != 1 {
		t.Fatalf("single free: got %d components; want 1", len(comps))
	}
	if len(comps[0]) != 1 || comps[0][0] != 1 {
		t.Errorf("single free: component = %v; want [1]", comps[0])
	}
}

// TestRegions_Labels checks labels, including -1 for obstacles.
func TestRegions_Labels(t *testing.T) {
	g, _ := From2D([][]int{{0, 1, 0}}, Conn4)
	want := []int{0, -1, 1}
	if got := g.Regions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Regions = %v; want %v", got, want)
	}
	if g.Connected(Cell{0, 0}, Cell{0, 1}) {
		t.Error("Connected to an obstacle must be false")
	}
}

// TestConnectedComponents_InvalidRects ensures From2D rejects bad inputs.
func TestConnectedComponents_InvalidRects(t *testing.T) {
	if _, err := From2D(nil, Conn4); err != ErrEmptyGrid {
		t.Errorf("nil grid: got %v; want ErrEmptyGrid", err)
	}
	if _, err := From2D([][]int{{1}, {}}, Conn4); err != ErrNonRectangular {
		t.Errorf("jagged grid: got %v; want ErrNonRectangular", err)
	}
}
