package gridgraph

var (
	conn4Offsets = []Offset{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
	conn8Offsets = []Offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice indexed
// values[row][col]. The input is not retained.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(Rows×Cols) time and memory.
func NewGrid(values [][]int, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	blocked := make([]bool, rows*cols)
	obstacles := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if values[r][c] >= opts.ObstacleThreshold {
				blocked[r*cols+c] = true
				obstacles++
			}
		}
	}

	offsets := conn4Offsets
	if opts.Conn == Conn8 {
		offsets = conn8Offsets
	}

	return &Grid{
		Rows:              rows,
		Cols:              cols,
		Conn:              opts.Conn,
		ObstacleThreshold: opts.ObstacleThreshold,
		blocked:           blocked,
		obstacles:         obstacles,
		neighborOffsets:   offsets,
	}, nil
}

// From2D builds a Grid with the default obstacle threshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*Grid, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGrid(values, opts)
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Blocked reports whether c is an in-bounds obstacle.
func (g *Grid) Blocked(c Cell) bool {
	return g.InBounds(c) && g.blocked[g.index(c)]
}

// IsTraversable reports whether c is in bounds and free.
// Complexity: O(1).
func (g *Grid) IsTraversable(c Cell) bool {
	return g.InBounds(c) && !g.blocked[g.index(c)]
}

// IsValidTransition reports whether a single move from → to is legal:
// to must be traversable and, for a diagonal move, neither of the two
// cells orthogonally adjacent to both from and to may be blocked.
// Complexity: O(1).
func (g *Grid) IsValidTransition(from, to Cell) bool {
	if !g.IsTraversable(to) {
		return false
	}
	if from.Row != to.Row && from.Col != to.Col {
		if g.Blocked(Cell{Row: from.Row, Col: to.Col}) || g.Blocked(Cell{Row: to.Row, Col: from.Col}) {
			return false
		}
	}
	return true
}

// NeighborOffsets returns a copy of the move set implied by g.Conn.
// Order is fixed: for Conn4 it is N, W, E, S.
func (g *Grid) NeighborOffsets() []Offset {
	out := make([]Offset, len(g.neighborOffsets))
	copy(out, g.neighborOffsets)
	return out
}

// Neighbors returns the cells reachable from c in one legal move, in offset order.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		n := c.Add(d)
		if g.IsValidTransition(c, n) {
			out = append(out, n)
		}
	}
	return out
}

// Size is the total number of cells, Rows×Cols.
func (g *Grid) Size() int {
	return g.Rows * g.Cols
}

// ObstacleCount is the number of blocked cells.
func (g *Grid) ObstacleCount() int {
	return g.obstacles
}

// Index maps an in-bounds cell to its row-major index: Row*Cols + Col.
// Callers must check InBounds first.
func (g *Grid) Index(c Cell) int {
	return g.index(c)
}

// index maps c to a row‑major index.
// Complexity: O(1).
func (g *Grid) index(c Cell) int {
	return c.Row*g.Cols + c.Col
}

// Coordinate converts a row‑major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.Cols, Col: idx % g.Cols}
}
