// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridastar.
package gridgraph

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadOffset indicates a move set containing a zero or duplicated offset.
	ErrBadOffset = errors.New("gridgraph: move offsets must be non-zero and unique")
)

// StepUnit is the integer cost of one orthogonal step. Diagonal steps are
// derived from it (see EuclideanStep) so that every cost stays an integer.
const StepUnit = 10

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, W, E, S.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity, diagonals included.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Cell addresses a single grid square by row and column.
// Cells are plain values: equal coordinates mean the same cell.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the cell displaced by o.
func (c Cell) Add(o Offset) Cell {
	return Cell{Row: c.Row + o.DR, Col: c.Col + o.DC}
}

// Offset is a single move in a move set, expressed as a row/column delta.
type Offset struct {
	DR, DC int
}

// Diagonal reports whether the move changes both row and column.
func (o Offset) Diagonal() bool {
	return o.DR != 0 && o.DC != 0
}

// EuclideanStep is the default step cost: the Euclidean length of the offset
// scaled by StepUnit and truncated, i.e. 10 for orthogonal and 14 for diagonal moves.
func EuclideanStep(o Offset) int {
	return int(math.Sqrt(float64(o.DR*o.DR+o.DC*o.DC)) * StepUnit)
}

// ValidateOffsets checks that a move set is usable: every offset non-zero
// and no offset repeated. Returns ErrBadOffset otherwise.
func ValidateOffsets(offsets []Offset) error {
	seen := make(map[Offset]struct{}, len(offsets))
	for _, o := range offsets {
		if o.DR == 0 && o.DC == 0 {
			return fmt.Errorf("%w: zero offset", ErrBadOffset)
		}
		if _, dup := seen[o]; dup {
			return fmt.Errorf("%w: duplicate offset %+v", ErrBadOffset, o)
		}
		seen[o] = struct{}{}
	}
	return nil
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// ObstacleThreshold specifies the minimum cell value considered blocked.
	ObstacleThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// ObstacleThreshold=1 (values ≥1 are obstacles), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		ObstacleThreshold: 1,
		Conn:              Conn4,
	}
}

// Grid is an immutable obstacle map of Rows×Cols cells. It is safe for
// concurrent readers once built; no method mutates it.
type Grid struct {
	Rows, Cols        int
	Conn              Connectivity
	ObstacleThreshold int

	blocked         []bool // row-major
	obstacles       int
	neighborOffsets []Offset
}
