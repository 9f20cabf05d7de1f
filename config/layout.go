package config

import "github.com/katalvlaran/gridastar/gridgraph"

// ReferenceLayout returns a fresh copy of the 10×10 demo map, indexed
// [row][col], 0 = free and 1 = obstacle.
func ReferenceLayout() [][]int {
	return [][]int{
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0, 0, 1, 0, 0},
		{0, 0, 1, 1, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 1, 1, 0, 1, 0, 0, 0, 0},
		{0, 0, 1, 0, 1, 0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
}

// Grid builds the reference layout with the configured connectivity.
func (c *Config) Grid() (*gridgraph.Grid, error) {
	return gridgraph.From2D(ReferenceLayout(), c.Connectivity)
}
