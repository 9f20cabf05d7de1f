package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridastar/gridgraph"
	"github.com/katalvlaran/gridastar/logging"
)

func newInspectCmd(a *app) *cobra.Command {
	var diagonal, showMap bool
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize the layout and route connectivity",
		Long: `Print the layout size, obstacle count and number of free regions, then
report for each configured route whether start and goal share a region.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := *a.cfg
			if diagonal {
				cfg.Connectivity = gridgraph.Conn8
			}
			grid, err := cfg.Grid()
			if err != nil {
				return fmt.Errorf("build grid: %w", err)
			}
			logging.FromContext(cmd.Context()).Debug("inspecting layout", "connectivity", cfg.Connectivity.String())

			var b strings.Builder
			fmt.Fprintf(&b, "grid %dx%d %s\n", grid.Rows, grid.Cols, grid.Conn)
			fmt.Fprintf(&b, "obstacles %d of %d\n", grid.ObstacleCount(), grid.Size())
			fmt.Fprintf(&b, "regions %d\n", len(grid.ConnectedComponents()))
			if showMap {
				writeMap(&b, grid)
			}
			for _, r := range cfg.Routes {
				fmt.Fprintf(&b, "route %s %s → %s: %s\n", r.Name, r.Start, r.Goal, routeStatus(grid, r.Start, r.Goal))
			}
			_, err = fmt.Fprint(a.out, b.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "use 8-connectivity")
	cmd.Flags().BoolVar(&showMap, "map", false, "draw the layout, '#' for obstacles")
	return cmd
}

func routeStatus(g *gridgraph.Grid, start, goal gridgraph.Cell) string {
	switch {
	case !g.IsTraversable(start):
		return "start blocked"
	case !g.IsTraversable(goal):
		return "goal blocked"
	case g.Connected(start, goal):
		return "connected"
	default:
		return "disconnected"
	}
}

func writeMap(b *strings.Builder, g *gridgraph.Grid) {
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.Blocked(gridgraph.Cell{Row: r, Col: c}) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
}
