package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/bfs"
	"github.com/katalvlaran/gridastar/config"
	"github.com/katalvlaran/gridastar/dijkstra"
	"github.com/katalvlaran/gridastar/gridgraph"
	"github.com/katalvlaran/gridastar/logging"
	"github.com/katalvlaran/gridastar/metrics"
)

// errVerify reports a disagreement between A* and the reference searches.
var errVerify = errors.New("verify: A* result disagrees with reference search")

type searchFlags struct {
	start         string
	goal          string
	diagonal      bool
	maxExpansions int
	format        string
	verify        bool
	metrics       bool
}

func newSearchCmd(a *app) *cobra.Command {
	var f searchFlags
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find least-cost paths for the configured routes",
		Long: `Run A* for every configured route, or for the single route given by
--start and --goal. Routes run concurrently over the same grid.

Exit status is 3 when any route has no path, hits the expansion limit or
names an obstacle cell.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSearch(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.start, "start", "", "start cell as row,col")
	fl.StringVar(&f.goal, "goal", "", "goal cell as row,col")
	fl.BoolVar(&f.diagonal, "diagonal", false, "allow diagonal moves (8-connectivity)")
	fl.IntVar(&f.maxExpansions, "max-expansions", 0, "stop a route after n expansions (0 = no limit)")
	fl.StringVarP(&f.format, "format", "o", "text", "output format: text, json or yaml")
	fl.BoolVar(&f.verify, "verify", false, "check every result against BFS and Dijkstra")
	fl.BoolVar(&f.metrics, "metrics", false, "print Prometheus metrics for this run")
	return cmd
}

func (a *app) runSearch(cmd *cobra.Command, f searchFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	cfg := *a.cfg
	if f.diagonal {
		cfg.Connectivity = gridgraph.Conn8
	}
	if cmd.Flags().Changed("max-expansions") {
		cfg.MaxExpansions = f.maxExpansions
	}
	if err := checkFormat(f.format); err != nil {
		return err
	}

	routes, err := selectRoutes(&cfg, f.start, f.goal)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: exitUsage, Message: err.Error()}
	}

	grid, err := cfg.Grid()
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}

	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	logger.Info("search started",
		"routes", len(routes),
		"connectivity", cfg.Connectivity.String(),
		"max_expansions", cfg.MaxExpansions)

	reports := make([]routeReport, len(routes))
	g, gctx := errgroup.WithContext(ctx)
	for i, r := range routes {
		i, r := i, r
		g.Go(func() error {
			rep, err := solve(gctx, grid, r, cfg.MaxExpansions, f.verify, rec)
			reports[i] = rep
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := writeReports(a.out, f.format, reports); err != nil {
		return err
	}
	if f.metrics {
		if err := metrics.WriteText(a.out, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	var failed []string
	for _, rep := range reports {
		if !rep.Found {
			failed = append(failed, rep.Name)
		}
	}
	if len(failed) > 0 {
		return &ExitError{Code: exitNoPath, Message: "unsolved routes: " + strings.Join(failed, ", ")}
	}
	return nil
}

// selectRoutes returns the single --start/--goal route when given, the
// configured routes otherwise.
func selectRoutes(cfg *config.Config, start, goal string) ([]config.Route, error) {
	if start == "" && goal == "" {
		return cfg.Routes, nil
	}
	if start == "" || goal == "" {
		return nil, &ExitError{Code: exitUsage, Message: "--start and --goal must be given together"}
	}
	s, err := parseCell(start)
	if err != nil {
		return nil, &ExitError{Code: exitUsage, Message: fmt.Sprintf("--start: %v", err)}
	}
	g, err := parseCell(goal)
	if err != nil {
		return nil, &ExitError{Code: exitUsage, Message: fmt.Sprintf("--goal: %v", err)}
	}
	cfg.Routes = []config.Route{{Name: "cli", Start: s, Goal: g}}
	return cfg.Routes, nil
}

// parseCell reads "row,col".
func parseCell(s string) (gridgraph.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return gridgraph.Cell{}, fmt.Errorf("want row,col, got %q", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("row: %w", err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("col: %w", err)
	}
	return gridgraph.Cell{Row: r, Col: c}, nil
}

// solve runs one route. Search outcomes (no path, limit, invalid cells) land
// in the report; only cancellation and verification failures are returned.
func solve(
	ctx context.Context,
	grid *gridgraph.Grid,
	r config.Route,
	maxExpansions int,
	verify bool,
	rec *metrics.Recorder,
) (routeReport, error) {
	logger := logging.FromContext(ctx).With("route", r.Name)

	opts := []astar.Option{
		astar.WithContext(ctx),
		astar.WithMaxExpansions(maxExpansions),
	}
	if logger.Enabled(ctx, slog.LevelDebug) {
		opts = append(opts, astar.WithOnExpand(func(c gridgraph.Cell, g, f int) {
			logger.Debug("expand", "cell", c.String(), "g", g, "f", f)
		}))
	}

	res, err := astar.Search(grid, r.Start, r.Goal, opts...)
	outcome := metrics.OutcomeOf(res, err)
	rep := newReport(r, res, err)
	rec.Observe(outcome, rep.Expanded, rep.Cost)

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return rep, err
	}
	logger.Info("route finished",
		"outcome", outcome,
		"cost", rep.Cost,
		"expanded", rep.Expanded)

	if verify && (outcome == metrics.OutcomeFound || outcome == metrics.OutcomeNoPath) {
		if err := crossCheck(ctx, grid, r, res); err != nil {
			return rep, err
		}
		ok := true
		rep.Verified = &ok
	}
	return rep, nil
}

// crossCheck compares an A* result with BFS reachability and the Dijkstra
// distance to the goal.
func crossCheck(ctx context.Context, grid *gridgraph.Grid, r config.Route, res *astar.Result) error {
	dist, _, err := dijkstra.Dijkstra(grid, dijkstra.Source(r.Start))
	if err != nil {
		return fmt.Errorf("verify %s: %w", r.Name, err)
	}
	d, ok := dist[r.Goal]
	reachable := ok && d != math.MaxInt64

	walk, err := bfs.BFS(grid, r.Start, bfs.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("verify %s: %w", r.Name, err)
	}
	_, bfsReached := walk.Depth[r.Goal]

	switch {
	case reachable != bfsReached:
		return fmt.Errorf("%w: route %s: dijkstra reachable=%t, bfs reachable=%t", errVerify, r.Name, reachable, bfsReached)
	case res.Found != reachable:
		return fmt.Errorf("%w: route %s: found=%t, reachable=%t", errVerify, r.Name, res.Found, reachable)
	case res.Found && int64(res.Cost) != d:
		return fmt.Errorf("%w: route %s: cost %d, dijkstra %d", errVerify, r.Name, res.Cost, d)
	}
	return nil
}
