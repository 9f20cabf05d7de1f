package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/config"
	"github.com/katalvlaran/gridastar/gridgraph"
)

// execute runs the CLI with quiet logging and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), &out, append(args, "--log-level", "error"))
	return out.String(), err
}

func requireExitCode(t *testing.T, err error, code int) *ExitError {
	t.Helper()
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, code, exitErr.Code)
	return exitErr
}

func TestRun_Help(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "search")
	assert.Contains(t, out, "inspect")
}

func TestSearch_ReferenceRoute(t *testing.T) {
	out, err := execute(t, "search")
	require.NoError(t, err)
	assert.Contains(t, out, "route reference (2,4) → (8,6): cost=160 steps=16 expanded=45")
}

func TestSearch_Diagonal(t *testing.T) {
	out, err := execute(t, "search", "--diagonal")
	require.NoError(t, err)
	assert.Contains(t, out, "cost=148 steps=14 expanded=54")
}

func TestSearch_StartGoalFlags(t *testing.T) {
	out, err := execute(t, "search", "--start", "0,0", "--goal", "0, 2")
	require.NoError(t, err)
	assert.Contains(t, out, "route cli (0,0) → (0,2): cost=20 steps=2")
	assert.Contains(t, out, "(0,0) (0,1) (0,2)")
}

func TestSearch_JSON(t *testing.T) {
	out, err := execute(t, "search", "--format", "json", "--verify")
	require.NoError(t, err)

	var reports []routeReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	rep := reports[0]
	assert.True(t, rep.Found)
	assert.Equal(t, 160, rep.Cost)
	assert.Equal(t, 45, rep.Expanded)
	require.Len(t, rep.Path, 17)
	assert.Equal(t, "(2,4)", rep.Path[0])
	assert.Equal(t, "(8,6)", rep.Path[16])
	require.NotNil(t, rep.Verified)
	assert.True(t, *rep.Verified)
}

func TestSearch_YAML(t *testing.T) {
	out, err := execute(t, "search", "-o", "yaml", "--diagonal")
	require.NoError(t, err)

	var reports []routeReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, 148, reports[0].Cost)
	assert.Len(t, reports[0].Path, 15)
	assert.Empty(t, reports[0].Error)
}

func TestSearch_VerifyAndMetrics(t *testing.T) {
	out, err := execute(t, "search", "--verify", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "expanded=45 verified")
	assert.Contains(t, out, `gridastar_searches_total{outcome="found"} 1`)
	assert.Contains(t, out, "gridastar_path_cost_sum 160")
}

func TestSearch_Failures(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		code    int
		wantOut string
	}{
		{"GoalOnObstacle", []string{"--start", "0,0", "--goal", "1,1"}, exitNoPath, "goal cell is out of bounds or blocked"},
		{"StartOutOfBounds", []string{"--start=-1,0", "--goal", "1,0"}, exitNoPath, "start cell is out of bounds or blocked"},
		{"ExpansionLimit", []string{"--max-expansions", "10"}, exitNoPath, "expansion limit reached: 10 (expanded=10)"},
		{"OnlyStart", []string{"--start", "0,0"}, exitUsage, ""},
		{"BadCell", []string{"--start", "a,0", "--goal", "1,0"}, exitUsage, ""},
		{"BadFormat", []string{"--format", "xml"}, exitUsage, ""},
		{"NegativeLimit", []string{"--max-expansions=-1"}, exitUsage, ""},
		{"UnknownFlag", []string{"--bogus"}, exitUsage, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"search"}, tc.args...)...)
			requireExitCode(t, err, tc.code)
			if tc.wantOut != "" {
				assert.Contains(t, out, tc.wantOut)
			}
		})
	}
}

func TestSearch_ConfigRoutes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.hcl")
	src := `
route "a" {
  start = [2, 4]
  goal  = [8, 6]
}

route "b" {
  start = [0, 0]
  goal  = [rows - 1, cols - 1]
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	out, err := execute(t, "search", "--config", path, "--verify", "--format", "json")
	require.NoError(t, err)

	var reports []routeReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "a", reports[0].Name)
	assert.Equal(t, 160, reports[0].Cost)
	assert.Equal(t, "b", reports[1].Name)
	assert.Equal(t, "(9,9)", reports[1].Goal)
	assert.Equal(t, 180, reports[1].Cost)
}

func TestSearch_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(path, []byte("connectivity = 6\n"), 0o600))

	_, err := execute(t, "search", "--config", path)
	exitErr := requireExitCode(t, err, exitUsage)
	assert.Contains(t, exitErr.Message, "connectivity must be 4 or 8")

	_, err = execute(t, "search", "--config", filepath.Join(t.TempDir(), "missing.hcl"))
	requireExitCode(t, err, exitUsage)
}

func TestInspect(t *testing.T) {
	out, err := execute(t, "inspect", "--map")
	require.NoError(t, err)
	assert.Contains(t, out, "grid 10x10 conn4\n")
	assert.Contains(t, out, "obstacles 18 of 100\n")
	assert.Contains(t, out, "regions 1\n")
	assert.Contains(t, out, "..##...#..\n")
	assert.Contains(t, out, "route reference (2,4) → (8,6): connected")
}

func TestParseCell(t *testing.T) {
	cases := []struct {
		in      string
		want    gridgraph.Cell
		wantErr bool
	}{
		{"2,4", gridgraph.Cell{Row: 2, Col: 4}, false},
		{" 8 , 6 ", gridgraph.Cell{Row: 8, Col: 6}, false},
		{"-1,3", gridgraph.Cell{Row: -1, Col: 3}, false},
		{"2", gridgraph.Cell{}, true},
		{"2,4,6", gridgraph.Cell{}, true},
		{"x,4", gridgraph.Cell{}, true},
		{"2,", gridgraph.Cell{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseCell(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCrossCheck(t *testing.T) {
	cfg := config.Default()
	grid, err := cfg.Grid()
	require.NoError(t, err)
	r := cfg.Routes[0]

	res, err := astar.Search(grid, r.Start, r.Goal)
	require.NoError(t, err)
	require.NoError(t, crossCheck(context.Background(), grid, r, res))

	wrong := *res
	wrong.Cost++
	assert.ErrorIs(t, crossCheck(context.Background(), grid, r, &wrong), errVerify)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, crossCheck(ctx, grid, r, res), context.Canceled)
}
