// Package config loads run settings for the astargrid command from HCL.
//
// A config file names the connectivity, search limits, logging and a set of
// routes to solve on the built-in demo layout. Route coordinates are HCL
// expressions evaluated with two variables, rows and cols, bound to the
// layout's dimensions:
//
//	connectivity   = 4
//	max_expansions = 0
//	log_level      = "info"
//	log_format     = "text"
//
//	route "reference" {
//	  start = [2, 4]
//	  goal  = [rows - 2, cols - 4]
//	}
//
// Obstacle layouts are never read from the file.
package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/gridastar/gridgraph"
)

// ErrInvalidConfig is returned by Validate and Load for semantically bad settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Route is one start/goal pair to solve.
type Route struct {
	Name  string
	Start gridgraph.Cell
	Goal  gridgraph.Cell
}

// Config is the decoded, defaulted configuration.
type Config struct {
	Connectivity  gridgraph.Connectivity
	MaxExpansions int
	LogLevel      string
	LogFormat     string
	Routes        []Route
}

// fileRoot mirrors the top level of a config file. Optional attributes are
// pointers so that absent ones keep their defaults.
type fileRoot struct {
	Connectivity  *int         `hcl:"connectivity,optional"`
	MaxExpansions *int         `hcl:"max_expansions,optional"`
	LogLevel      *string      `hcl:"log_level,optional"`
	LogFormat     *string      `hcl:"log_format,optional"`
	Routes        []*routeBody `hcl:"route,block"`
}

type routeBody struct {
	Name  string `hcl:"name,label"`
	Start []int  `hcl:"start"`
	Goal  []int  `hcl:"goal"`
}

// Default returns the reference scenario: 4-directional moves, no expansion
// cap, info-level text logs and the single route (2,4)→(8,6).
func Default() *Config {
	return &Config{
		Connectivity:  gridgraph.Conn4,
		MaxExpansions: 0,
		LogLevel:      "info",
		LogFormat:     "text",
		Routes: []Route{{
			Name:  "reference",
			Start: gridgraph.Cell{Row: 2, Col: 4},
			Goal:  gridgraph.Cell{Row: 8, Col: 6},
		}},
	}
}

// Load parses the HCL file at path on top of Default.
func Load(path string) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decode(f, path)
}

// LoadBytes parses HCL source held in memory. filename is used in diagnostics only.
func LoadBytes(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decode(f, filename)
}

func decode(f *hcl.File, filename string) (*Config, error) {
	var root fileRoot
	diags := gohcl.DecodeBody(f.Body, evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	cfg := Default()
	if root.Connectivity != nil {
		switch *root.Connectivity {
		case 4:
			cfg.Connectivity = gridgraph.Conn4
		case 8:
			cfg.Connectivity = gridgraph.Conn8
		default:
			return nil, fmt.Errorf("%w: connectivity must be 4 or 8, got %d", ErrInvalidConfig, *root.Connectivity)
		}
	}
	if root.MaxExpansions != nil {
		cfg.MaxExpansions = *root.MaxExpansions
	}
	if root.LogLevel != nil {
		cfg.LogLevel = *root.LogLevel
	}
	if root.LogFormat != nil {
		cfg.LogFormat = *root.LogFormat
	}
	if len(root.Routes) > 0 {
		cfg.Routes = cfg.Routes[:0]
		for _, rb := range root.Routes {
			r, err := rb.route()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", filename, err)
			}
			cfg.Routes = append(cfg.Routes, r)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// evalContext binds rows and cols to the reference layout's size.
func evalContext() *hcl.EvalContext {
	layout := ReferenceLayout()
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"rows": cty.NumberIntVal(int64(len(layout))),
			"cols": cty.NumberIntVal(int64(len(layout[0]))),
		},
	}
}

func (rb *routeBody) route() (Route, error) {
	start, err := pair(rb.Start)
	if err != nil {
		return Route{}, fmt.Errorf("%w: route %q start: %v", ErrInvalidConfig, rb.Name, err)
	}
	goal, err := pair(rb.Goal)
	if err != nil {
		return Route{}, fmt.Errorf("%w: route %q goal: %v", ErrInvalidConfig, rb.Name, err)
	}
	return Route{Name: rb.Name, Start: start, Goal: goal}, nil
}

func pair(v []int) (gridgraph.Cell, error) {
	if len(v) != 2 {
		return gridgraph.Cell{}, fmt.Errorf("want [row, col], got %d values", len(v))
	}
	return gridgraph.Cell{Row: v[0], Col: v[1]}, nil
}

// Validate checks value ranges and route names. Cell traversability is left
// to the search, which reports it with its own errors.
func (c *Config) Validate() error {
	if c.Connectivity != gridgraph.Conn4 && c.Connectivity != gridgraph.Conn8 {
		return fmt.Errorf("%w: unknown connectivity %v", ErrInvalidConfig, c.Connectivity)
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions cannot be negative (%d)", ErrInvalidConfig, c.MaxExpansions)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	if len(c.Routes) == 0 {
		return fmt.Errorf("%w: no routes", ErrInvalidConfig)
	}
	seen := make(map[string]struct{}, len(c.Routes))
	for _, r := range c.Routes {
		if r.Name == "" {
			return fmt.Errorf("%w: route without a name", ErrInvalidConfig)
		}
		if _, dup := seen[r.Name]; dup {
			return fmt.Errorf("%w: duplicate route %q", ErrInvalidConfig, r.Name)
		}
		seen[r.Name] = struct{}{}
	}
	return nil
}

// Route returns the route with the given name.
func (c *Config) Route(name string) (Route, bool) {
	for _, r := range c.Routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}
