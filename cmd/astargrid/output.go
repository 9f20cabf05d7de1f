package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/config"
)

// routeReport is the printable outcome of one route.
type routeReport struct {
	Name     string   `json:"name" yaml:"name"`
	Start    string   `json:"start" yaml:"start"`
	Goal     string   `json:"goal" yaml:"goal"`
	Found    bool     `json:"found" yaml:"found"`
	Cost     int      `json:"cost" yaml:"cost"`
	Expanded int      `json:"expanded" yaml:"expanded"`
	Path     []string `json:"path,omitempty" yaml:"path,omitempty"`
	Verified *bool    `json:"verified,omitempty" yaml:"verified,omitempty"`
	Error    string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func newReport(r config.Route, res *astar.Result, err error) routeReport {
	rep := routeReport{
		Name:  r.Name,
		Start: r.Start.String(),
		Goal:  r.Goal.String(),
	}
	if res != nil {
		rep.Found = res.Found
		rep.Expanded = res.Expanded
		if res.Found {
			rep.Cost = res.Cost
			rep.Path = make([]string, len(res.Path))
			for i, c := range res.Path {
				rep.Path[i] = c.String()
			}
		}
	}
	if err != nil {
		rep.Error = err.Error()
	}
	return rep
}

func checkFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	default:
		return &ExitError{Code: exitUsage, Message: fmt.Sprintf("unknown --format %q: want text, json or yaml", format)}
	}
}

// writeReports prints reports in route order.
func writeReports(w io.Writer, format string, reports []routeReport) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, rep := range reports {
			if err := writeText(w, rep); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeText(w io.Writer, rep routeReport) error {
	var b strings.Builder
	fmt.Fprintf(&b, "route %s %s → %s: ", rep.Name, rep.Start, rep.Goal)
	switch {
	case rep.Found:
		fmt.Fprintf(&b, "cost=%d steps=%d expanded=%d", rep.Cost, len(rep.Path)-1, rep.Expanded)
	case rep.Error != "":
		fmt.Fprintf(&b, "%s (expanded=%d)", rep.Error, rep.Expanded)
	default:
		fmt.Fprintf(&b, "no path (expanded=%d)", rep.Expanded)
	}
	if rep.Verified != nil && *rep.Verified {
		b.WriteString(" verified")
	}
	b.WriteByte('\n')
	if rep.Found {
		fmt.Fprintf(&b, "  %s\n", strings.Join(rep.Path, " "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
