package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridastar/config"
	"github.com/katalvlaran/gridastar/logging"
)

// app holds the state shared by all subcommands of one invocation.
type app struct {
	out io.Writer

	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
}

// newRootCmd builds a fresh command tree writing results to out.
func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "astargrid",
		Short: "Shortest paths on an obstacle grid with A*",
		Long: `astargrid finds least-cost paths between cells of the built-in 10×10
demo layout. Routes come from an HCL config file or from --start/--goal.

Examples:
  astargrid search
  astargrid search --start 2,4 --goal 8,6 --diagonal --format yaml
  astargrid search --config routes.hcl --verify --metrics
  astargrid inspect`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.prepare,
	}
	root.SetOut(out)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: exitUsage, Message: err.Error()}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "HCL config file (defaults to the reference route)")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(newSearchCmd(a), newInspectCmd(a))
	return root
}

// prepare loads the config, applies logging flag overrides and stores the
// logger in the command context.
func (a *app) prepare(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return &ExitError{Code: exitUsage, Message: err.Error()}
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: exitUsage, Message: err.Error()}
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	a.cfg = cfg
	return nil
}
