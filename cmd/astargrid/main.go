// Command astargrid solves routes on the built-in 10×10 demo layout with A*.
//
//	astargrid search                         every configured route
//	astargrid search --start 2,4 --goal 8,6  one ad-hoc route
//	astargrid inspect                        layout and region summary
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// ExitError carries a specific process exit code up to main.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Exit codes beyond the generic 1.
const (
	exitUsage  = 2 // bad flags or config
	exitNoPath = 3 // at least one route was not solved
)

func main() {
	// Use a minimal logger until the configured one replaces it in the command context.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run executes one command line against out. It never calls os.Exit.
func run(ctx context.Context, out io.Writer, args []string) error {
	root := newRootCmd(out)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
