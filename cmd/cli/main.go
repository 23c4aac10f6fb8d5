package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/modgraphgo/internal/app"
	"github.com/vk/modgraphgo/internal/cli"
	"github.com/vk/modgraphgo/internal/graph"
	"github.com/vk/modgraphgo/internal/hcl"
)

// main is the entrypoint for the modgraphgo application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Results go to outW; logs and usage text go to errW.
func run(outW, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors (unreadable manifest,
	// unknown output format); recover them into a clean error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	loader := hcl.NewLoader()
	resolverApp := app.NewApp(outW, errW, appConfig, loader)

	return resolverApp.Run(context.Background())
}

// exitCode maps an error to the process exit code documented in the usage
// text: usage errors carry their own code, cycle and unknown-dependency
// errors have fixed codes, and everything else is a declaration error.
func exitCode(err error) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var cyc *graph.CyclicDependencyError
	if errors.As(err, &cyc) {
		return cli.ExitCycle
	}

	return cli.ExitUnknownDependency
}
