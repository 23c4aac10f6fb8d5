package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/modgraphgo/internal/app"
	"github.com/vk/modgraphgo/internal/registry"
)

// Exit codes for declaration errors, as reported to calling build tooling.
const (
	// ExitUnknownDependency covers unresolvable dependency names and other
	// declaration errors such as duplicate module names.
	ExitUnknownDependency = 1
	// ExitCycle is returned when the dependency declarations form a loop.
	ExitCycle = 2
	// ExitUsage is returned for invalid flags and invalid flag values.
	ExitUsage = 3
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("modgraphgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
modgraphgo - resolves a multi-module manifest into a safe build order.

Usage:
  modgraphgo [options] [MANIFEST_PATH]

Arguments:
  MANIFEST_PATH
    Path to a single .hcl manifest file or a directory containing .hcl files.

Exit codes:
  0  success
  1  unknown dependency or other declaration error
  2  dependency cycle
  3  usage error

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.String("manifest", "", "Path to the manifest file or directory.")
	mFlag := flagSet.String("m", "", "Path to the manifest file or directory (shorthand).")
	outputFlag := flagSet.String("output", "order", "Output format. Options: 'order', 'stages', or 'json'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	path := *manifestFlag
	if *mFlag != "" {
		if path != "" {
			return nil, false, &ExitError{Code: ExitUsage, Message: "conflicting manifest paths: use -manifest or -m, not both"}
		}
		path = *mFlag
	}
	if flagSet.NArg() > 0 {
		if path != "" {
			return nil, false, &ExitError{Code: ExitUsage, Message: "conflicting manifest paths: use -manifest/-m or a positional argument, not both"}
		}
		path = flagSet.Arg(0)
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	outputFormat := strings.ToLower(*outputFlag)
	if _, err := registry.New().Lookup(outputFormat); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		ManifestPath: path,
		Output:       outputFormat,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	return config, false, nil
}
