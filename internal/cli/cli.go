package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/synroute/internal/app"
	"github.com/vk/synroute/internal/settings"
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
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("synroute", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
synroute - a minimum-step synthesis route planner over a fixed rule library.

Usage:
  synroute [options] [TARGET]

Arguments:
  TARGET
    Compound to synthesize, by ID (e.g. "alcohol:C2") or display name
    (e.g. "ethanol").

Options:
`)
		flagSet.PrintDefaults()
	}

	libraryFlag := flagSet.String("library", "", "Path to an extra .hcl rule library file or directory.")
	lFlag := flagSet.String("l", "", "Path to an extra .hcl rule library file or directory (shorthand).")
	noBuiltinFlag := flagSet.Bool("no-builtin", false, "Skip the builtin rule library; requires --library.")
	listFlag := flagSet.Bool("list", false, "List all recognized compound names.")
	topFlag := flagSet.Int("top", 0, "Print the N cheapest reachable compounds. 0 is disabled.")
	demosFlag := flagSet.String("demos", "", "Write a Markdown demo report to this file.")
	demoCountFlag := flagSet.Int("demo-count", 0, "Number of examples in the demo report.")
	configFlag := flagSet.String("config", "", "Path to a TOML settings file with flag defaults.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	// The settings file supplies defaults; flags given explicitly win.
	defaults := settings.Defaults()
	if *configFlag != "" {
		var err error
		defaults, err = settings.ParseFile(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		slog.Debug("Settings file loaded.", "path", *configFlag)
	}

	provided := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { provided[f.Name] = true })

	libraryPath := defaults.LibraryPath
	if *libraryFlag != "" {
		libraryPath = *libraryFlag
	} else if *lFlag != "" {
		libraryPath = *lFlag
	}

	logFormat := defaults.LogFormat
	if provided["log-format"] {
		logFormat = strings.ToLower(*logFormatFlag)
	}
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := defaults.LogLevel
	if provided["log-level"] {
		logLevel = strings.ToLower(*logLevelFlag)
	}
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	demoCount := defaults.DemoCount
	if provided["demo-count"] {
		demoCount = *demoCountFlag
	}

	target := ""
	if flagSet.NArg() > 0 {
		target = strings.Join(flagSet.Args(), " ")
	}
	slog.Debug("Target determined.", "target", target)

	if target == "" && !*listFlag && *topFlag == 0 && *demosFlag == "" {
		slog.Debug("No mode selected, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		LibraryPath:   libraryPath,
		NoBuiltin:     *noBuiltinFlag,
		Target:        target,
		ListCompounds: *listFlag,
		TopCount:      *topFlag,
		DemosPath:     *demosFlag,
		DemoCount:     demoCount,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
