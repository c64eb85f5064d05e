package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
// Exactly one of the four modes (Target, ListCompounds, TopCount, DemosPath)
// must be selected.
type Config struct {
	// Knowledge base
	LibraryPath string // extra .hcl rule libraries (file or directory)
	NoBuiltin   bool   // skip the builtin library and use only LibraryPath

	// Modes
	Target        string // plan a route for this compound ID or display name
	ListCompounds bool   // print all known compound names
	TopCount      int    // print the N cheapest reachable compounds (0 = off)
	DemosPath     string // write the Markdown demo report to this file

	DemoCount int // number of examples in the demo report

	// Logging
	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	modes := 0
	if cfg.Target != "" {
		modes++
	}
	if cfg.ListCompounds {
		modes++
	}
	if cfg.TopCount > 0 {
		modes++
	}
	if cfg.DemosPath != "" {
		modes++
	}
	if modes != 1 {
		return nil, errors.New("exactly one mode must be selected: TARGET, --list, --top, or --demos")
	}

	if cfg.NoBuiltin && cfg.LibraryPath == "" {
		return nil, errors.New("--no-builtin requires --library: there would be no rules at all")
	}

	if cfg.DemosPath != "" && cfg.DemoCount <= 0 {
		return nil, errors.New("--demo-count must be positive")
	}

	return &cfg, nil
}
