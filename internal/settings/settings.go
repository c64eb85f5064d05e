// Package settings reads the optional TOML settings file that supplies
// defaults for CLI flags.
package settings

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings are the file-configurable defaults. Flags set explicitly on the
// command line always win over values from the file.
type Settings struct {
	LibraryPath string `toml:"library_path"`
	LogLevel    string `toml:"log_level"`
	LogFormat   string `toml:"log_format"`
	DemoCount   int    `toml:"demo_count"`
}

// Defaults returns the built-in defaults used when no settings file exists.
func Defaults() Settings {
	return Settings{
		LogLevel:  "info",
		LogFormat: "text",
		DemoCount: 120,
	}
}

// ParseFile reads and parses a settings TOML file. Fields absent from the
// file keep their built-in defaults.
func ParseFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings file: %w", err)
	}
	return Parse(data)
}

// Parse parses settings TOML content from bytes.
func Parse(data []byte) (Settings, error) {
	s := Defaults()
	if _, err := toml.Decode(string(data), &s); err != nil {
		return Settings{}, fmt.Errorf("parsing TOML: %w", err)
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	switch s.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q: must be 'text' or 'json'", s.LogFormat)
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be 'debug', 'info', 'warn', or 'error'", s.LogLevel)
	}
	if s.DemoCount < 0 {
		return fmt.Errorf("invalid demo_count %d: must not be negative", s.DemoCount)
	}
	return nil
}
