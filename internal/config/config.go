// Package config holds runtime configuration: defaults, optional YAML
// config file, and validation. Flag binding lives in cmd; precedence is
// flags > config file > defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by a YAML config file, then mutated by CLI flags
// before being passed (by pointer) to packages that need it.
type Config struct {
	// Input (positional arg; not file-configurable).
	InputDir string `yaml:"-"`

	// Discovery.
	Recursive bool   `yaml:"recursive"` // Walk subdirectories.
	Match     string `yaml:"match"`     // Optional doublestar glob applied to basenames.

	// Output.
	JSONOutput bool   `yaml:"json"`   // JSON instead of the text table (stdout) / CSV (file).
	OutputFile string `yaml:"output"` // Write to file instead of stdout.

	// Display and logging.
	Verbose   bool      `yaml:"verbose"`
	ColorMode ColorMode `yaml:"color"` // Default: "auto".
	LogFile   string    `yaml:"log"`   // Optional log file path.

	// Utility (not file-configurable).
	CheckOnly bool `yaml:"-"` // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults. Used as the base
// before the config file and CLI flags apply overrides.
func DefaultConfig() Config {
	return Config{
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and the match glob. When not in CheckOnly
// mode it also requires an input directory.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always', or 'never')", c.ColorMode)
	}

	if c.Match != "" && !doublestar.ValidatePattern(c.Match) {
		return fmt.Errorf("invalid match pattern %q", c.Match)
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" {
		return errors.New("need an input directory")
	}
	return nil
}
