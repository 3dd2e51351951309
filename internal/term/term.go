// Package term provides terminal detection and global color resolution.
//
// The actual escape-sequence handling is delegated to fatih/color; this
// package only decides whether colors should be on, honoring the
// configured mode, TTY detection, and the NO_COLOR convention
// (https://no-color.org).
package term

import (
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/backmassage/videometa/internal/config"
)

// Configure resolves the color mode and sets the process-wide color state
// used by the logging and display packages. Call once during startup.
func Configure(mode config.ColorMode) {
	color.NoColor = !resolve(mode)
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return !color.NoColor }

func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		// Colors are only applied to the log stream, which goes to stderr.
		return IsTerminal(os.Stderr) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
