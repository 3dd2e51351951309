// Package check provides system diagnostics (--check mode) and
// pre-pipeline dependency validation for the external ffprobe tool.
package check

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/backmassage/videometa/internal/probe"
)

// ErrFfprobeNotFound is returned by CheckDeps when ffprobe is missing.
var ErrFfprobeNotFound = errors.New("ffprobe not found on PATH (install ffmpeg)")

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: it reports ffprobe
// availability and version. Returns false when the tool is unusable.
func RunCheck(log Logger) bool {
	log.Info("=== System Check ===")

	if _, err := exec.LookPath("ffprobe"); err != nil {
		log.Error("ffprobe not found on PATH")
		return false
	}

	out, err := exec.Command("ffprobe", "-version").Output()
	if err != nil {
		log.Warn("ffprobe found but -version failed: %v", err)
		return false
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("ffprobe: %s", firstLine)

	// Verify the metadata extraction path end to end against a known
	// container payload, so a broken build fails here instead of mid-batch.
	res, err := probe.ParseJSON([]byte(sampleFormatJSON))
	if err != nil {
		log.Error("metadata extraction self-test failed: %v", err)
		return false
	}
	log.Success("metadata extraction: creation_time %s, duration %.3fs",
		res.CreationTime.Format("2006-01-02 15:04:05"), res.Duration)
	return true
}

// sampleFormatJSON is a trimmed ffprobe -show_format payload used by the
// --check self-test.
const sampleFormatJSON = `{
  "format": {
    "filename": "GX010001.MP4",
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2",
    "duration": "1.000000",
    "size": "1048576",
    "tags": { "creation_time": "2024-01-01T00:00:00.000000Z" }
  }
}`

// CheckDeps is the pre-pipeline validation: ffprobe must be on PATH.
func CheckDeps() error {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	return nil
}
