// Package pipeline orchestrates file discovery, per-file parsing and
// probing, session grouping, and timeline calculation.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/videometa/internal/config"
	"github.com/backmassage/videometa/internal/gopro"
	"github.com/backmassage/videometa/internal/logging"
	"github.com/backmassage/videometa/internal/probe"
	"github.com/backmassage/videometa/internal/session"
	"github.com/backmassage/videometa/internal/term"
)

// Outcome is the result of one batch run: the computed records, the
// per-file and per-session warnings that were recovered along the way,
// and the aggregate counters.
type Outcome struct {
	Records  []session.Record
	Warnings []string
	Stats    Stats
}

// Run is the batch entry point: discover → parse → probe → group →
// timeline, sequentially in one goroutine. Per-file and per-session
// failures are warned about and collected; only discovery errors are
// returned (fatal). probeFn is injected so tests run without ffprobe.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, probeFn probe.Func) (*Outcome, error) {
	paths, err := Discover(cfg.InputDir, cfg.Recursive, cfg.Match)
	if err != nil {
		return nil, err
	}

	out := &Outcome{}
	out.Stats.Total = len(paths)
	log.Info("Found %d MP4 files in %s", len(paths), cfg.InputDir)

	isTTY := term.IsTerminal(os.Stderr)
	var files []session.File

	for i, path := range paths {
		if ctx.Err() != nil {
			if isTTY {
				clearProgress()
			}
			log.Warn("Interrupted")
			break
		}

		basename := filepath.Base(path)
		printProgress(isTTY, i+1, len(paths), out.Stats.Skipped, basename)

		fi, err := gopro.ParseFilename(basename)
		if err != nil {
			out.Stats.Skipped++
			out.warn(log, isTTY, "Skip (not a GoPro name): %s", basename)
			continue
		}

		res, err := probeFn(ctx, path)
		if err != nil {
			out.Stats.Skipped++
			out.warn(log, isTTY, "Skip (metadata unavailable): %s: %v", basename, err)
			continue
		}

		fi.Path = path
		fi.Folder = relFolder(cfg.InputDir, path)
		files = append(files, session.File{
			FileInfo:     fi,
			CreationTime: res.CreationTime,
			Duration:     res.Duration,
		})
		out.Stats.Parsed++
		log.Debug("%s: session %04d chapter %02d, created %s, %.3fs",
			basename, fi.Session, fi.Chapter, res.CreationTime.Format("2006-01-02 15:04:05"), res.Duration)
	}

	if isTTY {
		clearProgress()
	}

	sessions, gaps := session.Group(files)
	for _, err := range gaps {
		out.warn(log, false, "Excluding %v", err)
		out.Stats.Excluded++
	}
	out.Stats.Sessions = len(sessions)

	for _, s := range sessions {
		out.Records = append(out.Records, s.Timeline()...)
	}

	log.Info("Done: %d/%d files parsed, %d skipped; %d sessions (%d excluded)",
		out.Stats.Parsed, out.Stats.Total, out.Stats.Skipped,
		out.Stats.Sessions, out.Stats.Excluded)
	return out, nil
}

// warn logs a warning, clearing any TTY progress line first, and records
// the message in the outcome.
func (o *Outcome) warn(log *logging.Logger, isTTY bool, format string, args ...interface{}) {
	if isTTY {
		clearProgress()
	}
	msg := fmt.Sprintf(format, args...)
	log.Warn("%s", msg)
	o.Warnings = append(o.Warnings, msg)
}

// relFolder returns the file's directory relative to the input root
// ("." for files directly inside it), matching the report's Folder column.
func relFolder(inputDir, path string) string {
	rel, err := filepath.Rel(inputDir, filepath.Dir(path))
	if err != nil {
		return filepath.Dir(path)
	}
	return rel
}

// printProgress shows a live probe counter. On a TTY it writes an inline
// \r-overwritten line; otherwise it is a no-op (the skip warnings already
// provide enough breadcrumbs in piped/logged output).
func printProgress(isTTY bool, current, total, skipped int, name string) {
	if !isTTY {
		return
	}
	pct := current * 100 / total
	status := fmt.Sprintf("  Probing [%d/%d] %d%% ", current, total, pct)
	if skipped > 0 {
		status += fmt.Sprintf("(%d skipped) ", skipped)
	}
	status += name

	// Pad to 80 chars to overwrite previous longer lines, then \r.
	if len(status) < 80 {
		status += strings.Repeat(" ", 80-len(status))
	}
	fmt.Fprintf(os.Stderr, "\r%s", status)
}

// clearProgress erases the inline progress line on a TTY.
func clearProgress() {
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", 80))
}
