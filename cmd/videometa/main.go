// Command videometa extracts per-file session timestamps from GoPro
// chaptered MP4 files.
//
// It scans a directory, parses the GoPro naming convention, reads
// container creation time and duration via ffprobe, groups chapters into
// recording sessions, and emits the computed start/stop timeline as a
// text table, JSON, or CSV.
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/videometa/internal/check"
	"github.com/backmassage/videometa/internal/config"
	"github.com/backmassage/videometa/internal/display"
	"github.com/backmassage/videometa/internal/logging"
	"github.com/backmassage/videometa/internal/pipeline"
	"github.com/backmassage/videometa/internal/probe"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "videometa: %v\n", err)
		return 1
	}
	return 0
}

// flags holds raw flag values before they are merged onto the config.
// Keeping them separate lets the config file fill anything the user did
// not pass explicitly (precedence: flags > file > defaults).
type flags struct {
	recursive bool
	json      bool
	output    string
	match     string
	color     string
	verbose   bool
	logFile   string
	config    string
	checkOnly bool
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "videometa <input_dir>",
		Short: "Extract session timestamps from GoPro video files",
		Long: `videometa reads GoPro chaptered MP4 files (Gqzzxxxx.MP4), groups them
into recording sessions, and computes real start/stop timestamps for every
chapter from the session's creation time and the chapter durations.

Results go to stdout as an aligned table, or as JSON with --json. With
--output the result is written to a file (JSON with --json, CSV otherwise).`,
		Args:          cobra.MaximumNArgs(1),
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, &f, args)
			if err != nil {
				return err
			}
			return runExtract(cfg)
		},
	}

	cmd.Flags().BoolVarP(&f.recursive, "recursive", "r", false, "Process files in subfolders recursively")
	cmd.Flags().BoolVarP(&f.json, "json", "j", false, "Output results in JSON format")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Write results to a file instead of stdout")
	cmd.Flags().StringVarP(&f.match, "match", "m", "", "Only process basenames matching this glob (e.g. 'GX*.MP4')")
	cmd.Flags().StringVar(&f.color, "color", string(config.ColorAuto), "Colored logs: auto | always | never")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Verbose output")
	cmd.Flags().StringVarP(&f.logFile, "log", "l", "", "Append logs to file")
	cmd.Flags().StringVar(&f.config, "config", "", "Config file (default: ./videometa.yaml, ~/.config/videometa/config.yaml)")
	cmd.Flags().BoolVarP(&f.checkOnly, "check", "c", false, "Run system diagnostics (ffprobe) and exit")

	return cmd
}

// buildConfig merges defaults, the optional YAML config file, and CLI
// flags (in ascending precedence) into a validated Config.
func buildConfig(cmd *cobra.Command, f *flags, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	path := f.config
	if path == "" {
		path = config.FindConfigFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if path != "" {
		if err := config.LoadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	set := cmd.Flags().Changed
	if set("recursive") {
		cfg.Recursive = f.recursive
	}
	if set("json") {
		cfg.JSONOutput = f.json
	}
	if set("output") {
		cfg.OutputFile = f.output
	}
	if set("match") {
		cfg.Match = f.match
	}
	if set("color") {
		cfg.ColorMode = config.ColorMode(f.color)
	}
	if set("verbose") {
		cfg.Verbose = f.verbose
	}
	if set("log") {
		cfg.LogFile = f.logFile
	}
	cfg.CheckOnly = f.checkOnly

	if len(args) == 1 {
		cfg.InputDir = config.NormalizeDirArg(args[0])
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// runExtract is the main flow: diagnostics, pipeline, rendering. Per-file
// warnings do not affect the exit code; only fatal errors (bad input
// directory, unwritable output) do.
func runExtract(cfg *config.Config) error {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return fmt.Errorf("system check failed")
		}
		return nil
	}

	if err := check.CheckDeps(); err != nil {
		return err
	}

	// Cancel on SIGINT/SIGTERM so the pipeline stops between files.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping…")
		cancel()
	}()

	out, err := pipeline.Run(ctx, cfg, log, probe.Probe)
	if err != nil {
		return fmt.Errorf("input directory %s: %w", cfg.InputDir, err)
	}

	// Render to a buffer first so a fatal error never leaves a partial
	// output file behind.
	var buf bytes.Buffer
	switch {
	case cfg.JSONOutput:
		err = display.WriteJSON(&buf, out.Records)
	case cfg.OutputFile != "":
		err = display.WriteCSV(&buf, out.Records)
	default:
		err = display.WriteTable(&buf, out.Records)
	}
	if err != nil {
		return err
	}

	if cfg.OutputFile != "" {
		if err := os.WriteFile(cfg.OutputFile, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		log.Success("Wrote %d records to %s", len(out.Records), cfg.OutputFile)
		return nil
	}

	_, err = buf.WriteTo(os.Stdout)
	return err
}
