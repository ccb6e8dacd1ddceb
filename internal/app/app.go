// Package app wires configuration, rules, walker and printer into one run.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bethropolis/promptpack/internal/config"
	"github.com/bethropolis/promptpack/internal/logger"
	"github.com/bethropolis/promptpack/internal/printer"
	"github.com/bethropolis/promptpack/internal/setup"
	"github.com/bethropolis/promptpack/internal/summary"
	"github.com/bethropolis/promptpack/internal/walker"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality.
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	Output io.Writer
	Stdin  io.Reader

	outFile *os.File
}

// New creates a new App instance.
func New(cfg *config.Config) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	a := &App{
		cfg:    cfg,
		Output: os.Stdout,
		Stdin:  os.Stdin,
	}

	if cfg.OutputFile != "" {
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to create output file: %v\n", err)
			os.Exit(1)
		}
		a.Output = file
		a.outFile = file
	}

	level := logger.LevelInfo
	if cfg.Verbose {
		level = logger.LevelDebug
	}
	if cfg.Quiet {
		level = logger.LevelError
	}
	if cfg.LogLevel != "" {
		level = logger.ParseLevel(cfg.LogLevel)
	}
	a.log = logger.New(os.Stderr, level, cfg.UseColors)

	return a
}

// Close releases the output file, if one was opened.
func (a *App) Close() {
	if a.outFile != nil {
		a.outFile.Close()
	}
}

// Run executes the pipeline and returns the process exit code.
func (a *App) Run() int {
	startTime := time.Now()

	if a.cfg.ShowVersion {
		fmt.Printf("promptpack version %s\n", a.cfg.Version)
		return 0
	}

	a.log.Debug("Color output: %v", a.cfg.UseColors)
	a.log.Debug("Output format: %s", a.cfg.Format)
	a.log.Debug("Line numbers: %v", a.cfg.LineNumbers)
	if a.cfg.Extensions != "" {
		a.log.Debug("Extensions filter: %s", a.cfg.Extensions)
	}
	if a.cfg.IgnorePatterns != "" {
		a.log.Debug("Custom ignore patterns: %s", a.cfg.IgnorePatterns)
	}

	roots := append([]string(nil), a.cfg.Paths...)
	if a.cfg.ReadStdin {
		fromStdin, err := config.ReadPathList(a.Stdin, a.cfg.NullSep)
		if err != nil {
			a.log.Error("Failed to read paths from stdin: %v", err)
			return 1
		}
		roots = append(roots, fromStdin...)
	}
	if len(roots) == 0 {
		a.log.Error("No paths given.")
		return 1
	}

	// Every root must exist before any output is produced.
	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			if os.IsNotExist(err) {
				a.log.Error("Path '%s' not found.", root)
			} else {
				a.log.Error("Could not access path '%s': %v", root, err)
			}
			return 1
		}
	}

	format, err := printer.ParseFormat(a.cfg.Format)
	if err != nil {
		a.log.Error("%v", err)
		return 1
	}

	rules, walkOptions := setup.Configure(a.cfg, a.log)

	p := printer.New().
		WithOutput(a.Output).
		WithFormat(format).
		WithLineNumbers(a.cfg.LineNumbers)

	cwd, _ := os.Getwd()
	printFunc := func(displayPath string, content []byte) error {
		if a.cfg.RelativePaths {
			if abs, err := filepath.Abs(displayPath); err == nil {
				if rel, err := filepath.Rel(cwd, abs); err == nil {
					displayPath = rel
				}
			}
		}
		return p.PrintFile(displayPath, content)
	}

	counters := &walker.Counters{}
	var skippedItems []walker.SkippedItem
	brokenPipe := false

	p.ResetIndex()
	if err := p.Begin(); err != nil {
		if !isBrokenPipe(err) {
			a.log.Error("Failed to write output: %v", err)
			return 1
		}
		brokenPipe = true
	}

	for _, root := range roots {
		if brokenPipe {
			break
		}
		a.log.Info("Scanning: %s", root)

		items, err := walker.ProcessPath(root, rules, counters, printFunc, walkOptions...)
		skippedItems = append(skippedItems, items...)
		if err != nil {
			if isBrokenPipe(err) {
				a.log.Debug("Output closed downstream, stopping.")
				brokenPipe = true
				break
			}
			a.log.Error("Critical error during walk: %v", err)
			return 1
		}

		if a.cfg.MaxFiles > 0 && counters.Processed >= a.cfg.MaxFiles {
			a.log.Debug("File limit reached (%d), skipping remaining paths.", a.cfg.MaxFiles)
			break
		}
	}

	if !brokenPipe {
		if err := p.Finalize(); err != nil && !isBrokenPipe(err) {
			a.log.Error("Failed to finalize output: %v", err)
			return 1
		}
	}

	summary.DisplayResults(a.log, counters, time.Since(startTime))

	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, skippedItems, os.Stderr)
	}

	if counters.Processed == 0 {
		a.log.Warn("No files were processed.")
		return 1
	}
	return 0
}

// isBrokenPipe reports whether err means the output destination went away.
// A closed downstream pipe ends the run cleanly instead of failing it.
func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, os.ErrClosed)
}
