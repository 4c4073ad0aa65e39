package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"

	"winnow"
	"winnow/clean"
	"winnow/fs"
	winslog "winnow/slog"
	"winnow/yaml"
)

// progressRate limits completed-file lines per second in plain mode.
const progressRate = 4

// CleanCmd is the "clean" subcommand.
type CleanCmd struct {
	Input  string `arg:"" help:"Input corpus directory"`
	Output string `arg:"" help:"Output directory for cleaned files"`

	Config        string   `short:"C" default:"winnow.yaml" help:"Config file (missing file means defaults)"`
	Include       []string `short:"i" placeholder:"GLOB" help:"Include glob, doublestar syntax (repeatable)"`
	Exclude       []string `short:"x" placeholder:"GLOB" help:"Exclude glob (repeatable)"`
	Concurrency   int      `short:"c" help:"Concurrent file limit (default: CPUs minus one)"`
	MaxFileBytes  int64    `help:"Per-file size limit in bytes"`
	HTML          bool     `help:"Extract main content from .html/.htm files"`
	Dedup         bool     `help:"Skip files whose cleaned content repeats an earlier file"`
	NoLedger      bool     `help:"Do not record the run in the winnow database"`
	StopwordFile  []string `placeholder:"PATH" help:"Extra stop-word list file (repeatable)"`
	Stopword      []string `placeholder:"WORD" help:"Extra stop-word (repeatable)"`
	KeepStopwords bool     `help:"Keep stop-words instead of removing them"`
	Quiet         bool     `short:"q" help:"Suppress progress output"`
}

// config resolves the effective configuration, command-line flags over file.
func (c *CleanCmd) config() (*winnow.Config, error) {
	cfg, err := yaml.LoadConfig(c.Config)
	if err != nil {
		return nil, err
	}
	if len(c.Include) > 0 {
		cfg.Include = c.Include
	}
	if len(c.Exclude) > 0 {
		cfg.Exclude = c.Exclude
	}
	if c.Concurrency > 0 {
		cfg.Concurrency = c.Concurrency
	}
	if c.MaxFileBytes > 0 {
		cfg.MaxFileBytes = c.MaxFileBytes
	}
	if c.HTML {
		cfg.HTML = true
	}
	if c.Dedup {
		cfg.Dedup = true
	}
	if c.NoLedger {
		cfg.Ledger = false
	}
	cfg.StopwordFiles = append(cfg.StopwordFiles, c.StopwordFile...)
	cfg.ExtraStopwords = append(cfg.ExtraStopwords, c.Stopword...)
	if c.KeepStopwords {
		cfg.KeepStopwords = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Run executes the clean command.
func (c *CleanCmd) Run(deps *Dependencies) error {
	cfg, err := c.config()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", winnow.ErrorMessage(err))
		return err
	}

	stopwords, err := buildStopwords(cfg)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", winnow.ErrorMessage(err))
		return err
	}

	inputDir, err := filepath.Abs(c.Input)
	if err != nil {
		return err
	}
	outputDir, err := filepath.Abs(c.Output)
	if err != nil {
		return err
	}

	var walker winnow.FileWalker = fs.NewWalker(cfg.IncludePatterns(), cfg.Exclude)
	if deps.Verbose {
		walker = winslog.NewLoggingWalker(walker, deps.Logger)
	}

	var dedup *clean.ContentFilter
	if cfg.Dedup {
		dedup = clean.NewContentFilter()
	}

	var runs winnow.RunService
	if cfg.Ledger {
		runs = deps.Runs
	}

	pipeline := &clean.Pipeline{
		Walker:      walker,
		Reader:      fs.NewReader(cfg.MaxFileBytes),
		Writer:      fs.NewWriter(outputDir),
		Stopwords:   stopwords,
		Extractors:  buildExtractors(cfg, deps),
		Runs:        runs,
		Dedup:       dedup,
		Concurrency: cfg.Concurrency,
	}

	run := &winnow.Run{InputDir: inputDir, OutputDir: outputDir}
	result, err := pipeline.Clean(deps.Ctx, run, c.progress(deps))
	if err != nil {
		if result == nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", winnow.ErrorMessage(err))
			return err
		}
		// Interrupted mid-run; the partial outcome is still worth reporting.
		printSummary(deps, result)
		return err
	}

	printSummary(deps, result)

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", result.Failed, result.Files)
	}
	return nil
}

// printSummary reports the run outcome on stdout.
func printSummary(deps *Dependencies, result *clean.Result) {
	fmt.Fprintf(deps.Stdout, "Cleaned %d of %d files (%s in, %s out, %s kept) in %s\n",
		result.Cleaned, result.Files,
		clean.FormatBytes(result.BytesIn), clean.FormatBytes(result.BytesOut),
		clean.FormatTokens(result.TokensKept),
		result.Elapsed.Round(time.Millisecond))

	if result.EmptyOutputs > 0 || result.Duplicates > 0 || result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  %d empty outputs, %d duplicates skipped, %d failed\n",
			result.EmptyOutputs, result.Duplicates, result.Failed)
	}
	if result.RunID != "" {
		fmt.Fprintf(deps.Stdout, "  Recorded as run %s\n", result.RunID)
	}
}

// progress builds the progress callback for the run. Interactive terminals
// get a progress bar; everything else gets throttled plain lines. Failures
// always go to stderr.
func (c *CleanCmd) progress(deps *Dependencies) clean.ProgressFunc {
	if c.Quiet {
		return func(event clean.ProgressEvent) {
			if event.Type == clean.ProgressFailed {
				fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Path, event.Error)
			}
		}
	}
	if isTerminal(deps.Stdout) {
		return c.barProgress(deps)
	}
	return c.plainProgress(deps)
}

func (c *CleanCmd) barProgress(deps *Dependencies) clean.ProgressFunc {
	var bar *progressbar.ProgressBar
	return func(event clean.ProgressEvent) {
		switch event.Type {
		case clean.ProgressStarted:
			bar = progressbar.NewOptions(event.Total,
				progressbar.OptionSetWriter(deps.Stdout),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("Cleaning"),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(deps.Stdout)
				}),
			)
		case clean.ProgressCompleted:
			if bar != nil {
				_ = bar.Set(event.Completed)
			}
		case clean.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Path, event.Error)
			if bar != nil {
				_ = bar.Set(event.Completed)
			}
		case clean.ProgressFinished:
			if bar != nil {
				_ = bar.Finish()
			}
		}
	}
}

func (c *CleanCmd) plainProgress(deps *Dependencies) clean.ProgressFunc {
	return clean.Throttle(func(event clean.ProgressEvent) {
		switch event.Type {
		case clean.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Cleaning %d files\n", event.Total)
		case clean.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  %d/%d %s\n", event.Completed, event.Total, event.Path)
		case clean.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Path, event.Error)
		}
	}, progressRate)
}
