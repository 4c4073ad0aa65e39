package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"winnow"
	"winnow/fs"
	"winnow/goquery"
	winslog "winnow/slog"
	"winnow/trafilatura"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Verbose bool
	Runs    winnow.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging to stderr"`

	Clean CleanCmd `cmd:"" help:"Clean a corpus tree into a mirrored output tree"`
	Freq  FreqCmd  `cmd:"" help:"Count token frequencies across a corpus tree"`
	Runs  RunsCmd  `cmd:"" help:"Show recorded cleaning runs"`
	Check CheckCmd `cmd:"" help:"Explain how individual tokens would be filtered"`
}

// buildStopwords assembles the stop-word set from the configuration.
func buildStopwords(cfg *winnow.Config) (*winnow.StopwordSet, error) {
	if cfg.KeepStopwords {
		return nil, nil
	}
	set := winnow.DefaultStopwords()
	for _, path := range cfg.StopwordFiles {
		words, err := fs.LoadStopwordFile(path)
		if err != nil {
			return nil, err
		}
		set = set.With(words...)
	}
	if len(cfg.ExtraStopwords) > 0 {
		set = set.With(cfg.ExtraStopwords...)
	}
	return set, nil
}

// buildExtractors returns the HTML extractor chain when HTML mode is on:
// content-aware extraction first, whole-page text as the fallback.
func buildExtractors(cfg *winnow.Config, deps *Dependencies) []winnow.Extractor {
	if !cfg.HTML {
		return nil
	}
	extractors := []winnow.Extractor{
		trafilatura.NewExtractor(),
		goquery.NewExtractor(),
	}
	if deps.Verbose {
		for i, e := range extractors {
			extractors[i] = winslog.NewLoggingExtractor(e, deps.Logger)
		}
	}
	return extractors
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
