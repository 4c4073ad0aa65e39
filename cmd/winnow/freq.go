package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"winnow"
	"winnow/fs"
	winslog "winnow/slog"
	"winnow/yaml"
)

// FreqCmd is the "freq" subcommand.
type FreqCmd struct {
	Input string `arg:"" help:"Input corpus directory"`

	Config        string   `short:"C" default:"winnow.yaml" help:"Config file (missing file means defaults)"`
	Include       []string `short:"i" placeholder:"GLOB" help:"Include glob, doublestar syntax (repeatable)"`
	Exclude       []string `short:"x" placeholder:"GLOB" help:"Exclude glob (repeatable)"`
	HTML          bool     `help:"Extract main content from .html/.htm files"`
	StopwordFile  []string `placeholder:"PATH" help:"Extra stop-word list file (repeatable)"`
	Stopword      []string `placeholder:"WORD" help:"Extra stop-word (repeatable)"`
	KeepStopwords bool     `help:"Keep stop-words instead of removing them"`

	Top      int    `short:"n" help:"Show only the N most frequent tokens"`
	MinCount int    `help:"Hide tokens seen fewer than N times"`
	Output   string `short:"o" placeholder:"PATH" help:"Write the list to a file instead of stdout"`
}

// tokenCount pairs a token with its corpus frequency.
type tokenCount struct {
	token string
	count int
}

// config resolves the effective configuration, command-line flags over file.
func (c *FreqCmd) config() (*winnow.Config, error) {
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
	if c.HTML {
		cfg.HTML = true
	}
	cfg.StopwordFiles = append(cfg.StopwordFiles, c.StopwordFile...)
	cfg.ExtraStopwords = append(cfg.ExtraStopwords, c.Stopword...)
	if c.KeepStopwords {
		cfg.KeepStopwords = true
	}
	return cfg, nil
}

// Run executes the freq command.
func (c *FreqCmd) Run(deps *Dependencies) error {
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
	extractors := buildExtractors(cfg, deps)

	inputDir, err := filepath.Abs(c.Input)
	if err != nil {
		return err
	}

	var walker winnow.FileWalker = fs.NewWalker(cfg.IncludePatterns(), cfg.Exclude)
	if deps.Verbose {
		walker = winslog.NewLoggingWalker(walker, deps.Logger)
	}
	reader := fs.NewReader(cfg.MaxFileBytes)

	files, err := walker.Walk(deps.Ctx, inputDir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", winnow.ErrorMessage(err))
		return err
	}

	counts := make(map[string]int)
	for _, file := range files {
		if err := deps.Ctx.Err(); err != nil {
			return err
		}
		text, err := reader.ReadText(deps.Ctx, file.Path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", file.RelPath, err)
			continue
		}
		if winnow.IsHTMLPath(file.RelPath) {
			if extracted := winnow.ExtractText(extractors, text); extracted != "" {
				text = extracted
			}
		}
		for _, token := range strings.Fields(winnow.Clean(text, stopwords)) {
			counts[token]++
		}
	}

	sorted := make([]tokenCount, 0, len(counts))
	for token, count := range counts {
		sorted = append(sorted, tokenCount{token, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].token < sorted[j].token
	})

	out := deps.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", c.Output, err)
		}
		defer f.Close()
		out = f
	}

	shown := 0
	for _, tc := range sorted {
		if tc.count < c.MinCount {
			break
		}
		if c.Top > 0 && shown >= c.Top {
			break
		}
		fmt.Fprintf(out, "%s %d\n", tc.token, tc.count)
		shown++
	}

	if c.Output != "" {
		fmt.Fprintf(deps.Stdout, "Wrote %d tokens to %s\n", shown, c.Output)
	}
	return nil
}
