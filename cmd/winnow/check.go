package main

import (
	"fmt"

	"winnow"
	"winnow/yaml"
)

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Tokens []string `arg:"" help:"Tokens to check"`

	Config        string   `short:"C" default:"winnow.yaml" help:"Config file (missing file means defaults)"`
	StopwordFile  []string `placeholder:"PATH" help:"Extra stop-word list file (repeatable)"`
	Stopword      []string `placeholder:"WORD" help:"Extra stop-word (repeatable)"`
	KeepStopwords bool     `help:"Keep stop-words instead of removing them"`
}

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	cfg, err := yaml.LoadConfig(c.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", winnow.ErrorMessage(err))
		return err
	}
	cfg.StopwordFiles = append(cfg.StopwordFiles, c.StopwordFile...)
	cfg.ExtraStopwords = append(cfg.ExtraStopwords, c.Stopword...)
	if c.KeepStopwords {
		cfg.KeepStopwords = true
	}

	stopwords, err := buildStopwords(cfg)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", winnow.ErrorMessage(err))
		return err
	}

	for _, raw := range c.Tokens {
		token := winnow.NormalizeToken(raw)
		display := token
		if display == "" {
			display = "-"
		}
		fmt.Fprintf(deps.Stdout, "%-24s %-24s %s\n", raw, display, verdictFor(token, stopwords))
	}
	return nil
}

// verdictFor mirrors the filtering order applied while cleaning.
func verdictFor(token string, stopwords *winnow.StopwordSet) string {
	switch {
	case token == "":
		return "dropped (no letters)"
	case stopwords.Contains(token):
		return "stopword"
	case winnow.IsGibberish(token):
		return "gibberish"
	default:
		return "kept"
	}
}
