package winnow

import "runtime"

// DefaultMaxFileBytes is the per-file size limit applied when none is
// configured. Files over the limit are skipped.
const DefaultMaxFileBytes = 100 * 1024 * 1024

// htmlPatterns are the include globs added when HTML mode is enabled.
var htmlPatterns = []string{"**/*.html", "**/*.htm"}

// Config holds the user-tunable settings for a cleaning run. Start from
// DefaultConfig; the zero value fails validation.
type Config struct {
	// Include and Exclude are glob patterns (doublestar syntax) matched
	// against paths relative to the input root.
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`

	// Concurrency is the number of files cleaned in parallel.
	Concurrency int `yaml:"concurrency"`

	// MaxFileBytes is the per-file size limit; larger files are skipped.
	MaxFileBytes int64 `yaml:"max_file_bytes"`

	// HTML enables content extraction for .html/.htm inputs and adds the
	// HTML patterns to the include set.
	HTML bool `yaml:"html"`

	// Dedup skips files whose cleaned content was already produced by an
	// earlier file in the same run. Approximate (Bloom filter based), so
	// it may rarely skip a unique file.
	Dedup bool `yaml:"dedup"`

	// Ledger records per-run and per-file outcomes in the winnow database.
	Ledger bool `yaml:"ledger"`

	// StopwordFiles name newline-delimited word lists merged into the
	// stop-word set.
	StopwordFiles []string `yaml:"stopword_files"`

	// ExtraStopwords are individual words merged into the stop-word set.
	ExtraStopwords []string `yaml:"extra_stopwords"`

	// KeepStopwords disables stop-word removal entirely.
	KeepStopwords bool `yaml:"keep_stopwords"`
}

// DefaultConfig returns the default configuration: all .txt files, one
// worker per CPU minus one, 100 MB size limit, ledger on.
func DefaultConfig() Config {
	return Config{
		Include:      []string{"**/*.txt"},
		Concurrency:  DefaultConcurrency(),
		MaxFileBytes: DefaultMaxFileBytes,
		Ledger:       true,
	}
}

// DefaultConcurrency returns the default worker count, one per CPU minus
// one, with a floor of one.
func DefaultConcurrency() int {
	if n := runtime.NumCPU() - 1; n > 0 {
		return n
	}
	return 1
}

// IncludePatterns returns the effective include globs, adding the HTML
// patterns when HTML mode is enabled.
func (c *Config) IncludePatterns() []string {
	if !c.HTML {
		return c.Include
	}
	return append(append([]string{}, c.Include...), htmlPatterns...)
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.Concurrency < 1 {
		return Errorf(EINVALID, "concurrency must be at least 1")
	}
	if c.MaxFileBytes < 1 {
		return Errorf(EINVALID, "max file size must be positive")
	}
	return nil
}
