package clean

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Dedup filter sizing.
const (
	// dedupExpectedFiles is the expected number of distinct cleaned outputs
	// for Bloom filter sizing.
	dedupExpectedFiles = 100000

	// dedupFalsePositiveRate is the acceptable false positive rate. A false
	// positive marks a unique file as a duplicate, so the rate is kept low
	// and deduplication is opt-in.
	dedupFalsePositiveRate = 0.001
)

// ContentFilter tracks cleaned content seen during a run so byte-identical
// outputs can be skipped. Matching is approximate: false negatives cannot
// occur, false positives can at the configured rate. Safe for concurrent use.
type ContentFilter struct {
	mu     sync.Mutex
	filter *bloom.BloomFilter
}

// NewContentFilter creates a filter sized for the expected corpus.
func NewContentFilter() *ContentFilter {
	return &ContentFilter{
		filter: bloom.NewWithEstimates(dedupExpectedFiles, dedupFalsePositiveRate),
	}
}

// TestAndAdd reports whether content was already recorded, recording it if
// not.
func (f *ContentFilter) TestAndAdd(content string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filter.TestAndAddString(content)
}
