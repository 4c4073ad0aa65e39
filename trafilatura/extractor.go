// Package trafilatura extracts main content from HTML pages using the
// go-trafilatura content extraction library.
package trafilatura

import (
	"errors"
	"strings"

	"github.com/markusmobius/go-trafilatura"

	"winnow"
)

// Ensure Extractor implements winnow.Extractor at compile time.
var _ winnow.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as plain text,
// with navigation, sidebar, and footer boilerplate removed.
func (e *Extractor) Extract(rawHTML string) (*winnow.Extraction, error) {
	if rawHTML == "" {
		return nil, errors.New("empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &winnow.Extraction{
		Title: result.Metadata.Title,
		Text:  result.ContentText,
	}, nil
}
