// Package goquery provides a structure-agnostic HTML text extractor. It keeps
// every visible text node rather than guessing at the main content, which
// makes it the fallback when content-aware extraction finds nothing.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"winnow"
)

// nonTextSelector matches elements whose text content is never prose.
const nonTextSelector = "script, style, noscript, template, iframe, svg"

// Ensure Extractor implements winnow.Extractor at compile time.
var _ winnow.Extractor = (*Extractor)(nil)

// Extractor extracts the visible text of an HTML page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses raw HTML and returns the page's visible text with
// whitespace collapsed. Unlike content-aware extractors it keeps navigation
// and other boilerplate; the caller's token filtering handles those.
func (e *Extractor) Extract(rawHTML string) (*winnow.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, winnow.Errorf(winnow.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find(nonTextSelector).Remove()

	text := strings.Join(strings.Fields(doc.Find("body").Text()), " ")

	return &winnow.Extraction{
		Title: title,
		Text:  text,
	}, nil
}
