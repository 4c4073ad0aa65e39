package winnow

import "strings"

// Extraction holds the text content extracted from an HTML document.
type Extraction struct {
	// Title is the document title extracted from metadata, when present.
	Title string

	// Text is the main content as plain text with boilerplate (nav,
	// footer, sidebar, ads) removed.
	Text string
}

// Extractor extracts main text content from HTML documents.
type Extractor interface {
	// Extract processes raw HTML and returns the main content as plain
	// text. Returns ENOTFOUND if no content could be extracted.
	Extract(html string) (*Extraction, error)
}

// ExtractText runs the extractors in order and returns the first non-empty
// text, or "" when every extractor fails or comes back empty.
func ExtractText(extractors []Extractor, html string) string {
	for _, e := range extractors {
		extraction, err := e.Extract(html)
		if err != nil || extraction == nil {
			continue
		}
		if text := strings.TrimSpace(extraction.Text); text != "" {
			return text
		}
	}
	return ""
}
