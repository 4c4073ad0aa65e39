package mock

import "winnow"

var _ winnow.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of winnow.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*winnow.Extraction, error)
}

func (e *Extractor) Extract(html string) (*winnow.Extraction, error) {
	return e.ExtractFn(html)
}
