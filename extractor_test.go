package winnow_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"winnow"
	"winnow/mock"
)

func TestExtractText(t *testing.T) {
	t.Parallel()

	failing := &mock.Extractor{
		ExtractFn: func(html string) (*winnow.Extraction, error) {
			return nil, errors.New("no content")
		},
	}
	empty := &mock.Extractor{
		ExtractFn: func(html string) (*winnow.Extraction, error) {
			return &winnow.Extraction{Text: "   "}, nil
		},
	}
	working := &mock.Extractor{
		ExtractFn: func(html string) (*winnow.Extraction, error) {
			return &winnow.Extraction{Text: "article body"}, nil
		},
	}

	t.Run("returns first non-empty text", func(t *testing.T) {
		t.Parallel()
		got := winnow.ExtractText([]winnow.Extractor{failing, empty, working}, "<html></html>")
		assert.Equal(t, "article body", got)
	})

	t.Run("returns empty when every extractor fails", func(t *testing.T) {
		t.Parallel()
		got := winnow.ExtractText([]winnow.Extractor{failing, empty}, "<html></html>")
		assert.Empty(t, got)
	})

	t.Run("returns empty for no extractors", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, winnow.ExtractText(nil, "<html></html>"))
	})
}

func TestIsHTMLPath(t *testing.T) {
	t.Parallel()

	assert.True(t, winnow.IsHTMLPath("docs/page.html"))
	assert.True(t, winnow.IsHTMLPath("docs/page.HTM"))
	assert.False(t, winnow.IsHTMLPath("docs/page.txt"))
	assert.False(t, winnow.IsHTMLPath("html"))
}
