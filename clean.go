package winnow

import (
	"regexp"
	"strings"
)

var (
	// citationRe matches inline citation markers of the form @@123.
	citationRe = regexp.MustCompile(`@@\d+`)

	// tagRe matches markup tags non-greedily from "<" to the next ">".
	tagRe = regexp.MustCompile(`<[^>]+>`)
)

// Clean normalizes raw text into a single line of cleaned tokens. Citation
// markers and markup tags are replaced with spaces, the text is split on
// whitespace, and each token is lowercased and stripped to a-z. Tokens that
// are empty after normalization, present in the stop-word set, or classified
// as gibberish are dropped. Survivors are joined with single spaces.
//
// Empty or whitespace-only input returns "", as does input where no token
// survives. A nil stop-word set behaves as an empty set.
func Clean(text string, stopwords *StopwordSet) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	text = citationRe.ReplaceAllString(text, " ")
	text = tagRe.ReplaceAllString(text, " ")

	var kept []string
	for _, field := range strings.Fields(text) {
		token := NormalizeToken(field)
		if token == "" || stopwords.Contains(token) || IsGibberish(token) {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

// NormalizeToken lowercases raw and removes every rune outside a-z. Digits,
// punctuation, and non-ASCII letters are dropped entirely, so "Don't" becomes
// "dont" and "café" becomes "caf".
func NormalizeToken(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for _, r := range strings.ToLower(raw) {
		if r >= 'a' && r <= 'z' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
