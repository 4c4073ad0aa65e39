package winnow

import "strings"

// Token length bounds for the gibberish classifier. Tokens shorter than the
// minimum carry no signal; tokens longer than the maximum are almost always
// concatenation artifacts or markup debris.
const (
	minTokenLen = 2
	maxTokenLen = 32
)

// maxRepeatRun is the shortest run of one repeated character that marks a
// token as gibberish ("aaaa", "zzzz").
const maxRepeatRun = 4

// keyboardRows are substrings produced by dragging a finger across adjacent
// keys on a QWERTY keyboard, horizontally and vertically, in both directions.
// Any token containing one of these is classified as gibberish.
var keyboardRows = []string{
	"qwert", "asdfg", "zxcvb", "yuiop", "hjkl", "bnm",
	"poiuy", "lkjhg", "fdsa", "mnbvc",
	"qazwsx", "edcrfv", "tgbnhy", "ujmki",
	"plm", "qaz", "wsx", "edc", "rfv", "tgb", "yhn", "ujm", "ikm",
}

// IsGibberish reports whether a normalized token (lowercase, a-z only) is
// noise rather than a plausible English word. The rules are a fixed heuristic
// set: out-of-bounds length, a character repeated four or more times in a row,
// six or more letters without a vowel, or a keyboard-walk substring.
//
// Inputs are expected to be normalized with NormalizeToken first; behavior on
// other inputs is unspecified. Safe for concurrent use.
func IsGibberish(token string) bool {
	if len(token) < minTokenLen || len(token) > maxTokenLen {
		return true
	}
	if hasRepeatRun(token, maxRepeatRun) {
		return true
	}
	if len(token) > 5 && !strings.ContainsAny(token, "aeiou") {
		return true
	}
	for _, row := range keyboardRows {
		if strings.Contains(token, row) {
			return true
		}
	}
	return false
}

// hasRepeatRun reports whether s contains the same byte n or more times
// consecutively. Normalized tokens are single-byte runes, so a byte scan is
// exact.
func hasRepeatRun(s string, n int) bool {
	run := 1
	for i := 1; i < len(s); i++ {
		if s[i] != s[i-1] {
			run = 1
			continue
		}
		run++
		if run >= n {
			return true
		}
	}
	return false
}
