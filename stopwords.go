package winnow

// baselineStopwords is the standard English stop-word list, restricted to
// purely alphabetic entries. Normalized tokens never contain apostrophes, so
// forms like "don't" are unreachable here; their apostrophe-free spellings
// live in contractionStopwords instead.
var baselineStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
	"you", "your", "yours", "yourself", "yourselves",
	"he", "him", "his", "himself", "she", "her", "hers", "herself",
	"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom", "this", "that", "these", "those",
	"am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as",
	"until", "while", "of", "at", "by", "for", "with", "about", "against",
	"between", "into", "through", "during", "before", "after",
	"above", "below", "to", "from", "up", "down", "in", "out",
	"on", "off", "over", "under", "again", "further", "then", "once",
	"here", "there", "when", "where", "why", "how",
	"all", "any", "both", "each", "few", "more", "most", "other",
	"some", "such", "no", "nor", "not", "only", "own", "same",
	"so", "than", "too", "very",
	"s", "t", "can", "will", "just", "don", "should", "now",
	"d", "ll", "m", "o", "re", "ve", "y",
	"ain", "aren", "couldn", "didn", "doesn", "hadn", "hasn", "haven",
	"isn", "ma", "mightn", "mustn", "needn", "shan", "shouldn",
	"wasn", "weren", "won", "wouldn",
}

// contractionStopwords are apostrophe-free spellings of common contractions,
// which is the form they take after NormalizeToken ("don't" -> "dont").
var contractionStopwords = []string{
	"im", "youre", "hes", "shes", "its", "were", "theyre",
	"ill", "youll", "hell", "shell", "itll", "well", "theyll",
	"cant", "dont", "wont", "couldnt", "shouldnt", "wouldnt",
	"ive", "youve", "weve", "theyve",
}

// StopwordSet is an immutable set of normalized stop words. The zero of the
// pointer type (nil) behaves as an empty set.
type StopwordSet struct {
	words map[string]struct{}
}

// NewStopwordSet builds a set from words. Entries are normalized with
// NormalizeToken on insert; entries that normalize to "" are discarded.
func NewStopwordSet(words []string) *StopwordSet {
	s := &StopwordSet{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if t := NormalizeToken(w); t != "" {
			s.words[t] = struct{}{}
		}
	}
	return s
}

// DefaultStopwords returns the built-in set: the baseline English list plus
// contraction forms.
func DefaultStopwords() *StopwordSet {
	return NewStopwordSet(append(append([]string{}, baselineStopwords...), contractionStopwords...))
}

// With returns a new set containing the receiver's words plus the given extra
// words. The receiver is not modified.
func (s *StopwordSet) With(words ...string) *StopwordSet {
	out := &StopwordSet{words: make(map[string]struct{}, s.Len()+len(words))}
	if s != nil {
		for w := range s.words {
			out.words[w] = struct{}{}
		}
	}
	for _, w := range words {
		if t := NormalizeToken(w); t != "" {
			out.words[t] = struct{}{}
		}
	}
	return out
}

// Contains reports whether token is in the set. The token is expected to be
// normalized already.
func (s *StopwordSet) Contains(token string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[token]
	return ok
}

// Len returns the number of words in the set.
func (s *StopwordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}
