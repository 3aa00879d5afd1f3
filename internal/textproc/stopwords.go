package textproc

import (
	"strings"

	"github.com/bbalet/stopwords"
)

// Stopwords is an immutable set of lowercase words excluded from tokens.
type Stopwords map[string]struct{}

// Contains reports whether w is in the set.
func (s Stopwords) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

// Words returns the members of the set in unspecified order.
func (s Stopwords) Words() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	return out
}

// EnglishStopwords builds the English stopword set from the stopwords
// library. The library does not export its word lists, so membership is
// probed: a word is a stopword exactly when CleanString filters it out.
// If probing yields nothing the small built-in fallback set is returned,
// so the result is always usable.
func EnglishStopwords() Stopwords {
	set := make(Stopwords, len(probeWords))
	for _, w := range probeWords {
		cleaned := strings.TrimSpace(stopwords.CleanString(w, "en", false))
		if cleaned != w {
			set[w] = struct{}{}
		}
	}

	if len(set) == 0 {
		return FallbackStopwords()
	}
	return set
}

// FallbackStopwords returns the fixed built-in set used when no external
// stopword source is available.
func FallbackStopwords() Stopwords {
	set := make(Stopwords, len(fallbackWords))
	for _, w := range fallbackWords {
		set[w] = struct{}{}
	}
	return set
}

var fallbackWords = []string{
	"a", "an", "the", "and", "or", "in", "on", "at", "is", "are",
	"was", "were", "to", "of", "for", "it", "this", "that",
}

// probeWords is the candidate vocabulary tested against the stopwords
// library. It covers articles, pronouns, prepositions, conjunctions, and
// auxiliary verbs; content words never appear here, so probing can only
// classify function words as stopwords.
var probeWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "could",
	"did", "do", "does", "doing", "down", "during", "each", "few", "for",
	"from", "further", "had", "has", "have", "having", "he", "her", "here",
	"hers", "herself", "him", "himself", "his", "how", "i", "if", "in",
	"into", "is", "it", "its", "itself", "just", "me", "might", "more",
	"most", "must", "my", "myself", "no", "nor", "not", "now", "of", "off",
	"on", "once", "only", "or", "other", "our", "ours", "ourselves", "out",
	"over", "own", "same", "she", "should", "so", "some", "such", "than",
	"that", "the", "their", "theirs", "them", "themselves", "then", "there",
	"these", "they", "this", "those", "through", "to", "too", "under",
	"until", "up", "very", "was", "we", "were", "what", "when", "where",
	"which", "while", "who", "whom", "why", "will", "with", "would", "you",
	"your", "yours", "yourself", "yourselves",
}
