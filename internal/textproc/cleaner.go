package textproc

import (
	"regexp"
	"strings"
)

// punctChars is the ASCII punctuation set stripped outright from text.
const punctChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Matches any decimal digit, not just ASCII, so numerals in non-Latin
// scripts collapse to a separator too.
var digitRun = regexp.MustCompile(`\p{Nd}+`)

// Cleaner normalizes raw text: lowercase, punctuation removed, digit runs
// collapsed to a single space, stopwords dropped. The stopword set is
// injected at construction and never modified.
type Cleaner struct {
	stops Stopwords
}

// NewCleaner creates a cleaner using the given stopword set.
func NewCleaner(stops Stopwords) *Cleaner {
	return &Cleaner{stops: stops}
}

// Clean normalizes an arbitrary cell value into cleaned text. Non-string
// input yields the empty string; the result is always a valid (possibly
// empty) string and never an error.
func (c *Cleaner) Clean(value any) string {
	text, ok := value.(string)
	if !ok {
		return ""
	}

	text = strings.ToLower(text)
	text = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctChars, r) {
			return -1
		}
		return r
	}, text)
	text = digitRun.ReplaceAllString(text, " ")

	var kept []string
	for _, token := range strings.Fields(text) {
		if c.stops.Contains(token) {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}
