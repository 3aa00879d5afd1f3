package textproc

import "strings"

// Tokenizer splits cleaned text into an ordered token sequence.
type Tokenizer struct {
	cleaner *Cleaner
}

// NewTokenizer creates a tokenizer that cleans input with the given cleaner
// before splitting.
func NewTokenizer(cleaner *Cleaner) *Tokenizer {
	return &Tokenizer{cleaner: cleaner}
}

// Tokenize cleans the value and splits the result on whitespace. Input the
// cleaner maps to the empty string yields a nil slice. The tokens joined by
// single spaces always reproduce the cleaned string.
func (t *Tokenizer) Tokenize(value any) []string {
	cleaned := t.cleaner.Clean(value)
	if cleaned == "" {
		return nil
	}
	return strings.Split(cleaned, " ")
}
