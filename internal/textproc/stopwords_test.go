package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackStopwords(t *testing.T) {
	set := FallbackStopwords()

	assert.Len(t, set, 18)
	for _, w := range []string{"a", "the", "is", "this", "that"} {
		assert.True(t, set.Contains(w), "missing %q", w)
	}
	assert.False(t, set.Contains("game"))
}

func TestEnglishStopwords(t *testing.T) {
	set := EnglishStopwords()
	require.NotEmpty(t, set)

	// Core function words must be present whichever source produced
	// the set.
	for _, w := range []string{"the", "is", "this", "and"} {
		assert.True(t, set.Contains(w), "missing %q", w)
	}

	// Content words never enter the set: the probe vocabulary contains
	// none, and neither does the fallback list.
	for _, w := range []string{"game", "amazing", "review"} {
		assert.False(t, set.Contains(w), "unexpected %q", w)
	}
}

func TestStopwordsWords(t *testing.T) {
	set := Stopwords{"a": {}, "b": {}}
	assert.ElementsMatch(t, []string{"a", "b"}, set.Words())
}
