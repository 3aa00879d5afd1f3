package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanerClean(t *testing.T) {
	cleaner := NewCleaner(FallbackStopwords())

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{
			name:  "review with punctuation digits and stopwords",
			input: "This game is AMAZING!! 10/10",
			want:  "game amazing",
		},
		{
			name:  "lowercases everything",
			input: "GREAT Game",
			want:  "great game",
		},
		{
			name:  "digit runs collapse to a separator",
			input: "played100hours",
			want:  "played hours",
		},
		{
			name:  "non-ASCII decimal digits collapse too",
			input: "played٣٤hours",
			want:  "played hours",
		},
		{
			name:  "only stopwords",
			input: "the and of",
			want:  "",
		},
		{
			name:  "whitespace normalized",
			input: "  too   many\tspaces  ",
			want:  "too many spaces",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "nil input",
			input: nil,
			want:  "",
		},
		{
			name:  "non-string input",
			input: 42,
			want:  "",
		},
		{
			name:  "float input",
			input: 3.14,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleaner.Clean(tt.input))
		})
	}
}

func TestCleanerIdempotent(t *testing.T) {
	cleaner := NewCleaner(FallbackStopwords())

	inputs := []string{
		"This game is AMAZING!! 10/10",
		"plain words already clean",
		"Mixed CASE with 123 numbers!",
	}
	for _, in := range inputs {
		once := cleaner.Clean(in)
		assert.Equal(t, once, cleaner.Clean(once), "input %q", in)
	}
}

func TestCleanerKeepsNonASCIILetters(t *testing.T) {
	cleaner := NewCleaner(FallbackStopwords())
	assert.Equal(t, "très bien", cleaner.Clean("Très bien!"))
}
