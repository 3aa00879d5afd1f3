package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPreview(t *testing.T) {
	out := FormatPreview(sampleTable(), 2)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 3, "header plus two rows")
	assert.Contains(t, lines[0], "review_text")
	assert.Contains(t, lines[1], "great game")
	assert.NotContains(t, out, "decent", "third row is beyond the preview")
}

func TestFormatPreviewTruncatesLongCells(t *testing.T) {
	table := &Table{
		Name:    "long",
		Columns: []string{"text"},
		Rows:    [][]string{{strings.Repeat("x", 200)}},
	}

	out := FormatPreview(table, 1)
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, strings.Repeat("x", 50))
}

func TestFormatPreviewFlattensNewlines(t *testing.T) {
	table := &Table{
		Name:    "multiline",
		Columns: []string{"text"},
		Rows:    [][]string{{"line one\nline two"}},
	}

	out := FormatPreview(table, 1)
	assert.Contains(t, out, "line one line two")
}
