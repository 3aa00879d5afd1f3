package review

import (
	"strings"

	"reviewlens/internal/dataset"
)

// Selection identifies the table and column holding review text.
type Selection struct {
	Table  string
	Column string
}

// SelectorOptions control the review-source heuristic.
type SelectorOptions struct {
	// Hint, when non-empty, picks the first table whose name contains it
	// as a case-insensitive substring.
	Hint string
	// Candidates are column names tried in order against the selected
	// table; the first exact match wins.
	Candidates []string
	// FallbackTable is preferred by exact name when the hint matches
	// nothing. An artifact of the original dataset, so configurable.
	FallbackTable string
}

// SelectReviewSource picks the table and column most likely to contain
// review text. It is a pure decision over table and column names. The
// second return value is false when the collection is empty or none of
// the candidate columns exist in the selected table.
func SelectReviewSource(c *dataset.Collection, opts SelectorOptions) (Selection, bool) {
	tableName, ok := selectTable(c, opts)
	if !ok {
		return Selection{}, false
	}

	table, _ := c.Get(tableName)
	for _, candidate := range opts.Candidates {
		if table.HasColumn(candidate) {
			return Selection{Table: tableName, Column: candidate}, true
		}
	}
	return Selection{}, false
}

func selectTable(c *dataset.Collection, opts SelectorOptions) (string, bool) {
	names := c.Names()
	if len(names) == 0 {
		return "", false
	}

	if opts.Hint != "" {
		hint := strings.ToLower(opts.Hint)
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), hint) {
				return name, true
			}
		}
	}

	if opts.FallbackTable != "" {
		if _, ok := c.Get(opts.FallbackTable); ok {
			return opts.FallbackTable, true
		}
	}

	return names[0], true
}
