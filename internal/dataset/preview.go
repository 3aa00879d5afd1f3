package dataset

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

const previewCellLimit = 40

// FormatPreview renders up to n leading rows of a table as an aligned
// text block for console output. Long cells are truncated; the output is
// informational only.
func FormatPreview(t *Table, n int) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 2, 4, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(truncateCells(t.Columns), "\t"))
	for _, row := range t.Head(n) {
		fmt.Fprintln(w, strings.Join(truncateCells(row), "\t"))
	}
	w.Flush()

	return b.String()
}

func truncateCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		c = strings.ReplaceAll(c, "\n", " ")
		if r := []rune(c); len(r) > previewCellLimit {
			c = string(r[:previewCellLimit-3]) + "..."
		}
		out[i] = c
	}
	return out
}
