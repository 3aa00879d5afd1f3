package review

import (
	"fmt"
	"log/slog"
	"strings"

	"reviewlens/internal/dataset"
	"reviewlens/internal/textproc"
)

// Derived column names added by the pipeline.
const (
	CleanColumn     = "review_clean"
	TokensColumn    = "review_tokens"
	SentimentColumn = "sentiment_score"
)

// MissingColumnError reports that the pipeline was asked to process a
// column the table does not have. This is a usage error and is returned
// to the caller rather than recovered.
type MissingColumnError struct {
	Table  string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found in table %q", e.Column, e.Table)
}

// ProcessedTable is a source table plus three derived columns, one value
// per source row. The source is shared read-only and never mutated.
type ProcessedTable struct {
	Source    *dataset.Table
	Clean     []string
	Tokens    [][]string
	Sentiment []float64
}

// RowCount returns the number of rows, equal to the source row count.
func (p *ProcessedTable) RowCount() int {
	return p.Source.RowCount()
}

// Columns returns the source column names followed by the derived ones.
func (p *ProcessedTable) Columns() []string {
	cols := make([]string, 0, len(p.Source.Columns)+3)
	cols = append(cols, p.Source.Columns...)
	return append(cols, CleanColumn, TokensColumn, SentimentColumn)
}

// Pipeline applies cleaning, tokenization, and sentiment scoring to one
// column of a table.
type Pipeline struct {
	cleaner   *textproc.Cleaner
	tokenizer *textproc.Tokenizer
	scorer    *textproc.Scorer
	logger    *slog.Logger
}

// NewPipeline assembles a preprocessing pipeline from its stages.
func NewPipeline(cleaner *textproc.Cleaner, tokenizer *textproc.Tokenizer, scorer *textproc.Scorer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cleaner:   cleaner,
		tokenizer: tokenizer,
		scorer:    scorer,
		logger:    logger.With(slog.String("component", "preprocess_pipeline")),
	}
}

// Process derives the cleaned, tokenized, and sentiment columns from the
// named column of table, preserving row count and order. The input table
// is not modified. A column name that does not exist in the table yields
// a *MissingColumnError.
func (p *Pipeline) Process(table *dataset.Table, column string) (*ProcessedTable, error) {
	values, ok := table.Column(column)
	if !ok {
		return nil, &MissingColumnError{Table: table.Name, Column: column}
	}

	p.logger.Info("preprocessing column",
		slog.String("table", table.Name),
		slog.String("column", column),
		slog.Int("rows", len(values)))

	out := &ProcessedTable{
		Source:    table,
		Clean:     make([]string, len(values)),
		Tokens:    make([][]string, len(values)),
		Sentiment: make([]float64, len(values)),
	}
	for i, v := range values {
		out.Clean[i] = p.cleaner.Clean(v)
		out.Tokens[i] = p.tokenizer.Tokenize(v)
		out.Sentiment[i] = p.scorer.Score(v)
	}
	return out, nil
}

// FormatPreview renders the source column and the three derived columns
// for up to n leading rows.
func (p *ProcessedTable) FormatPreview(column string, n int) string {
	source, _ := p.Source.Column(column)
	if n > len(source) {
		n = len(source)
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%d: %s\n", i, truncate(source[i], 60))
		fmt.Fprintf(&b, "   %s: %s\n", CleanColumn, truncate(p.Clean[i], 60))
		fmt.Fprintf(&b, "   %s: %v\n", TokensColumn, p.Tokens[i])
		fmt.Fprintf(&b, "   %s: %.4f\n", SentimentColumn, p.Sentiment[i])
	}
	return b.String()
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
