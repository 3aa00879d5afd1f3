package review

// Summary aggregates the sentiment results of one processed table.
type Summary struct {
	Table         string
	Column        string
	Rows          int
	MeanSentiment float64
	Positive      int
	Negative      int
	Neutral       int
}

// Summarize computes row counts and sentiment aggregates for a processed
// table. Scores above zero count as positive, below zero as negative,
// exactly zero as neutral.
func Summarize(p *ProcessedTable, sel Selection) Summary {
	s := Summary{
		Table:  sel.Table,
		Column: sel.Column,
		Rows:   p.RowCount(),
	}

	var total float64
	for _, score := range p.Sentiment {
		total += score
		switch {
		case score > 0:
			s.Positive++
		case score < 0:
			s.Negative++
		default:
			s.Neutral++
		}
	}
	if s.Rows > 0 {
		s.MeanSentiment = total / float64(s.Rows)
	}
	return s
}
