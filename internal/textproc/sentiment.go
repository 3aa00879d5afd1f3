package textproc

import (
	"strings"

	prose "github.com/tsawler/prose/v3"
)

// Scorer computes a lexicon-based polarity score for raw text.
type Scorer struct {
	analyzer *prose.SentimentAnalyzer
}

// NewScorer creates a scorer backed by the English sentiment lexicon.
// The analyzer's ML stage is disabled so scoring stays purely
// lexicon-based and deterministic across runs.
func NewScorer() *Scorer {
	cfg := prose.DefaultSentimentConfig()
	cfg.UseML = false
	return &Scorer{
		analyzer: prose.NewSentimentAnalyzer(prose.English, cfg),
	}
}

// Score returns the polarity of value in [-1, 1]. Non-string or blank
// input scores 0.0, and any failure of the underlying analyzer is mapped
// to 0.0 instead of being returned to the caller.
func (s *Scorer) Score(value any) float64 {
	text, ok := value.(string)
	if !ok || strings.TrimSpace(text) == "" {
		return 0.0
	}

	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return 0.0
	}

	score := s.analyzer.AnalyzeDocument(doc)
	return clampPolarity(score.Polarity)
}

func clampPolarity(p float64) float64 {
	switch {
	case p > 1:
		return 1
	case p < -1:
		return -1
	default:
		return p
	}
}
