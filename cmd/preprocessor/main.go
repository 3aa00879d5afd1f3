package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"reviewlens/internal/config"
	"reviewlens/internal/dataset"
	"reviewlens/internal/infrastructure"
	"reviewlens/internal/review"
	"reviewlens/internal/textproc"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	dataDir := flag.String("data", cfg.DataDir, "directory containing tabular data files")
	hint := flag.String("hint", cfg.ReviewFileHint, "substring hint for picking the review table")
	columns := flag.String("columns", strings.Join(cfg.ReviewColumns, ","), "comma-separated candidate review column names")
	flag.Parse()

	logger := infrastructure.InitializeLogger(cfg.Logging).
		With(slog.String("run_id", uuid.NewString()))

	if err := run(cfg, *dataDir, *hint, splitColumns(*columns), logger); err != nil {
		logger.Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, dataDir, hint string, candidates []string, logger *slog.Logger) error {
	absDir, err := filepath.Abs(dataDir)
	if err != nil {
		return fmt.Errorf("failed to resolve data directory: %w", err)
	}
	fmt.Printf("Using data directory: %s\n", absDir)

	loader := dataset.NewLoader(logger)
	collection, err := loader.LoadDirectory(absDir)
	if err != nil {
		return err
	}

	if collection.Len() == 0 {
		fmt.Printf("No tabular files found in %s\n", absDir)
		return nil
	}

	for _, name := range collection.Names() {
		table, _ := collection.Get(name)
		fmt.Printf("\n%s\n", strings.Repeat("=", 80))
		fmt.Printf("Table: %s (%s)\n", table.Name, table.Shape())
		fmt.Printf("Columns: %s\n", strings.Join(table.Columns, ", "))
		fmt.Printf("\n%s", dataset.FormatPreview(table, cfg.PreviewRows))
	}

	sel, ok := review.SelectReviewSource(collection, review.SelectorOptions{
		Hint:          hint,
		Candidates:    candidates,
		FallbackTable: cfg.FallbackTable,
	})
	if !ok {
		fmt.Println("\nCould not find a review text column.")
		fmt.Printf("Tried candidates: %s\n", strings.Join(candidates, ", "))
		fmt.Println("Inspect the columns above and pass the right one via -columns.")
		return nil
	}

	fmt.Printf("\nSelected review source: table %q, column %q\n", sel.Table, sel.Column)
	logger.Info("review source selected",
		slog.String("table", sel.Table),
		slog.String("column", sel.Column))

	stops := textproc.EnglishStopwords()
	cleaner := textproc.NewCleaner(stops)
	pipeline := review.NewPipeline(cleaner, textproc.NewTokenizer(cleaner), textproc.NewScorer(), logger)

	table, _ := collection.Get(sel.Table)
	processed, err := pipeline.Process(table, sel.Column)
	if err != nil {
		return err
	}

	fmt.Printf("\nProcessed reviews (first %d rows):\n", cfg.PreviewRows)
	fmt.Print(processed.FormatPreview(sel.Column, cfg.PreviewRows))

	summary := review.Summarize(processed, sel)
	fmt.Printf("\nSummary: %d rows, mean sentiment %.4f (%d positive / %d negative / %d neutral)\n",
		summary.Rows, summary.MeanSentiment, summary.Positive, summary.Negative, summary.Neutral)

	return nil
}

func splitColumns(s string) []string {
	var out []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
