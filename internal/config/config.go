package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the full application configuration. Every field carries a
// default, so a bare run with no environment set reproduces the standard
// fixed-default invocation.
type Config struct {
	// DataDir is the directory scanned for tabular files.
	DataDir string `envconfig:"DATA_DIR" default:"data" validate:"required"`

	// ReviewFileHint, when set, steers table selection towards tables
	// whose name contains it (case-insensitive substring).
	ReviewFileHint string `envconfig:"REVIEW_FILE_HINT"`

	// ReviewColumns are the candidate review-text column names, tried
	// in order.
	ReviewColumns []string `envconfig:"REVIEW_COLUMNS" default:"review,reviews,review_text,text" validate:"min=1,dive,required"`

	// FallbackTable is preferred by exact name when no hint matches.
	FallbackTable string `envconfig:"FALLBACK_TABLE" default:"steam"`

	// PreviewRows is how many leading rows to print per table.
	PreviewRows int `envconfig:"PREVIEW_ROWS" default:"5" validate:"min=0"`

	Logging LoggingConfig `envconfig:"LOGGING"`
}

// LoggingConfig controls the slog handler built at startup.
type LoggingConfig struct {
	Level  string `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format string `envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
}

// Load builds the configuration from defaults and REVIEWLENS_* environment
// overrides, then validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("REVIEWLENS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
