package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Empty(t, cfg.ReviewFileHint)
	assert.Equal(t, []string{"review", "reviews", "review_text", "text"}, cfg.ReviewColumns)
	assert.Equal(t, "steam", cfg.FallbackTable)
	assert.Equal(t, 5, cfg.PreviewRows)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("REVIEWLENS_DATA_DIR", "exports")
	t.Setenv("REVIEWLENS_REVIEW_FILE_HINT", "comments")
	t.Setenv("REVIEWLENS_REVIEW_COLUMNS", "body,comment")
	t.Setenv("REVIEWLENS_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "exports", cfg.DataDir)
	assert.Equal(t, "comments", cfg.ReviewFileHint)
	assert.Equal(t, []string{"body", "comment"}, cfg.ReviewColumns)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad log level", key: "REVIEWLENS_LOGGING_LEVEL", value: "verbose"},
		{name: "bad log format", key: "REVIEWLENS_LOGGING_FORMAT", value: "xml"},
		{name: "negative preview rows", key: "REVIEWLENS_PREVIEW_ROWS", value: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
