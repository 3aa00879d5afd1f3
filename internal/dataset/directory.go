package dataset

import (
	"log/slog"
	"path/filepath"
	"strings"
)

// Loader loads every tabular file in a directory into a Collection.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a directory loader. A nil logger falls back to the
// default slog logger.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger.With(slog.String("component", "dataset_loader"))}
}

// LoadDirectory loads all tabular files in dir, keyed by file name with the
// extension stripped. A file that cannot be parsed is logged and skipped;
// it does not abort the remaining files. A directory with no tabular files
// yields an empty collection, not an error. Only failure to list the
// directory itself is returned as an error.
func (l *Loader) LoadDirectory(dir string) (*Collection, error) {
	files, err := FindTabularFiles(dir)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		l.logger.Info("no tabular files found", slog.String("dir", dir))
		return NewCollection(), nil
	}

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	l.logger.Info("discovered tabular files",
		slog.String("dir", dir),
		slog.Int("count", len(files)),
		slog.Any("files", names))

	collection := NewCollection()
	for _, f := range files {
		table, err := l.loadFile(f.Path)
		if err != nil {
			l.logger.Error("failed to load file",
				slog.String("path", f.Path),
				slog.Any("error", err))
			continue
		}

		if err := collection.Add(table); err != nil {
			// Same base name under two extensions; first one wins.
			l.logger.Warn("skipping duplicate table name",
				slog.String("path", f.Path),
				slog.Any("error", err))
			continue
		}

		l.logger.Info("loaded table",
			slog.String("table", table.Name),
			slog.Int("rows", table.RowCount()),
			slog.Int("columns", table.ColumnCount()))
	}

	return collection, nil
}

func (l *Loader) loadFile(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return ReadExcel(path)
	default:
		return ReadCSV(path)
	}
}
