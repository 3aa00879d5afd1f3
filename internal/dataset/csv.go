package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// LoadError reports that a file could not be parsed under any of the
// attempted character encodings. It wraps the last underlying error.
type LoadError struct {
	Path      string
	Encodings []string
	Last      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to read %s with encodings %s: %v",
		e.Path, strings.Join(e.Encodings, ", "), e.Last)
}

func (e *LoadError) Unwrap() error {
	return e.Last
}

// csvEncoding is one candidate decoding applied before CSV parsing.
type csvEncoding struct {
	name   string
	decode func([]byte) ([]byte, error)
}

// Candidates are tried in order; the last one decodes any byte sequence,
// so only a malformed CSV structure can exhaust the list.
var csvEncodings = []csvEncoding{
	{name: "utf-8", decode: decodeUTF8},
	{name: "utf-8-sig", decode: decodeUTF8BOM},
	{name: "windows-1252", decode: decodeWindows1252},
}

// decodeUTF8 accepts strictly valid UTF-8 without a byte order mark; a
// signature is left to the utf-8-sig candidate so it never leaks into the
// first column name.
func decodeUTF8(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, utf8BOM) {
		return nil, fmt.Errorf("unexpected byte order mark")
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("invalid UTF-8 byte sequence")
	}
	return data, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeUTF8BOM strips an optional UTF-8 byte order mark, then applies the
// same strict validation as plain UTF-8. The x/text UTF-8 decoder is not
// used here because it substitutes U+FFFD for ill-formed bytes instead of
// failing, which would mask mojibake that the Windows-1252 fallback
// decodes correctly.
func decodeUTF8BOM(data []byte) ([]byte, error) {
	return decodeUTF8(bytes.TrimPrefix(data, utf8BOM))
}

func decodeWindows1252(data []byte) ([]byte, error) {
	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("windows-1252 decode: %w", err)
	}
	return out, nil
}

// ReadCSV parses a delimited file with a header row, trying each candidate
// encoding in order and returning the first successful parse. If every
// attempt fails the result is a *LoadError aggregating the last failure.
// A partially parsed table is never returned.
func ReadCSV(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	name := tableName(path)
	attempted := make([]string, 0, len(csvEncodings))
	var lastErr error

	for _, enc := range csvEncodings {
		attempted = append(attempted, enc.name)

		decoded, err := enc.decode(data)
		if err != nil {
			lastErr = err
			continue
		}

		table, err := parseCSV(name, decoded)
		if err != nil {
			lastErr = err
			continue
		}
		return table, nil
	}

	return nil, &LoadError{Path: path, Encodings: attempted, Last: lastErr}
}

// parseCSV reads decoded bytes as comma-separated records. The first record
// is the header; duplicate header names are disambiguated with a numeric
// suffix so column names stay unique within the table.
func parseCSV(name string, data []byte) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv parse: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv parse: file has no header row")
	}

	return &Table{
		Name:    name,
		Columns: uniqueColumns(records[0]),
		Rows:    records[1:],
	}, nil
}

// uniqueColumns renames repeated header fields ("text", "text.1", "text.2")
// so the unique-column invariant holds for any input file. The suffix keeps
// incrementing past names the file already uses, so a header like
// "text,text.1,text" cannot produce a second "text.1".
func uniqueColumns(header []string) []string {
	next := make(map[string]int, len(header))
	taken := make(map[string]bool, len(header))
	columns := make([]string, len(header))
	for i, col := range header {
		name := col
		if taken[name] {
			n := next[col]
			if n == 0 {
				n = 1
			}
			for taken[name] {
				name = fmt.Sprintf("%s.%d", col, n)
				n++
			}
			next[col] = n
		}
		taken[name] = true
		columns[i] = name
	}
	return columns
}

// tableName derives a table name from a file path by stripping the
// directory and extension.
func tableName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
