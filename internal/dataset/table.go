package dataset

import "fmt"

// Table is an in-memory tabular dataset loaded from a single file.
// It is read-only after load; nothing in this package mutates a Table
// once it has been handed out.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// RowCount returns the number of data rows (the header is not a row).
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Column returns the values of the named column in row order.
// The second return value is false if no such column exists.
func (t *Table) Column(name string) ([]string, bool) {
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}

	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			values[i] = row[idx]
		}
	}
	return values, true
}

// Head returns up to n leading rows.
func (t *Table) Head(n int) [][]string {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	if n < 0 {
		n = 0
	}
	return t.Rows[:n]
}

// Shape returns a human-readable "rows x columns" description.
func (t *Table) Shape() string {
	return fmt.Sprintf("%d rows x %d columns", len(t.Rows), len(t.Columns))
}

// Collection maps table names to tables while preserving insertion order.
// It is built once by LoadDirectory and not modified afterwards.
type Collection struct {
	names  []string
	tables map[string]*Table
}

// NewCollection creates an empty table collection.
func NewCollection() *Collection {
	return &Collection{tables: make(map[string]*Table)}
}

// Add inserts a table under its name. Adding a name that already exists
// is rejected so a collection never silently overwrites a loaded file.
func (c *Collection) Add(t *Table) error {
	if _, exists := c.tables[t.Name]; exists {
		return fmt.Errorf("table %q already present in collection", t.Name)
	}
	c.names = append(c.names, t.Name)
	c.tables[t.Name] = t
	return nil
}

// Get returns the named table, or false if it is not present.
func (c *Collection) Get(name string) (*Table, bool) {
	t, ok := c.tables[name]
	return t, ok
}

// Names returns table names in insertion order.
func (c *Collection) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of tables in the collection.
func (c *Collection) Len() int {
	return len(c.names)
}
