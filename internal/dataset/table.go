package dataset

import (
	"strconv"
	"strings"
)

// Record is a single row of a loaded export, keyed by canonical column name.
// Values are either float64 (cells that parsed as numbers) or string.
type Record map[string]any

// Text returns the value of col as a string. Non-string values (numbers,
// missing cells) report ok=false; callers treat those as empty text.
func (r Record) Text(col string) (string, bool) {
	v, ok := r[col]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Float returns the numeric value of col. String cells are parsed after
// stripping thousands separators.
func (r Record) Float(col string) (float64, bool) {
	v, ok := r[col]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(n), ",", ""), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Clone returns a shallow copy of the record so derived fields can be
// attached without mutating the stored table.
func (r Record) Clone() Record {
	out := make(Record, len(r)+2)
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an ordered collection of records with a known column set.
type Table struct {
	Columns []string
	Rows    []Record
}

// HasColumn reports whether the table exposes the given column.
func (t Table) HasColumn(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }

// Empty reports whether the table has no rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// Filter returns a table containing the rows for which keep returns true.
// Column order is preserved and rows are not copied.
func (t Table) Filter(keep func(Record) bool) Table {
	out := Table{Columns: t.Columns}
	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}
