// Package dataset provides the ordered tabular abstraction the invoice
// engine computes over: named columns, string cells, stable grouping.
package dataset

import (
	"strings"

	"github.com/shopspring/decimal"

	"ascforge/internal/domain"
)

// Dataset is an ordered set of rows under a fixed column schema. Cells are
// kept as the strings read from the workbook; numeric interpretation
// happens at the point of use. A Dataset is never mutated after creation.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New builds a Dataset from a header and rows. Rows shorter than the
// header are allowed; missing cells read as empty.
func New(columns []string, rows [][]string) *Dataset {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}
	return &Dataset{columns: columns, index: index, rows: rows}
}

// Columns returns the column names in schema order.
func (d *Dataset) Columns() []string { return d.columns }

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.rows) }

// HasColumn reports whether the schema contains the named column.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Schema returns the column set as a lookup map.
func (d *Dataset) Schema() map[string]bool {
	s := make(map[string]bool, len(d.columns))
	for _, c := range d.columns {
		s[c] = true
	}
	return s
}

// Value returns the cell at (row, column), or "" when the column is absent
// or the row has no cell there.
func (d *Dataset) Value(row int, column string) string {
	idx, ok := d.index[column]
	if !ok || row < 0 || row >= len(d.rows) {
		return ""
	}
	r := d.rows[row]
	if idx >= len(r) {
		return ""
	}
	return r[idx]
}

// HasValues reports whether the column exists and holds at least one
// non-blank cell.
func (d *Dataset) HasValues(column string) bool {
	if !d.HasColumn(column) {
		return false
	}
	for i := range d.rows {
		if strings.TrimSpace(d.Value(i, column)) != "" {
			return true
		}
	}
	return false
}

// Group is one partition of a Dataset: the shared key and its rows, with
// the parent's schema.
type Group struct {
	Key  string
	Rows *Dataset
}

// GroupBy partitions the rows by the named column, preserving the order in
// which each distinct key first appears. A missing column yields a single
// group with an empty key holding every row.
func (d *Dataset) GroupBy(column string) []Group {
	order := make([]string, 0)
	buckets := make(map[string][][]string)
	for i := range d.rows {
		key := d.Value(i, column)
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], d.rows[i])
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, Group{
			Key:  key,
			Rows: &Dataset{columns: d.columns, index: d.index, rows: buckets[key]},
		})
	}
	return groups
}

// Decimal reads the cell at (row, column) as a fixed-point number. Blank
// cells degrade to zero; anything else that fails to parse is a CellError.
// Thousands separators are tolerated.
func (d *Dataset) Decimal(row int, column string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(d.Value(row, column))
	if raw == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return decimal.Zero, &domain.CellError{Column: column, Row: row + 1, Value: raw}
	}
	return v, nil
}

// SumDecimal sums the named column over all rows. An absent column sums to
// zero.
func (d *Dataset) SumDecimal(column string) (decimal.Decimal, error) {
	sum := decimal.Zero
	if !d.HasColumn(column) {
		return sum, nil
	}
	for i := range d.rows {
		v, err := d.Decimal(i, column)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(v)
	}
	return sum, nil
}
