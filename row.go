package otable

import (
	"fmt"
	"reflect"
	"strings"
)

// Row is a view of one row of a Table. It stores no values: every
// access goes through the table's columns, so a Row always reflects the
// current state of the objects. Rows are cheap to create and compare
// by value.
type Row struct {
	table *Table
	index int
}

// Index returns the row's position in its table.
func (r Row) Index() int {
	return r.index
}

// Len returns the number of cells, which is the table's column count.
func (r Row) Len() int {
	return r.table.ColumnCount()
}

// Names returns the table's column names.
func (r Row) Names() []string {
	return r.table.ColumnNames()
}

// Cell returns the value in the j-th column.
func (r Row) Cell(j int) (any, error) {
	return r.table.Cell(r.index, j)
}

// SetCell assigns the value in the j-th column.
func (r Row) SetCell(j int, value any) error {
	return r.table.SetCell(r.index, j, value)
}

// CellByName returns the value in the column called name.
func (r Row) CellByName(name string) (any, error) {
	return r.table.CellByName(r.index, name)
}

// SetCellByName assigns the value in the column called name.
func (r Row) SetCellByName(name string, value any) error {
	return r.table.SetCellByName(r.index, name, value)
}

// Values returns the row's values in column order.
func (r Row) Values() ([]any, error) {
	values := make([]any, r.Len())
	for j := range values {
		v, err := r.Cell(j)
		if err != nil {
			return nil, err
		}
		values[j] = v
	}
	return values, nil
}

// Equal reports whether the row holds the same values as other, which
// may be another Row or a []any. Which table the rows come from does
// not matter. A row whose values cannot be read equals nothing.
func (r Row) Equal(other any) bool {
	values, err := r.Values()
	if err != nil {
		return false
	}
	var want []any
	switch o := other.(type) {
	case Row:
		if want, err = o.Values(); err != nil {
			return false
		}
	case []any:
		want = o
	default:
		return false
	}
	if len(values) != len(want) {
		return false
	}
	for j := range values {
		if !reflect.DeepEqual(values[j], want[j]) {
			return false
		}
	}
	return true
}

// String formats the values like a Go slice, e.g. "[Ralf 4]".
func (r Row) String() string {
	values, err := r.Values()
	if err != nil {
		return "<" + err.Error() + ">"
	}
	parts := make([]string, len(values))
	for j, v := range values {
		parts[j] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
