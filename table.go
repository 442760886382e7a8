package otable

import (
	"iter"

	"github.com/pkg/errors"
)

// Table is an ordered set of equally long, uniquely named columns,
// addressable by row and by column index or name. A table owns none of
// the data it shows: cells are read and written through its columns,
// and columns may be shared between tables.
type Table struct {
	columns []*Column
	index   map[string]int
	rows    int
}

// NewTable creates a table from columns. Column names must be distinct
// and all columns must have the same length.
func NewTable(columns ...*Column) (*Table, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	for j, c := range columns {
		if c == nil {
			return nil, errors.Wrapf(ErrNilColumn, "column %d", j)
		}
	}
	t := &Table{
		columns: append([]*Column(nil), columns...),
		index:   make(map[string]int, len(columns)),
		rows:    columns[0].Len(),
	}
	for j, c := range t.columns {
		if _, seen := t.index[c.Name()]; seen {
			return nil, errors.Wrapf(ErrDuplicateColumn, "%q", c.Name())
		}
		t.index[c.Name()] = j
		if c.Len() != t.rows {
			return nil, errors.Wrapf(ErrLengthMismatch,
				"column %q has %d rows, column %q has %d", c.Name(), c.Len(), t.columns[0].Name(), t.rows)
		}
	}
	return t, nil
}

// MustTable is like NewTable but panics on error.
func MustTable(columns ...*Column) *Table {
	t, err := NewTable(columns...)
	if err != nil {
		panic(err)
	}
	return t
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for j, c := range t.columns {
		names[j] = c.Name()
	}
	return names
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return t.rows
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// Column returns the j-th column.
func (t *Table) Column(j int) (*Column, error) {
	if j < 0 || j >= len(t.columns) {
		return nil, outOfRange("column", j, len(t.columns))
	}
	return t.columns[j], nil
}

// ColumnIndex returns the position of the column called name.
func (t *Table) ColumnIndex(name string) (int, error) {
	j, ok := t.index[name]
	if !ok {
		return 0, errors.Wrapf(ErrNoSuchColumn, "%q", name)
	}
	return j, nil
}

// ColumnByName returns the column called name.
func (t *Table) ColumnByName(name string) (*Column, error) {
	j, err := t.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	return t.columns[j], nil
}

// Row returns a view of the i-th row.
func (t *Table) Row(i int) (Row, error) {
	if i < 0 || i >= t.rows {
		return Row{}, outOfRange("row", i, t.rows)
	}
	return Row{table: t, index: i}, nil
}

// Rows iterates over the rows in order. Every call starts a fresh
// iteration from the first row.
func (t *Table) Rows() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i := 0; i < t.rows; i++ {
			if !yield(i, Row{table: t, index: i}) {
				return
			}
		}
	}
}

// Cell returns the value at row i, column j.
func (t *Table) Cell(i, j int) (any, error) {
	c, err := t.Column(j)
	if err != nil {
		return nil, err
	}
	return c.Get(i)
}

// SetCell assigns the value at row i, column j.
func (t *Table) SetCell(i, j int, value any) error {
	c, err := t.Column(j)
	if err != nil {
		return err
	}
	return c.Set(i, value)
}

// CellByName returns the value at row i in the column called name.
func (t *Table) CellByName(i int, name string) (any, error) {
	c, err := t.ColumnByName(name)
	if err != nil {
		return nil, err
	}
	return c.Get(i)
}

// SetCellByName assigns the value at row i in the column called name.
func (t *Table) SetCellByName(i int, name string, value any) error {
	c, err := t.ColumnByName(name)
	if err != nil {
		return err
	}
	return c.Set(i, value)
}

// String renders the table. Errors reading cells are rendered in place
// of the grid.
func (t *Table) String() string {
	text, err := Render(t)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return text
}
