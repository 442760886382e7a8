package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/replit/otable"
)

// recordTable builds a table with one column per key over rows. The
// columns read and write the maps in rows directly. With lenient set a
// record lacking a key shows an empty cell; such columns are
// read-only.
func recordTable(rows []map[string]any, keys []string, lenient bool) (*otable.Table, error) {
	columns := make([]*otable.Column, 0, len(keys))
	for _, key := range keys {
		var opts []otable.ColumnOption
		if lenient {
			opts = append(opts, otable.Derive(func(record map[string]any) (any, error) {
				return record[key], nil
			}))
		}
		column, err := otable.NewColumn(key, rows, opts...)
		if err != nil {
			return nil, err
		}
		columns = append(columns, column)
	}
	return otable.NewTable(columns...)
}

// checkColumns fails on the first name that is not one of keys.
func checkColumns(names, keys []string) error {
	known := map[string]bool{}
	for _, key := range keys {
		known[key] = true
	}
	for _, name := range names {
		if !known[name] {
			return errors.Wrapf(otable.ErrNoSuchColumn, "%q", name)
		}
	}
	return nil
}

// cellText is the text shown for a value; nil is blank.
func cellText(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// renderTable renders t for display.
func renderTable(t *otable.Table) (string, error) {
	return otable.RenderWith(t, cellText)
}

// tableRecords converts t back into one map per row, for JSON output.
func tableRecords(t *otable.Table) ([]map[string]any, error) {
	names := t.ColumnNames()
	records := make([]map[string]any, 0, t.RowCount())
	for _, row := range t.Rows() {
		values, err := row.Values()
		if err != nil {
			return nil, err
		}
		record := make(map[string]any, len(names))
		for j, name := range names {
			record[name] = values[j]
		}
		records = append(records, record)
	}
	return records, nil
}

// describeLines lists the fields of row i that the record has.
func describeLines(rows []map[string]any, keys []string, i int) ([]infoLine, error) {
	t, err := recordTable(rows, keys, false)
	if err != nil {
		return nil, err
	}
	row, err := t.Row(i)
	if err != nil {
		return nil, err
	}
	lines := []infoLine{}
	for _, key := range keys {
		value, err := row.CellByName(key)
		if errors.Is(err, otable.ErrNoSuchAttribute) {
			continue
		} else if err != nil {
			return nil, err
		}
		lines = append(lines, infoLine{Field: key, Value: cellText(value)})
	}
	return lines, nil
}
