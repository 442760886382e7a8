package source

import (
	"context"
	"database/sql"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// Result is the outcome of a SQL query: the result columns in order and
// one record per result row.
type Result struct {
	Columns []string
	Rows    []map[string]any
}

// Query runs query against the SQLite database at path. The database
// must already exist. TEXT and BLOB values are returned as strings.
func Query(ctx context.Context, path, query string) (*Result, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "running query")
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	result := &Result{Columns: columns, Rows: []map[string]any{}}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for j := range values {
			pointers[j] = &values[j]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, errors.Wrap(err, "reading result row")
		}
		record := make(map[string]any, len(columns))
		for j, column := range columns {
			if b, ok := values[j].([]byte); ok {
				values[j] = string(b)
			}
			record[column] = values[j]
		}
		result.Rows = append(result.Rows, record)
	}
	return result, errors.Wrap(rows.Err(), "reading results")
}
