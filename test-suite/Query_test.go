package testSuite

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery(t *testing.T) {
	ot := startOtable(t)

	db, err := sql.Open("sqlite3", filepath.Join(ot.TestDir(), "zoo.db"))
	require.NoError(t, err)
	_, err = db.Exec(`
		CREATE TABLE animals (name TEXT, legs INTEGER);
		INSERT INTO animals VALUES ('Ralf', 4), ('Simon', 0), ('Tripod', 3);
	`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	out := ot.Otable("query", "zoo.db", "SELECT name, legs FROM animals", "WHERE legs > 0")
	assert.Equal(t, `┌────────┬──────┐
│ name   │ legs │
╞════════╪══════╡
│ Ralf   │ 4    │
├────────┼──────┤
│ Tripod │ 3    │
└────────┴──────┘
`, out)

	stderr := ot.OtableFails("query", "zoo.db", "SELECT * FROM plants")
	assert.Contains(t, stderr, "no such table")
}
