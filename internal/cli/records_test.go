package cli

import (
	"testing"

	"github.com/kballard/go-shellquote"
	"github.com/replit/otable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func animalRecords() []map[string]any {
	return []map[string]any{
		{"name": "Ralf", "legs": 4},
		{"name": "Simon", "legs": 0},
		{"name": "Tripod", "legs": 3, "owner": "Ann"},
	}
}

func TestRecordTableLenient(t *testing.T) {
	records := animalRecords()
	table, err := recordTable(records, []string{"name", "owner"}, true)
	require.NoError(t, err)

	text, err := renderTable(table)
	require.NoError(t, err)
	expected := `┌────────┬───────┐
│ name   │ owner │
╞════════╪═══════╡
│ Ralf   │       │
├────────┼───────┤
│ Simon  │       │
├────────┼───────┤
│ Tripod │ Ann   │
└────────┴───────┘
`
	assert.Equal(t, expected, text)

	assert.ErrorIs(t, table.SetCellByName(0, "owner", "Bob"), otable.ErrReadOnlyColumn)
}

func TestRecordTableWritesRecords(t *testing.T) {
	records := animalRecords()
	table, err := recordTable(records, []string{"legs", "name", "owner"}, false)
	require.NoError(t, err)

	row, err := table.Row(2)
	require.NoError(t, err)
	require.NoError(t, row.SetCellByName("owner", "Bob"))
	assert.Equal(t, "Bob", records[2]["owner"])

	row, err = table.Row(0)
	require.NoError(t, err)
	assert.ErrorIs(t, row.SetCellByName("owner", "Bob"), otable.ErrNoSuchAttribute)
	assert.ErrorIs(t, row.SetCellByName("wings", 2), otable.ErrNoSuchColumn)
	assert.NotContains(t, records[0], "owner")
}

func TestCheckColumns(t *testing.T) {
	keys := []string{"legs", "name"}
	assert.NoError(t, checkColumns([]string{"name"}, keys))
	assert.ErrorIs(t, checkColumns([]string{"name", "wings"}, keys), otable.ErrNoSuchColumn)
}

func TestTableRecords(t *testing.T) {
	table, err := recordTable(animalRecords(), []string{"name"}, true)
	require.NoError(t, err)

	records, err := tableRecords(table)
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{
		{"name": "Ralf"},
		{"name": "Simon"},
		{"name": "Tripod"},
	}, records)
}

func TestDescribeLines(t *testing.T) {
	records := animalRecords()
	keys := []string{"legs", "name", "owner"}

	lines, err := describeLines(records, keys, 0)
	require.NoError(t, err)
	assert.Equal(t, []infoLine{
		{Field: "legs", Value: "4"},
		{Field: "name", Value: "Ralf"},
	}, lines)

	lines, err = describeLines(records, keys, 2)
	require.NoError(t, err)
	assert.Len(t, lines, 3)

	_, err = describeLines(records, keys, 3)
	assert.ErrorIs(t, err, otable.ErrIndexOutOfRange)
}

func TestCellText(t *testing.T) {
	assert.Equal(t, "", cellText(nil))
	assert.Equal(t, "4", cellText(4))
	assert.Equal(t, "[a b]", cellText([]any{"a", "b"}))
}

func TestParseOutputFormat(t *testing.T) {
	assert.Equal(t, outputFormatTable, parseOutputFormat("table"))
	assert.Equal(t, outputFormatJSON, parseOutputFormat("json"))
}

func TestQueryProgress(t *testing.T) {
	msg := queryProgress("zoo.db", "SELECT name FROM animals", outputFormatTable, "")
	words, err := shellquote.Split(msg)
	require.NoError(t, err)
	assert.Equal(t, []string{"querying", "zoo.db", "SELECT name FROM animals"}, words)

	words, err = shellquote.Split(queryProgress("zoo.db", "SELECT 1;\nSELECT 2;", outputFormatTable, ""))
	require.NoError(t, err)
	assert.Equal(t, []string{"querying", "zoo.db", "<multi-line argument>"}, words)

	assert.Empty(t, queryProgress("zoo.db", "SELECT 1", outputFormatJSON, ""))
	assert.NotEmpty(t, queryProgress("zoo.db", "SELECT 1", outputFormatJSON, "out.json"))
}
