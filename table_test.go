package otable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnimalTable(animals []Animal) *Table {
	return MustTable(
		MustColumn("name", animals),
		MustColumn("legs", animals),
	)
}

func TestTableShape(t *testing.T) {
	table := newAnimalTable(newAnimals())

	assert.Equal(t, 3, table.RowCount())
	assert.Equal(t, 2, table.ColumnCount())
	assert.Equal(t, []string{"name", "legs"}, table.ColumnNames())
}

func TestTableColumnNamesAreNotAttributes(t *testing.T) {
	animals := newAnimals()
	table := MustTable(
		MustColumn("Animal", animals, Attribute("name")),
		MustColumn("Leg count", animals, Attribute("legs")),
	)

	assert.Equal(t, []string{"Animal", "Leg count"}, table.ColumnNames())
}

func TestTableStructureErrors(t *testing.T) {
	animals := newAnimals()

	_, err := NewTable(MustColumn("name", animals), MustColumn("name", animals, Attribute("legs")))
	assert.ErrorIs(t, err, ErrDuplicateColumn)
	assert.ErrorIs(t, err, ErrStructure)

	_, err = NewTable(MustColumn("name", animals), MustColumn("legs", animals[:2]))
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.ErrorIs(t, err, ErrStructure)

	_, err = NewTable()
	assert.ErrorIs(t, err, ErrNoColumns)
	assert.ErrorIs(t, err, ErrStructure)

	_, err = NewTable(nil)
	assert.ErrorIs(t, err, ErrNilColumn)
	assert.ErrorIs(t, err, ErrStructure)

	_, err = NewTable(MustColumn("name", animals), nil)
	assert.ErrorIs(t, err, ErrNilColumn)

	assert.Panics(t, func() { MustTable() })
}

func TestTableNamesAreCaseSensitive(t *testing.T) {
	animals := newAnimals()
	table, err := NewTable(MustColumn("name", animals), MustColumn("Name", animals))
	require.NoError(t, err)

	_, err = table.ColumnByName("NAME")
	assert.ErrorIs(t, err, ErrNoSuchColumn)
}

func TestTableRow(t *testing.T) {
	table := newAnimalTable(newAnimals())

	row, err := table.Row(1)
	require.NoError(t, err)
	assert.Equal(t, 1, row.Index())
	values, err := row.Values()
	require.NoError(t, err)
	assert.Equal(t, []any{"Simon", 0}, values)

	_, err = table.Row(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = table.Row(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestTableRowValuesMatchColumns(t *testing.T) {
	table := newAnimalTable(newAnimals())

	for i, row := range table.Rows() {
		values, err := row.Values()
		require.NoError(t, err)
		for j := 0; j < table.ColumnCount(); j++ {
			c, err := table.Column(j)
			require.NoError(t, err)
			want, err := c.Get(i)
			require.NoError(t, err)
			assert.Equal(t, want, values[j])
		}
	}
}

func TestTableRowsRestart(t *testing.T) {
	table := newAnimalTable(newAnimals())

	var first []int
	for i := range table.Rows() {
		first = append(first, i)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, first)

	var second []string
	for _, row := range table.Rows() {
		name, err := row.CellByName("name")
		require.NoError(t, err)
		second = append(second, name.(string))
	}
	assert.Equal(t, []string{"Ralf", "Simon", "Tripod"}, second)

	empty := newAnimalTable([]Animal{})
	for range empty.Rows() {
		t.Fatal("empty table yielded a row")
	}
}

func TestTableCells(t *testing.T) {
	animals := newAnimals()
	table := newAnimalTable(animals)

	v, err := table.Cell(2, 0)
	require.NoError(t, err)
	assert.Equal(t, "Tripod", v)

	v, err = table.CellByName(0, "legs")
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	require.NoError(t, table.SetCell(0, 0, "Rex"))
	require.NoError(t, table.SetCellByName(2, "legs", 4))
	assert.Equal(t, Animal{Name: "Rex", Legs: 4}, animals[0])
	assert.Equal(t, Animal{Name: "Tripod", Legs: 4}, animals[2])

	_, err = table.Cell(0, 2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = table.Cell(3, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = table.CellByName(0, "wings")
	assert.ErrorIs(t, err, ErrNoSuchColumn)
	assert.ErrorIs(t, table.SetCellByName(0, "wings", 2), ErrNoSuchColumn)
}

func TestTableSharedColumn(t *testing.T) {
	animals := newAnimals()
	names := MustColumn("name", animals)
	first := MustTable(names, MustColumn("legs", animals))
	second := MustTable(MustColumn("legs", animals), names)

	require.NoError(t, first.SetCellByName(1, "name", "Sid"))
	v, err := second.Cell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "Sid", v)
}

func TestTableAliasedObjects(t *testing.T) {
	dog := &Animal{Name: "Ralf", Legs: 4}
	snake := &Animal{Name: "Simon", Legs: 0}
	animals := []*Animal{dog, snake, dog}
	table := MustTable(
		MustColumn("name", animals),
		MustColumn("legs", animals),
		MustColumn("nickname", animals, Attribute("name")),
	)

	row, err := table.Row(2)
	require.NoError(t, err)
	require.NoError(t, row.SetCell(2, "Charlie"))

	for _, i := range []int{0, 2} {
		row, err := table.Row(i)
		require.NoError(t, err)
		assert.True(t, row.Equal([]any{"Charlie", 4, "Charlie"}), row.String())
	}
	row, err = table.Row(1)
	require.NoError(t, err)
	assert.True(t, row.Equal([]any{"Simon", 0, "Simon"}))
}

func TestTableString(t *testing.T) {
	table := newAnimalTable(newAnimals())
	text, err := Render(table)
	require.NoError(t, err)
	assert.Equal(t, text, table.String())

	broken := MustTable(MustColumn("wings", newAnimals()))
	assert.Contains(t, broken.String(), "no such attribute")
}
