package otable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowLen(t *testing.T) {
	table := newAnimalTable(newAnimals())
	row, err := table.Row(1)
	require.NoError(t, err)

	assert.Equal(t, table.ColumnCount(), row.Len())
	assert.Equal(t, []string{"name", "legs"}, row.Names())
}

func TestRowCells(t *testing.T) {
	animals := newAnimals()
	row, err := newAnimalTable(animals).Row(0)
	require.NoError(t, err)

	v, err := row.Cell(0)
	require.NoError(t, err)
	assert.Equal(t, "Ralf", v)

	v, err = row.CellByName("legs")
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	require.NoError(t, row.SetCell(1, 5))
	require.NoError(t, row.SetCellByName("name", "Rex"))
	assert.Equal(t, Animal{Name: "Rex", Legs: 5}, animals[0])

	_, err = row.Cell(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, row.SetCell(-1, "x"), ErrIndexOutOfRange)
	_, err = row.CellByName("wings")
	assert.ErrorIs(t, err, ErrNoSuchColumn)
}

func TestRowReadsThrough(t *testing.T) {
	animals := newAnimals()
	row, err := newAnimalTable(animals).Row(2)
	require.NoError(t, err)

	animals[2].Legs = 2
	v, err := row.CellByName("legs")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestRowDerivedCellIsReadOnly(t *testing.T) {
	animals := newAnimals()
	table := MustTable(
		MustColumn("name", animals),
		MustColumn("paws", animals, Derive(func(a Animal) (any, error) { return a.Legs, nil })),
	)
	row, err := table.Row(0)
	require.NoError(t, err)

	assert.ErrorIs(t, row.SetCell(1, 3), ErrReadOnlyColumn)
	assert.ErrorIs(t, row.SetCellByName("paws", 3), ErrReadOnlyColumn)
	assert.Equal(t, 4, animals[0].Legs)
}

func TestRowEqual(t *testing.T) {
	animals := newAnimals()
	table := newAnimalTable(animals)
	row, err := table.Row(1)
	require.NoError(t, err)

	assert.True(t, row.Equal([]any{"Simon", 0}))
	assert.False(t, row.Equal([]any{"Simon", 1}))
	assert.False(t, row.Equal([]any{"Simon"}))
	assert.False(t, row.Equal([]string{"Simon", "0"}))

	// Rows from different tables compare by value.
	copies := newAnimals()
	other, err := newAnimalTable(copies).Row(1)
	require.NoError(t, err)
	assert.True(t, row.Equal(other))

	copies[1].Legs = 100
	assert.False(t, row.Equal(other))

	broken, err := MustTable(MustColumn("wings", animals)).Row(0)
	require.NoError(t, err)
	assert.False(t, broken.Equal([]any{nil}))
	assert.False(t, row.Equal(broken))
}

func TestRowString(t *testing.T) {
	row, err := newAnimalTable(newAnimals()).Row(2)
	require.NoError(t, err)
	assert.Equal(t, "[Tripod 3]", row.String())
}
