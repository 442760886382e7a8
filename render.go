package otable

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

// border is one horizontal rule of the grid.
type border struct {
	left, fill, join, right string
}

var (
	topBorder    = border{"┌", "─", "┬", "┐"}
	headerBorder = border{"╞", "═", "╪", "╡"}
	rowBorder    = border{"├", "─", "┼", "┤"}
	bottomBorder = border{"└", "─", "┴", "┘"}
)

func (b border) line(widths []int) string {
	fills := make([]string, len(widths))
	for j, width := range widths {
		fills[j] = strings.Repeat(b.fill, width+2)
	}
	return b.left + strings.Join(fills, b.join) + b.right + "\n"
}

// Render draws the table as a boxed grid, converting values to text
// with fmt.Sprint.
func Render(t *Table) (string, error) {
	return RenderWith(t, func(v any) string {
		return fmt.Sprint(v)
	})
}

// RenderWith draws the table as a boxed grid, converting values to text
// with stringify. Every line ends in a newline.
func RenderWith(t *Table, stringify func(any) string) (string, error) {
	cells := make([][]string, 0, t.RowCount())
	for _, row := range t.Rows() {
		values, err := row.Values()
		if err != nil {
			return "", err
		}
		texts := make([]string, len(values))
		for j, v := range values {
			texts[j] = stringify(v)
		}
		cells = append(cells, texts)
	}
	return Grid(t.ColumnNames(), cells)
}

// Grid lays out headers and rows of cell text. Columns are as wide as
// their widest line in terminal cells; a cell containing newlines
// spans several lines. Every row must have one cell per header.
func Grid(headers []string, rows [][]string) (string, error) {
	for i, row := range rows {
		if len(row) != len(headers) {
			return "", errors.Wrapf(ErrCardinalityMismatch,
				"row %d has %d cells for %d headers", i, len(row), len(headers))
		}
	}
	widths := make([]int, len(headers))
	for j, header := range headers {
		widths[j] = textWidth(header)
	}
	for _, row := range rows {
		for j, cell := range row {
			widths[j] = max(widths[j], textWidth(cell))
		}
	}

	var b strings.Builder
	b.WriteString(topBorder.line(widths))
	writeCells(&b, headers, widths)
	b.WriteString(headerBorder.line(widths))
	for i, row := range rows {
		if i > 0 {
			b.WriteString(rowBorder.line(widths))
		}
		writeCells(&b, row, widths)
	}
	b.WriteString(bottomBorder.line(widths))
	return b.String(), nil
}

func writeCells(b *strings.Builder, cells []string, widths []int) {
	lines := make([][]string, len(cells))
	height := 1
	for j, cell := range cells {
		lines[j] = splitLines(cell)
		height = max(height, len(lines[j]))
	}
	for k := 0; k < height; k++ {
		b.WriteString("│")
		for j := range cells {
			var text string
			if k < len(lines[j]) {
				text = lines[j][k]
			}
			b.WriteString(" ")
			b.WriteString(text)
			b.WriteString(strings.Repeat(" ", widths[j]-runewidth.StringWidth(text)))
			b.WriteString(" │")
		}
		b.WriteString("\n")
	}
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

func textWidth(s string) int {
	width := 0
	for _, line := range splitLines(s) {
		width = max(width, runewidth.StringWidth(line))
	}
	return width
}
