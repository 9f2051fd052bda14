package grid

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

// emptyGrid is what String and Markdown print for a grid without rows.
const emptyGrid = "(0 rows)"

// String renders g as a box-drawn table for debugging and test failure
// messages. The first column is the row position as SelectByIndex counts it.
// A grid without rows renders as "(0 rows)".
// Complexity: O(total cells).
func (g *Grid) String() string {
	if g.Len() == 0 {
		return emptyGrid
	}
	t := g.table()
	t.SetStyle(table.StyleLight)

	return t.Render()
}

// Markdown renders g as a Markdown table. A grid without rows renders as
// "(0 rows)" rather than a header-only table, since it has no column count.
func (g *Grid) Markdown() string {
	if g.Len() == 0 {
		return emptyGrid
	}

	return g.table().RenderMarkdown()
}

// table loads g into a go-pretty writer. Short rows are padded by the writer.
func (g *Grid) table() table.Writer {
	width := 0
	for _, r := range g.rows {
		width = max(width, len(r))
	}

	t := table.NewWriter()
	header := make(table.Row, width+1)
	header[0] = "#"
	for c := 0; c < width; c++ {
		header[c+1] = strconv.Itoa(c)
	}
	t.AppendHeader(header)

	for i, r := range g.rows {
		row := make(table.Row, len(r)+1)
		row[0] = i + IndexBase
		for c, v := range r {
			row[c+1] = v.String()
		}
		t.AppendRow(row)
	}

	return t
}
