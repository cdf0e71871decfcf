package render

import (
	"strings"

	"github.com/alexisbeaulieu97/richterm/internal/ui"
)

// Columns lays items out row-major in equal-width columns. The column
// count is derived from the widest item, capped at half the budget so a
// single long item cannot force one column.
type Columns struct {
	items   []Content
	padding int
	width   int
}

// NewColumns creates a column layout over the given items.
func NewColumns(items ...any) *Columns {
	c := &Columns{padding: 1}
	for _, item := range items {
		c.items = append(c.items, NormalizeContent(item))
	}
	return c
}

// Add appends an item.
func (c *Columns) Add(item any) *Columns {
	c.items = append(c.items, NormalizeContent(item))
	return c
}

// WithPadding sets the space between columns.
func (c *Columns) WithPadding(padding int) *Columns {
	c.padding = padding
	return c
}

// WithWidth fixes the layout width instead of using the budget.
func (c *Columns) WithWidth(width int) *Columns {
	c.width = width
	return c
}

// RenderLines implements ui.Renderable.
func (c *Columns) RenderLines(opts ui.Options) []string {
	if len(c.items) == 0 {
		return nil
	}

	width := opts.MaxWidth
	if c.width > 0 {
		width = c.width
	}
	if width <= 0 {
		width = 1
	}

	// Cap item width at half the budget less the gap so one long item
	// still leaves room for a second column.
	itemCap := width/2 - c.padding
	if itemCap < 1 {
		itemCap = 1
	}
	maxItemWidth := 0
	for _, item := range c.items {
		w := item.Width(opts)
		if w > itemCap {
			w = itemCap
		}
		if w > maxItemWidth {
			maxItemWidth = w
		}
	}

	numCols := 1
	if maxItemWidth+c.padding > 0 {
		if n := width / (maxItemWidth + c.padding); n > 1 {
			numCols = n
		}
	}
	colWidth := width / numCols
	cellWidth := colWidth - c.padding
	if cellWidth < 1 {
		cellWidth = 1
	}

	var lines []string
	for rowStart := 0; rowStart < len(c.items); rowStart += numCols {
		rowEnd := rowStart + numCols
		if rowEnd > len(c.items) {
			rowEnd = len(c.items)
		}
		row := c.items[rowStart:rowEnd]

		cells := make([][]string, len(row))
		maxLines := 0
		for i, item := range row {
			cells[i] = item.Lines(opts.WithMaxWidth(cellWidth))
			if len(cells[i]) > maxLines {
				maxLines = len(cells[i])
			}
		}

		gap := strings.Repeat(" ", c.padding)
		for lineIdx := 0; lineIdx < maxLines; lineIdx++ {
			parts := make([]string, numCols)
			for col := 0; col < numCols; col++ {
				cell := ""
				if col < len(cells) && lineIdx < len(cells[col]) {
					cell = cells[col][lineIdx]
				}
				parts[col] = padLine(cell, cellWidth)
			}
			lines = append(lines, strings.Join(parts, gap))
		}
	}
	return lines
}
