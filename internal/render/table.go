package render

import (
	"strings"

	"github.com/alexisbeaulieu97/richterm/internal/style"
	"github.com/alexisbeaulieu97/richterm/internal/textwidth"
	"github.com/alexisbeaulieu97/richterm/internal/ui"
)

// minTableColumnWidth is the smallest content width a column can be
// shrunk to when the table exceeds its budget.
const minTableColumnWidth = 3

// Table lays out rows under headers with box-drawing separators. Column
// widths grow to fit content, expand evenly into spare budget when
// requested, and shrink proportionally when over budget.
type Table struct {
	headers     []string
	rows        [][]string
	title       string
	caption     string
	box         style.BoxStyle
	padX        int
	expand      bool
	showHeader  bool
	showEdge    bool
	showLines   bool
	headerStyle *style.Style
	borderStyle *style.Style
	rowStyles   []style.Style
	width       int
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	bold := true
	return &Table{
		headers:     headers,
		box:         style.BoxSquare,
		padX:        1,
		showHeader:  true,
		showEdge:    true,
		headerStyle: &style.Style{Bold: &bold},
	}
}

// AddRow appends a row. Missing cells render empty; extra cells are
// ignored.
func (t *Table) AddRow(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// WithTitle sets a centered title line above the table.
func (t *Table) WithTitle(title string) *Table {
	t.title = title
	return t
}

// WithCaption sets a caption line below the table.
func (t *Table) WithCaption(caption string) *Table {
	t.caption = caption
	return t
}

// WithBox selects the box-drawing character set.
func (t *Table) WithBox(box style.BoxStyle) *Table {
	t.box = box
	return t
}

// WithExpand distributes spare budget evenly across columns.
func (t *Table) WithExpand(expand bool) *Table {
	t.expand = expand
	return t
}

// WithShowLines inserts a separator after every row except the last.
func (t *Table) WithShowLines(show bool) *Table {
	t.showLines = show
	return t
}

// WithShowHeader toggles the header row.
func (t *Table) WithShowHeader(show bool) *Table {
	t.showHeader = show
	return t
}

// WithHeaderStyle replaces the default bold header styling.
func (t *Table) WithHeaderStyle(st style.Style) *Table {
	t.headerStyle = &st
	return t
}

// WithBorderStyle styles the border glyphs.
func (t *Table) WithBorderStyle(st style.Style) *Table {
	t.borderStyle = &st
	return t
}

// WithRowStyles cycles the given styles across rows by index.
func (t *Table) WithRowStyles(styles ...style.Style) *Table {
	t.rowStyles = styles
	return t
}

// WithWidth fixes the table's target width instead of using the budget.
func (t *Table) WithWidth(width int) *Table {
	t.width = width
	return t
}

// ColumnWidths resolves the padded width of every column under the
// budget, exercising the expand or shrink branch as needed.
func (t *Table) ColumnWidths(opts ui.Options) []int {
	maxWidth := opts.MaxWidth
	if t.width > 0 {
		maxWidth = t.width
	}

	colCount := len(t.headers)
	contentWidths := make([]int, colCount)
	for i, h := range t.headers {
		contentWidths[i] = cellWidth(h, opts)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i >= colCount {
				break
			}
			if w := cellWidth(cell, opts); w > contentWidths[i] {
				contentWidths[i] = w
			}
		}
	}

	widths := make([]int, colCount)
	for i := range widths {
		widths[i] = contentWidths[i] + 2*t.padX
	}

	total := sum(widths) + colCount + 1
	switch {
	case t.expand && total < maxWidth:
		extra := maxWidth - total
		perCol := extra / colCount
		for i := range widths {
			widths[i] += perCol
		}
	case total > maxWidth:
		available := maxWidth - (colCount + 1) - colCount*2*t.padX
		contentTotal := sum(contentWidths)
		if contentTotal > 0 && available > 0 {
			for i := range widths {
				shrunk := available * contentWidths[i] / contentTotal
				if shrunk < minTableColumnWidth {
					shrunk = minTableColumnWidth
				}
				widths[i] = shrunk + 2*t.padX
			}
		}
	}
	return widths
}

// RenderLines implements ui.Renderable.
func (t *Table) RenderLines(opts ui.Options) []string {
	if len(t.headers) == 0 {
		return nil
	}

	box := t.box
	if opts.ASCIIOnly {
		box = style.BoxASCII
	}
	chars := box.Chars()
	widths := t.ColumnWidths(opts)
	total := sum(widths) + len(widths) + 1

	borderANSI := sgr(t.borderStyle)
	reset := style.Reset

	var lines []string

	if t.title != "" {
		title := opts.ApplyMarkup(t.title)
		titleWidth := textwidth.StringWidth(title)
		left := (total - titleWidth) / 2
		if left < 0 {
			left = 0
		}
		right := total - titleWidth - left
		if right < 0 {
			right = 0
		}
		lines = append(lines, strings.Repeat(" ", left)+title+strings.Repeat(" ", right))
	}

	if t.showEdge {
		lines = append(lines, t.separator(chars.TopLeft, chars.TopT, chars.TopRight, chars.Horizontal, widths, borderANSI, reset))
	}

	if t.showHeader {
		lines = append(lines, t.cellRow(t.headers, widths, chars, t.headerStyle, cellCenter, opts, borderANSI))
		lines = append(lines, t.separator(chars.LeftT, chars.Cross, chars.RightT, chars.Horizontal, widths, borderANSI, reset))
	}

	for rowIdx, row := range t.rows {
		var rowStyle *style.Style
		if len(t.rowStyles) > 0 {
			rowStyle = &t.rowStyles[rowIdx%len(t.rowStyles)]
		}
		lines = append(lines, t.cellRow(row, widths, chars, rowStyle, cellLeft, opts, borderANSI))

		if t.showLines && rowIdx < len(t.rows)-1 {
			lines = append(lines, t.separator(chars.LeftT, chars.Cross, chars.RightT, chars.Horizontal, widths, borderANSI, reset))
		}
	}

	if t.showEdge {
		lines = append(lines, t.separator(chars.BottomLeft, chars.BottomT, chars.BottomRight, chars.Horizontal, widths, borderANSI, reset))
	}

	if t.caption != "" {
		lines = append(lines, opts.ApplyMarkup(t.caption))
	}
	return lines
}

type cellAlign int

const (
	cellLeft cellAlign = iota
	cellCenter
)

func (t *Table) cellRow(cells []string, widths []int, chars style.Box, st *style.Style, align cellAlign, opts ui.Options, borderANSI string) string {
	reset := style.Reset
	sep := styled(chars.Vertical, borderANSI, reset)

	var b strings.Builder
	b.WriteString(sep)
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = opts.ApplyMarkup(cells[i])
		}
		inner := w - 2*t.padX
		cellW := textwidth.StringWidth(cell)
		if cellW > inner {
			cell = textwidth.Truncate(cell, inner, "")
			cellW = inner
		}

		pad := inner - cellW
		var leftPad, rightPad int
		if align == cellCenter {
			leftPad = pad / 2
			rightPad = pad - leftPad
		} else {
			rightPad = pad
		}

		body := strings.Repeat(" ", t.padX) +
			strings.Repeat(" ", leftPad) + cell + strings.Repeat(" ", rightPad) +
			strings.Repeat(" ", t.padX)
		b.WriteString(styled(body, sgr(st), reset))
		b.WriteString(sep)
	}
	return b.String()
}

func (t *Table) separator(left, mid, right, horizontal string, widths []int, borderANSI, reset string) string {
	var b strings.Builder
	b.WriteString(left)
	for i, w := range widths {
		b.WriteString(strings.Repeat(horizontal, w))
		if i < len(widths)-1 {
			b.WriteString(mid)
		}
	}
	b.WriteString(right)
	return styled(b.String(), borderANSI, reset)
}

func cellWidth(s string, opts ui.Options) int {
	return textwidth.StringWidth(opts.ApplyMarkup(s))
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
