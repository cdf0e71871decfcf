package render

import (
	"strings"

	"github.com/alexisbeaulieu97/richterm/internal/style"
	"github.com/alexisbeaulieu97/richterm/internal/textwidth"
	"github.com/alexisbeaulieu97/richterm/internal/ui"
)

// TitleAlign positions a panel title inside the top border.
type TitleAlign int

const (
	TitleCenter TitleAlign = iota
	TitleLeft
	TitleRight
)

// Panel draws a border around content, optionally embedding a title in
// the top border. Every emitted line has identical visual width.
type Panel struct {
	content     Content
	title       string
	titleAlign  TitleAlign
	box         style.BoxStyle
	borderStyle *style.Style
	bodyStyle   *style.Style
	padY, padX  int
	width       int
}

// NewPanel creates a panel around content, which may be a string (markup
// is applied), a *text.Text, or any Renderable.
func NewPanel(content any) *Panel {
	return &Panel{content: NormalizeContent(content), padX: 1}
}

// WithTitle embeds a title in the top border.
func (p *Panel) WithTitle(title string) *Panel {
	p.title = title
	return p
}

// WithTitleAlign sets where the title sits in the top border.
func (p *Panel) WithTitleAlign(align TitleAlign) *Panel {
	p.titleAlign = align
	return p
}

// WithBox selects the box-drawing character set.
func (p *Panel) WithBox(box style.BoxStyle) *Panel {
	p.box = box
	return p
}

// WithBorderStyle styles the border glyphs.
func (p *Panel) WithBorderStyle(st style.Style) *Panel {
	p.borderStyle = &st
	return p
}

// WithBodyStyle styles the content area including horizontal padding.
func (p *Panel) WithBodyStyle(st style.Style) *Panel {
	p.bodyStyle = &st
	return p
}

// WithPadding sets vertical and horizontal interior padding.
func (p *Panel) WithPadding(padY, padX int) *Panel {
	p.padY, p.padX = padY, padX
	return p
}

// WithWidth fixes the panel's outer width instead of expanding to the
// render budget.
func (p *Panel) WithWidth(width int) *Panel {
	p.width = width
	return p
}

// RenderLines implements ui.Renderable.
func (p *Panel) RenderLines(opts ui.Options) []string {
	box := p.box
	if opts.ASCIIOnly {
		box = style.BoxASCII
	}
	chars := box.Chars()

	panelWidth := opts.MaxWidth
	if p.width > 0 && p.width < panelWidth {
		panelWidth = p.width
	}

	innerWidth := panelWidth - 2
	contentWidth := innerWidth - 2*p.padX
	if contentWidth < 1 {
		contentWidth = 1
		innerWidth = contentWidth + 2*p.padX
		panelWidth = innerWidth + 2
	}

	contentLines := p.content.Lines(opts.WithMaxWidth(contentWidth))
	if len(contentLines) == 0 {
		contentLines = []string{""}
	}

	borderANSI := sgr(p.borderStyle)
	bodyANSI := sgr(p.bodyStyle)
	reset := style.Reset

	lines := make([]string, 0, len(contentLines)+2+2*p.padY)
	lines = append(lines, p.topBorder(opts, chars, innerWidth, borderANSI))

	blank := strings.Repeat(" ", innerWidth)
	padRow := p.row(chars, blank, borderANSI, bodyANSI, reset)
	for i := 0; i < p.padY; i++ {
		lines = append(lines, padRow)
	}

	sidePad := strings.Repeat(" ", p.padX)
	for _, line := range contentLines {
		body := sidePad + padLine(line, contentWidth) + sidePad
		lines = append(lines, p.row(chars, body, borderANSI, bodyANSI, reset))
	}

	for i := 0; i < p.padY; i++ {
		lines = append(lines, padRow)
	}

	bottom := chars.BottomLeft + strings.Repeat(chars.Horizontal, innerWidth) + chars.BottomRight
	lines = append(lines, styled(bottom, borderANSI, reset))
	return lines
}

func (p *Panel) row(chars style.Box, body, borderANSI, bodyANSI, reset string) string {
	side := styled(chars.Vertical, borderANSI, reset)
	return side + styled(body, bodyANSI, reset) + side
}

func (p *Panel) topBorder(opts ui.Options, chars style.Box, innerWidth int, borderANSI string) string {
	reset := style.Reset
	if p.title == "" {
		top := chars.TopLeft + strings.Repeat(chars.Horizontal, innerWidth) + chars.TopRight
		return styled(top, borderANSI, reset)
	}

	title := opts.ApplyMarkup(p.title)
	titleWidth := textwidth.StringWidth(title)

	available := innerWidth - titleWidth - 2
	if available < 0 {
		maxTitle := innerWidth - 4
		if maxTitle < 0 {
			maxTitle = 0
		}
		title = textwidth.Truncate(textwidth.StripANSI(title), maxTitle, "")
		titleWidth = textwidth.StringWidth(title)
		available = innerWidth - titleWidth - 2
		if available < 0 {
			available = 0
		}
	}

	var leftLen, rightLen int
	switch p.titleAlign {
	case TitleCenter:
		leftLen = available / 2
		rightLen = available - leftLen
	case TitleRight:
		leftLen = available - 1
		rightLen = 1
	case TitleLeft:
		leftLen = 1
		rightLen = available - 1
	}
	if leftLen < 0 {
		leftLen = 0
	}
	if rightLen < 0 {
		rightLen = 0
	}

	left := styled(chars.TopLeft+strings.Repeat(chars.Horizontal, leftLen), borderANSI, reset)
	right := styled(strings.Repeat(chars.Horizontal, rightLen)+chars.TopRight, borderANSI, reset)
	return left + " " + title + " " + right
}

func sgr(st *style.Style) string {
	if st == nil {
		return ""
	}
	return st.SGR()
}

// styled wraps s in codes+reset, or returns it untouched when no style
// applies.
func styled(s, codes, reset string) string {
	if codes == "" {
		return s
	}
	return codes + s + reset
}
