package render

import (
	"regexp"
	"strings"

	"github.com/alexisbeaulieu97/richterm/internal/style"
	"github.com/alexisbeaulieu97/richterm/internal/ui"
)

type mdKind int

const (
	mdPara mdKind = iota
	mdHeader
	mdList
	mdQuote
	mdCode
	mdEmpty
)

type mdBlock struct {
	kind  mdKind
	text  string
	level int
}

var (
	mdHeaderPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	mdListPattern   = regexp.MustCompile(`^([*+-]|\d+\.)\s+(.+)$`)
)

var mdHeaderStyles = map[int]style.Style{
	1: style.ParseStyle("bold bright_white"),
	2: style.ParseStyle("bold white"),
	3: style.ParseStyle("bright_white"),
	4: style.ParseStyle("underline white"),
	5: style.ParseStyle("white"),
	6: style.ParseStyle("dim"),
}

// Markdown renders a small markdown dialect for the terminal: headers,
// paragraphs, bullet and numbered lists, block quotes, and fenced code
// blocks highlighted through Syntax.
type Markdown struct {
	source string
}

// NewMarkdown creates a renderer for the given markdown source.
func NewMarkdown(source string) *Markdown {
	return &Markdown{source: source}
}

// RenderLines implements ui.Renderable.
func (m *Markdown) RenderLines(opts ui.Options) []string {
	var lines []string
	for _, block := range m.parse() {
		lines = append(lines, m.renderBlock(block, opts)...)
	}
	return lines
}

func (m *Markdown) parse() []mdBlock {
	var blocks []mdBlock
	var codeLines []string
	inCode := false

	for _, line := range strings.Split(m.source, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if inCode {
				blocks = append(blocks, mdBlock{kind: mdCode, text: strings.Join(codeLines, "\n")})
				codeLines = nil
			}
			inCode = !inCode
			continue
		}
		if inCode {
			codeLines = append(codeLines, line)
			continue
		}

		if match := mdHeaderPattern.FindStringSubmatch(line); match != nil {
			blocks = append(blocks, mdBlock{kind: mdHeader, text: match[2], level: len(match[1])})
			continue
		}
		if strings.HasPrefix(line, ">") {
			blocks = append(blocks, mdBlock{kind: mdQuote, text: strings.TrimSpace(line[1:])})
			continue
		}
		if match := mdListPattern.FindStringSubmatch(line); match != nil {
			blocks = append(blocks, mdBlock{kind: mdList, text: match[2]})
			continue
		}
		if strings.TrimSpace(line) == "" {
			blocks = append(blocks, mdBlock{kind: mdEmpty})
			continue
		}
		blocks = append(blocks, mdBlock{kind: mdPara, text: line})
	}
	if inCode && len(codeLines) > 0 {
		blocks = append(blocks, mdBlock{kind: mdCode, text: strings.Join(codeLines, "\n")})
	}
	return blocks
}

func (m *Markdown) renderBlock(block mdBlock, opts ui.Options) []string {
	switch block.kind {
	case mdHeader:
		return m.renderHeader(block, opts)
	case mdPara:
		return append(wrapRawLines(opts.ApplyMarkup(block.text), opts.MaxWidth), "")
	case mdList:
		bullet := "  • "
		if opts.ASCIIOnly {
			bullet = "  * "
		}
		return []string{bullet + opts.ApplyMarkup(block.text)}
	case mdQuote:
		bar := "│ "
		if opts.ASCIIOnly {
			bar = "| "
		}
		line := bar + block.text
		if opts.ColorEnabled {
			line = style.CodeDim + line + style.Reset
		}
		return []string{line}
	case mdCode:
		return append(NewSyntax(block.text).RenderLines(opts), "")
	default:
		return []string{""}
	}
}

func (m *Markdown) renderHeader(block mdBlock, opts ui.Options) []string {
	st := mdHeaderStyles[block.level]
	header := block.text
	if opts.ColorEnabled && !st.IsZero() {
		header = st.SGR() + block.text + style.Reset
	}
	lines := []string{header}

	if block.level <= 2 {
		width := len([]rune(block.text))
		if opts.MaxWidth > 0 && width > opts.MaxWidth {
			width = opts.MaxWidth
		}
		glyph := "═"
		if opts.ASCIIOnly {
			glyph = "="
		}
		underline := strings.Repeat(glyph, width)
		if opts.ColorEnabled && !st.IsZero() {
			underline = st.SGR() + underline + style.Reset
		}
		lines = append(lines, underline)
	}
	return append(lines, "")
}
