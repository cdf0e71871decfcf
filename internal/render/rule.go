package render

import (
	"strings"

	"github.com/alexisbeaulieu97/richterm/internal/style"
	"github.com/alexisbeaulieu97/richterm/internal/textwidth"
	"github.com/alexisbeaulieu97/richterm/internal/ui"
)

// Rule is a horizontal divider spanning the width budget, with an
// optional embedded title.
type Rule struct {
	title     string
	character string
	style     *style.Style
	align     TitleAlign
}

// NewRule creates an untitled rule drawn with light horizontal bars.
func NewRule() *Rule {
	return &Rule{character: "─"}
}

// WithTitle embeds a title in the rule.
func (r *Rule) WithTitle(title string) *Rule {
	r.title = title
	return r
}

// WithCharacter changes the rule glyph.
func (r *Rule) WithCharacter(character string) *Rule {
	if character != "" {
		r.character = character
	}
	return r
}

// WithStyle styles the rule characters; the title keeps its own markup
// styling.
func (r *Rule) WithStyle(st style.Style) *Rule {
	r.style = &st
	return r
}

// WithAlign positions the title within the rule.
func (r *Rule) WithAlign(align TitleAlign) *Rule {
	r.align = align
	return r
}

// RenderLines implements ui.Renderable.
func (r *Rule) RenderLines(opts ui.Options) []string {
	width := opts.MaxWidth
	if width < 1 {
		width = 1
	}
	character := r.character
	if opts.ASCIIOnly {
		character = "-"
	}
	ruleANSI := sgr(r.style)
	reset := style.Reset

	if r.title == "" {
		return []string{styled(strings.Repeat(character, width), ruleANSI, reset)}
	}

	title := opts.ApplyMarkup(r.title)
	titleWidth := textwidth.StringWidth(title)
	available := width - titleWidth - 2
	if available < 0 {
		available = 0
	}

	var left, right int
	switch r.align {
	case TitleLeft:
		right = available
	case TitleRight:
		left = available
	default:
		left = available / 2
		right = available - left
	}

	line := styled(strings.Repeat(character, left), ruleANSI, reset) +
		" " + title + " " +
		styled(strings.Repeat(character, right), ruleANSI, reset)
	return []string{line}
}
