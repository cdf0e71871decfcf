package render

import (
	"strings"

	"github.com/alexisbeaulieu97/richterm/internal/ui"
)

// Padding surrounds content with blank space. The child renders at a
// budget shrunk by the horizontal padding; emitted lines are padded back
// out to the full budget.
type Padding struct {
	content Content
	top     int
	right   int
	bottom  int
	left    int
}

// NewPadding wraps content with uniform horizontal padding.
func NewPadding(content any) *Padding {
	return &Padding{content: NormalizeContent(content), left: 1, right: 1}
}

// WithPad sets per-side padding in clockwise order from the top.
func (p *Padding) WithPad(top, right, bottom, left int) *Padding {
	p.top, p.right, p.bottom, p.left = top, right, bottom, left
	return p
}

// WithUniformPad sets the same padding on every side.
func (p *Padding) WithUniformPad(pad int) *Padding {
	return p.WithPad(pad, pad, pad, pad)
}

// RenderLines implements ui.Renderable.
func (p *Padding) RenderLines(opts ui.Options) []string {
	innerWidth := opts.MaxWidth - p.left - p.right
	if innerWidth < 1 {
		innerWidth = 1
	}

	blank := strings.Repeat(" ", opts.MaxWidth)
	leftPad := strings.Repeat(" ", p.left)
	rightPad := strings.Repeat(" ", p.right)

	var lines []string
	for i := 0; i < p.top; i++ {
		lines = append(lines, blank)
	}
	for _, line := range p.content.Lines(opts.WithMaxWidth(innerWidth)) {
		lines = append(lines, leftPad+padLine(line, innerWidth)+rightPad)
	}
	for i := 0; i < p.bottom; i++ {
		lines = append(lines, blank)
	}
	return lines
}
