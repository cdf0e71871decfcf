// Package render provides the composable layout renderers: Panel, Table,
// Tree, Columns, Padding, and Rule. Each owns a width-allocation
// algorithm and emits lines whose visual width never exceeds its budget,
// padded so equal-width lines are an invariant callers can rely on when
// stacking borders.
package render

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/richterm/internal/text"
	"github.com/alexisbeaulieu97/richterm/internal/textwidth"
	"github.com/alexisbeaulieu97/richterm/internal/ui"
)

type contentKind int

const (
	kindString contentKind = iota
	kindText
	kindRenderable
	kindOpaque
)

// Content is a tagged union over the value kinds print and the layout
// renderers accept: plain strings, styled text, renderables, and opaque
// values stringified on render. The kind is resolved once at
// construction, not re-probed on every render.
type Content struct {
	kind       contentKind
	str        string
	text       *text.Text
	renderable ui.Renderable
	opaque     any
}

// NormalizeContent resolves an arbitrary value into a Content.
func NormalizeContent(v any) Content {
	switch c := v.(type) {
	case Content:
		return c
	case string:
		return Content{kind: kindString, str: c}
	case *text.Text:
		return Content{kind: kindText, text: c}
	case ui.Renderable:
		return Content{kind: kindRenderable, renderable: c}
	default:
		return Content{kind: kindOpaque, opaque: v}
	}
}

// IsRenderable reports whether the content dispatches through the
// Renderable interface.
func (c Content) IsRenderable() bool {
	return c.kind == kindRenderable
}

// Renderable returns the wrapped renderable, or nil.
func (c Content) Renderable() ui.Renderable {
	return c.renderable
}

// Lines renders the content to display lines under the given budget.
// Strings are markup-applied and split on newlines, then wrapped; styled
// text is wrapped at the width budget; renderables produce their own
// lines; opaque values are stringified.
func (c Content) Lines(opts ui.Options) []string {
	switch c.kind {
	case kindString:
		return wrapRawLines(opts.ApplyMarkup(c.str), opts.MaxWidth)
	case kindText:
		return c.text.RenderLines(opts)
	case kindRenderable:
		return c.renderable.RenderLines(opts)
	default:
		return wrapRawLines(fmt.Sprint(c.opaque), opts.MaxWidth)
	}
}

// Width measures the widest visual line of the content before wrapping.
func (c Content) Width(opts ui.Options) int {
	var raw string
	switch c.kind {
	case kindString:
		raw = opts.ApplyMarkup(c.str)
	case kindText:
		raw = c.text.Plain()
	case kindRenderable:
		max := 0
		for _, line := range c.renderable.RenderLines(opts) {
			if w := textwidth.StringWidth(line); w > max {
				max = w
			}
		}
		return max
	default:
		raw = fmt.Sprint(c.opaque)
	}
	max := 0
	for _, line := range strings.Split(raw, "\n") {
		if w := textwidth.StringWidth(line); w > max {
			max = w
		}
	}
	return max
}

// wrapRawLines splits on explicit newlines, then width-wraps each
// segment. The input may already contain ANSI sequences; they are
// carried through at zero width.
func wrapRawLines(s string, width int) []string {
	var out []string
	for _, segment := range strings.Split(s, "\n") {
		if width <= 0 || textwidth.StringWidth(segment) <= width {
			out = append(out, segment)
			continue
		}
		for _, line := range text.New(segment).Wrap(width) {
			out = append(out, line.Plain())
		}
	}
	return out
}

// padLine pads or trims a line to exactly width visual columns.
func padLine(line string, width int) string {
	w := textwidth.StringWidth(line)
	switch {
	case w < width:
		return line + strings.Repeat(" ", width-w)
	case w > width:
		return textwidth.Truncate(line, width, "")
	default:
		return line
	}
}
