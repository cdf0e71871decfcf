// Package ui defines the rendering contract shared by styled text and the
// layout renderers. Anything that can produce a finite, restartable
// sequence of display lines under a width budget implements Renderable.
package ui

import (
	"github.com/alexisbeaulieu97/richterm/internal/style"
)

// Options is the per-render budget handed to a Renderable, together with
// the markup context renderers need for string children. Options are
// immutable: parents derive a shrunk child budget with WithMaxWidth and
// never mutate their own.
type Options struct {
	MaxWidth  int
	MinWidth  int
	MaxHeight int
	ASCIIOnly bool

	// ColorEnabled gates ANSI emission for markup in string content.
	ColorEnabled bool
	// Markup processes [tag] annotations in string content. A nil value
	// means tags are processed with the default alias table.
	Markup *style.Markup
}

// DefaultOptions returns a budget for the given width with color enabled.
func DefaultOptions(maxWidth int) Options {
	return Options{MaxWidth: maxWidth, MinWidth: 1, ColorEnabled: true}
}

// ApplyMarkup runs the options' markup processor over s, honoring the
// color setting.
func (o Options) ApplyMarkup(s string) string {
	m := o.Markup
	if m == nil {
		m = style.NewMarkup(nil)
	}
	return m.Apply(s, o.ColorEnabled)
}

// WithMaxWidth returns a copy of the options with the width budget
// replaced, for handing to child renderables.
func (o Options) WithMaxWidth(width int) Options {
	o.MaxWidth = width
	return o
}

// Renderable is any layout element that renders to display lines.
// Emitted lines may contain ANSI escape codes; their visual width must
// not exceed opts.MaxWidth. Calls are restartable: rendering twice with
// different budgets re-derives output from the element's content.
type Renderable interface {
	RenderLines(opts Options) []string
}
