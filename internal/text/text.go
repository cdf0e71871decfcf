// Package text implements styled terminal text: a plain Unicode string
// paired with append-only style spans, plus width-aware wrap, pad,
// truncate, and ANSI rendering.
package text

import (
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/richterm/internal/style"
	"github.com/alexisbeaulieu97/richterm/internal/textwidth"
	"github.com/alexisbeaulieu97/richterm/internal/ui"
)

// Justify controls horizontal alignment applied at render time.
type Justify int

const (
	JustifyNone Justify = iota
	JustifyLeft
	JustifyCenter
	JustifyRight
	JustifyFull
)

// Overflow controls how content exceeding a width budget is cut.
type Overflow int

const (
	OverflowFold Overflow = iota
	OverflowCrop
	OverflowEllipsis
)

// Align controls which side padding is added on.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Span styles a sub-range of a Text's plain content. Offsets are
// codepoint positions and stay valid for the Text's lifetime because
// spans are only ever created by Append, never by mutating earlier text.
type Span struct {
	Start int
	End   int
	Style style.Style
}

// Text is a Unicode string with style spans. The zero value is an empty
// unstyled text ready for use.
type Text struct {
	plain    []rune
	spans    []Span
	style    *style.Style
	justify  Justify
	overflow Overflow
	noWrap   bool
}

// New creates a Text from plain content.
func New(s string) *Text {
	return &Text{plain: []rune(s)}
}

// NewStyled creates a Text whose whole content carries a base style.
func NewStyled(s string, st style.Style) *Text {
	return &Text{plain: []rune(s), style: &st}
}

// WithJustify sets the justification applied by Render.
func (t *Text) WithJustify(j Justify) *Text {
	t.justify = j
	return t
}

// WithOverflow sets the overflow behavior used by Truncate.
func (t *Text) WithOverflow(o Overflow) *Text {
	t.overflow = o
	return t
}

// WithNoWrap disables wrapping; Wrap returns the text unmodified.
func (t *Text) WithNoWrap(noWrap bool) *Text {
	t.noWrap = noWrap
	return t
}

// Plain returns the unstyled content.
func (t *Text) Plain() string {
	return string(t.plain)
}

// Len returns the content length in codepoints.
func (t *Text) Len() int {
	return len(t.plain)
}

// Width returns the content's display width.
func (t *Text) Width() int {
	return textwidth.StringWidth(string(t.plain))
}

// Spans returns the style spans in insertion order.
func (t *Text) Spans() []Span {
	return t.spans
}

// Append adds content, recording a span when a style is supplied.
func (t *Text) Append(s string, st *style.Style) *Text {
	offset := len(t.plain)
	t.plain = append(t.plain, []rune(s)...)
	if st != nil && !st.IsZero() {
		t.spans = append(t.spans, Span{Start: offset, End: len(t.plain), Style: *st})
	}
	return t
}

// AppendText concatenates another Text, shifting its spans past the
// existing content.
func (t *Text) AppendText(other *Text) *Text {
	offset := len(t.plain)
	t.plain = append(t.plain, other.plain...)
	for _, sp := range other.spans {
		t.spans = append(t.spans, Span{Start: sp.Start + offset, End: sp.End + offset, Style: sp.Style})
	}
	return t
}

// Truncate returns a text cut to at most maxWidth display columns. With
// OverflowEllipsis the cut leaves room for a three-character marker;
// otherwise content is cropped exactly. Spans are clipped to the new
// length and spans entirely past the cut are dropped.
func (t *Text) Truncate(maxWidth int, overflow Overflow) *Text {
	if t.Width() <= maxWidth {
		return t
	}

	keep := maxWidth
	tail := ""
	if overflow == OverflowEllipsis {
		keep = maxWidth - 3
		if keep < 0 {
			keep = 0
		}
		tail = "..."
	}

	cut := 0
	width := 0
	for i, r := range t.plain {
		w := textwidth.RuneWidth(r)
		if width+w > keep {
			break
		}
		width += w
		cut = i + 1
	}

	out := &Text{
		plain:    append(append([]rune{}, t.plain[:cut]...), []rune(tail)...),
		style:    t.style,
		justify:  t.justify,
		overflow: t.overflow,
		noWrap:   t.noWrap,
	}
	for _, sp := range t.spans {
		if sp.Start >= cut {
			continue
		}
		end := sp.End
		if end > cut {
			end = cut
		}
		out.spans = append(out.spans, Span{Start: sp.Start, End: end, Style: sp.Style})
	}
	return out
}

// Pad extends the content to width display columns with the pad rune.
// Right and center alignment shift all spans by the inserted left
// padding; left alignment leaves offsets untouched. Texts already at or
// past the width are returned unchanged.
func (t *Text) Pad(width int, align Align, pad rune) *Text {
	current := t.Width()
	if current >= width {
		return t
	}

	total := width - current
	left, right := 0, 0
	switch align {
	case AlignLeft:
		right = total
	case AlignRight:
		left = total
	case AlignCenter:
		left = total / 2
		right = total - left
	}

	plain := make([]rune, 0, len(t.plain)+total)
	for i := 0; i < left; i++ {
		plain = append(plain, pad)
	}
	plain = append(plain, t.plain...)
	for i := 0; i < right; i++ {
		plain = append(plain, pad)
	}

	out := &Text{
		plain:    plain,
		style:    t.style,
		justify:  t.justify,
		overflow: t.overflow,
		noWrap:   t.noWrap,
	}
	for _, sp := range t.spans {
		out.spans = append(out.spans, Span{Start: sp.Start + left, End: sp.End + left, Style: sp.Style})
	}
	return out
}

// Wrap splits the content into lines no wider than width. The wrap is
// greedy and width-aware; a single space landing exactly on a line break
// is consumed so wrapped words do not carry stray leading spaces.
// Explicit newlines are not handled here: callers pre-split on them.
// Wrapping never mutates the receiver.
func (t *Text) Wrap(width int) []*Text {
	if t.noWrap || width <= 0 {
		return []*Text{t}
	}

	var lines []*Text
	var current []rune
	currentWidth := 0
	lineStart := 0

	// Each line covers a contiguous rune range [lineStart, end) of the
	// original, so spans clip and shift per line.
	flush := func(end int) {
		line := &Text{plain: current, style: t.style, justify: t.justify}
		for _, sp := range t.spans {
			s, e := sp.Start, sp.End
			if e <= lineStart || s >= end {
				continue
			}
			if s < lineStart {
				s = lineStart
			}
			if e > end {
				e = end
			}
			line.spans = append(line.spans, Span{Start: s - lineStart, End: e - lineStart, Style: sp.Style})
		}
		lines = append(lines, line)
		current = nil
		currentWidth = 0
	}

	for i := 0; i < len(t.plain); i++ {
		r := t.plain[i]
		if r == '\x1b' {
			// ANSI sequences pass through verbatim at zero width.
			current = append(current, r)
			if i+1 < len(t.plain) && t.plain[i+1] == '[' {
				i++
				current = append(current, t.plain[i])
				for i+1 < len(t.plain) {
					i++
					current = append(current, t.plain[i])
					if t.plain[i] >= 0x40 && t.plain[i] <= 0x7e {
						break
					}
				}
			} else if i+1 < len(t.plain) {
				i++
				current = append(current, t.plain[i])
			}
			continue
		}
		w := textwidth.RuneWidth(r)
		if currentWidth+w > width && len(current) > 0 {
			flush(i)
			if r == ' ' {
				// The break consumes the space.
				lineStart = i + 1
				continue
			}
			lineStart = i
		}
		current = append(current, r)
		currentWidth += w
	}
	if len(current) > 0 {
		flush(len(t.plain))
	}
	if len(lines) == 0 {
		lines = []*Text{{style: t.style, justify: t.justify}}
	}
	return lines
}

// Render produces one ANSI string. Unstyled runs pass through verbatim;
// each styled run is emitted as codes+text+reset with spans processed in
// start order. A base style with no spans wraps the whole string once.
// When a justification is set and width is positive, center and right
// justification pad with spaces based on the content's visual width.
func (t *Text) Render(width int) string {
	var out strings.Builder

	switch {
	case len(t.spans) == 0 && t.style == nil:
		out.WriteString(string(t.plain))
	case len(t.spans) == 0:
		out.WriteString(t.style.SGR())
		out.WriteString(string(t.plain))
		out.WriteString(style.Reset)
	default:
		spans := make([]Span, len(t.spans))
		copy(spans, t.spans)
		sort.SliceStable(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })

		prev := 0
		for _, sp := range spans {
			start, end := clamp(sp.Start, len(t.plain)), clamp(sp.End, len(t.plain))
			if start > prev {
				out.WriteString(string(t.plain[prev:start]))
			}
			// Overlaps resolve by render order: the later span paints
			// from where the earlier one stopped.
			if start < prev {
				start = prev
			}
			if end <= start {
				continue
			}
			out.WriteString(sp.Style.SGR())
			out.WriteString(string(t.plain[start:end]))
			out.WriteString(style.Reset)
			prev = end
		}
		if prev < len(t.plain) {
			out.WriteString(string(t.plain[prev:]))
		}
	}

	result := out.String()
	if width > 0 && (t.justify == JustifyCenter || t.justify == JustifyRight) {
		visual := t.Width()
		if visual < width {
			switch t.justify {
			case JustifyCenter:
				left := (width - visual) / 2
				right := width - visual - left
				result = strings.Repeat(" ", left) + result + strings.Repeat(" ", right)
			case JustifyRight:
				result = strings.Repeat(" ", width-visual) + result
			}
		}
	}
	return result
}

// RenderLines implements ui.Renderable: the text is wrapped at the width
// budget and each wrapped line rendered to an ANSI string.
func (t *Text) RenderLines(opts ui.Options) []string {
	wrapped := t.Wrap(opts.MaxWidth)
	lines := make([]string, 0, len(wrapped))
	for _, line := range wrapped {
		lines = append(lines, line.Render(opts.MaxWidth))
	}
	return lines
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
