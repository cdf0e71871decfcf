package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/richterm/internal/style"
	"github.com/alexisbeaulieu97/richterm/internal/textwidth"
)

func TestWrap(t *testing.T) {
	t.Run("hello world at five", func(t *testing.T) {
		lines := New("Hello World").Wrap(5)
		require.Len(t, lines, 2)
		assert.Equal(t, "Hello", lines[0].Plain())
		assert.Equal(t, "World", lines[1].Plain())
	})

	t.Run("no line exceeds the width", func(t *testing.T) {
		lines := New("the quick brown fox jumps over the lazy dog").Wrap(7)
		for _, line := range lines {
			assert.LessOrEqual(t, textwidth.StringWidth(line.Plain()), 7)
		}
	})

	t.Run("concatenation reproduces space-free input", func(t *testing.T) {
		input := "abcdefghijklmnopqrstuvwxyz0123456789"
		lines := New(input).Wrap(7)
		var joined strings.Builder
		for _, line := range lines {
			joined.WriteString(line.Plain())
		}
		assert.Equal(t, input, joined.String())
	})

	t.Run("short text stays one line", func(t *testing.T) {
		lines := New("hi").Wrap(10)
		require.Len(t, lines, 1)
		assert.Equal(t, "hi", lines[0].Plain())
	})

	t.Run("empty text yields one empty line", func(t *testing.T) {
		lines := New("").Wrap(10)
		require.Len(t, lines, 1)
		assert.Equal(t, "", lines[0].Plain())
	})

	t.Run("wide glyphs wrap by display width", func(t *testing.T) {
		lines := New("你好世界").Wrap(4)
		require.Len(t, lines, 2)
		assert.Equal(t, "你好", lines[0].Plain())
		assert.Equal(t, "世界", lines[1].Plain())
	})

	t.Run("nowrap returns the text unmodified", func(t *testing.T) {
		text := New("Hello World").WithNoWrap(true)
		lines := text.Wrap(5)
		require.Len(t, lines, 1)
		assert.Equal(t, "Hello World", lines[0].Plain())
	})

	t.Run("ansi sequences take no width", func(t *testing.T) {
		lines := New("\x1b[31mHello\x1b[0m World").Wrap(5)
		require.Len(t, lines, 2)
		assert.Equal(t, "\x1b[31mHello\x1b[0m", lines[0].Plain())
		assert.Equal(t, "World", lines[1].Plain())
	})

	t.Run("spans carry to wrapped lines", func(t *testing.T) {
		bold := style.ParseStyle("bold")
		text := New("Hello ").Append("World", &bold)
		lines := text.Wrap(5)
		require.Len(t, lines, 2)
		assert.Empty(t, lines[0].Spans())
		require.Len(t, lines[1].Spans(), 1)
		assert.Equal(t, 0, lines[1].Spans()[0].Start)
		assert.Equal(t, 5, lines[1].Spans()[0].End)
	})
}

func TestAppend(t *testing.T) {
	t.Run("append records a span for styled content", func(t *testing.T) {
		red := style.ParseStyle("red")
		text := New("ab").Append("cd", &red)
		assert.Equal(t, "abcd", text.Plain())
		require.Len(t, text.Spans(), 1)
		assert.Equal(t, Span{Start: 2, End: 4, Style: red}, text.Spans()[0])
	})

	t.Run("unstyled append records no span", func(t *testing.T) {
		text := New("ab").Append("cd", nil)
		assert.Empty(t, text.Spans())
	})

	t.Run("append text shifts incoming spans", func(t *testing.T) {
		red := style.ParseStyle("red")
		other := New("").Append("xy", &red)
		text := New("abc").AppendText(other)
		assert.Equal(t, "abcxy", text.Plain())
		require.Len(t, text.Spans(), 1)
		assert.Equal(t, 3, text.Spans()[0].Start)
		assert.Equal(t, 5, text.Spans()[0].End)
	})
}

func TestTruncate(t *testing.T) {
	t.Run("ellipsis keeps room for the marker", func(t *testing.T) {
		got := New("hello world").Truncate(8, OverflowEllipsis)
		assert.Equal(t, "hello...", got.Plain())
	})

	t.Run("crop cuts exactly", func(t *testing.T) {
		got := New("hello world").Truncate(8, OverflowCrop)
		assert.Equal(t, "hello wo", got.Plain())
	})

	t.Run("fits untouched", func(t *testing.T) {
		text := New("hi")
		assert.Same(t, text, text.Truncate(10, OverflowEllipsis))
	})

	t.Run("spans clip to the cut", func(t *testing.T) {
		red := style.ParseStyle("red")
		text := New("").Append("hello world", &red)
		got := text.Truncate(8, OverflowEllipsis)
		require.Len(t, got.Spans(), 1)
		assert.Equal(t, 5, got.Spans()[0].End)
	})

	t.Run("wide glyphs never split", func(t *testing.T) {
		got := New("你好世界").Truncate(5, OverflowCrop)
		assert.Equal(t, "你好", got.Plain())
	})
}

func TestPad(t *testing.T) {
	t.Run("left align pads the right", func(t *testing.T) {
		assert.Equal(t, "hi   ", New("hi").Pad(5, AlignLeft, ' ').Plain())
	})

	t.Run("right align pads the left", func(t *testing.T) {
		assert.Equal(t, "   hi", New("hi").Pad(5, AlignRight, ' ').Plain())
	})

	t.Run("center splits with remainder on the right", func(t *testing.T) {
		assert.Equal(t, " hi  ", New("hi").Pad(5, AlignCenter, ' ').Plain())
	})

	t.Run("already wide enough unchanged", func(t *testing.T) {
		text := New("hello")
		assert.Same(t, text, text.Pad(3, AlignLeft, ' '))
	})

	t.Run("spans shift by the left pad", func(t *testing.T) {
		red := style.ParseStyle("red")
		text := New("").Append("hi", &red).Pad(6, AlignRight, ' ')
		require.Len(t, text.Spans(), 1)
		assert.Equal(t, 4, text.Spans()[0].Start)
		assert.Equal(t, 6, text.Spans()[0].End)
	})

	t.Run("wide glyph width counts", func(t *testing.T) {
		got := New("你").Pad(4, AlignLeft, ' ').Plain()
		assert.Equal(t, "你  ", got)
	})
}

func TestRender(t *testing.T) {
	t.Run("plain text passes through", func(t *testing.T) {
		assert.Equal(t, "hello", New("hello").Render(0))
	})

	t.Run("base style wraps once", func(t *testing.T) {
		got := NewStyled("hi", style.ParseStyle("bold")).Render(0)
		assert.Equal(t, "\x1b[1mhi\x1b[0m", got)
	})

	t.Run("span styles its range only", func(t *testing.T) {
		red := style.ParseStyle("red")
		got := New("ab").Append("cd", &red).Append("ef", nil).Render(0)
		assert.Equal(t, "ab\x1b[31mcd\x1b[0mef", got)
	})

	t.Run("overlapping spans resolve in order", func(t *testing.T) {
		red := style.ParseStyle("red")
		blue := style.ParseStyle("blue")
		text := New("abcdef")
		text.spans = append(text.spans,
			Span{Start: 0, End: 4, Style: red},
			Span{Start: 2, End: 6, Style: blue},
		)
		got := text.Render(0)
		assert.Equal(t, "\x1b[31mabcd\x1b[0m\x1b[34mef\x1b[0m", got)
	})

	t.Run("right justify pads by visual width", func(t *testing.T) {
		got := New("hi").WithJustify(JustifyRight).Render(6)
		assert.Equal(t, "    hi", got)
	})

	t.Run("center justify splits padding", func(t *testing.T) {
		got := New("hi").WithJustify(JustifyCenter).Render(6)
		assert.Equal(t, "  hi  ", got)
	})
}
