package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/richterm/internal/style"
	"github.com/alexisbeaulieu97/richterm/internal/textwidth"
	"github.com/alexisbeaulieu97/richterm/internal/ui"
)

func plainOpts(width int) ui.Options {
	return ui.Options{MaxWidth: width, ColorEnabled: false}
}

func assertUniformWidth(t *testing.T, lines []string) int {
	t.Helper()
	require.NotEmpty(t, lines)
	width := textwidth.StringWidth(lines[0])
	for i, line := range lines {
		assert.Equal(t, width, textwidth.StringWidth(line), "line %d: %q", i, line)
	}
	return width
}

func TestPanel(t *testing.T) {
	t.Run("every line has identical width", func(t *testing.T) {
		lines := NewPanel("hello world, this is a panel body").RenderLines(plainOpts(30))
		width := assertUniformWidth(t, lines)
		assert.Equal(t, 30, width)
	})

	t.Run("empty content still has three lines", func(t *testing.T) {
		lines := NewPanel("").RenderLines(plainOpts(30))
		require.Len(t, lines, 3)
	})

	t.Run("body sits between vertical borders", func(t *testing.T) {
		lines := NewPanel("hi").RenderLines(plainOpts(30))
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[1], "│ hi"))
		assert.True(t, strings.HasSuffix(lines[1], "│"))
	})

	t.Run("narrow budget is honored exactly", func(t *testing.T) {
		lines := NewPanel("some content").RenderLines(plainOpts(10))
		width := assertUniformWidth(t, lines)
		assert.Equal(t, 10, width)
	})

	t.Run("narrow fixed width is honored exactly", func(t *testing.T) {
		lines := NewPanel("Hi").WithWidth(10).RenderLines(plainOpts(80))
		width := assertUniformWidth(t, lines)
		assert.Equal(t, 10, width)
		assert.Contains(t, lines[1], "Hi")
	})

	t.Run("degenerate budget floors the content at one column", func(t *testing.T) {
		lines := NewPanel("hi").RenderLines(plainOpts(3))
		width := assertUniformWidth(t, lines)
		// 1 content column plus padding and borders
		assert.Equal(t, 5, width)
	})

	t.Run("fixed width narrows below the budget", func(t *testing.T) {
		lines := NewPanel("hi").WithWidth(26).RenderLines(plainOpts(80))
		width := assertUniformWidth(t, lines)
		assert.Equal(t, 26, width)
	})

	t.Run("long content wraps inside the panel", func(t *testing.T) {
		body := strings.Repeat("word ", 20)
		lines := NewPanel(body).RenderLines(plainOpts(30))
		assert.Greater(t, len(lines), 3)
		assertUniformWidth(t, lines)
	})

	t.Run("title embeds in the top border", func(t *testing.T) {
		lines := NewPanel("hi").WithTitle("Title").RenderLines(plainOpts(30))
		assert.Contains(t, lines[0], " Title ")
		assert.True(t, strings.HasPrefix(lines[0], "┌"))
		assert.True(t, strings.HasSuffix(lines[0], "┐"))
		assertUniformWidth(t, lines)
	})

	t.Run("left aligned title hugs the left corner", func(t *testing.T) {
		lines := NewPanel("hi").WithTitle("T").WithTitleAlign(TitleLeft).RenderLines(plainOpts(30))
		assert.True(t, strings.HasPrefix(lines[0], "┌─ T "))
	})

	t.Run("right aligned title hugs the right corner", func(t *testing.T) {
		lines := NewPanel("hi").WithTitle("T").WithTitleAlign(TitleRight).RenderLines(plainOpts(30))
		assert.True(t, strings.HasSuffix(lines[0], " T ─┐"))
	})

	t.Run("overlong title truncates instead of breaking the border", func(t *testing.T) {
		lines := NewPanel("hi").WithTitle(strings.Repeat("x", 60)).RenderLines(plainOpts(30))
		assertUniformWidth(t, lines)
	})

	t.Run("ascii mode uses ascii glyphs", func(t *testing.T) {
		opts := plainOpts(30)
		opts.ASCIIOnly = true
		lines := NewPanel("hi").RenderLines(opts)
		assert.True(t, strings.HasPrefix(lines[0], "+"))
		assert.True(t, strings.HasSuffix(lines[0], "+"))
		assert.NotContains(t, strings.Join(lines, ""), "─")
	})

	t.Run("vertical padding adds blank rows", func(t *testing.T) {
		lines := NewPanel("hi").WithPadding(1, 1).RenderLines(plainOpts(30))
		require.Len(t, lines, 5)
		assert.Equal(t, "│"+strings.Repeat(" ", 28)+"│", lines[1])
	})

	t.Run("border style wraps glyphs in codes", func(t *testing.T) {
		lines := NewPanel("hi").
			WithBorderStyle(style.ParseStyle("blue")).
			RenderLines(plainOpts(30))
		assert.True(t, strings.HasPrefix(lines[0], "\x1b[34m"))
		// visual width is unchanged by the styling
		assert.Equal(t, 30, textwidth.StringWidth(lines[0]))
	})

	t.Run("markup in string content resolves against the budget options", func(t *testing.T) {
		opts := plainOpts(30)
		lines := NewPanel("[bold]hi[/bold]").RenderLines(opts)
		// color disabled: tags stripped, literal kept
		assert.Contains(t, lines[1], " hi")
		assert.NotContains(t, lines[1], "[bold]")
	})
}

func TestPanelNesting(t *testing.T) {
	t.Run("panel in panel keeps uniform widths", func(t *testing.T) {
		inner := NewPanel("innermost")
		lines := NewPanel(inner).RenderLines(plainOpts(40))
		width := assertUniformWidth(t, lines)
		assert.Equal(t, 40, width)
		// inner border appears indented inside the outer body
		assert.Contains(t, lines[1], "┌")
	})
}
