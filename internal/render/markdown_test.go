package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	t.Run("level one header gets a full underline", func(t *testing.T) {
		lines := NewMarkdown("# Title").RenderLines(plainOpts(40))
		require.Len(t, lines, 3)
		assert.Equal(t, "Title", lines[0])
		assert.Equal(t, "═════", lines[1])
		assert.Equal(t, "", lines[2])
	})

	t.Run("header styles carry the level color", func(t *testing.T) {
		lines := NewMarkdown("# Title").RenderLines(colorOpts(40))
		assert.Equal(t, "\x1b[1m\x1b[97mTitle\x1b[0m", lines[0])
	})

	t.Run("deep headers skip the underline", func(t *testing.T) {
		lines := NewMarkdown("### Section").RenderLines(plainOpts(40))
		require.Len(t, lines, 2)
		assert.Equal(t, "Section", lines[0])
		assert.Equal(t, "", lines[1])
	})

	t.Run("underline clamps to the budget", func(t *testing.T) {
		lines := NewMarkdown("## " + strings.Repeat("w", 30)).RenderLines(plainOpts(10))
		assert.Equal(t, strings.Repeat("═", 10), lines[1])
	})

	t.Run("paragraphs wrap and end with a blank line", func(t *testing.T) {
		lines := NewMarkdown("Hello World").RenderLines(plainOpts(5))
		assert.Equal(t, []string{"Hello", "World", ""}, lines)
	})

	t.Run("list items get a bullet", func(t *testing.T) {
		lines := NewMarkdown("- one\n* two\n3. three").RenderLines(plainOpts(40))
		assert.Equal(t, []string{"  • one", "  • two", "  • three"}, lines)
	})

	t.Run("quotes get a dim bar", func(t *testing.T) {
		lines := NewMarkdown("> wisdom").RenderLines(colorOpts(40))
		assert.Equal(t, []string{"\x1b[2m│ wisdom\x1b[0m"}, lines)
	})

	t.Run("fenced code highlights through the lexer", func(t *testing.T) {
		src := "```python\nreturn 1\n```"
		lines := NewMarkdown(src).RenderLines(colorOpts(40))
		require.NotEmpty(t, lines)
		assert.Contains(t, lines[0], "\x1b[35mreturn\x1b[0m")
		assert.Equal(t, "", lines[len(lines)-1])
	})

	t.Run("unterminated fence still renders its code", func(t *testing.T) {
		lines := NewMarkdown("```\ncode here").RenderLines(plainOpts(40))
		assert.Contains(t, strings.Join(lines, "\n"), "code here")
	})

	t.Run("ascii mode swaps glyphs", func(t *testing.T) {
		opts := plainOpts(40)
		opts.ASCIIOnly = true
		lines := NewMarkdown("# T\n- item\n> q").RenderLines(opts)
		joined := strings.Join(lines, "\n")
		assert.Contains(t, joined, "=")
		assert.Contains(t, joined, "  * item")
		assert.Contains(t, joined, "| q")
		assert.NotContains(t, joined, "•")
	})

	t.Run("blank source lines pass through", func(t *testing.T) {
		lines := NewMarkdown("a\n\nb").RenderLines(plainOpts(40))
		assert.Equal(t, []string{"a", "", "", "b", ""}, lines)
	})

	t.Run("markdown nests inside a panel", func(t *testing.T) {
		lines := NewPanel(NewMarkdown("# Hi")).RenderLines(plainOpts(20))
		assertUniformWidth(t, lines)
		assert.Contains(t, lines[1], "Hi")
	})
}
