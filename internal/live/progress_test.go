package live

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/richterm/internal/console"
)

func newProgressConsole(w *frameWriter) *console.Console {
	return console.New(
		console.WithWriter(w),
		console.WithWidth(40),
		console.WithForceTerminal(true),
	)
}

func TestProgressBar(t *testing.T) {
	t.Run("half done fills half the bar", func(t *testing.T) {
		w := &frameWriter{}
		bar := NewProgressBar(newProgressConsole(w), 10)

		bar.Add(5)
		out := w.String()
		// 40 columns minus the 30 reserved for the trailer
		assert.Contains(t, out, strings.Repeat("█", 5)+strings.Repeat("░", 5))
		assert.Contains(t, out, "50% | 5/10")
	})

	t.Run("completion caps at the total", func(t *testing.T) {
		w := &frameWriter{}
		bar := NewProgressBar(newProgressConsole(w), 4)

		bar.Add(9)
		assert.Contains(t, w.String(), "100% | 9/4")
		assert.NotContains(t, w.String(), strings.Repeat("░", 1))
	})

	t.Run("description prefixes the line", func(t *testing.T) {
		w := &frameWriter{}
		bar := NewProgressBar(newProgressConsole(w), 2, WithDescription("loading"))

		bar.Add(2)
		assert.Contains(t, w.String(), "loading: ")
	})

	t.Run("updates are throttled between draws", func(t *testing.T) {
		w := &frameWriter{}
		bar := NewProgressBar(newProgressConsole(w), 100)
		bar.minInterval = time.Hour

		bar.Add(1)
		bar.Add(1)
		bar.Add(1)
		w.mu.Lock()
		writes := len(w.writes)
		w.mu.Unlock()
		// only the first add lands inside the interval window
		assert.Equal(t, 1, writes)
	})

	t.Run("reaching the total bypasses the throttle", func(t *testing.T) {
		w := &frameWriter{}
		bar := NewProgressBar(newProgressConsole(w), 2)
		bar.minInterval = time.Hour

		bar.Add(1)
		bar.Add(1)
		assert.Contains(t, w.String(), "100% | 2/2")
	})

	t.Run("close keeps the final line and adds a newline", func(t *testing.T) {
		w := &frameWriter{}
		bar := NewProgressBar(newProgressConsole(w), 2)

		bar.Add(2)
		bar.Close()
		out := w.String()
		assert.True(t, strings.HasSuffix(out, "\n"))
		assert.Contains(t, out, "2/2")
	})

	t.Run("close without leave erases the line", func(t *testing.T) {
		w := &frameWriter{}
		bar := NewProgressBar(newProgressConsole(w), 2, WithLeave(false))

		bar.Add(2)
		bar.Close()
		w.mu.Lock()
		last := w.writes[len(w.writes)-1]
		w.mu.Unlock()
		assert.Equal(t, "\r\x1b[K", last)
	})

	t.Run("closing twice is a no-op", func(t *testing.T) {
		w := &frameWriter{}
		bar := NewProgressBar(newProgressConsole(w), 2)

		bar.Add(2)
		bar.Close()
		w.mu.Lock()
		writes := len(w.writes)
		w.mu.Unlock()
		bar.Close()
		bar.Add(1)
		w.mu.Lock()
		after := len(w.writes)
		w.mu.Unlock()
		assert.Equal(t, writes, after)
		assert.Equal(t, 2, bar.Current())
	})

	t.Run("unknown total shows a spinner and count", func(t *testing.T) {
		w := &frameWriter{}
		bar := NewProgressBar(newProgressConsole(w), 0, WithUnit("files"))

		bar.Add(3)
		out := w.String()
		assert.Contains(t, out, "3 files")
		assert.NotContains(t, out, "%")
	})

	t.Run("custom glyphs replace the defaults", func(t *testing.T) {
		w := &frameWriter{}
		bar := NewProgressBar(newProgressConsole(w), 2, WithBarChars("#", "-"))

		bar.Add(1)
		assert.Contains(t, w.String(), "#####-----")
	})

	t.Run("non terminal console stays silent", func(t *testing.T) {
		w := &frameWriter{}
		c := console.New(console.WithWriter(w), console.WithWidth(40))

		bar := NewProgressBar(c, 2)
		bar.Add(2)
		bar.Close()
		assert.Equal(t, "", w.String())
	})

	t.Run("a narrow console still draws a bar", func(t *testing.T) {
		w := &frameWriter{}
		c := console.New(
			console.WithWriter(w),
			console.WithWidth(10),
			console.WithForceTerminal(true),
		)
		bar := NewProgressBar(c, 2)
		bar.Add(2)
		require.NotEmpty(t, w.String())
		assert.Contains(t, w.String(), "█")
	})
}
