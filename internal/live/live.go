// Package live manages in-place terminal regions: a Live region that
// redraws a renderable over itself on every update, and a Status
// spinner for single-line progress messages. All cursor movement goes
// through the owning console's serialized write path so frames never
// interleave with regular prints.
package live

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/richterm/internal/console"
	"github.com/alexisbeaulieu97/richterm/internal/logger"
)

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	clearLine  = "\x1b[K"

	defaultRefresh = 250 * time.Millisecond
	stopTimeout    = 2 * time.Second
)

// Live renders a value into a fixed terminal region and redraws it in
// place on every update. One refresh goroutine drives periodic redraws;
// Update triggers an immediate one.
type Live struct {
	console *console.Console
	log     *logger.Logger
	refresh time.Duration
	auto    bool

	mu            sync.Mutex
	content       any
	renderedLines int
	started       bool
	stopped       bool

	done     chan struct{}
	finished chan struct{}
}

// Option configures a Live region.
type Option func(*Live)

// WithRefreshRate sets the auto-refresh interval.
func WithRefreshRate(d time.Duration) Option {
	return func(l *Live) {
		if d > 0 {
			l.refresh = d
		}
	}
}

// WithAutoRefresh toggles the background refresh goroutine. Updates
// still redraw immediately when disabled.
func WithAutoRefresh(enabled bool) Option {
	return func(l *Live) { l.auto = enabled }
}

// WithLogger attaches a diagnostics logger.
func WithLogger(log *logger.Logger) Option {
	return func(l *Live) { l.log = log }
}

// New creates a Live region bound to c showing content.
func New(c *console.Console, content any, opts ...Option) *Live {
	l := &Live{
		console: c,
		refresh: defaultRefresh,
		auto:    true,
		content: content,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start hides the cursor, draws the first frame, and launches the
// refresh goroutine. Starting twice is a no-op.
func (l *Live) Start() {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return
	}
	l.started = true
	l.stopped = false
	l.done = make(chan struct{})
	l.finished = make(chan struct{})
	l.mu.Unlock()

	if l.console.IsTerminal() {
		l.console.WriteRaw(hideCursor)
	}
	l.Refresh()

	if l.auto && l.console.IsTerminal() {
		go l.loop()
	} else {
		close(l.finished)
	}
}

func (l *Live) loop() {
	defer close(l.finished)

	ticker := time.NewTicker(l.refresh)
	defer ticker.Stop()
	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.Refresh()
		}
	}
}

// Update replaces the region's content and redraws immediately.
func (l *Live) Update(content any) {
	l.SetContent(content)
	l.Refresh()
}

// SetContent replaces the content without redrawing; the next refresh
// tick picks it up.
func (l *Live) SetContent(content any) {
	l.mu.Lock()
	l.content = content
	l.mu.Unlock()
}

// Refresh redraws the current content over the previous frame.
func (l *Live) Refresh() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.started || l.stopped {
		return
	}
	if !l.console.IsTerminal() {
		return
	}
	l.console.WriteRaw(l.frame())
}

// frame builds one atomic write: rewind over the previous frame,
// clearing each stale line, then emit the new lines. Caller holds mu.
func (l *Live) frame() string {
	lines := l.console.Render(l.content, nil)
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	var b strings.Builder
	if l.renderedLines > 0 {
		b.WriteString("\r")
		if l.renderedLines > 1 {
			fmt.Fprintf(&b, "\x1b[%dA", l.renderedLines-1)
		}
		for i := 0; i < l.renderedLines; i++ {
			b.WriteString(clearLine)
			if i < l.renderedLines-1 {
				b.WriteString("\x1b[1B")
			}
		}
		if l.renderedLines > 1 {
			fmt.Fprintf(&b, "\x1b[%dA", l.renderedLines-1)
		}
	}
	b.WriteString(strings.Join(lines, "\n"))
	l.renderedLines = len(lines)
	return b.String()
}

// Stop halts refreshing, waits briefly for the refresh goroutine to
// exit, restores the cursor, and terminates the region with exactly one
// trailing newline. The final frame stays on screen.
func (l *Live) Stop() {
	l.mu.Lock()
	if !l.started || l.stopped {
		l.mu.Unlock()
		return
	}
	l.stopped = true
	close(l.done)
	l.mu.Unlock()

	select {
	case <-l.finished:
	case <-time.After(stopTimeout):
		l.log.Warn("live refresh goroutine did not stop in time")
	}

	if l.console.IsTerminal() {
		l.console.WriteRaw(showCursor + "\n")
	} else {
		l.mu.Lock()
		lines := l.console.Render(l.content, nil)
		l.mu.Unlock()
		l.console.WriteRaw(strings.Join(lines, "\n") + "\n")
	}

	l.mu.Lock()
	l.started = false
	l.renderedLines = 0
	l.mu.Unlock()
}
