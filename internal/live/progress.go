package live

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/richterm/internal/console"
	"github.com/alexisbeaulieu97/richterm/internal/style"
)

// progressReserve is the column budget kept for the percentage and
// counter trailer next to the bar.
const progressReserve = 30

const defaultMinInterval = 100 * time.Millisecond

// ProgressBar draws an in-place progress line: a filled bar with a
// percentage and counter when the total is known, a spinner with a raw
// count otherwise. Updates are throttled so tight loops do not flood
// the terminal.
type ProgressBar struct {
	console     *console.Console
	total       int
	desc        string
	unit        string
	barStyle    *style.Style
	fillChar    string
	emptyChar   string
	leave       bool
	minInterval time.Duration

	mu       sync.Mutex
	current  int
	closed   bool
	lastDraw time.Time
}

// ProgressOption configures a ProgressBar.
type ProgressOption func(*ProgressBar)

// WithDescription prefixes the bar with a label.
func WithDescription(desc string) ProgressOption {
	return func(p *ProgressBar) { p.desc = desc }
}

// WithUnit names the counted items for indeterminate bars.
func WithUnit(unit string) ProgressOption {
	return func(p *ProgressBar) { p.unit = unit }
}

// WithBarStyle styles the bar glyphs.
func WithBarStyle(st style.Style) ProgressOption {
	return func(p *ProgressBar) { p.barStyle = &st }
}

// WithBarChars sets the filled and empty glyphs.
func WithBarChars(fill, empty string) ProgressOption {
	return func(p *ProgressBar) { p.fillChar, p.emptyChar = fill, empty }
}

// WithLeave controls whether the finished bar stays on screen after
// Close; when false the line is erased instead.
func WithLeave(leave bool) ProgressOption {
	return func(p *ProgressBar) { p.leave = leave }
}

// NewProgressBar creates a bar bound to c. A total of zero or less
// makes the bar indeterminate.
func NewProgressBar(c *console.Console, total int, opts ...ProgressOption) *ProgressBar {
	p := &ProgressBar{
		console:     c,
		total:       total,
		unit:        "it",
		fillChar:    "█",
		emptyChar:   "░",
		leave:       true,
		minInterval: defaultMinInterval,
	}
	defaultStyle := style.ParseStyle("green")
	p.barStyle = &defaultStyle
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Add advances the bar by n and redraws if enough time has passed or
// the bar just completed.
func (p *ProgressBar) Add(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.current += n
	now := time.Now()
	if now.Sub(p.lastDraw) >= p.minInterval || (p.total > 0 && p.current >= p.total) {
		p.draw()
		p.lastDraw = now
	}
}

// Current returns the number of completed units.
func (p *ProgressBar) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Close finishes the bar. With leave set the final state is redrawn
// and kept, followed by a newline; otherwise the line is erased.
// Closing twice is a no-op.
func (p *ProgressBar) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	if !p.console.IsTerminal() {
		return
	}
	if p.leave {
		p.draw()
		p.console.WriteRaw("\n")
		return
	}
	p.console.WriteRaw("\r" + clearLine)
}

// draw renders the current frame; callers hold the mutex.
func (p *ProgressBar) draw() {
	if !p.console.IsTerminal() {
		return
	}
	p.console.WriteRaw("\r" + clearLine + p.frameLine())
}

func (p *ProgressBar) frameLine() string {
	prefix := ""
	if p.desc != "" {
		prefix = p.desc + ": "
	}

	if p.total <= 0 {
		frames := spinners["dots"].Frames
		glyph := p.stylize(frames[p.current%len(frames)])
		return fmt.Sprintf("%s%s %d %s", prefix, glyph, p.current, p.unit)
	}

	barWidth := p.console.Width() - len(prefix) - progressReserve
	if barWidth < 1 {
		barWidth = 1
	}
	ratio := float64(p.current) / float64(p.total)
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(barWidth))
	bar := strings.Repeat(p.fillChar, filled) + strings.Repeat(p.emptyChar, barWidth-filled)
	return fmt.Sprintf("%s%s %3.0f%% | %d/%d", prefix, p.stylize(bar), ratio*100, p.current, p.total)
}

func (p *ProgressBar) stylize(s string) string {
	if !p.console.ColorEnabled() || p.barStyle == nil || p.barStyle.IsZero() {
		return s
	}
	return p.barStyle.SGR() + s + style.Reset
}
