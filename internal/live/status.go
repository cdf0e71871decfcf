package live

import (
	"sync"
	"time"

	"github.com/alexisbeaulieu97/richterm/internal/console"
	"github.com/alexisbeaulieu97/richterm/internal/style"
)

// Spinner describes an animation: the frames cycled through and the
// base interval between them.
type Spinner struct {
	Frames   []string
	Interval time.Duration
}

// spinners holds the built-in animation sets; dots is the default.
var spinners = map[string]Spinner{
	"dots": {
		Frames:   []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		Interval: 80 * time.Millisecond,
	},
	"line": {
		Frames:   []string{"-", "\\", "|", "/"},
		Interval: 130 * time.Millisecond,
	},
	"arrow": {
		Frames:   []string{"←", "↖", "↑", "↗", "→", "↘", "↓", "↙"},
		Interval: 100 * time.Millisecond,
	},
	"pulse": {
		Frames:   []string{"█", "▓", "▒", "░", "▒", "▓"},
		Interval: 120 * time.Millisecond,
	},
	"star": {
		Frames:   []string{"✶", "✸", "✹", "✺", "✹", "✸"},
		Interval: 120 * time.Millisecond,
	},
	"moon": {
		Frames:   []string{"🌑", "🌒", "🌓", "🌔", "🌕", "🌖", "🌗", "🌘"},
		Interval: 130 * time.Millisecond,
	},
}

// LookupSpinner returns the named animation set, falling back to dots
// for unknown names.
func LookupSpinner(name string) Spinner {
	if sp, ok := spinners[name]; ok {
		return sp
	}
	return spinners["dots"]
}

// Status animates a single-line spinner next to a message. Each tick
// rewrites the line in place; the message can change while running.
type Status struct {
	console *console.Console
	spinner Spinner
	style   *style.Style
	speed   float64

	mu      sync.Mutex
	message string
	frame   int
	started bool

	done     chan struct{}
	finished chan struct{}
}

// StatusOption configures a Status.
type StatusOption func(*Status)

// WithSpinner selects a named animation set.
func WithSpinner(name string) StatusOption {
	return func(s *Status) { s.spinner = LookupSpinner(name) }
}

// WithSpinnerStyle styles the spinner glyph.
func WithSpinnerStyle(st style.Style) StatusOption {
	return func(s *Status) { s.style = &st }
}

// WithSpeed scales the animation rate; 2.0 ticks twice as fast.
func WithSpeed(speed float64) StatusOption {
	return func(s *Status) {
		if speed > 0 {
			s.speed = speed
		}
	}
}

// NewStatus creates a status line bound to c showing message.
func NewStatus(c *console.Console, message string, opts ...StatusOption) *Status {
	s := &Status{
		console: c,
		spinner: spinners["dots"],
		message: message,
		speed:   1.0,
	}
	defaultStyle := style.ParseStyle("cyan")
	s.style = &defaultStyle
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start hides the cursor and begins animating. Starting twice is a
// no-op.
func (s *Status) Start() {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.frame = 0
	s.done = make(chan struct{})
	s.finished = make(chan struct{})
	s.mu.Unlock()

	if !s.console.IsTerminal() {
		close(s.finished)
		return
	}
	s.console.WriteRaw(hideCursor)
	s.tick()
	go s.loop()
}

func (s *Status) loop() {
	defer close(s.finished)

	interval := time.Duration(float64(s.spinner.Interval) / s.speed)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame++
			s.mu.Unlock()
			s.tick()
		}
	}
}

// tick rewrites the status line with the current frame and message.
func (s *Status) tick() {
	s.mu.Lock()
	glyph := s.spinner.Frames[s.frame%len(s.spinner.Frames)]
	message := s.message
	s.mu.Unlock()

	if s.console.ColorEnabled() && s.style != nil && !s.style.IsZero() {
		glyph = s.style.SGR() + glyph + style.Reset
	}
	s.console.WriteRaw("\r" + clearLine + glyph + " " + message)
}

// Update replaces the message; the next write shows it.
func (s *Status) Update(message string) {
	s.mu.Lock()
	s.message = message
	running := s.started
	s.mu.Unlock()
	if running && s.console.IsTerminal() {
		s.tick()
	}
}

// Stop ends the animation and restores the cursor. The final message
// stays visible and the cursor moves to a fresh cleared line.
func (s *Status) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	close(s.done)
	s.mu.Unlock()

	select {
	case <-s.finished:
	case <-time.After(stopTimeout):
	}

	if s.console.IsTerminal() {
		s.console.WriteRaw(showCursor + "\n\r" + clearLine)
	}
}

// SpinnerNames lists the built-in animation sets.
func SpinnerNames() []string {
	names := make([]string, 0, len(spinners))
	for name := range spinners {
		names = append(names, name)
	}
	return names
}
