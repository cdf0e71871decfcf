// Package console provides the rendering context: it resolves terminal
// size and color capability, applies markup, dispatches renderables to
// display lines, and owns the output stream. It is the entry point the
// rest of an application depends on.
package console

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/richterm/internal/logger"
	"github.com/alexisbeaulieu97/richterm/internal/render"
	"github.com/alexisbeaulieu97/richterm/internal/style"
	"github.com/alexisbeaulieu97/richterm/internal/text"
	"github.com/alexisbeaulieu97/richterm/internal/textwidth"
	"github.com/alexisbeaulieu97/richterm/internal/ui"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 25
)

var emojiShortcode = regexp.MustCompile(`:[\w_]+:`)

// Console is a rendering context bound to one output stream. All
// configuration is per-instance; there is no process-wide state.
type Console struct {
	out           io.Writer
	log           *logger.Logger
	markup        *style.Markup
	forceWidth    int
	forceHeight   int
	forceTerminal *bool
	noColor       bool
	tabSize       int
	markupOn      bool
	emojiOn       bool

	isTerminal   bool
	colorEnabled bool

	mu     sync.Mutex
	record bool
	buffer []string
}

// Option configures a Console at construction time.
type Option func(*Console)

// WithWriter directs output to w instead of stdout.
func WithWriter(w io.Writer) Option {
	return func(c *Console) { c.out = w }
}

// WithLogger attaches a diagnostics logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *Console) { c.log = log }
}

// WithWidth forces the console width instead of querying the terminal.
func WithWidth(width int) Option {
	return func(c *Console) { c.forceWidth = width }
}

// WithHeight forces the console height.
func WithHeight(height int) Option {
	return func(c *Console) { c.forceHeight = height }
}

// WithForceTerminal overrides terminal detection.
func WithForceTerminal(isTerminal bool) Option {
	return func(c *Console) { c.forceTerminal = &isTerminal }
}

// WithNoColor disables all ANSI color output.
func WithNoColor(noColor bool) Option {
	return func(c *Console) { c.noColor = noColor }
}

// WithTabSize sets the tab expansion width.
func WithTabSize(size int) Option {
	return func(c *Console) {
		if size > 0 {
			c.tabSize = size
		}
	}
}

// WithMarkupEnabled toggles [tag] markup processing in Print.
func WithMarkupEnabled(enabled bool) Option {
	return func(c *Console) { c.markupOn = enabled }
}

// WithEmoji toggles emoji shortcode handling; when disabled, :name:
// shortcodes are stripped from printed strings.
func WithEmoji(enabled bool) Option {
	return func(c *Console) { c.emojiOn = enabled }
}

// WithAliases installs a semantic tag table for markup, replacing the
// built-in one.
func WithAliases(aliases map[string]string) Option {
	return func(c *Console) { c.markup = style.NewMarkup(aliases) }
}

// WithRecord starts the console with output recording enabled.
func WithRecord(record bool) Option {
	return func(c *Console) { c.record = record }
}

// New creates a Console. Without options it writes to stdout, detects
// terminal capabilities from the stream and environment, and falls back
// to 80x25 with color disabled when detection fails.
func New(opts ...Option) *Console {
	c := &Console{
		out:      os.Stdout,
		tabSize:  4,
		markupOn: true,
		emojiOn:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.markup == nil {
		c.markup = style.NewMarkup(nil)
	}

	c.isTerminal = c.detectTerminal()
	c.colorEnabled = c.detectColor()
	return c
}

func (c *Console) detectTerminal() bool {
	if c.forceTerminal != nil {
		return *c.forceTerminal
	}
	if f, ok := c.out.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

func (c *Console) detectColor() bool {
	if c.noColor || termenv.EnvNoColor() {
		return false
	}
	if !c.isTerminal {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

// IsTerminal reports whether the output stream is a terminal.
func (c *Console) IsTerminal() bool {
	return c.isTerminal
}

// ColorEnabled reports whether ANSI color output is active.
func (c *Console) ColorEnabled() bool {
	return c.colorEnabled
}

// Width returns the forced or detected terminal width.
func (c *Console) Width() int {
	if c.forceWidth > 0 {
		return c.forceWidth
	}
	if f, ok := c.out.(*os.File); ok && c.isTerminal {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return fallbackWidth
}

// Height returns the forced or detected terminal height.
func (c *Console) Height() int {
	if c.forceHeight > 0 {
		return c.forceHeight
	}
	if f, ok := c.out.(*os.File); ok && c.isTerminal {
		if _, h, err := term.GetSize(int(f.Fd())); err == nil && h > 0 {
			return h
		}
	}
	return fallbackHeight
}

// Options returns a render budget for this console's full width.
func (c *Console) Options() ui.Options {
	opts := ui.DefaultOptions(c.Width())
	opts.ColorEnabled = c.colorEnabled
	opts.Markup = c.markup
	return opts
}

// ApplyMarkup processes [tag] markup against this console's alias table
// and color state.
func (c *Console) ApplyMarkup(s string) string {
	return c.markup.Apply(s, c.colorEnabled)
}

// Render converts any supported value to display lines. Strings are
// markup-applied and newline-split; styled text is wrapped at the width
// budget; renderables produce their own lines. A panic inside a renderer
// is recovered here and replaced by a single visible error line so one
// broken element cannot abort the whole output.
func (c *Console) Render(v any, opts *ui.Options) (lines []string) {
	budget := c.Options()
	if opts != nil {
		budget = *opts
		if budget.Markup == nil {
			budget.Markup = c.markup
		}
	}

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%v", r)
			c.log.Error(err, "renderer panic recovered")
			lines = []string{"[render error]"}
		}
	}()

	return render.NormalizeContent(v).Lines(budget)
}

// PrintOptions adjust a single PrintWith call.
type PrintOptions struct {
	Sep     string
	End     string
	Style   *style.Style
	Justify text.Justify
	Width   int
	NoWrap  bool
}

// Print writes the objects separated by spaces and terminated with a
// newline.
func (c *Console) Print(objects ...any) {
	c.PrintWith(PrintOptions{}, objects...)
}

// Println is an alias for Print matching the familiar io idiom.
func (c *Console) Println(objects ...any) {
	c.PrintWith(PrintOptions{}, objects...)
}

// PrintWith writes the objects under the given options. Strings get
// emoji handling, markup, tab expansion, wrapping, justification, and
// optional style wrapping; renderables are dispatched through Render.
// The entire result is concatenated in memory and written with exactly
// one Write so concurrent callers never interleave partial output.
func (c *Console) PrintWith(popts PrintOptions, objects ...any) {
	sep := popts.Sep
	if sep == "" {
		sep = " "
	}
	end := popts.End
	if end == "" {
		end = "\n"
	}
	width := popts.Width
	if width <= 0 {
		width = c.Width()
	}

	var b strings.Builder
	for i, obj := range objects {
		if i > 0 {
			b.WriteString(sep)
		}

		content := render.NormalizeContent(obj)
		if content.IsRenderable() {
			opts := c.Options().WithMaxWidth(width)
			for j, line := range c.Render(content.Renderable(), &opts) {
				if j > 0 {
					b.WriteByte('\n')
				}
				b.WriteString(line)
			}
			continue
		}

		var out string
		switch v := obj.(type) {
		case string:
			out = c.formatString(v, width, popts)
		case *text.Text:
			// Already-rendered ANSI must not pass through markup again.
			opts := c.Options().WithMaxWidth(width)
			out = strings.Join(v.RenderLines(opts), "\n")
			if popts.Justify != text.JustifyNone {
				out = justifyLines(out, width, popts.Justify)
			}
			if popts.Style != nil {
				out = popts.Style.SGR() + out + style.Reset
			}
		default:
			out = fmt.Sprint(obj)
		}
		b.WriteString(out)
	}
	b.WriteString(end)

	c.write(b.String())
}

func (c *Console) formatString(s string, width int, popts PrintOptions) string {
	if !c.emojiOn {
		s = emojiShortcode.ReplaceAllString(s, "")
	}
	if c.markupOn {
		s = c.ApplyMarkup(s)
	}
	s = strings.ReplaceAll(s, "\t", strings.Repeat(" ", c.tabSize))

	if !popts.NoWrap && width > 0 {
		s = strings.Join(wrapPlainLines(s, width), "\n")
	}
	if popts.Justify != text.JustifyNone && width > 0 {
		s = justifyLines(s, width, popts.Justify)
	}
	if popts.Style != nil {
		s = popts.Style.SGR() + s + style.Reset
	}
	return s
}

// wrapPlainLines folds each newline-separated segment at the width
// budget, passing ANSI sequences through at zero width.
func wrapPlainLines(s string, width int) []string {
	var out []string
	for _, segment := range strings.Split(s, "\n") {
		if textwidth.StringWidth(segment) <= width {
			out = append(out, segment)
			continue
		}
		for _, line := range text.New(segment).Wrap(width) {
			out = append(out, line.Plain())
		}
	}
	return out
}

// justifyLines aligns every line within width using visual widths.
func justifyLines(s string, width int, justify text.Justify) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		visual := textwidth.StringWidth(line)
		if visual >= width {
			continue
		}
		pad := width - visual
		switch justify {
		case text.JustifyRight:
			lines[i] = strings.Repeat(" ", pad) + line
		case text.JustifyCenter:
			left := pad / 2
			lines[i] = strings.Repeat(" ", left) + line + strings.Repeat(" ", pad-left)
		case text.JustifyFull:
			lines[i] = fullJustify(line, pad)
		}
	}
	return strings.Join(lines, "\n")
}

// fullJustify distributes pad extra spaces across the gaps between
// words, earlier gaps absorbing the remainder.
func fullJustify(line string, pad int) string {
	words := strings.Fields(line)
	if len(words) <= 1 {
		return line
	}
	gaps := len(words) - 1
	perGap := pad / gaps
	extra := pad % gaps

	var b strings.Builder
	for i, word := range words[:len(words)-1] {
		b.WriteString(word)
		spaces := 1 + perGap
		if i < extra {
			spaces++
		}
		b.WriteString(strings.Repeat(" ", spaces))
	}
	b.WriteString(words[len(words)-1])
	return b.String()
}

// Rule prints a horizontal rule, optionally titled.
func (c *Console) Rule(title string, st *style.Style, align render.TitleAlign) {
	rule := render.NewRule().WithTitle(title).WithAlign(align)
	if st != nil {
		rule = rule.WithStyle(*st)
	}
	opts := c.Options()
	c.write(strings.Join(c.Render(rule, &opts), "\n") + "\n")
}

// WriteRaw writes s through the console's serialized write path. Live
// regions use it to emit control sequences and frames atomically.
func (c *Console) WriteRaw(s string) {
	c.write(s)
}

// write performs the single serialized write for a Print or live-region
// frame, mirroring it into the record buffer when recording.
func (c *Console) write(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, _ = io.WriteString(c.out, s)
	if c.record {
		c.buffer = append(c.buffer, s)
	}
}

// ExportText returns the recorded output, clearing the record buffer
// when clear is set.
func (c *Console) ExportText(clear bool) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := strings.Join(c.buffer, "")
	if clear {
		c.buffer = nil
	}
	return out
}
