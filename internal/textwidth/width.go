// Package textwidth measures terminal display width. All layout math in
// the renderers is defined in display columns, never bytes or codepoints:
// combining marks and control bytes are zero columns, ordinary glyphs one,
// East-Asian wide glyphs and most emoji two. ANSI escape sequences are
// treated as zero-width and skipped without counting their bytes.
package textwidth

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// RuneWidth returns the display width of a single rune.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth sums per-grapheme display widths while passing ANSI escape
// sequences (ESC [ ... final-byte) through as zero-width.
func StringWidth(s string) int {
	width := 0
	for len(s) > 0 {
		if esc := escapeLen(s); esc > 0 {
			s = s[esc:]
			continue
		}
		_, rest, w, _ := uniseg.FirstGraphemeClusterInString(s, -1)
		width += w
		s = rest
	}
	return width
}

// StripANSI removes ANSI escape sequences, leaving the printable text.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		if esc := escapeLen(s); esc > 0 {
			s = s[esc:]
			continue
		}
		b.WriteByte(s[0])
		s = s[1:]
	}
	return b.String()
}

// Truncate cuts s to at most width display columns, appending tail within
// the budget when content is removed. ANSI sequences never count toward
// the width and are preserved in the kept prefix.
func Truncate(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if StringWidth(s) <= width {
		return s
	}

	tailWidth := StringWidth(tail)
	budget := width - tailWidth
	if budget < 0 {
		budget = 0
	}

	var b strings.Builder
	used := 0
	rest := s
	for len(rest) > 0 {
		if esc := escapeLen(rest); esc > 0 {
			b.WriteString(rest[:esc])
			rest = rest[esc:]
			continue
		}
		cluster, next, w, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		if used+w > budget {
			break
		}
		b.WriteString(cluster)
		used += w
		rest = next
	}
	b.WriteString(tail)
	return b.String()
}

// escapeLen returns the byte length of the ANSI escape sequence at the
// start of s, or 0 if s does not start with one. CSI sequences run from
// "ESC [" to a final byte in 0x40..0x7e; a bare ESC followed by one byte
// covers the short two-byte forms.
func escapeLen(s string) int {
	if len(s) == 0 || s[0] != '\x1b' {
		return 0
	}
	if len(s) == 1 {
		return 1
	}
	if s[1] != '[' {
		return 2
	}
	for i := 2; i < len(s); i++ {
		if s[i] >= 0x40 && s[i] <= 0x7e {
			return i + 1
		}
	}
	return len(s)
}
