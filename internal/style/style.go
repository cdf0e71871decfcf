package style

import (
	"strings"
)

// Style is an immutable set of optional text attributes. Boolean attributes
// are tri-state: nil means "not specified" so Combine can distinguish an
// explicit false from an absent value. Styles are value objects, compared
// and combined structurally.
type Style struct {
	Color      *Color
	Background *Color
	Bold       *bool
	Dim        *bool
	Italic     *bool
	Underline  *bool
	Blink      *bool
	Reverse    *bool
	Strike     *bool
}

// ParseStyle parses a style string such as "bold red on blue". Tokens are
// case-insensitive and resolved in order: attribute keywords, "on <color>"
// for background, and anything else as a color. Unrecognized color names
// fall back per ParseColor; genuinely invalid hex tokens are skipped.
func ParseStyle(s string) Style {
	var st Style
	parts := strings.Fields(strings.ToLower(s))
	on := func(b bool) *bool { return &b }

	for i := 0; i < len(parts); i++ {
		part := parts[i]
		switch part {
		case "bold":
			st.Bold = on(true)
		case "dim":
			st.Dim = on(true)
		case "italic":
			st.Italic = on(true)
		case "underline":
			st.Underline = on(true)
		case "blink":
			st.Blink = on(true)
		case "reverse":
			st.Reverse = on(true)
		case "strike", "strikethrough":
			st.Strike = on(true)
		case "on":
			if i+1 < len(parts) {
				i++
				if c, err := ParseColor(parts[i]); err == nil {
					st.Background = &c
				}
			}
		default:
			if c, err := ParseColor(part); err == nil {
				st.Color = &c
			}
		}
	}
	return st
}

// Combine merges override onto base: for every field, override wins when
// present, otherwise base's value is kept. This is how nested markup tags
// accumulate.
func Combine(base, override Style) Style {
	pick := func(a, b *bool) *bool {
		if b != nil {
			return b
		}
		return a
	}
	out := Style{
		Color:      base.Color,
		Background: base.Background,
		Bold:       pick(base.Bold, override.Bold),
		Dim:        pick(base.Dim, override.Dim),
		Italic:     pick(base.Italic, override.Italic),
		Underline:  pick(base.Underline, override.Underline),
		Blink:      pick(base.Blink, override.Blink),
		Reverse:    pick(base.Reverse, override.Reverse),
		Strike:     pick(base.Strike, override.Strike),
	}
	if override.Color != nil {
		out.Color = override.Color
	}
	if override.Background != nil {
		out.Background = override.Background
	}
	return out
}

// SGR serializes the style to a single run of ANSI escape codes. An empty
// style serializes to the empty string.
func (s Style) SGR() string {
	var b strings.Builder
	set := func(flag *bool, code string) {
		if flag != nil && *flag {
			b.WriteString(code)
		}
	}
	set(s.Bold, CodeBold)
	set(s.Dim, CodeDim)
	set(s.Italic, CodeItalic)
	set(s.Underline, CodeUnderline)
	set(s.Blink, CodeBlink)
	set(s.Reverse, CodeReverse)
	set(s.Strike, CodeStrikethrough)

	if s.Color != nil {
		b.WriteString(s.Color.Foreground())
	}
	if s.Background != nil {
		b.WriteString(s.Background.Background())
	}
	return b.String()
}

// IsZero reports whether no attribute is specified.
func (s Style) IsZero() bool {
	return s.Color == nil && s.Background == nil &&
		s.Bold == nil && s.Dim == nil && s.Italic == nil &&
		s.Underline == nil && s.Blink == nil && s.Reverse == nil &&
		s.Strike == nil
}

func (s Style) String() string {
	return s.SGR()
}

// IsValidSpec reports whether every token of a style string is a
// recognized attribute keyword, "on", a named color, or a hex color.
// Theme files use it to reject typos before aliases are installed;
// ParseStyle itself is lenient.
func IsValidSpec(s string) bool {
	parts := strings.Fields(strings.ToLower(s))
	if len(parts) == 0 {
		return false
	}
	for i := 0; i < len(parts); i++ {
		part := parts[i]
		if _, ok := styleCodes[part]; ok {
			continue
		}
		if part == "on" {
			if i+1 >= len(parts) {
				return false
			}
			i++
			part = parts[i]
		}
		if _, ok := colorCodes[part]; ok {
			continue
		}
		if _, ok := namedRGB[part]; ok {
			continue
		}
		if strings.HasPrefix(part, "#") {
			if _, err := parseHex(part); err != nil {
				return false
			}
			continue
		}
		return false
	}
	return true
}
