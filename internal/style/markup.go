package style

import (
	"strings"
)

// Markup converts [tag]...[/tag] annotated strings into ANSI output. Each
// Markup carries its own semantic alias table so callers can theme tags
// without any process-wide registry.
//
// Closing tags match by normalized text equality, not positional nesting:
// [/bold red] closes a tag opened as [bold red] wherever it sits on the
// stack, and anything opened above it is discarded with it. Partial closes
// ([/bold] against an open [bold red]) are not supported and are silently
// ignored; this is a known limitation inherited from the markup format.
type Markup struct {
	aliases map[string]string
}

// NewMarkup creates a markup processor. A nil alias table gets the
// built-in semantic tags.
func NewMarkup(aliases map[string]string) *Markup {
	if aliases == nil {
		aliases = DefaultAliases()
	}
	return &Markup{aliases: aliases}
}

type openTag struct {
	normalized string
	codes      string
}

// Apply processes markup in text. When colorEnabled is false every
// well-formed tag is stripped and the literal content kept; no ANSI is
// emitted. Malformed markup (unterminated brackets, unmatched closes)
// never fails: the offending text passes through or the tag is ignored.
func (m *Markup) Apply(text string, colorEnabled bool) string {
	if !strings.ContainsRune(text, '[') {
		return text
	}

	var out strings.Builder
	out.Grow(len(text))
	var stack []openTag

	runes := []rune(text)
	for i := 0; i < len(runes); {
		if runes[i] != '[' {
			out.WriteRune(runes[i])
			i++
			continue
		}

		end := i + 1
		for end < len(runes) && runes[end] != ']' {
			end++
		}
		if end >= len(runes) {
			// Unterminated bracket passes through verbatim.
			out.WriteRune(runes[i])
			i++
			continue
		}

		body := string(runes[i+1 : end])
		i = end + 1

		if strings.HasPrefix(body, "/") {
			normalized := normalizeTag(body[1:])
			if !colorEnabled {
				continue
			}
			idx := -1
			for j := len(stack) - 1; j >= 0; j-- {
				if stack[j].normalized == normalized {
					idx = j
					break
				}
			}
			if idx < 0 {
				// No matching open tag; ignore.
				continue
			}
			stack = stack[:idx]
			out.WriteString(Reset)
			for _, tag := range stack {
				out.WriteString(tag.codes)
			}
			continue
		}

		if !colorEnabled {
			continue
		}
		codes := m.resolveTag(body)
		if codes != "" {
			stack = append(stack, openTag{normalized: normalizeTag(body), codes: codes})
			out.WriteString(codes)
		}
	}

	if colorEnabled && len(stack) > 0 {
		out.WriteString(Reset)
	}
	return out.String()
}

// resolveTag turns an opening tag body into concatenated ANSI codes.
// Tokens resolve in order against semantic aliases, "on <color>"
// backgrounds, color names, style keywords, and hex literals;
// unrecognized tokens are ignored.
func (m *Markup) resolveTag(body string) string {
	parts := strings.Fields(strings.ToLower(body))
	var codes strings.Builder

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		if part == "on" && i+1 < len(parts) {
			i++
			codes.WriteString(backgroundCode(parts[i]))
			continue
		}
		if code, ok := m.aliases[part]; ok {
			codes.WriteString(code)
			continue
		}
		if code, ok := colorCodes[part]; ok {
			codes.WriteString(code)
			continue
		}
		if code, ok := styleCodes[part]; ok {
			codes.WriteString(code)
			continue
		}
		if strings.HasPrefix(part, "#") {
			if c, err := ParseColor(part); err == nil {
				codes.WriteString(c.Foreground())
			}
		}
	}
	return codes.String()
}

func backgroundCode(token string) string {
	if code, ok := backgroundCodes[token]; ok {
		return code
	}
	if strings.HasPrefix(token, "#") {
		if c, err := ParseColor(token); err == nil {
			return c.Background()
		}
	}
	return ""
}

// normalizeTag lowercases and collapses internal whitespace so tag
// matching is insensitive to spacing and case.
func normalizeTag(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
