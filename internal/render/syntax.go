package render

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/richterm/internal/style"
	"github.com/alexisbeaulieu97/richterm/internal/ui"
)

// TokenKind classifies a lexed code fragment for highlighting.
type TokenKind int

const (
	TokenDefault TokenKind = iota
	TokenKeyword
	TokenString
	TokenNumber
	TokenComment
	TokenFunction
	TokenClass
	TokenOperator
	tokenWhitespace
)

type token struct {
	kind TokenKind
	text string
}

var syntaxKeywords = map[string]struct{}{
	"def": {}, "class": {}, "if": {}, "elif": {}, "else": {}, "for": {},
	"while": {}, "try": {}, "except": {}, "finally": {}, "with": {},
	"import": {}, "from": {}, "return": {}, "yield": {}, "async": {},
	"await": {}, "lambda": {}, "pass": {}, "break": {}, "continue": {},
	"raise": {}, "assert": {}, "del": {}, "global": {}, "nonlocal": {},
	"in": {}, "is": {}, "not": {}, "and": {}, "or": {}, "True": {},
	"False": {}, "None": {},
}

const operatorChars = "+-*/=<>!&|^%~:"

func defaultSyntaxTheme() map[TokenKind]style.Style {
	return map[TokenKind]style.Style{
		TokenKeyword:  style.ParseStyle("magenta"),
		TokenString:   style.ParseStyle("green"),
		TokenNumber:   style.ParseStyle("cyan"),
		TokenComment:  style.ParseStyle("bright_black"),
		TokenFunction: style.ParseStyle("blue"),
		TokenClass:    style.ParseStyle("yellow"),
		TokenOperator: style.ParseStyle("red"),
		TokenDefault:  style.ParseStyle("white"),
	}
}

// Syntax highlights source code with a small keyword lexer and renders
// it line by line, optionally with a numbered gutter.
type Syntax struct {
	code            string
	lineNumbers     bool
	lineNumberStart int
	highlight       map[int]struct{}
	theme           map[TokenKind]style.Style
}

// NewSyntax creates a highlighter for code.
func NewSyntax(code string) *Syntax {
	return &Syntax{
		code:            code,
		lineNumberStart: 1,
		theme:           defaultSyntaxTheme(),
	}
}

// WithLineNumbers toggles the numbered gutter.
func (s *Syntax) WithLineNumbers(on bool) *Syntax {
	s.lineNumbers = on
	return s
}

// WithLineNumberStart sets the number shown on the first line.
func (s *Syntax) WithLineNumberStart(n int) *Syntax {
	if n > 0 {
		s.lineNumberStart = n
	}
	return s
}

// WithHighlightLines marks line numbers that render with a bold gutter
// instead of a dim one.
func (s *Syntax) WithHighlightLines(nums ...int) *Syntax {
	if s.highlight == nil {
		s.highlight = make(map[int]struct{}, len(nums))
	}
	for _, n := range nums {
		s.highlight[n] = struct{}{}
	}
	return s
}

// WithTheme overrides token colors; kinds absent from the map fall back
// to the default color.
func (s *Syntax) WithTheme(theme map[TokenKind]style.Style) *Syntax {
	merged := defaultSyntaxTheme()
	for kind, st := range theme {
		merged[kind] = st
	}
	s.theme = merged
	return s
}

// RenderLines implements ui.Renderable.
func (s *Syntax) RenderLines(opts ui.Options) []string {
	rawLines := strings.Split(s.code, "\n")
	lines := make([]string, 0, len(rawLines))

	gutterWidth := len(strconv.Itoa(s.lineNumberStart + len(rawLines) - 1))
	separator := "│"
	if opts.ASCIIOnly {
		separator = "|"
	}

	lineNum := s.lineNumberStart
	for _, raw := range rawLines {
		var b strings.Builder
		for _, tok := range tokenizeLine(raw) {
			b.WriteString(s.renderToken(tok, opts))
		}
		line := b.String()

		if s.lineNumbers {
			number := padNumber(lineNum, gutterWidth)
			prefix := number + " " + separator + " "
			if opts.ColorEnabled {
				code := style.CodeDim
				if _, ok := s.highlight[lineNum]; ok {
					code = style.CodeBold
				}
				prefix = code + prefix + style.Reset
			}
			line = prefix + line
		}
		lines = append(lines, line)
		lineNum++
	}
	return lines
}

func (s *Syntax) renderToken(tok token, opts ui.Options) string {
	if !opts.ColorEnabled || tok.kind == tokenWhitespace {
		return tok.text
	}
	st, ok := s.theme[tok.kind]
	if !ok {
		st = s.theme[TokenDefault]
	}
	if st.IsZero() {
		return tok.text
	}
	return st.SGR() + tok.text + style.Reset
}

// tokenizeLine scans one line of code into colored fragments. The lexer
// recognizes comments to end of line, quoted strings with backslash
// escapes, numbers, keywords, Capitalized type names, calls, and runs
// of operator characters; everything else is a default fragment.
func tokenizeLine(line string) []token {
	runes := []rune(line)
	var tokens []token
	i := 0
	for i < len(runes) {
		ch := runes[i]

		if ch == ' ' || ch == '\t' {
			j := i
			for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t') {
				j++
			}
			tokens = append(tokens, token{tokenWhitespace, string(runes[i:j])})
			i = j
			continue
		}

		if ch == '#' {
			tokens = append(tokens, token{TokenComment, string(runes[i:])})
			break
		}

		if ch == '"' || ch == '\'' {
			quote := ch
			j := i + 1
			for j < len(runes) {
				if runes[j] == quote && runes[j-1] != '\\' {
					j++
					break
				}
				j++
			}
			tokens = append(tokens, token{TokenString, string(runes[i:j])})
			i = j
			continue
		}

		if ch >= '0' && ch <= '9' {
			j := i
			for j < len(runes) && (runes[j] >= '0' && runes[j] <= '9' || runes[j] == '.') {
				j++
			}
			tokens = append(tokens, token{TokenNumber, string(runes[i:j])})
			i = j
			continue
		}

		if isWordRune(ch) {
			j := i
			for j < len(runes) && isWordRune(runes[j]) {
				j++
			}
			word := string(runes[i:j])
			kind := TokenDefault
			switch {
			case keywordToken(word):
				kind = TokenKeyword
			case word[0] >= 'A' && word[0] <= 'Z':
				kind = TokenClass
			case j < len(runes) && runes[j] == '(':
				kind = TokenFunction
			}
			tokens = append(tokens, token{kind, word})
			i = j
			continue
		}

		if strings.ContainsRune(operatorChars, ch) {
			j := i
			for j < len(runes) && strings.ContainsRune(operatorChars, runes[j]) {
				j++
			}
			tokens = append(tokens, token{TokenOperator, string(runes[i:j])})
			i = j
			continue
		}

		tokens = append(tokens, token{TokenDefault, string(ch)})
		i++
	}
	return tokens
}

func keywordToken(word string) bool {
	_, ok := syntaxKeywords[word]
	return ok
}

func isWordRune(ch rune) bool {
	return ch == '_' ||
		ch >= 'a' && ch <= 'z' ||
		ch >= 'A' && ch <= 'Z' ||
		ch >= '0' && ch <= '9'
}

func padNumber(n, width int) string {
	num := strconv.Itoa(n)
	if len(num) >= width {
		return num
	}
	return strings.Repeat(" ", width-len(num)) + num
}
