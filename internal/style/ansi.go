package style

// ANSI SGR escape sequences used across the package. The exact byte
// sequences are part of the wire format and must not change.
const (
	Reset = "\x1b[0m"

	CodeBold          = "\x1b[1m"
	CodeDim           = "\x1b[2m"
	CodeItalic        = "\x1b[3m"
	CodeUnderline     = "\x1b[4m"
	CodeBlink         = "\x1b[5m"
	CodeReverse       = "\x1b[7m"
	CodeHidden        = "\x1b[8m"
	CodeStrikethrough = "\x1b[9m"
)

// colorCodes maps color token names to their foreground SGR sequence.
var colorCodes = map[string]string{
	"black":   "\x1b[30m",
	"red":     "\x1b[31m",
	"green":   "\x1b[32m",
	"yellow":  "\x1b[33m",
	"blue":    "\x1b[34m",
	"magenta": "\x1b[35m",
	"cyan":    "\x1b[36m",
	"white":   "\x1b[37m",
	"orange":  "\x1b[38;5;208m",

	"bright_black":   "\x1b[90m",
	"bright_red":     "\x1b[91m",
	"bright_green":   "\x1b[92m",
	"bright_yellow":  "\x1b[93m",
	"bright_blue":    "\x1b[94m",
	"bright_magenta": "\x1b[95m",
	"bright_cyan":    "\x1b[96m",
	"bright_white":   "\x1b[97m",
}

// backgroundCodes maps color token names to their background SGR sequence.
var backgroundCodes = map[string]string{
	"black":   "\x1b[40m",
	"red":     "\x1b[41m",
	"green":   "\x1b[42m",
	"yellow":  "\x1b[43m",
	"blue":    "\x1b[44m",
	"magenta": "\x1b[45m",
	"cyan":    "\x1b[46m",
	"white":   "\x1b[47m",
	"orange":  "\x1b[48;5;208m",

	"bright_black":   "\x1b[100m",
	"bright_red":     "\x1b[101m",
	"bright_green":   "\x1b[102m",
	"bright_yellow":  "\x1b[103m",
	"bright_blue":    "\x1b[104m",
	"bright_magenta": "\x1b[105m",
	"bright_cyan":    "\x1b[106m",
	"bright_white":   "\x1b[107m",
}

// styleCodes maps attribute keywords accepted in markup and style strings.
var styleCodes = map[string]string{
	"bold":          CodeBold,
	"dim":           CodeDim,
	"italic":        CodeItalic,
	"underline":     CodeUnderline,
	"blink":         CodeBlink,
	"reverse":       CodeReverse,
	"hidden":        CodeHidden,
	"strike":        CodeStrikethrough,
	"strikethrough": CodeStrikethrough,
}

// DefaultAliases returns the built-in semantic tag table. Consoles hold
// their own copy so applications can override entries without touching
// process-wide state.
func DefaultAliases() map[string]string {
	return map[string]string{
		"success":   colorCodes["green"],
		"error":     colorCodes["red"],
		"warning":   colorCodes["yellow"],
		"info":      colorCodes["blue"],
		"danger":    colorCodes["bright_red"],
		"highlight": colorCodes["bright_yellow"],
		"muted":     CodeDim + colorCodes["bright_black"],
		"primary":   colorCodes["cyan"],
		"secondary": colorCodes["magenta"],
	}
}
