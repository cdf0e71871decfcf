package style

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Color is an immutable terminal color. At least one of Name or RGB is set
// after a successful parse: hex inputs populate RGB only, named inputs
// populate both the name and its resolved RGB value.
type Color struct {
	Name string
	RGB  *RGB
}

// namedRGB resolves the canonical RGB value for each named color.
var namedRGB = map[string]RGB{
	"black":          {0, 0, 0},
	"red":            {255, 0, 0},
	"green":          {0, 255, 0},
	"yellow":         {255, 255, 0},
	"blue":           {0, 0, 255},
	"magenta":        {255, 0, 255},
	"cyan":           {0, 255, 255},
	"white":          {255, 255, 255},
	"orange":         {255, 135, 0},
	"bright_black":   {85, 85, 85},
	"bright_red":     {255, 85, 85},
	"bright_green":   {85, 255, 85},
	"bright_yellow":  {255, 255, 85},
	"bright_blue":    {85, 85, 255},
	"bright_magenta": {255, 85, 255},
	"bright_cyan":    {85, 255, 255},
	"bright_white":   {255, 255, 255},
}

// ParseColor resolves a color token. Hex literals (#rgb, #rrggbb) produce
// an RGB-only color; anything else is treated as a named color. Unknown
// names fall back to white rather than failing, matching markup's
// forgiving token handling.
func ParseColor(token string) (Color, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return Color{}, fmt.Errorf("empty color token")
	}

	if strings.HasPrefix(token, "#") {
		rgb, err := parseHex(token)
		if err != nil {
			return Color{}, err
		}
		return Color{RGB: &rgb}, nil
	}

	rgb, ok := namedRGB[token]
	if !ok {
		rgb = RGB{255, 255, 255}
	}
	return Color{Name: token, RGB: &rgb}, nil
}

func parseHex(token string) (RGB, error) {
	hex := token[1:]
	if len(hex) == 3 {
		// Expand #rgb to #rrggbb before handing it to colorful.
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q", token)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", token, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Foreground returns the SGR sequence selecting this color as foreground.
// Named colors use the classic 16-color codes; RGB-only colors use a
// truecolor sequence.
func (c Color) Foreground() string {
	if c.Name != "" {
		if code, ok := colorCodes[c.Name]; ok {
			return code
		}
	}
	if c.RGB != nil {
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.RGB.R, c.RGB.G, c.RGB.B)
	}
	return ""
}

// Background returns the SGR sequence selecting this color as background.
func (c Color) Background() string {
	if c.Name != "" {
		if code, ok := backgroundCodes[c.Name]; ok {
			return code
		}
	}
	if c.RGB != nil {
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.RGB.R, c.RGB.G, c.RGB.B)
	}
	return ""
}

// IsZero reports whether the color carries neither a name nor an RGB value.
func (c Color) IsZero() bool {
	return c.Name == "" && c.RGB == nil
}

func (c Color) String() string {
	if c.Name != "" {
		return c.Name
	}
	if c.RGB != nil {
		return fmt.Sprintf("#%02x%02x%02x", c.RGB.R, c.RGB.G, c.RGB.B)
	}
	return "default"
}
