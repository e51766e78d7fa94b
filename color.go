package promptline

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Color is a terminal color usable as a foreground or background.
// The set is closed: ANSIColor, Fixed and RGB are the only implementations.
type Color interface {
	// ForegroundCode returns the SGR parameter selecting this color as foreground.
	ForegroundCode() string
	// BackgroundCode returns the SGR parameter selecting this color as background.
	BackgroundCode() string

	isColor()
}

// ANSIColor is one of the eight standard or eight bright terminal colors.
// Values above 15 wrap around.
type ANSIColor uint8

// Standard and bright colors.
const (
	Black ANSIColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// ForegroundCode returns 30-37 for standard colors and 90-97 for bright ones.
func (c ANSIColor) ForegroundCode() string {
	return termenv.ANSIColor(c % 16).Sequence(false)
}

// BackgroundCode returns 40-47 for standard colors and 100-107 for bright ones.
func (c ANSIColor) BackgroundCode() string {
	return termenv.ANSIColor(c % 16).Sequence(true)
}

func (ANSIColor) isColor() {}

// Fixed is an entry of the 256-color palette.
type Fixed uint8

// ForegroundCode returns "38;5;N".
func (c Fixed) ForegroundCode() string {
	return termenv.ANSI256Color(c).Sequence(false)
}

// BackgroundCode returns "48;5;N".
func (c Fixed) BackgroundCode() string {
	return termenv.ANSI256Color(c).Sequence(true)
}

func (Fixed) isColor() {}

// RGB is a 24-bit true color.
type RGB struct {
	R, G, B uint8
}

// white is substituted for malformed hex input.
var white = RGB{R: 255, G: 255, B: 255}

// Hex parses a "#rrggbb" or "rrggbb" string. Malformed input (wrong length or
// non-hex digits) yields opaque white instead of an error.
func Hex(s string) RGB {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return white
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return white
	}
	// Sscanf skips leading spaces inside the digits; a canonical round trip
	// rejects anything that is not exactly six hex digits.
	if c.Hex() != "#"+strings.ToLower(s) {
		return white
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ForegroundCode returns "38;2;R;G;B".
func (c RGB) ForegroundCode() string {
	return fmt.Sprintf("%s;2;%d;%d;%d", termenv.Foreground, c.R, c.G, c.B)
}

// BackgroundCode returns "48;2;R;G;B".
func (c RGB) BackgroundCode() string {
	return fmt.Sprintf("%s;2;%d;%d;%d", termenv.Background, c.R, c.G, c.B)
}

func (RGB) isColor() {}
