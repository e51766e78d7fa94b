// Package lipgloss provides prompt themes declared with Lipgloss color values.
package lipgloss

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	lipglosslib "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/promptline"
)

// Compile-time interface verification.
var _ promptline.Theme = (*Theme)(nil)

// ErrUnknownTheme is returned by ThemeByName for an unrecognized name.
var ErrUnknownTheme = errors.New("unknown theme")

// Colors holds one Lipgloss color per prompt segment.
type Colors struct {
	User    lipglosslib.TerminalColor
	Host    lipglosslib.TerminalColor
	Shell   lipglosslib.TerminalColor
	Dir     lipglosslib.TerminalColor
	Repo    lipglosslib.TerminalColor
	Sandbox lipglosslib.TerminalColor
	Status  lipglosslib.TerminalColor
}

// Theme implements promptline.Theme with Lipgloss colors.
type Theme struct {
	colors Colors
}

// NewTheme creates a theme from segment colors.
func NewTheme(colors Colors) *Theme {
	return &Theme{colors: colors}
}

// Palette converts the theme colors to prompt colors.
func (t *Theme) Palette() promptline.Palette {
	return promptline.Palette{
		User:    Color(t.colors.User),
		Host:    Color(t.colors.Host),
		Shell:   Color(t.colors.Shell),
		Dir:     Color(t.colors.Dir),
		Repo:    Color(t.colors.Repo),
		Sandbox: Color(t.colors.Sandbox),
		Status:  Color(t.colors.Status),
	}
}

// DefaultTheme returns a theme of the 16 terminal colors, so it follows the
// terminal's own color scheme.
func DefaultTheme() *Theme {
	return NewTheme(Colors{
		User:    lipglosslib.ANSIColor(5), // Magenta
		Host:    lipglosslib.ANSIColor(2), // Green
		Shell:   lipglosslib.ANSIColor(6), // Cyan
		Dir:     lipglosslib.ANSIColor(4), // Blue
		Repo:    lipglosslib.ANSIColor(3), // Yellow
		Sandbox: lipglosslib.ANSIColor(7), // White
		Status:  lipglosslib.ANSIColor(1), // Red
	})
}

// MochaTheme returns a true-color theme for dark backgrounds (Catppuccin Mocha).
func MochaTheme() *Theme {
	return NewTheme(Colors{
		User:    lipglosslib.Color("#cba6f7"), // Mauve
		Host:    lipglosslib.Color("#a6e3a1"), // Green
		Shell:   lipglosslib.Color("#89dceb"), // Sky
		Dir:     lipglosslib.Color("#89b4fa"), // Blue
		Repo:    lipglosslib.Color("#f9e2af"), // Yellow
		Sandbox: lipglosslib.Color("#cdd6f4"), // Text
		Status:  lipglosslib.Color("#f38ba8"), // Red
	})
}

// LatteTheme returns a true-color theme for light backgrounds (Catppuccin Latte).
func LatteTheme() *Theme {
	return NewTheme(Colors{
		User:    lipglosslib.Color("#8839ef"),
		Host:    lipglosslib.Color("#40a02b"),
		Shell:   lipglosslib.Color("#04a5e5"),
		Dir:     lipglosslib.Color("#1e66f5"),
		Repo:    lipglosslib.Color("#df8e1d"),
		Sandbox: lipglosslib.Color("#4c4f69"),
		Status:  lipglosslib.Color("#d20f39"),
	})
}

// ThemeByName returns "default", "mocha" or "latte". The empty name is
// "default".
func ThemeByName(name string) (*Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultTheme(), nil
	case "mocha":
		return MochaTheme(), nil
	case "latte":
		return LatteTheme(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
}

// Color converts a Lipgloss color to a prompt color. ANSI numbers below 16
// become named colors and the rest of the 256-color range becomes Fixed.
// Hex strings become RGB. Adaptive colors use their dark variant.
// Anything else, including lipgloss.NoColor, yields nil.
func Color(c lipglosslib.TerminalColor) promptline.Color {
	switch v := c.(type) {
	case lipglosslib.ANSIColor:
		return indexed(uint64(v))
	case lipglosslib.Color:
		return parse(string(v))
	case lipglosslib.AdaptiveColor:
		return parse(v.Dark)
	default:
		return nil
	}
}

func parse(s string) promptline.Color {
	if strings.HasPrefix(s, "#") {
		return promptline.Hex(s)
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil
	}
	return indexed(n)
}

func indexed(n uint64) promptline.Color {
	switch {
	case n < 16:
		return promptline.ANSIColor(n)
	case n < 256:
		return promptline.Fixed(n)
	default:
		return nil
	}
}
