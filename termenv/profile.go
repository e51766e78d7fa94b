// Package termenv adapts prompt colors to terminal color profiles using
// muesli/termenv.
package termenv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/promptline"
	termenvlib "github.com/muesli/termenv"
)

// ErrUnknownProfile is returned for an unrecognized profile name.
var ErrUnknownProfile = errors.New("unknown color profile")

// ParseProfile maps a profile name to a termenv profile. The empty name
// selects true color.
func ParseProfile(name string) (termenvlib.Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "truecolor", "24bit":
		return termenvlib.TrueColor, nil
	case "256", "ansi256":
		return termenvlib.ANSI256, nil
	case "16", "ansi":
		return termenvlib.ANSI, nil
	case "none", "ascii":
		return termenvlib.Ascii, nil
	default:
		return termenvlib.Ascii, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
}

// Profile is ParseProfile, except that NO_COLOR (or CLICOLOR=0) always
// selects Ascii.
func Profile(name string) (termenvlib.Profile, error) {
	if termenvlib.EnvNoColor() {
		return termenvlib.Ascii, nil
	}
	return ParseProfile(name)
}

// Adapt converts every color in t to the closest color p supports. Ascii
// removes colors while keeping other attributes.
func Adapt(t promptline.Text, p termenvlib.Profile) promptline.Text {
	if p == termenvlib.TrueColor {
		return t
	}
	return t.MapColors(func(c promptline.Color) promptline.Color {
		return Convert(c, p)
	})
}

// Convert returns the closest color to c in profile p, or nil if p has no
// colors.
func Convert(c promptline.Color, p termenvlib.Profile) promptline.Color {
	return fromTermenv(p.Convert(toTermenv(c)))
}

func toTermenv(c promptline.Color) termenvlib.Color {
	switch v := c.(type) {
	case promptline.ANSIColor:
		return termenvlib.ANSIColor(v % 16)
	case promptline.Fixed:
		return termenvlib.ANSI256Color(v)
	case promptline.RGB:
		return termenvlib.RGBColor(v.Hex())
	default:
		return termenvlib.NoColor{}
	}
}

func fromTermenv(c termenvlib.Color) promptline.Color {
	switch v := c.(type) {
	case termenvlib.ANSIColor:
		return promptline.ANSIColor(v)
	case termenvlib.ANSI256Color:
		return promptline.Fixed(v)
	case termenvlib.RGBColor:
		return promptline.Hex(string(v))
	default:
		return nil
	}
}
