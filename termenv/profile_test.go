package termenv_test

import (
	"testing"

	"github.com/fwojciec/promptline"
	"github.com/fwojciec/promptline/termenv"
	termenvlib "github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want termenvlib.Profile
	}{
		{"", termenvlib.TrueColor},
		{"truecolor", termenvlib.TrueColor},
		{"24bit", termenvlib.TrueColor},
		{"256", termenvlib.ANSI256},
		{"ANSI256", termenvlib.ANSI256},
		{"16", termenvlib.ANSI},
		{"none", termenvlib.Ascii},
	}

	for _, tt := range tests {
		profile, err := termenv.ParseProfile(tt.name)

		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, profile, tt.name)
	}

	t.Run("rejects unknown names", func(t *testing.T) {
		t.Parallel()

		_, err := termenv.ParseProfile("sepia")

		require.ErrorIs(t, err, termenv.ErrUnknownProfile)
	})
}

func TestProfile_NoColor(t *testing.T) {
	// Can't use t.Parallel with t.Setenv
	t.Setenv("NO_COLOR", "1")

	profile, err := termenv.Profile("truecolor")

	require.NoError(t, err)
	assert.Equal(t, termenvlib.Ascii, profile)
}

func TestProfile_Named(t *testing.T) {
	// Can't use t.Parallel with t.Setenv
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR", "")

	profile, err := termenv.Profile("256")

	require.NoError(t, err)
	assert.Equal(t, termenvlib.ANSI256, profile)
}

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		color   promptline.Color
		profile termenvlib.Profile
		want    promptline.Color
	}{
		{"true color keeps rgb", promptline.RGB{R: 1, G: 2, B: 3}, termenvlib.TrueColor, promptline.RGB{R: 1, G: 2, B: 3}},
		{"rgb to 256", promptline.RGB{R: 255}, termenvlib.ANSI256, promptline.Fixed(196)},
		{"rgb to 16", promptline.RGB{R: 255}, termenvlib.ANSI, promptline.BrightRed},
		{"256 to 16", promptline.Fixed(196), termenvlib.ANSI, promptline.BrightRed},
		{"256 kept at 256", promptline.Fixed(42), termenvlib.ANSI256, promptline.Fixed(42)},
		{"named kept at 16", promptline.Magenta, termenvlib.ANSI, promptline.Magenta},
		{"ascii drops rgb", promptline.RGB{R: 255}, termenvlib.Ascii, nil},
		{"ascii drops named", promptline.Red, termenvlib.Ascii, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, termenv.Convert(tt.color, tt.profile))
		})
	}
}

func TestAdapt(t *testing.T) {
	t.Parallel()

	text := promptline.Plain("x").Foreground(promptline.RGB{R: 255}).Bold()

	t.Run("leaves true color text unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, text.String(), termenv.Adapt(text, termenvlib.TrueColor).String())
	})

	t.Run("downgrades colors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "\x1b[1m\x1b[38;5;196mx\x1b[39m\x1b[22m", termenv.Adapt(text, termenvlib.ANSI256).String())
	})

	t.Run("keeps attributes when colors are removed", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "\x1b[1mx\x1b[22m", termenv.Adapt(text, termenvlib.Ascii).String())
	})
}
