package promptline_test

import (
	"testing"

	"github.com/fwojciec/promptline"
	"github.com/stretchr/testify/assert"
)

func TestText_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders plain text verbatim", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello \x1b world", promptline.Plain("hello \x1b world").String())
	})

	t.Run("renders zero value as empty", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", promptline.Text{}.String())
	})

	t.Run("nests outer codes around inner codes", func(t *testing.T) {
		t.Parallel()

		text := promptline.Plain("x").Foreground(promptline.Red).Bold()

		assert.Equal(t, "\x1b[1m\x1b[31mx\x1b[39m\x1b[22m", text.String())
	})

	t.Run("emits start and end codes per attribute", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			text promptline.Text
			want string
		}{
			{"bold", promptline.Plain("x").Bold(), "\x1b[1mx\x1b[22m"},
			{"underline", promptline.Plain("x").Underline(), "\x1b[4mx\x1b[24m"},
			{"italic", promptline.Plain("x").Italic(), "\x1b[3mx\x1b[23m"},
			{"foreground", promptline.Plain("x").Foreground(promptline.BrightCyan), "\x1b[96mx\x1b[39m"},
			{"background", promptline.Plain("x").Background(promptline.Blue), "\x1b[44mx\x1b[49m"},
			{"256 foreground", promptline.Plain("x").Foreground(promptline.Fixed(42)), "\x1b[38;5;42mx\x1b[39m"},
			{"rgb background", promptline.Plain("x").Background(promptline.Hex("#102030")), "\x1b[48;2;16;32;48mx\x1b[49m"},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, tt.text.String(), tt.name)
		}
	})

	t.Run("passes each sequence through the escaper", func(t *testing.T) {
		t.Parallel()

		text := promptline.Plain("x").Underline().Italic()
		escape := func(seq string) string { return "<" + seq + ">" }

		assert.Equal(t, "<\x1b[3m><\x1b[4m>x<\x1b[24m><\x1b[23m>", text.Render(escape))
	})

	t.Run("does not escape the literal text", func(t *testing.T) {
		t.Parallel()

		escape := func(seq string) string { return "!" }

		assert.Equal(t, "!50%!", promptline.Plain("50%").Bold().Render(escape))
	})

	t.Run("is repeatable", func(t *testing.T) {
		t.Parallel()

		text := promptline.Plain("x").Bold().Background(promptline.RGB{R: 1, G: 2, B: 3}).Underline()

		assert.Equal(t, text.String(), text.String())
		assert.Equal(t, text.Render(nil), text.String())
	})
}

func TestText_Immutable(t *testing.T) {
	t.Parallel()

	base := promptline.Plain("x")
	bold := base.Bold()
	red := base.Foreground(promptline.Red)
	boldRed := bold.Foreground(promptline.Red)

	assert.Equal(t, "x", base.String())
	assert.Equal(t, "\x1b[1mx\x1b[22m", bold.String())
	assert.Equal(t, "\x1b[31mx\x1b[39m", red.String())
	assert.Equal(t, "\x1b[31m\x1b[1mx\x1b[22m\x1b[39m", boldRed.String())
}

func TestText_NilColor(t *testing.T) {
	t.Parallel()

	text := promptline.Plain("x").Foreground(nil).Background(nil)

	assert.Equal(t, "x", text.String())
}

func TestText_Content(t *testing.T) {
	t.Parallel()

	text := promptline.Plain("main abcd1..").Bold().Foreground(promptline.Yellow).Underline()

	assert.Equal(t, "main abcd1..", text.Content())
}

func TestText_MapColors(t *testing.T) {
	t.Parallel()

	t.Run("replaces every color", func(t *testing.T) {
		t.Parallel()

		text := promptline.Plain("x").Foreground(promptline.Red).Background(promptline.Red).Bold()
		mapped := text.MapColors(func(c promptline.Color) promptline.Color {
			return promptline.Blue
		})

		assert.Equal(t, "\x1b[1m\x1b[44m\x1b[34mx\x1b[39m\x1b[49m\x1b[22m", mapped.String())
	})

	t.Run("drops wrappers mapped to nil and keeps other attributes", func(t *testing.T) {
		t.Parallel()

		text := promptline.Plain("x").Foreground(promptline.Red).Bold()
		mapped := text.MapColors(func(promptline.Color) promptline.Color { return nil })

		assert.Equal(t, "\x1b[1mx\x1b[22m", mapped.String())
	})

	t.Run("leaves the original untouched", func(t *testing.T) {
		t.Parallel()

		text := promptline.Plain("x").Foreground(promptline.Red)
		_ = text.MapColors(func(promptline.Color) promptline.Color { return nil })

		assert.Equal(t, "\x1b[31mx\x1b[39m", text.String())
	})
}
