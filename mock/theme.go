package mock

import "github.com/fwojciec/promptline"

// Compile-time interface verification.
var _ promptline.Theme = (*Theme)(nil)

// Theme is a mock implementation of promptline.Theme.
type Theme struct {
	PaletteFn func() promptline.Palette
}

func (t *Theme) Palette() promptline.Palette {
	return t.PaletteFn()
}
