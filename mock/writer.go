package mock

import (
	"context"

	stylesnatcher "github.com/Darkmintis/StyleSnatcher"
)

var _ stylesnatcher.PaletteWriter = (*PaletteWriter)(nil)

// PaletteWriter is a mock implementation of stylesnatcher.PaletteWriter.
type PaletteWriter struct {
	WritePaletteFn func(ctx context.Context, palette *stylesnatcher.Palette) error
}

func (w *PaletteWriter) WritePalette(ctx context.Context, palette *stylesnatcher.Palette) error {
	return w.WritePaletteFn(ctx, palette)
}
