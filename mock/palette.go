package mock

import (
	"context"

	stylesnatcher "github.com/Darkmintis/StyleSnatcher"
)

var _ stylesnatcher.PaletteService = (*PaletteService)(nil)

// PaletteService is a mock implementation of stylesnatcher.PaletteService.
type PaletteService struct {
	CreatePaletteFn   func(ctx context.Context, palette *stylesnatcher.Palette) error
	FindPaletteByIDFn func(ctx context.Context, id string) (*stylesnatcher.Palette, error)
	FindPalettesFn    func(ctx context.Context, filter stylesnatcher.PaletteFilter) ([]*stylesnatcher.Palette, error)
	DeletePaletteFn   func(ctx context.Context, id string) error
}

func (s *PaletteService) CreatePalette(ctx context.Context, palette *stylesnatcher.Palette) error {
	return s.CreatePaletteFn(ctx, palette)
}

func (s *PaletteService) FindPaletteByID(ctx context.Context, id string) (*stylesnatcher.Palette, error) {
	return s.FindPaletteByIDFn(ctx, id)
}

func (s *PaletteService) FindPalettes(ctx context.Context, filter stylesnatcher.PaletteFilter) ([]*stylesnatcher.Palette, error) {
	return s.FindPalettesFn(ctx, filter)
}

func (s *PaletteService) DeletePalette(ctx context.Context, id string) error {
	return s.DeletePaletteFn(ctx, id)
}
