package stylesnatcher

import (
	"context"
	"time"
)

// Palette represents the visual identity extracted from a single page:
// ranked colors and fonts plus provenance about the style text they came
// from. A palette is a point-in-time snapshot; extracting the same page
// again produces a new palette.
type Palette struct {
	ID        string   `json:"id"`
	SourceURL string   `json:"sourceUrl"`
	Colors    []string `json:"colors"`
	Fonts     []string `json:"fonts"`

	// StyleHash is a hash of the collected style text, used to recognize
	// identical snapshots of the same page.
	StyleHash string `json:"styleHash"`

	// StyleBytes is the size of the collected style text.
	StyleBytes int `json:"styleBytes"`

	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the palette contains invalid fields.
func (p *Palette) Validate() error {
	if p.SourceURL == "" {
		return Errorf(EINVALID, "palette source URL required")
	}
	if len(p.Colors) == 0 {
		return Errorf(EINVALID, "palette requires at least one color")
	}
	return nil
}

// CSSVariables renders the palette as a CSS custom-property document.
func (p *Palette) CSSVariables() string {
	return GenerateCSSVariables(p.Colors, p.Fonts)
}

// PaletteService represents a service for managing stored palettes.
type PaletteService interface {
	// CreatePalette persists a new palette and assigns its ID and
	// creation time.
	CreatePalette(ctx context.Context, palette *Palette) error

	// FindPaletteByID retrieves a palette by ID.
	// Returns ENOTFOUND if the palette does not exist.
	FindPaletteByID(ctx context.Context, id string) (*Palette, error)

	// FindPalettes retrieves palettes matching the filter, newest first.
	FindPalettes(ctx context.Context, filter PaletteFilter) ([]*Palette, error)

	// DeletePalette permanently removes a palette.
	// Returns ENOTFOUND if the palette does not exist.
	DeletePalette(ctx context.Context, id string) error
}

// PaletteFilter represents a filter for FindPalettes.
type PaletteFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`
	StyleHash *string `json:"styleHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// PaletteWriter persists a palette's CSS-variable document to storage.
type PaletteWriter interface {
	WritePalette(ctx context.Context, palette *Palette) error
}
