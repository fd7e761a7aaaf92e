// Package lipgloss renders extracted palettes for terminal display:
// a swatch row per color and a numbered font list.
package lipgloss

import (
	"fmt"
	"strings"

	stylesnatcher "github.com/Darkmintis/StyleSnatcher"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultSwatchWidth is the default rendered width of a color swatch.
const DefaultSwatchWidth = 14

// Renderer renders palettes as styled terminal output. The zero value is
// not usable; create one with NewRenderer.
type Renderer struct {
	swatchWidth int
	header      lipgloss.Style
	index       lipgloss.Style
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSwatchWidth sets the rendered width of each color swatch.
func WithSwatchWidth(w int) Option {
	return func(r *Renderer) {
		r.swatchWidth = w
	}
}

// NewRenderer creates a new Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		swatchWidth: DefaultSwatchWidth,
		header:      lipgloss.NewStyle().Bold(true),
		index:       lipgloss.NewStyle().Faint(true),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the palette as a styled block of text: one
// background-colored swatch per color labeled with its hex value, then
// the ranked font list.
func (r *Renderer) Render(palette *stylesnatcher.Palette) string {
	var sb strings.Builder

	sb.WriteString(r.header.Render("Colors"))
	sb.WriteString("\n")
	for _, hex := range palette.Colors {
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(hex)).
			Foreground(lipgloss.Color(ContrastColor(hex))).
			Width(r.swatchWidth).
			Align(lipgloss.Center)
		sb.WriteString(swatch.Render(hex))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(r.header.Render("Fonts"))
	sb.WriteString("\n")
	for i, font := range palette.Fonts {
		sb.WriteString(r.index.Render(fmt.Sprintf("%d.", i+1)))
		sb.WriteString(" ")
		sb.WriteString(font)
		sb.WriteString("\n")
	}

	return sb.String()
}

// ContrastColor returns black or white, whichever reads better on top of
// the given #rrggbb background. The threshold compares relative luminance
// in linear RGB.
func ContrastColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#ffffff"
	}

	r, g, b := c.LinearRgb()
	luminance := 0.2126*r + 0.7152*g + 0.0722*b

	if luminance > 0.179 {
		return "#000000"
	}
	return "#ffffff"
}
