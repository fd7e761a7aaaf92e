// Package fs writes palette CSS-variable documents to disk.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	stylesnatcher "github.com/Darkmintis/StyleSnatcher"
)

// URLToFilename converts a page URL to a CSS file name.
// Example: https://example.com/blog/post → example-com-blog-post.css
func URLToFilename(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	slug := slugify(u.Host + u.Path)
	if slug == "" {
		return "palette.css", nil
	}

	return slug + ".css", nil
}

// slugify lowercases s and replaces runs of non-alphanumeric characters
// with single hyphens.
func slugify(s string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

// FormatDocument renders a palette as a CSS file with a provenance header.
func FormatDocument(palette *stylesnatcher.Palette) string {
	var b strings.Builder
	b.WriteString("/* source: ")
	b.WriteString(palette.SourceURL)
	if !palette.CreatedAt.IsZero() {
		b.WriteString("\n   extracted: ")
		b.WriteString(palette.CreatedAt.Format("2006-01-02"))
	}
	b.WriteString(" */\n\n")
	b.WriteString(palette.CSSVariables())
	return b.String()
}

// Ensure Writer implements stylesnatcher.PaletteWriter at compile time.
var _ stylesnatcher.PaletteWriter = (*Writer)(nil)

// Writer writes palettes as CSS files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WritePalette writes the palette's CSS-variable document to disk.
func (w *Writer) WritePalette(ctx context.Context, palette *stylesnatcher.Palette) error {
	if err := palette.Validate(); err != nil {
		return err
	}

	name, err := URLToFilename(palette.SourceURL)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	content := FormatDocument(palette)
	return os.WriteFile(filepath.Join(w.baseDir, name), []byte(content), 0644)
}
