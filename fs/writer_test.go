package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	stylesnatcher "github.com/Darkmintis/StyleSnatcher"
	"github.com/Darkmintis/StyleSnatcher/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToFilename(t *testing.T) {
	t.Parallel()

	t.Run("slugifies host and path", func(t *testing.T) {
		t.Parallel()

		name, err := fs.URLToFilename("https://example.com/blog/post")

		require.NoError(t, err)
		assert.Equal(t, "example-com-blog-post.css", name)
	})

	t.Run("handles bare host", func(t *testing.T) {
		t.Parallel()

		name, err := fs.URLToFilename("https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "example-com.css", name)
	})

	t.Run("drops trailing separator runs", func(t *testing.T) {
		t.Parallel()

		name, err := fs.URLToFilename("https://example.com/docs/")

		require.NoError(t, err)
		assert.Equal(t, "example-com-docs.css", name)
	})

	t.Run("falls back to palette.css for unusable URLs", func(t *testing.T) {
		t.Parallel()

		name, err := fs.URLToFilename("stdin")

		require.NoError(t, err)
		assert.Equal(t, "stdin.css", name)
	})
}

func TestFormatDocument(t *testing.T) {
	t.Parallel()

	palette := &stylesnatcher.Palette{
		SourceURL: "https://example.com",
		Colors:    []string{"#ff0000"},
		Fonts:     []string{"Georgia"},
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	doc := fs.FormatDocument(palette)

	assert.Contains(t, doc, "/* source: https://example.com")
	assert.Contains(t, doc, "extracted: 2026-08-01")
	assert.Contains(t, doc, "--primary-color: #ff0000;")
	assert.Contains(t, doc, "--font-primary: Georgia, sans-serif;")
}

func TestWriter_WritePalette(t *testing.T) {
	t.Parallel()

	t.Run("writes css file under base directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		palette := &stylesnatcher.Palette{
			SourceURL: "https://example.com/pricing",
			Colors:    []string{"#123456"},
			Fonts:     []string{"Inter"},
		}

		require.NoError(t, w.WritePalette(context.Background(), palette))

		content, err := os.ReadFile(filepath.Join(dir, "example-com-pricing.css"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "--primary-color: #123456;")
	})

	t.Run("creates missing base directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "out")
		w := fs.NewWriter(dir)

		palette := &stylesnatcher.Palette{
			SourceURL: "https://example.com",
			Colors:    []string{"#123456"},
		}

		require.NoError(t, w.WritePalette(context.Background(), palette))

		_, err := os.Stat(filepath.Join(dir, "example-com.css"))
		require.NoError(t, err)
	})

	t.Run("rejects invalid palette", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		err := w.WritePalette(context.Background(), &stylesnatcher.Palette{})

		require.Error(t, err)
		assert.Equal(t, stylesnatcher.EINVALID, stylesnatcher.ErrorCode(err))
	})
}
