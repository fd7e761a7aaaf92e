package stylesnatcher_test

import (
	"fmt"
	"strings"
	"testing"

	stylesnatcher "github.com/Darkmintis/StyleSnatcher"
	"github.com/stretchr/testify/assert"
)

func TestExtractFonts(t *testing.T) {
	t.Parallel()

	t.Run("extracts family from declaration", func(t *testing.T) {
		t.Parallel()

		fonts := stylesnatcher.ExtractFonts("body { font-family: Georgia, serif; }")

		assert.Equal(t, []string{"Georgia"}, fonts)
	})

	t.Run("strips straight and curly quotes", func(t *testing.T) {
		t.Parallel()

		css := `h1 { font-family: "Open Sans", 'Helvetica Neue', “Comic Sans”, sans-serif; }`

		fonts := stylesnatcher.ExtractFonts(css)

		assert.Equal(t, []string{"Open Sans", "Helvetica Neue", "Comic Sans"}, fonts)
	})

	t.Run("matches property name case-insensitively", func(t *testing.T) {
		t.Parallel()

		fonts := stylesnatcher.ExtractFonts("p { FONT-FAMILY: Lato; }")

		assert.Equal(t, []string{"Lato"}, fonts)
	})

	t.Run("excludes generic keywords case-insensitively", func(t *testing.T) {
		t.Parallel()

		css := "a { font-family: SANS-SERIF, Serif, monospace, Cursive, fantasy, system-ui; }"

		fonts := stylesnatcher.ExtractFonts(css)

		assert.Equal(t, stylesnatcher.DefaultFonts(), fonts)
	})

	t.Run("counts differently cased names separately", func(t *testing.T) {
		t.Parallel()

		css := "a { font-family: Arial; } b { font-family: ARIAL; }"

		fonts := stylesnatcher.ExtractFonts(css)

		assert.Equal(t, []string{"Arial", "ARIAL"}, fonts)
	})

	t.Run("ranks by descending frequency", func(t *testing.T) {
		t.Parallel()

		css := strings.Repeat("p { font-family: Verdana; } ", 3) + "h1 { font-family: Georgia; }"

		fonts := stylesnatcher.ExtractFonts(css)

		assert.Equal(t, []string{"Verdana", "Georgia"}, fonts)
	})

	t.Run("breaks frequency ties by first-seen order", func(t *testing.T) {
		t.Parallel()

		fonts := stylesnatcher.ExtractFonts("a { font-family: Lato, Inter, Merriweather; }")

		assert.Equal(t, []string{"Lato", "Inter", "Merriweather"}, fonts)
	})

	t.Run("stops value run at terminators", func(t *testing.T) {
		t.Parallel()

		css := "p { font-family: Lato } h1 { color: red; font-family: Inter; }"

		fonts := stylesnatcher.ExtractFonts(css)

		assert.Equal(t, []string{"Lato", "Inter"}, fonts)
	})

	t.Run("truncates to five fonts", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		for i := 0; i < 10; i++ {
			fmt.Fprintf(&sb, "p { font-family: Family%d; } ", i)
		}

		fonts := stylesnatcher.ExtractFonts(sb.String())

		assert.Len(t, fonts, 5)
	})

	t.Run("returns default fonts for empty input", func(t *testing.T) {
		t.Parallel()

		fonts := stylesnatcher.ExtractFonts("")

		assert.Equal(t, []string{"Inter", "Roboto", "Arial"}, fonts)
	})

	t.Run("returns default fonts when only generics are present", func(t *testing.T) {
		t.Parallel()

		fonts := stylesnatcher.ExtractFonts("body { font-family: sans-serif, serif; }")

		assert.Equal(t, stylesnatcher.DefaultFonts(), fonts)
	})

	t.Run("is deterministic across repeated calls", func(t *testing.T) {
		t.Parallel()

		css := "a { font-family: Lato, Georgia; } b { font-family: Georgia; }"

		assert.Equal(t, stylesnatcher.ExtractFonts(css), stylesnatcher.ExtractFonts(css))
	})
}

func TestSplitFontStack(t *testing.T) {
	t.Parallel()

	t.Run("splits on commas and trims entries", func(t *testing.T) {
		t.Parallel()

		names := stylesnatcher.SplitFontStack(`  "Open Sans" , Helvetica ,sans-serif `)

		assert.Equal(t, []string{"Open Sans", "Helvetica", "sans-serif"}, names)
	})

	t.Run("drops empty entries", func(t *testing.T) {
		t.Parallel()

		names := stylesnatcher.SplitFontStack("Georgia,, ,serif")

		assert.Equal(t, []string{"Georgia", "serif"}, names)
	})

	t.Run("returns nil for empty stack", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, stylesnatcher.SplitFontStack(""))
	})
}
