package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	stylesnatcher "github.com/Darkmintis/StyleSnatcher"
	"github.com/Darkmintis/StyleSnatcher/collect"
	"github.com/Darkmintis/StyleSnatcher/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	text, source, err := c.styleText(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stylesnatcher.ErrorMessage(err))
		return err
	}

	colors, fonts := stylesnatcher.Extract(text)
	palette := &stylesnatcher.Palette{
		SourceURL:  source,
		Colors:     colors,
		Fonts:      fonts,
		StyleHash:  collect.HashText(text),
		StyleBytes: len(text),
	}

	if c.Save {
		if err := deps.Palettes.CreatePalette(deps.Ctx, palette); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", stylesnatcher.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved palette %s\n", palette.ID)
	}

	if deps.Writer != nil {
		if err := deps.Writer.WritePalette(deps.Ctx, palette); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", stylesnatcher.ErrorMessage(err))
			return err
		}
		name, err := fs.URLToFilename(palette.SourceURL)
		if err == nil {
			fmt.Fprintf(deps.Stdout, "Wrote %s\n", filepath.Join(c.Out, name))
		}
	}

	return printPalette(deps, palette, c.CSSVars, c.JSON)
}

// styleText resolves the style text to extract from: either standard
// input or a collected page.
func (c *ExtractCmd) styleText(deps *Dependencies) (string, string, error) {
	if c.Stdin {
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(b), "stdin", nil
	}

	if c.URL == "" {
		return "", "", stylesnatcher.Errorf(stylesnatcher.EINVALID, "page URL required unless --stdin is set")
	}

	text, err := deps.Collector.Collect(deps.Ctx, c.URL)
	if err != nil {
		return "", "", err
	}
	return text, c.URL, nil
}

// printPalette writes the palette to stdout in the requested format.
func printPalette(deps *Dependencies, palette *stylesnatcher.Palette, cssVars, asJSON bool) error {
	switch {
	case asJSON:
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(palette)
	case cssVars:
		fmt.Fprint(deps.Stdout, palette.CSSVariables())
		return nil
	default:
		fmt.Fprint(deps.Stdout, deps.Renderer.Render(palette))
		return nil
	}
}
