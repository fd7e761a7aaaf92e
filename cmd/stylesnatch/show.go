package main

import (
	"fmt"

	stylesnatcher "github.com/Darkmintis/StyleSnatcher"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	palette, err := deps.Palettes.FindPaletteByID(deps.Ctx, c.ID)
	if err != nil {
		if stylesnatcher.ErrorCode(err) == stylesnatcher.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: palette %q not found. Use 'stylesnatch history' to see saved palettes.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", stylesnatcher.ErrorMessage(err))
		return err
	}

	return printPalette(deps, palette, c.CSSVars, c.JSON)
}
