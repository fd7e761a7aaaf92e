package main

import (
	"fmt"
	"strings"

	stylesnatcher "github.com/Darkmintis/StyleSnatcher"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	palettes, err := deps.Palettes.FindPalettes(deps.Ctx, stylesnatcher.PaletteFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stylesnatcher.ErrorMessage(err))
		return err
	}

	if len(palettes) == 0 {
		fmt.Fprintln(deps.Stdout, "No palettes saved. Use 'stylesnatch extract --save' to create one.")
		return nil
	}

	for _, p := range palettes {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			p.ID, p.CreatedAt.Format("2006-01-02 15:04"), p.SourceURL, strings.Join(p.Colors, " "))
	}

	return nil
}
