package main

import (
	"fmt"

	stylesnatcher "github.com/Darkmintis/StyleSnatcher"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return stylesnatcher.Errorf(stylesnatcher.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Palettes.DeletePalette(deps.Ctx, c.ID); err != nil {
		if stylesnatcher.ErrorCode(err) == stylesnatcher.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: palette %q not found. Use 'stylesnatch history' to see saved palettes.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", stylesnatcher.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted palette %q\n", c.ID)
	return nil
}
