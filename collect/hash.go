package collect

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// HashText returns a 16-character hex digest of the collected style text.
// Two pages with identical styling hash to the same value, which lets the
// store skip duplicate palettes.
func HashText(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}
