package collect_test

import (
	"testing"

	"github.com/Darkmintis/StyleSnatcher/collect"
	"github.com/stretchr/testify/assert"
)

func TestHashText(t *testing.T) {
	t.Parallel()

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		text := "body { color: #123456; }"
		assert.Equal(t, collect.HashText(text), collect.HashText(text))
	})

	t.Run("differs for different text", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, collect.HashText("a { color: red; }"), collect.HashText("a { color: blue; }"))
	})

	t.Run("is 16 hex characters", func(t *testing.T) {
		t.Parallel()

		hash := collect.HashText("")
		assert.Len(t, hash, 16)
		assert.Regexp(t, "^[0-9a-f]{16}$", hash)
	})
}
