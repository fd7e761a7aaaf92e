package stylesnatcher_test

import (
	"errors"
	"testing"

	stylesnatcher "github.com/Darkmintis/StyleSnatcher"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := stylesnatcher.Errorf(stylesnatcher.ENOTFOUND, "palette %q not found", "test")

	assert.Equal(t, stylesnatcher.ENOTFOUND, stylesnatcher.ErrorCode(err))
	assert.Equal(t, "palette \"test\" not found", stylesnatcher.ErrorMessage(err))
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for nil error", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, stylesnatcher.ErrorCode(nil))
	})

	t.Run("returns EINTERNAL for non-application errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, stylesnatcher.EINTERNAL, stylesnatcher.ErrorCode(errors.New("boom")))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for nil error", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, stylesnatcher.ErrorMessage(nil))
	})

	t.Run("returns generic message for non-application errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Internal error.", stylesnatcher.ErrorMessage(errors.New("boom")))
	})
}
