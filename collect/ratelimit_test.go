package collect_test

import (
	"context"
	"testing"
	"time"

	"github.com/Darkmintis/StyleSnatcher/collect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("allows the first request immediately", func(t *testing.T) {
		t.Parallel()

		limiter := collect.NewDomainLimiter(1.0, 1)

		start := time.Now()
		err := limiter.Wait(context.Background(), "example.com")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("throttles repeated requests to the same domain", func(t *testing.T) {
		t.Parallel()

		limiter := collect.NewDomainLimiter(10.0, 1)

		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		// Second token becomes available after ~100ms at 10 rps.
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("does not throttle requests to different domains", func(t *testing.T) {
		t.Parallel()

		limiter := collect.NewDomainLimiter(1.0, 1)

		require.NoError(t, limiter.Wait(context.Background(), "a.example.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "b.example.com"))

		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("returns error when context is canceled", func(t *testing.T) {
		t.Parallel()

		limiter := collect.NewDomainLimiter(0.001, 1)
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx, "example.com")
		require.Error(t, err)
	})

	t.Run("treats burst below one as one", func(t *testing.T) {
		t.Parallel()

		limiter := collect.NewDomainLimiter(1.0, 0)

		require.NoError(t, limiter.Wait(context.Background(), "example.com"))
	})
}
