package request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestNewRateLimit(t *testing.T) {
	t.Parallel()
	r := NewRateLimit(time.Second*10, 5)
	assert.Equal(t, rate.Limit(0.5), r.Limit())
	assert.Equal(t, 5, r.Burst())

	// Ensures rate limiting factor is the same
	r = NewRateLimit(time.Second*2, 1)
	assert.Equal(t, rate.Limit(0.5), r.Limit())

	// Test for open rate limit
	r = NewRateLimit(time.Second*2, 0)
	assert.Equal(t, rate.Inf, r.Limit())

	r = NewRateLimit(0, 69)
	assert.Equal(t, rate.Inf, r.Limit())
}

func TestWeightLimiterWait(t *testing.T) {
	t.Parallel()
	var nilLimiter *WeightLimiter
	require.NoError(t, nilLimiter.Wait(t.Context(), 100))

	l := NewWeightLimiter(time.Minute, 6000)
	require.NoError(t, l.Wait(t.Context(), 0))
	require.NoError(t, l.Wait(t.Context(), 20))
	// weights above the burst are clamped rather than rejected
	require.NoError(t, NewWeightLimiter(time.Minute, 5).Wait(t.Context(), 50))

	l = NewWeightLimiter(time.Hour, 1)
	require.NoError(t, l.Wait(WithoutDelay(t.Context()), 1))
	require.ErrorIs(t, l.Wait(WithoutDelay(t.Context()), 1), errDelayNotAllowed)

	ctx, cancel := context.WithTimeout(t.Context(), time.Second)
	defer cancel()
	err := l.Wait(ctx, 1)
	require.ErrorIs(t, err, context.DeadlineExceeded, "a wait outlasting the deadline must surface as a deadline error")
	assert.NoError(t, ctx.Err(), "the limiter must not block until the deadline")
}
