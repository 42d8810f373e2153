package request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

var errDelayNotAllowed = errors.New("rate limit delay not allowed")

// WeightLimiter is an optional client side limiter that spends request
// weight from a token bucket refilled evenly over an interval. The exchange
// remains the authority; this only smooths outbound traffic.
type WeightLimiter struct {
	r *rate.Limiter
}

// NewRateLimit creates a new rate.Limiter based on time interval and how many
// actions are allowed, broken down to an actions-per-second basis with a
// burst of the full allowance.
func NewRateLimit(interval time.Duration, actions int) *rate.Limiter {
	if actions <= 0 || interval <= 0 {
		// Returns an un-restricted rate limiter
		return rate.NewLimiter(rate.Inf, 1)
	}

	i := 1 / interval.Seconds()
	rps := i * float64(actions)
	return rate.NewLimiter(rate.Limit(rps), actions)
}

// NewWeightLimiter returns a limiter allowing weight units per interval
func NewWeightLimiter(interval time.Duration, weight int) *WeightLimiter {
	return &WeightLimiter{r: NewRateLimit(interval, weight)}
}

// Wait blocks until weight units are available or ctx is done. A nil
// limiter never blocks.
func (w *WeightLimiter) Wait(ctx context.Context, weight int) error {
	if w == nil || weight <= 0 {
		return nil
	}
	if b := w.r.Burst(); weight > b {
		weight = b
	}
	if hasFlag(ctx, flagNoDelay) {
		res := w.r.ReserveN(time.Now(), weight)
		if res.Delay() > 0 {
			res.Cancel()
			return errDelayNotAllowed
		}
		return nil
	}
	if err := w.r.WaitN(ctx, weight); err != nil {
		if ctx.Err() == nil {
			// the wait would outlast the deadline
			return fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
		}
		return err
	}
	return nil
}
