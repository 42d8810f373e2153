package request

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"
)

const (
	headerRetryAfter = "Retry-After"
)

// RetryPolicy determines whether the request should be retried. A non nil
// error stops the request with that error.
type RetryPolicy func(resp *Response, err error) (bool, error)

// Backoff returns the delay before the given attempt number is retried
type Backoff func(attempt int) time.Duration

// NoRetry never retries; it is the requester default
func NoRetry(_ *Response, err error) (bool, error) {
	return false, err
}

// DefaultRetryPolicy retries timeouts, rate limited responses that carry a
// Retry-After header and gateway failures. Bans (418) are never retried.
func DefaultRetryPolicy(resp *Response, err error) (bool, error) {
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return true, nil
		}
		return false, err
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return resp.Header.Get(headerRetryAfter) != "", nil
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true, nil
	}
	return false, nil
}

// DefaultBackoff returns a linear backoff of 100ms per attempt
func DefaultBackoff() Backoff {
	return LinearBackoff(100*time.Millisecond, time.Second)
}

// LinearBackoff returns a Backoff that grows by base each attempt up to max
func LinearBackoff(base, maxDelay time.Duration) Backoff {
	return func(attempt int) time.Duration {
		return min(base*time.Duration(attempt), maxDelay)
	}
}

// RetryAfterHeader parses a Retry-After header value which may either be a
// whole number of seconds or an HTTP date relative to now. ok is false when
// the header is absent or cannot be parsed; a date in the past yields 0.
func RetryAfterHeader(h http.Header, now time.Time) (d time.Duration, ok bool) {
	after := h.Get(headerRetryAfter)
	if after == "" {
		return 0, false
	}

	if sec, err := strconv.ParseInt(after, 10, 32); err == nil {
		if sec < 0 {
			return 0, false
		}
		return time.Duration(sec) * time.Second, true
	}

	when, err := http.ParseTime(after)
	if err != nil {
		return 0, false
	}
	return max(when.Sub(now), 0), true
}
