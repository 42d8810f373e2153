package request

import (
	"net/http"
	"time"
)

// Const vars for the requester
const (
	// DefaultTimeout is applied to every exchange when no timeout is set
	DefaultTimeout = 10 * time.Second
	// MaxRetryAttempts is the ceiling for the opt-in retry policy
	MaxRetryAttempts = 3

	userAgent   = "User-Agent"
	maxBodySize = 64 << 20
)

// Requester performs HTTP exchanges for a single exchange client. It is safe
// for concurrent use once constructed.
type Requester struct {
	HTTPClient  *http.Client
	Name        string
	UserAgent   string
	Timeout     time.Duration
	Verbose     bool
	retryPolicy RetryPolicy
	maxRetries  int
	backoff     Backoff
	limiter     *WeightLimiter
	// redact lists header names whose values are masked in verbose output
	redact []string
}

// RequesterOption is a function option for configuring a Requester
type RequesterOption func(*Requester)

// Item is a single outbound HTTP request
type Item struct {
	Method  string
	Path    string
	Headers http.Header
	Body    []byte
	// Weight is the exchange weight of the request, consumed from the
	// optional client side limiter
	Weight  int
	Verbose bool
	// Observe is called with every response received for the item,
	// including those of attempts that are later retried
	Observe func(*Response)
}

// Generate defines a closure for functionality outside the requester to
// build the request item. It is called again for every attempt so that time
// sensitive parameters such as signatures are regenerated.
type Generate func() (*Item, error)

// Response is the raw outcome of a completed HTTP exchange
type Response struct {
	StatusCode int
	// Reason is the reason phrase of the status line
	Reason string
	Header http.Header
	Body   []byte
}
