package binance

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/thrasher-corp/gobinance/exchanges/binance/params"
)

// Exchange error codes with client side diagnostics
const (
	CodeTimestampOutsideRecvWindow = -1021
	CodeInvalidSignature           = -1022
)

var (
	// ErrEndpointConsumed is returned when Do is called twice on one endpoint
	ErrEndpointConsumed = errors.New("endpoint already executed")
	// ErrCredentialsRequired is returned when an authenticated endpoint is
	// executed without the required credentials
	ErrCredentialsRequired = errors.New("credentials required")

	errInvalidRecvWindow = errors.New("recvWindow must be between 1 and 60000 milliseconds")
	errInvalidBaseURL    = errors.New("invalid base URL")
	errUnknownSecurity   = errors.New("unknown security level")
)

// ValidationError reports a parameter that is missing or violates its
// declared constraint. It is raised before any network activity.
type ValidationError = params.ValidationError

// TransportError is returned when no HTTP response was received
type TransportError struct {
	Op  string
	Err error
	// Cancelled is set when the exchange was aborted by context cancellation
	// or timeout. A cancelled signed request may still have reached the
	// exchange.
	Cancelled bool
}

func (e *TransportError) Error() string {
	if e.Cancelled {
		return "binance transport: " + e.Op + " cancelled: " + e.Err.Error()
	}
	return "binance transport: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a success body cannot be decoded
type DecodeError struct {
	Err  error
	Body []byte
}

func (e *DecodeError) Error() string {
	return "binance decode: " + e.Err.Error()
}

// Unwrap returns the underlying cause
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// APIError is an error reported by the exchange. Code and Msg are kept as
// received; non JSON failures carry the negated HTTP status as Code.
type APIError struct {
	Status int
	Code   int64
	Msg    string
}

func (e *APIError) Error() string {
	s := "binance API error " + strconv.FormatInt(e.Code, 10) + ": " + e.Msg
	if h := e.Hint(); h != "" {
		s += " (" + h + ")"
	}
	return s
}

// IsTimestampOutsideRecvWindow reports whether the request timestamp fell
// outside the exchange's recvWindow
func (e *APIError) IsTimestampOutsideRecvWindow() bool {
	return e.Code == CodeTimestampOutsideRecvWindow
}

// IsInvalidSignature reports whether the exchange rejected the signature
func (e *APIError) IsInvalidSignature() bool {
	return e.Code == CodeInvalidSignature
}

// Hint returns a diagnostic for codes that usually indicate a local problem
func (e *APIError) Hint() string {
	switch {
	case e.IsTimestampOutsideRecvWindow():
		return "local clock drift, check the system clock or raise recvWindow"
	case e.IsInvalidSignature():
		return "check the API secret and that it belongs to the API key"
	}
	return ""
}

// RateLimitedError is returned on HTTP 429
type RateLimitedError struct {
	// RetryAfter is nil when the exchange did not send Retry-After
	RetryAfter *time.Duration
	// Until is the earliest time to retry, zero when unknown
	Until time.Time
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter == nil {
		return "binance rate limited"
	}
	return fmt.Sprintf("binance rate limited, retry after %s", *e.RetryAfter)
}

// BannedError is returned on HTTP 418 when the IP is banned for repeated
// rate limit violations
type BannedError struct {
	// Until is zero when the exchange did not advertise the ban length
	Until time.Time
}

func (e *BannedError) Error() string {
	if e.Until.IsZero() {
		return "binance IP banned"
	}
	return "binance IP banned until " + e.Until.UTC().Format(time.RFC3339)
}
