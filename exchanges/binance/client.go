package binance

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/thrasher-corp/gobinance/common/clock"
	"github.com/thrasher-corp/gobinance/exchanges/binance/params"
	"github.com/thrasher-corp/gobinance/exchanges/request"
	"github.com/thrasher-corp/gobinance/log"
)

const (
	// DefaultBaseURL is the spot, margin and wallet REST host
	DefaultBaseURL = "https://api.binance.com"
	// DefaultFuturesBaseURL is the USD-M futures REST host
	DefaultFuturesBaseURL = "https://fapi.binance.com"
	// MaxRecvWindow is the largest recvWindow the exchange accepts
	MaxRecvWindow = 60000

	defaultUserAgent = "gobinance"
)

// Config holds the client settings
type Config struct {
	BaseURL        string
	FuturesBaseURL string
	APIKey         string
	SecretKey      string
	// RecvWindow in milliseconds is appended to signed requests when non
	// zero; the exchange default applies otherwise
	RecvWindow int64
	// Timeout bounds each HTTP exchange, defaulting to 10 seconds
	Timeout   time.Duration
	Clock     clock.Clock
	UserAgent string
	Verbose   bool
	// Proxy is an optional http, https or socks5 proxy URL
	Proxy string
}

// Option configures a client beyond Config
type Option func(*options)

type options struct {
	httpClient *http.Client
	clock      clock.Clock
	requester  []request.RequesterOption
}

// WithHTTPClient sets the HTTP client used for every exchange
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithRetryPolicy opts into retrying failed exchanges. Each attempt is
// signed again with a fresh timestamp.
func WithRetryPolicy(p request.RetryPolicy, maxRetries int) Option {
	return func(o *options) { o.requester = append(o.requester, request.WithRetryPolicy(p, maxRetries)) }
}

// WithBackoff sets the delay between retry attempts
func WithBackoff(b request.Backoff) Option {
	return func(o *options) { o.requester = append(o.requester, request.WithBackoff(b)) }
}

// WithWeightLimit enables a client side limiter spending request weight
// from a budget of weight units per interval
func WithWeightLimit(interval time.Duration, weight int) Option {
	return func(o *options) {
		o.requester = append(o.requester, request.WithLimiter(request.NewWeightLimiter(interval, weight)))
	}
}

// WithClock sets the timestamp source used for signing
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// Client is the Binance REST façade. It is safe for concurrent use.
type Client struct {
	baseURLs   [hostCount]string
	signer     signer
	requester  *request.Requester
	rateLimits RateLimits
	verbose    bool
}

// New returns a client for the given configuration
func New(cfg Config, opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if cfg.RecvWindow < 0 || cfg.RecvWindow > MaxRecvWindow {
		return nil, fmt.Errorf("%w: %d", errInvalidRecvWindow, cfg.RecvWindow)
	}

	c := &Client{verbose: cfg.Verbose}
	for host, raw := range map[Host]string{HostSpot: cfg.BaseURL, HostFutures: cfg.FuturesBaseURL} {
		base, err := normaliseBaseURL(raw, host)
		if err != nil {
			return nil, err
		}
		c.baseURLs[host] = base
	}

	clk := cfg.Clock
	if clk == nil {
		clk = o.clock
	}
	if clk == nil {
		clk = clock.NewSystem()
	}
	c.signer = signer{
		creds:      NewCredentials(cfg.APIKey, cfg.SecretKey),
		clock:      clk,
		recvWindow: cfg.RecvWindow,
	}

	hc := o.httpClient
	if hc == nil {
		hc = request.NewHTTPClient()
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	reqOpts := append([]request.RequesterOption{
		request.WithTimeout(cfg.Timeout),
		request.WithUserAgent(ua),
		request.WithVerboseLogging(cfg.Verbose),
		request.WithRedactedHeaders(headerAPIKey),
	}, o.requester...)

	var err error
	if c.requester, err = request.New("Binance", hc, reqOpts...); err != nil {
		return nil, err
	}

	if cfg.Proxy != "" {
		p, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL: %w", err)
		}
		if err := c.requester.SetProxy(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func normaliseBaseURL(raw string, host Host) (string, error) {
	if raw == "" {
		if host == HostFutures {
			return DefaultFuturesBaseURL, nil
		}
		return DefaultBaseURL, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", errInvalidBaseURL, raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w %q: scheme and host required", errInvalidBaseURL, raw)
	}
	return strings.TrimSuffix(raw, "/"), nil
}

// RateLimits returns a copy of the rate limit usage advertised by the
// exchange in the most recent responses
func (c *Client) RateLimits() RateLimitSnapshot {
	return c.rateLimits.Snapshot()
}

// Credentials returns the configured credentials
func (c *Client) Credentials() Credentials {
	return c.signer.creds
}

// execute runs the request pipeline for a single endpoint: parameters are
// validated and encoded, signed, sent and the response decoded into out. The
// rate limit headers of every attempt are recorded before execute returns.
func (c *Client) execute(ctx context.Context, d *Descriptor, r *params.Record, out any) error {
	q, err := r.Encode()
	if err != nil {
		return err
	}

	var buildErr error
	resp, err := c.requester.SendPayload(ctx, func() (*request.Item, error) {
		item, err := c.newItem(d, q)
		if err != nil {
			buildErr = err
			return nil, err
		}
		item.Weight = d.weight(r)
		item.Observe = func(resp *request.Response) { c.observe(d.Host, resp) }
		return item, nil
	})
	if err != nil {
		if buildErr != nil {
			return buildErr
		}
		return &TransportError{
			Op:        d.Method + " " + d.Path,
			Err:       err,
			Cancelled: ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded),
		}
	}

	err = decodeResponse(resp, time.Now(), out)
	var rl *RateLimitedError
	var ban *BannedError
	switch {
	case errors.As(err, &rl):
		c.rateLimits.recordBan(rl.Until)
	case errors.As(err, &ban):
		c.rateLimits.recordBan(ban.Until)
	}
	if err != nil && c.verbose {
		log.Warnf(log.ExchangeSys, "Binance %s %s failed: %v", d.Method, d.Path, err)
	}
	return err
}

// observe records the rate limit headers and any ban deadline of every
// response received, retried attempts included
func (c *Client) observe(host Host, resp *request.Response) {
	now := time.Now()
	c.rateLimits.observe(host, resp.Header, now)
	c.rateLimits.recordBan(banDeadline(resp, now))
}

// newItem signs the query and places it on the URL or in the body
func (c *Client) newItem(d *Descriptor, q params.Query) (*request.Item, error) {
	payload, headers, err := c.signer.sign(d.Security, q)
	if err != nil {
		return nil, err
	}
	item := &request.Item{
		Method:  d.Method,
		Path:    c.baseURLs[d.Host] + d.Path,
		Headers: headers,
		Verbose: c.verbose,
	}
	switch {
	case payload == "":
	case d.hasBody():
		if item.Headers == nil {
			item.Headers = make(http.Header)
		}
		item.Headers.Set(headerContentType, contentTypeForm)
		item.Body = []byte(payload)
	default:
		item.Path += "?" + payload
	}
	return item, nil
}
