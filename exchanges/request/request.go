package request

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/thrasher-corp/gobinance/log"
)

var (
	// ErrRequestSystemIsNil is returned when the requester is nil
	ErrRequestSystemIsNil = errors.New("request system is nil")

	errRequestFunctionIsNil = errors.New("request function is nil")
	errRequestItemNil       = errors.New("request item is nil")
	errInvalidPath          = errors.New("invalid path")
	errHTTPClientIsNil      = errors.New("http client is nil")
	errFailedToRetryRequest = errors.New("failed to retry request")
	errBodyTooLarge         = errors.New("response body exceeds size limit")
)

// New returns a new Requester
func New(name string, httpRequester *http.Client, opts ...RequesterOption) (*Requester, error) {
	if httpRequester == nil {
		return nil, errHTTPClientIsNil
	}
	r := &Requester{
		HTTPClient:  httpRequester,
		Name:        name,
		Timeout:     DefaultTimeout,
		backoff:     DefaultBackoff(),
		retryPolicy: NoRetry,
	}
	for _, o := range opts {
		o(r)
	}
	return r, nil
}

// WithTimeout sets the per exchange timeout
func WithTimeout(d time.Duration) RequesterOption {
	return func(r *Requester) {
		if d > 0 {
			r.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header for all requests
func WithUserAgent(ua string) RequesterOption {
	return func(r *Requester) { r.UserAgent = ua }
}

// WithVerboseLogging logs every request and response on the requester sub
// logger
func WithVerboseLogging(v bool) RequesterOption {
	return func(r *Requester) { r.Verbose = v }
}

// WithRetryPolicy opts into retries. maxRetries is capped at
// MaxRetryAttempts.
func WithRetryPolicy(p RetryPolicy, maxRetries int) RequesterOption {
	return func(r *Requester) {
		if p == nil {
			return
		}
		r.retryPolicy = p
		r.maxRetries = min(max(maxRetries, 0), MaxRetryAttempts)
	}
}

// WithBackoff configures the delay between retry attempts
func WithBackoff(b Backoff) RequesterOption {
	return func(r *Requester) {
		if b != nil {
			r.backoff = b
		}
	}
}

// WithLimiter sets a client side weight limiter
func WithLimiter(l *WeightLimiter) RequesterOption {
	return func(r *Requester) { r.limiter = l }
}

// WithRedactedHeaders masks the values of the named headers in verbose output
func WithRedactedHeaders(names ...string) RequesterOption {
	return func(r *Requester) { r.redact = append(r.redact, names...) }
}

// SendPayload performs the HTTP exchange described by the generated item and
// returns the response whatever its status code. Without a retry policy it
// makes exactly one network attempt.
func (r *Requester) SendPayload(ctx context.Context, newRequest Generate) (*Response, error) {
	if r == nil {
		return nil, ErrRequestSystemIsNil
	}
	if newRequest == nil {
		return nil, errRequestFunctionIsNil
	}

	for attempt := 1; ; attempt++ {
		p, err := newRequest()
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, errRequestItemNil
		}

		if err := r.limiter.Wait(ctx, p.Weight); err != nil {
			return nil, err
		}

		resp, err := r.do(ctx, p, attempt)
		retry, checkErr := r.retryPolicy(resp, err)
		if hasFlag(ctx, flagNoRetry) || attempt > r.maxRetries {
			retry = false
		}
		if !retry {
			if err != nil {
				return nil, err
			}
			if checkErr != nil {
				return nil, checkErr
			}
			return resp, nil
		}

		delay := r.backoff(attempt)
		if resp != nil {
			if after, ok := RetryAfterHeader(resp.Header, time.Now()); ok && after > delay {
				delay = after
			}
		}
		if d, ok := ctx.Deadline(); ok && time.Now().Add(delay).After(d) {
			if err != nil {
				return nil, fmt.Errorf("deadline would be exceeded by retry, err: %w", err)
			}
			return nil, fmt.Errorf("%w: deadline would be exceeded by retry, status: %d", errFailedToRetryRequest, resp.StatusCode)
		}

		if r.verbose(ctx, p) {
			log.Warnf(log.RequestSys, "%s request has failed. Retrying request in %s, attempt %d", r.Name, delay, attempt)
		}

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
}

// do performs a single exchange bounded by the requester timeout
func (r *Requester) do(ctx context.Context, p *Item, attempt int) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	req, err := p.validateRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	verbose := r.verbose(ctx, p)
	if verbose {
		log.Debugf(log.RequestSys, "%s attempt %d request: %s %s", r.Name, attempt, p.Method, p.Path)
		for k, d := range req.Header {
			log.Debugf(log.RequestSys, "%s request header [%s]: %s", r.Name, k, r.headerValue(k, d))
		}
		if len(p.Body) > 0 {
			log.Debugf(log.RequestSys, "%s request body: %s", r.Name, p.Body)
		}
	}

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	contents, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, err
	}
	if len(contents) > maxBodySize {
		return nil, errBodyTooLarge
	}

	if verbose {
		log.Debugf(log.RequestSys, "%s HTTP status: %s, raw response: %s", r.Name, resp.Status, contents)
	}

	out := &Response{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
		Header:     resp.Header,
		Body:       contents,
	}
	if p.Observe != nil {
		p.Observe(out)
	}
	return out, nil
}

// validateRequest validates the requester item fields
func (i *Item) validateRequest(ctx context.Context, r *Requester) (*http.Request, error) {
	if i == nil {
		return nil, errRequestItemNil
	}
	if i.Path == "" {
		return nil, errInvalidPath
	}

	var body io.Reader
	if len(i.Body) > 0 {
		body = bytes.NewReader(i.Body)
	}
	req, err := http.NewRequestWithContext(ctx, i.Method, i.Path, body)
	if err != nil {
		return nil, err
	}

	for k, v := range i.Headers {
		for x := range v {
			req.Header.Add(k, v[x])
		}
	}

	if r.UserAgent != "" && req.Header.Get(userAgent) == "" {
		req.Header.Add(userAgent, r.UserAgent)
	}
	return req, nil
}

func (r *Requester) headerValue(name string, values []string) string {
	for _, h := range r.redact {
		if strings.EqualFold(h, name) {
			return "<redacted>"
		}
	}
	return strings.Join(values, ",")
}

// reasonPhrase returns the status line text without the code, falling back
// to the standard text for the code
func reasonPhrase(resp *http.Response) string {
	if _, reason, ok := strings.Cut(resp.Status, " "); ok && reason != "" {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}
