package binance

import (
	"bytes"
	"net/http"
	"time"

	"github.com/buger/jsonparser"
	"github.com/thrasher-corp/gobinance/encoding/json"
	"github.com/thrasher-corp/gobinance/exchanges/request"
)

// decodeResponse maps a completed exchange onto out or a typed error
func decodeResponse(resp *request.Response, now time.Time, out any) error {
	switch status := resp.StatusCode; {
	case status >= 200 && status < 300:
		body := bytes.TrimSpace(resp.Body)
		if len(body) == 0 || out == nil {
			return nil
		}
		// sapi endpoints may report failures with a success status
		if apiErr := probeAPIError(resp.Body); apiErr != nil && apiErr.Code < 0 {
			apiErr.Status = status
			return apiErr
		}
		if err := json.Unmarshal(body, out); err != nil {
			return &DecodeError{Err: err, Body: resp.Body}
		}
		return nil
	case status == http.StatusTooManyRequests:
		rl := &RateLimitedError{}
		if d, ok := request.RetryAfterHeader(resp.Header, now); ok {
			rl.RetryAfter = &d
			rl.Until = now.Add(d)
		}
		return rl
	case status == http.StatusTeapot:
		return &BannedError{Until: banDeadline(resp, now)}
	case status >= 400 && status < 500:
		if apiErr := probeAPIError(resp.Body); apiErr != nil {
			apiErr.Status = status
			return apiErr
		}
	}
	return &APIError{Status: resp.StatusCode, Code: -int64(resp.StatusCode), Msg: resp.Reason}
}

// banDeadline returns the back off deadline advertised by a 429 or 418
// response, zero when there is none or Retry-After cannot be parsed
func banDeadline(resp *request.Response, now time.Time) time.Time {
	if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode != http.StatusTeapot {
		return time.Time{}
	}
	d, ok := request.RetryAfterHeader(resp.Header, now)
	if !ok {
		return time.Time{}
	}
	return now.Add(d)
}

// probeAPIError extracts an exchange {code,msg} body without decoding the
// rest of the document
func probeAPIError(body []byte) *APIError {
	code, err := jsonparser.GetInt(body, "code")
	if err != nil {
		return nil
	}
	msg, err := jsonparser.GetString(body, "msg")
	if err != nil {
		return nil
	}
	return &APIError{Code: code, Msg: msg}
}
