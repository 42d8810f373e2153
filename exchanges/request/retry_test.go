package request_test

import (
	"context"
	"net"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/thrasher-corp/gobinance/exchanges/request"
)

func TestDefaultRetryPolicy(t *testing.T) {
	t.Parallel()
	type args struct {
		Error    error
		Response *request.Response
	}
	type want struct {
		Error error
		Retry bool
	}
	testTable := map[string]struct {
		Args args
		Want want
	}{
		"DNS Error": {
			Args: args{Error: &net.DNSError{Err: "fake"}},
			Want: want{Error: &net.DNSError{Err: "fake"}},
		},
		"DNS Timeout": {
			Args: args{Error: &net.DNSError{Err: "fake", IsTimeout: true}},
			Want: want{Retry: true},
		},
		"Too Many Requests With Retry After": {
			Args: args{Response: &request.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{"Retry-After": []string{"1"}}}},
			Want: want{Retry: true},
		},
		"Too Many Requests Without Retry After": {
			Args: args{Response: &request.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{}}},
		},
		"Not Found": {
			Args: args{Response: &request.Response{StatusCode: http.StatusNotFound}},
		},
		"Banned": {
			Args: args{Response: &request.Response{StatusCode: http.StatusTeapot, Header: http.Header{"Retry-After": []string{"5"}}}},
		},
		"Service Unavailable": {
			Args: args{Response: &request.Response{StatusCode: http.StatusServiceUnavailable}},
			Want: want{Retry: true},
		},
	}

	for name, tt := range testTable {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			retry, err := request.DefaultRetryPolicy(tt.Args.Response, tt.Args.Error)

			if exp := tt.Want.Error; exp != nil {
				if !reflect.DeepEqual(err, exp) {
					t.Fatalf("unexpected error\nexp: %#v, got: %#v", exp, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error\nexp: <nil>, got: %#v", err)
			}

			if tt.Want.Retry != retry {
				t.Fatalf("incorrect retry flag\nexp: %v, got: %v", tt.Want.Retry, retry)
			}
		})
	}
}

func TestNoRetry(t *testing.T) {
	t.Parallel()
	retry, err := request.NoRetry(&request.Response{StatusCode: http.StatusServiceUnavailable}, nil)
	assert.False(t, retry)
	assert.NoError(t, err)

	retry, err = request.NoRetry(nil, context.Canceled)
	assert.False(t, retry)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetryAfterHeader(t *testing.T) {
	t.Parallel()
	now := time.Date(2020, time.April, 20, 13, 31, 13, 0, time.UTC)

	type want struct {
		Delay time.Duration
		OK    bool
	}
	testTable := map[string]struct {
		Value string
		Want  want
	}{
		"Absent":                    {},
		"Partial Seconds":           {Value: "0.5"},
		"Negative Seconds":          {Value: "-4"},
		"Words":                     {Value: "soon"},
		"Zero Seconds":              {Value: "0", Want: want{OK: true}},
		"Delay Seconds":             {Value: "30", Want: want{Delay: 30 * time.Second, OK: true}},
		"Invalid HTTP Date RFC3339": {Value: "2020-04-02T13:31:18Z"},
		"Valid HTTP Date":           {Value: "Mon, 20 Apr 2020 13:31:18 GMT", Want: want{Delay: 5 * time.Second, OK: true}},
		"Past HTTP Date":            {Value: "Mon, 20 Apr 2020 13:31:08 GMT", Want: want{OK: true}},
	}

	for name, tt := range testTable {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			h := make(http.Header)
			if tt.Value != "" {
				h.Set("Retry-After", tt.Value)
			}

			delay, ok := request.RetryAfterHeader(h, now)
			assert.Equal(t, tt.Want.OK, ok)
			assert.Equal(t, tt.Want.Delay, delay)
		})
	}
}

func TestLinearBackoff(t *testing.T) {
	t.Parallel()
	b := request.LinearBackoff(time.Second, 3*time.Second)
	assert.Equal(t, time.Second, b(1))
	assert.Equal(t, 2*time.Second, b(2))
	assert.Equal(t, 3*time.Second, b(5))
}
