package binance

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/gobinance/exchanges/request"
)

func TestDecodeResponse(t *testing.T) {
	t.Parallel()
	now := time.Unix(1700000000, 0)
	resp := func(status int, body string, header ...string) *request.Response {
		h := make(http.Header)
		for i := 0; i+1 < len(header); i += 2 {
			h.Set(header[i], header[i+1])
		}
		return &request.Response{StatusCode: status, Reason: http.StatusText(status), Header: h, Body: []byte(body)}
	}

	var st ServerTime
	require.NoError(t, decodeResponse(resp(http.StatusOK, `{"serverTime":1}`), now, &st))
	assert.Equal(t, int64(1), st.ServerTime)
	require.NoError(t, decodeResponse(resp(http.StatusOK, ``), now, &st), "an empty success body is not an error")
	require.NoError(t, decodeResponse(resp(http.StatusOK, `{"code":200,"msg":"success"}`), now, &Empty{}), "non negative codes are payload")

	for name, tc := range map[string]struct {
		resp   *request.Response
		status int
		code   int64
		msg    string
	}{
		"exchange error":       {resp(http.StatusBadRequest, `{"code":-1100,"msg":"Illegal characters found in parameter 'symbol'."}`), http.StatusBadRequest, -1100, "Illegal characters found in parameter 'symbol'."},
		"success with failure": {resp(http.StatusOK, `{"code":-1121,"msg":"Invalid symbol."}`), http.StatusOK, -1121, "Invalid symbol."},
		"html 403":             {resp(http.StatusForbidden, `<html>WAF</html>`), http.StatusForbidden, -403, "Forbidden"},
		"server error":         {resp(http.StatusInternalServerError, `{"code":-1000,"msg":"An unknown error occurred"}`), http.StatusInternalServerError, -500, "Internal Server Error"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := decodeResponse(tc.resp, now, &Empty{})
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.code, apiErr.Code)
			assert.Equal(t, tc.msg, apiErr.Msg)
		})
	}

	err := decodeResponse(resp(http.StatusTooManyRequests, ``), now, &Empty{})
	var rl *RateLimitedError
	require.ErrorAs(t, err, &rl)
	assert.Nil(t, rl.RetryAfter, "no Retry-After header must leave RetryAfter unset")
	assert.True(t, rl.Until.IsZero())

	err = decodeResponse(resp(http.StatusTooManyRequests, ``, "Retry-After", "soon"), now, &Empty{})
	require.ErrorAs(t, err, &rl)
	assert.Nil(t, rl.RetryAfter, "an unparseable Retry-After must leave RetryAfter unset")
	assert.True(t, rl.Until.IsZero())
	assert.Equal(t, "binance rate limited", rl.Error())

	err = decodeResponse(resp(http.StatusTooManyRequests, ``, "Retry-After", "0"), now, &Empty{})
	require.ErrorAs(t, err, &rl)
	require.NotNil(t, rl.RetryAfter)
	assert.Zero(t, *rl.RetryAfter)
	assert.Equal(t, now, rl.Until)

	err = decodeResponse(resp(http.StatusTeapot, ``), now, &Empty{})
	var ban *BannedError
	require.ErrorAs(t, err, &ban)
	assert.True(t, ban.Until.IsZero(), "a ban without Retry-After has no known end")
	assert.Equal(t, "binance IP banned", ban.Error())

	err = decodeResponse(resp(http.StatusTeapot, ``, "Retry-After", "soon"), now, &Empty{})
	require.ErrorAs(t, err, &ban)
	assert.True(t, ban.Until.IsZero())

	err = decodeResponse(resp(http.StatusTeapot, ``, "Retry-After", "120"), now, &Empty{})
	require.ErrorAs(t, err, &ban)
	assert.Equal(t, now.Add(2*time.Minute), ban.Until)

	assert.True(t, banDeadline(resp(http.StatusOK, ``, "Retry-After", "5"), now).IsZero(), "only 429 and 418 advertise a ban")
	assert.True(t, banDeadline(resp(http.StatusTooManyRequests, ``, "Retry-After", "soon"), now).IsZero())
	assert.Equal(t, now.Add(5*time.Second), banDeadline(resp(http.StatusTooManyRequests, ``, "Retry-After", "5"), now))

	err = decodeResponse(resp(http.StatusOK, `[1,2`), now, &st)
	var dErr *DecodeError
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, `[1,2`, string(dErr.Body))
}
