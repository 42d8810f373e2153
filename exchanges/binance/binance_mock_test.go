package binance

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/gobinance/common/clock"
	"github.com/thrasher-corp/gobinance/internal/testing/mockexchange"
)

// Values from the exchange's signed endpoint documentation
const (
	testAPIKey    = "vmPUZE6mv9SD5VNHk4HlWFsOr6aKE2zvsw0MuIgwCIPy6utIco14y7Ju91duEh8A"
	testSecret    = "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"
	testTimestamp = 1499827319559
	testSignature = "c8db56825ae71d6d79447849e617115f4a920fa2acdcab2b053c4b2838bd6b71"
)

type mockEnv struct {
	client  *Client
	spot    *mockexchange.Server
	futures *mockexchange.Server
	clock   *clock.Frozen
}

// newMockEnv returns a client pointed at fresh spot and futures mock
// exchanges with a frozen clock at testTimestamp
func newMockEnv(t *testing.T, cfg Config, opts ...Option) *mockEnv {
	t.Helper()
	env := &mockEnv{
		spot:    mockexchange.New(t),
		futures: mockexchange.New(t),
		clock:   clock.NewFrozen(testTimestamp),
	}
	cfg.BaseURL = env.spot.URL
	cfg.FuturesBaseURL = env.futures.URL
	if cfg.APIKey == "" && cfg.SecretKey == "" {
		cfg.APIKey, cfg.SecretKey = testAPIKey, testSecret
	}
	if cfg.Clock == nil {
		cfg.Clock = env.clock
	}
	c, err := New(cfg, append([]Option{WithHTTPClient(new(http.Client))}, opts...)...)
	require.NoError(t, err, "New must not error")
	env.client = c
	return env
}

func (e *mockEnv) lastSpot(t *testing.T) mockexchange.Request {
	t.Helper()
	r, ok := e.spot.Last()
	require.True(t, ok, "spot mock must have received a request")
	return r
}
