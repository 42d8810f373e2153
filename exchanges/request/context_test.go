package request

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/gobinance/log"
)

func TestCallFlags(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	assert.False(t, hasFlag(ctx, flagVerbose))

	ctx = WithoutRetry(WithVerbose(ctx))
	assert.True(t, hasFlag(ctx, flagVerbose))
	assert.True(t, hasFlag(ctx, flagNoRetry))
	assert.False(t, hasFlag(ctx, flagNoDelay), "flags must not leak into each other")
	assert.True(t, hasFlag(WithoutDelay(ctx), flagNoDelay|flagVerbose))

	r := &Requester{}
	assert.False(t, r.verbose(t.Context(), &Item{}))
	assert.True(t, r.verbose(t.Context(), &Item{Verbose: true}))
	assert.True(t, r.verbose(WithVerbose(t.Context()), &Item{}))
	assert.True(t, (&Requester{Verbose: true}).verbose(t.Context(), &Item{}))
}

// Not parallel: redirects the global logger
func TestWithVerboseRedacts(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf, "DEBUG")
	t.Cleanup(func() { log.SetOutput(nil, "") })

	r, err := New("test", new(http.Client), WithRedactedHeaders("X-MBX-APIKEY"))
	require.NoError(t, err)
	gen := func() (*Item, error) {
		return &Item{
			Method:  http.MethodGet,
			Path:    testURL,
			Headers: http.Header{"X-Mbx-Apikey": []string{"vmPUZE6mv9SD5VNHk4HlWFsOr6aKE2zvsw0MuIgwCIPy6utIco14y7Ju91duEh8A"}},
		}, nil
	}

	_, err = r.SendPayload(t.Context(), gen)
	require.NoError(t, err)
	assert.Empty(t, buf.String(), "quiet requester must not log without the context flag")

	_, err = r.SendPayload(WithVerbose(t.Context()), gen)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "<redacted>")
	assert.Contains(t, out, `{"response":true}`)
	assert.NotContains(t, out, "vmPUZE6mv9SD5VNHk4HlWFsOr6aKE2zvsw0MuIgwCIPy6utIco14y7Ju91duEh8A")
}
