package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/gobinance/encoding/json"
)

func TestTime(t *testing.T) {
	t.Parallel()
	var testTime Time

	require.NoError(t, json.Unmarshal([]byte(`0`), &testTime))
	assert.Equal(t, time.Time{}, testTime.Time())
	assert.Zero(t, testTime.UnixMilli())

	require.NoError(t, json.Unmarshal([]byte(`""`), &testTime))
	assert.Equal(t, time.Time{}, testTime.Time())

	require.NoError(t, json.Unmarshal([]byte(`null`), &testTime))
	assert.Equal(t, time.Time{}, testTime.Time())

	require.NoError(t, json.Unmarshal([]byte(`1609459200000`), &testTime))
	assert.Equal(t, time.UnixMilli(1609459200000), testTime.Time())
	assert.Equal(t, int64(1609459200000), testTime.UnixMilli())

	require.NoError(t, json.Unmarshal([]byte(`"1628736847325"`), &testTime))
	assert.Equal(t, int64(1628736847325), testTime.UnixMilli())

	// short values are still milliseconds
	require.NoError(t, json.Unmarshal([]byte(`1628736847`), &testTime))
	assert.Equal(t, int64(1628736847), testTime.UnixMilli())

	assert.Error(t, json.Unmarshal([]byte(`"1726104395.5"`), &testTime))
	assert.Error(t, json.Unmarshal([]byte(`"2021-01-01T00:00:00Z"`), &testTime))
}

func TestTimeMarshalJSON(t *testing.T) {
	t.Parallel()
	in := Time(time.UnixMilli(1499827319559))
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `1499827319559`, string(data))

	var out Time
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in.UnixMilli(), out.UnixMilli())

	data, err = json.Marshal(Time{})
	require.NoError(t, err)
	assert.Equal(t, `0`, string(data))
}

func BenchmarkTime(b *testing.B) {
	var testTime Time
	for i := 0; i < b.N; i++ {
		if err := json.Unmarshal([]byte(`"1691122380942"`), &testTime); err != nil {
			b.Fatal(err)
		}
	}
}
