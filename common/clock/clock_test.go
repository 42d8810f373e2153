package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemUnixMilli(t *testing.T) {
	t.Parallel()
	s := NewSystem()
	before := time.Now().UnixMilli()
	got := s.UnixMilli()
	after := time.Now().UnixMilli()
	assert.GreaterOrEqual(t, got, before-1)
	assert.LessOrEqual(t, got, after+1)
}

func TestSystemNonDecreasing(t *testing.T) {
	t.Parallel()
	s := NewSystem()
	elapsed := []time.Duration{time.Second, 2 * time.Second, time.Second, 500 * time.Millisecond, 3 * time.Second}
	var i int
	s.since = func(time.Time) time.Duration {
		d := elapsed[i]
		i++
		return d
	}
	var prev int64
	for range elapsed {
		got := s.UnixMilli()
		require.GreaterOrEqual(t, got, prev, "clock must never go backwards")
		prev = got
	}
	assert.Equal(t, s.base.Add(3*time.Second).UnixMilli(), prev)
}

func TestSystemConcurrent(t *testing.T) {
	t.Parallel()
	s := NewSystem()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var prev int64
			for range 100 {
				got := s.UnixMilli()
				assert.GreaterOrEqual(t, got, prev)
				prev = got
			}
		}()
	}
	wg.Wait()
}

func TestFrozen(t *testing.T) {
	t.Parallel()
	f := NewFrozen(1499827319559)
	assert.Equal(t, int64(1499827319559), f.UnixMilli())
	assert.Equal(t, int64(1499827319559), f.UnixMilli())

	f.Advance(time.Second)
	assert.Equal(t, int64(1499827320559), f.UnixMilli())

	f.Advance(-time.Second)
	assert.Equal(t, int64(1499827320559), f.UnixMilli())

	f.Set(1)
	assert.Equal(t, int64(1499827320559), f.UnixMilli(), "Set must not move the clock backwards")

	f.Set(1600000000000)
	assert.Equal(t, int64(1600000000000), f.UnixMilli())
}
