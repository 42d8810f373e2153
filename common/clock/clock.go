// Package clock provides the millisecond time sources used to stamp signed
// requests.
package clock

import (
	"sync"
	"time"
)

// Clock produces millisecond Unix timestamps
type Clock interface {
	UnixMilli() int64
}

// System is a wall clock anchored at construction and advanced by the
// monotonic clock reading, so wall clock steps on the host do not move it
// backwards. Returned values never decrease.
type System struct {
	base  time.Time
	m     sync.Mutex
	last  int64
	since func(time.Time) time.Duration
}

// NewSystem returns a System clock anchored at the current wall time
func NewSystem() *System {
	return &System{base: time.Now(), since: time.Since}
}

// UnixMilli returns the current millisecond timestamp
func (s *System) UnixMilli() int64 {
	now := s.base.Add(s.since(s.base)).UnixMilli()
	s.m.Lock()
	defer s.m.Unlock()
	if now < s.last {
		now = s.last
	}
	s.last = now
	return now
}

// Frozen is a clock that always returns the same timestamp until Set or
// Advance is called. It is meant for reproducible signatures in tests.
type Frozen struct {
	m  sync.Mutex
	ms int64
}

// NewFrozen returns a Frozen clock fixed at ms
func NewFrozen(ms int64) *Frozen {
	return &Frozen{ms: ms}
}

// UnixMilli returns the frozen timestamp
func (f *Frozen) UnixMilli() int64 {
	f.m.Lock()
	defer f.m.Unlock()
	return f.ms
}

// Set moves the clock to ms. Values lower than the current reading are
// ignored so the clock stays non-decreasing.
func (f *Frozen) Set(ms int64) {
	f.m.Lock()
	if ms > f.ms {
		f.ms = ms
	}
	f.m.Unlock()
}

// Advance moves the clock forward by d
func (f *Frozen) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	f.m.Lock()
	f.ms += d.Milliseconds()
	f.m.Unlock()
}
