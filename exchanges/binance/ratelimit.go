package binance

import (
	"maps"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/thrasher-corp/gobinance/exchanges/binance/params"
)

// Rate limit response header prefixes; the suffix is the interval, e.g. 1M
const (
	headerUsedWeight    = "X-MBX-USED-WEIGHT-"
	headerOrderCount    = "X-MBX-ORDER-COUNT-"
	headerSAPIIPWeight  = "X-SAPI-USED-IP-WEIGHT-"
	headerSAPIUIDWeight = "X-SAPI-USED-UID-WEIGHT-"
)

// Usage is the latest rate limit usage advertised by one host, keyed by
// lower case interval such as "1m" or "10s"
type Usage struct {
	UsedWeight map[string]int64
	OrderCount map[string]int64
	IPWeight   map[string]int64
	UIDWeight  map[string]int64
	UpdatedAt  time.Time
}

// RateLimitSnapshot is a point in time copy of the accountant state
type RateLimitSnapshot struct {
	Spot    Usage
	Futures Usage
	// BannedUntil is the latest deadline advertised by a 429 or 418 response
	BannedUntil time.Time
}

// IsBanned reports whether the exchange asked the client to back off at t
func (s RateLimitSnapshot) IsBanned(t time.Time) bool {
	return t.Before(s.BannedUntil)
}

// RateLimits records the rate limit headers of every response. It advises
// only; nothing is enforced.
type RateLimits struct {
	m           sync.RWMutex
	usage       [hostCount]Usage
	bannedUntil time.Time
}

// Snapshot returns a deep copy of the recorded state
func (r *RateLimits) Snapshot() RateLimitSnapshot {
	r.m.RLock()
	defer r.m.RUnlock()
	return RateLimitSnapshot{
		Spot:        r.usage[HostSpot].clone(),
		Futures:     r.usage[HostFutures].clone(),
		BannedUntil: r.bannedUntil,
	}
}

// observe stores every rate limit header found in h against host
func (r *RateLimits) observe(host Host, h http.Header, now time.Time) {
	r.m.Lock()
	defer r.m.Unlock()
	u := &r.usage[host]
	var seen bool
	for k, v := range h {
		if len(v) == 0 {
			continue
		}
		upper := strings.ToUpper(k)
		for _, t := range [...]struct {
			prefix string
			target *map[string]int64
		}{
			{headerUsedWeight, &u.UsedWeight},
			{headerOrderCount, &u.OrderCount},
			{headerSAPIIPWeight, &u.IPWeight},
			{headerSAPIUIDWeight, &u.UIDWeight},
		} {
			interval, ok := strings.CutPrefix(upper, t.prefix)
			if !ok || interval == "" {
				continue
			}
			n, err := strconv.ParseInt(strings.TrimSpace(v[0]), 10, 64)
			if err != nil {
				break
			}
			if *t.target == nil {
				*t.target = make(map[string]int64)
			}
			(*t.target)[strings.ToLower(interval)] = n
			seen = true
			break
		}
	}
	if seen {
		u.UpdatedAt = now
	}
}

// recordBan extends the back off deadline to until
func (r *RateLimits) recordBan(until time.Time) {
	if until.IsZero() {
		return
	}
	r.m.Lock()
	if until.After(r.bannedUntil) {
		r.bannedUntil = until
	}
	r.m.Unlock()
}

func (u *Usage) clone() Usage {
	return Usage{
		UsedWeight: maps.Clone(u.UsedWeight),
		OrderCount: maps.Clone(u.OrderCount),
		IPWeight:   maps.Clone(u.IPWeight),
		UIDWeight:  maps.Clone(u.UIDWeight),
		UpdatedAt:  u.UpdatedAt,
	}
}

// Request weights that depend on parameters

func spotDepthWeight(r *params.Record) int {
	switch limit := intParam(r, "limit", 100); {
	case limit <= 100:
		return 5
	case limit <= 500:
		return 25
	case limit <= 1000:
		return 50
	}
	return 250
}

func futuresDepthWeight(r *params.Record) int {
	switch limit := intParam(r, "limit", 500); {
	case limit <= 50:
		return 2
	case limit <= 100:
		return 5
	case limit <= 500:
		return 10
	}
	return 20
}

func ticker24hrWeight(r *params.Record) int {
	if r.IsSet("symbol") {
		return 2
	}
	if v, ok := r.Value("symbols"); ok {
		switch n := strings.Count(v, ",") + 1; {
		case n <= 20:
			return 2
		case n <= 100:
			return 40
		}
	}
	return 80
}

func tickerPriceWeight(r *params.Record) int {
	if r.IsSet("symbol") {
		return 2
	}
	return 4
}

func openOrdersWeight(r *params.Record) int {
	if r.IsSet("symbol") {
		return 6
	}
	return 80
}

func premiumIndexWeight(r *params.Record) int {
	if r.IsSet("symbol") {
		return 1
	}
	return 10
}

func intParam(r *params.Record, name string, def int64) int64 {
	v, ok := r.Value(name)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}
