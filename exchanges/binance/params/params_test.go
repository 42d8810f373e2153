package params

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderSchema = NewSchema(
	Field{Name: "symbol", Required: true, Kind: KindString, Pattern: regexp.MustCompile(`^[A-Z0-9-_.]{1,20}$`)},
	Field{Name: "side", Required: true, Kind: KindEnum, OneOf: []string{"BUY", "SELL"}},
	Field{Name: "type", Required: true, Kind: KindEnum},
	Field{Name: "timeInForce", Kind: KindEnum, OneOf: []string{"GTC", "IOC", "FOK"}},
	Field{Name: "quantity", Kind: KindDecimal, Scale: 8, Min: Limit(0)},
	Field{Name: "price", Kind: KindDecimal, Scale: 8},
	Field{Name: "newClientOrderId", Kind: KindString, MaxLen: 36},
	Field{Name: "limit", Kind: KindInt, Min: Limit(1), Max: Limit(1000)},
	Field{Name: "symbols", Kind: KindStrings, MaxLen: 3},
	Field{Name: "isIsolated", Kind: KindBool},
	Field{Name: "startTime", Kind: KindTime},
)

func TestEncodeCanonicalOrder(t *testing.T) {
	t.Parallel()
	// set out of schema order on purpose
	q, err := NewRecord(orderSchema).
		SetDecimal("price", decimal.RequireFromString("0.10000000")).
		SetDecimal("quantity", decimal.NewFromInt(1)).
		SetEnum("timeInForce", "GTC").
		SetEnum("type", "LIMIT").
		SetEnum("side", "BUY").
		SetString("symbol", "LTCBTC").
		Encode()
	require.NoError(t, err)
	assert.Equal(t, "symbol=LTCBTC&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&price=0.1", q.Encode())
}

func TestEncodeOmitsAbsentFields(t *testing.T) {
	t.Parallel()
	r := NewRecord(orderSchema).SetString("symbol", "BTCUSDT").SetEnum("side", "SELL").SetEnum("type", "MARKET")
	q, err := r.Encode()
	require.NoError(t, err)
	assert.Equal(t, "symbol=BTCUSDT&side=SELL&type=MARKET", q.Encode())
	assert.False(t, q.Has("timeInForce"))

	r.SetInt("limit", 5).Unset("limit")
	q, err = r.Encode()
	require.NoError(t, err)
	assert.NotContains(t, q.Encode(), "limit")
}

func TestSettersAreIdempotent(t *testing.T) {
	t.Parallel()
	build := func(r *Record) string {
		q, err := r.Encode()
		require.NoError(t, err)
		return q.Encode()
	}
	base := func() *Record {
		return NewRecord(orderSchema).SetString("symbol", "BTCUSDT").SetEnum("side", "BUY").SetEnum("type", "MARKET")
	}
	once := build(base().SetInt("limit", 10))
	twice := build(base().SetInt("limit", 10).SetInt("limit", 10))
	assert.Equal(t, once, twice)

	last := build(base().SetInt("limit", 10).SetInt("limit", 20))
	assert.Contains(t, last, "limit=20")
	assert.NotContains(t, last, "limit=10")
}

func TestSerialisers(t *testing.T) {
	t.Parallel()
	start := time.UnixMilli(1499827319559)
	q, err := NewRecord(orderSchema).
		SetString("symbol", "BTCUSDT").
		SetEnum("side", "BUY").
		SetEnum("type", "MARKET").
		SetDecimal("quantity", decimal.RequireFromString("1000.50000")).
		SetInt("limit", 1000).
		SetStrings("symbols", []string{"BTCUSDT", "BNBBTC"}).
		SetBool("isIsolated", true).
		SetTime("startTime", start).
		Encode()
	require.NoError(t, err)

	for name, want := range map[string]string{
		"quantity":   "1000.5",
		"limit":      "1000",
		"symbols":    `["BTCUSDT","BNBBTC"]`,
		"isIsolated": "true",
		"startTime":  "1499827319559",
	} {
		got, ok := q.Get(name)
		require.Truef(t, ok, "%s must be present", name)
		assert.Equalf(t, want, got, "%s must serialise correctly", name)
	}
	assert.Contains(t, q.Encode(), "symbols=%5B%22BTCUSDT%22%2C%22BNBBTC%22%5D")
}

func TestValidation(t *testing.T) {
	t.Parallel()
	valid := func() *Record {
		return NewRecord(orderSchema).SetString("symbol", "BTCUSDT").SetEnum("side", "BUY").SetEnum("type", "LIMIT")
	}
	for name, tc := range map[string]struct {
		record *Record
		field  string
		reason string
	}{
		"missing required": {
			record: NewRecord(orderSchema).SetEnum("side", "BUY").SetEnum("type", "LIMIT"),
			field:  "symbol",
			reason: "required",
		},
		"unknown field": {
			record: valid().SetString("colour", "red"),
			field:  "colour",
			reason: "unknown parameter",
		},
		"enum not accepted": {
			record: valid().SetEnum("timeInForce", "GTX"),
			field:  "timeInForce",
		},
		"precision exceeded": {
			record: valid().SetDecimal("price", decimal.RequireFromString("0.000000001")),
			field:  "price",
			reason: "exceeds 8 decimal places",
		},
		"below minimum": {
			record: valid().SetInt("limit", 0),
			field:  "limit",
			reason: "must be at least 1",
		},
		"above maximum": {
			record: valid().SetInt("limit", 5000),
			field:  "limit",
			reason: "must be at most 1000",
		},
		"string too long": {
			record: valid().SetString("newClientOrderId", "0123456789012345678901234567890123456789"),
			field:  "newClientOrderId",
		},
		"pattern mismatch": {
			record: valid().SetString("symbol", "btc usdt"),
			field:  "symbol",
		},
		"too many elements": {
			record: valid().SetStrings("symbols", []string{"A", "B", "C", "D"}),
			field:  "symbols",
		},
		"wrong kind": {
			record: valid().SetString("limit", "10"),
			field:  "limit",
		},
		"constraint reported before missing": {
			record: NewRecord(orderSchema).SetInt("limit", -1),
			field:  "limit",
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := tc.record.Encode()
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "error must be a *ValidationError")
			assert.Equal(t, tc.field, vErr.Field)
			if tc.reason != "" {
				assert.Equal(t, tc.reason, vErr.Reason)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()
	_, err := NewRecord(orderSchema).Encode()
	require.EqualError(t, err, "symbol required")
}

func TestResetClearsViolation(t *testing.T) {
	t.Parallel()
	r := NewRecord(orderSchema).SetString("symbol", "BTCUSDT").SetEnum("side", "BUY").SetEnum("type", "LIMIT")
	r.SetDecimal("price", decimal.RequireFromString("0.123456789"))
	_, err := r.Encode()
	require.Error(t, err)
	r.SetDecimal("price", decimal.RequireFromString("0.12345678"))
	_, err = r.Encode()
	require.NoError(t, err)
}

func TestEscape(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a%20b", Escape("a b"))
	assert.Equal(t, "AZaz09-_.~", Escape("AZaz09-_.~"))
	assert.Equal(t, "%2B%26%3D%2F%3A", Escape("+&=/:"))

	q := Query{}.Add("note", "hello world").Add("x", "1+1")
	assert.Equal(t, "note=hello%20world&x=1%2B1", q.Encode())
}

func TestSchemaExtend(t *testing.T) {
	t.Parallel()
	s := NewSchema(Field{Name: "symbol", Kind: KindString})
	e := s.Extend(Field{Name: "recvWindow", Kind: KindInt})
	assert.Len(t, s.Fields(), 1, "extend must not mutate the base schema")
	require.Len(t, e.Fields(), 2)
	assert.Equal(t, "recvWindow", e.Fields()[1].Name)
	_, ok := e.Field("recvWindow")
	assert.True(t, ok)
}

func TestInvalidate(t *testing.T) {
	t.Parallel()
	r := NewRecord(orderSchema).
		SetString("symbol", "LTCBTC").
		SetEnum("side", "BUY").
		SetEnum("type", "MARKET").
		SetString("newClientOrderId", "abc").
		Invalidate("newClientOrderId", "generation failed: entropy exhausted")
	assert.False(t, r.IsSet("newClientOrderId"))

	_, err := r.Encode()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "newClientOrderId", vErr.Field)
	assert.Equal(t, "generation failed: entropy exhausted", vErr.Reason)

	_, err = r.SetString("newClientOrderId", "abc").Encode()
	require.NoError(t, err, "setting a value again must clear the invalid state")

	_, err = NewRecord(orderSchema).Invalidate("bogus", "nope").Encode()
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "unknown parameter", vErr.Reason)
}
