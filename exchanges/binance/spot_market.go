package binance

import (
	"net/http"
	"time"

	"github.com/thrasher-corp/gobinance/exchanges/binance/params"
)

var (
	spotPing = Descriptor{
		Method: http.MethodGet, Path: "/api/v3/ping", Security: SecurityNone, Weight: 1,
		Schema: params.NewSchema(),
	}
	spotTime = Descriptor{
		Method: http.MethodGet, Path: "/api/v3/time", Security: SecurityNone, Weight: 1,
		Schema: params.NewSchema(),
	}
	spotExchangeInfo = Descriptor{
		Method: http.MethodGet, Path: "/api/v3/exchangeInfo", Security: SecurityNone, Weight: 20,
		Schema: params.NewSchema(
			symbolField(false),
			symbolsField(),
			params.Field{Name: "permissions", Kind: params.KindStrings, MinLen: 1},
		),
	}
	spotDepth = Descriptor{
		Method: http.MethodGet, Path: "/api/v3/depth", Security: SecurityNone, Weigh: spotDepthWeight,
		Schema: params.NewSchema(symbolField(true), intField("limit", false, 1, 5000)),
	}
	spotTrades = Descriptor{
		Method: http.MethodGet, Path: "/api/v3/trades", Security: SecurityNone, Weight: 25,
		Schema: params.NewSchema(symbolField(true), intField("limit", false, 1, 1000)),
	}
	spotHistoricalTrades = Descriptor{
		Method: http.MethodGet, Path: "/api/v3/historicalTrades", Security: SecurityAPIKey, Weight: 25,
		Schema: params.NewSchema(symbolField(true), intField("limit", false, 1, 1000), idField("fromId")),
	}
	spotAggTrades = Descriptor{
		Method: http.MethodGet, Path: "/api/v3/aggTrades", Security: SecurityNone, Weight: 2,
		Schema: params.NewSchema(
			symbolField(true),
			idField("fromId"),
			timeField("startTime"),
			timeField("endTime"),
			intField("limit", false, 1, 1000),
		),
	}
	klineSchema = params.NewSchema(
		symbolField(true),
		enumField("interval", true,
			Interval1s, Interval1m, Interval3m, Interval5m, Interval15m, Interval30m,
			Interval1h, Interval2h, Interval4h, Interval6h, Interval8h, Interval12h,
			Interval1d, Interval3d, Interval1w, Interval1M),
		timeField("startTime"),
		timeField("endTime"),
		stringField("timeZone", false),
		intField("limit", false, 1, 1000),
	)
	spotKlines = Descriptor{
		Method: http.MethodGet, Path: "/api/v3/klines", Security: SecurityNone, Weight: 2,
		Schema: klineSchema,
	}
	spotUIKlines = Descriptor{
		Method: http.MethodGet, Path: "/api/v3/uiKlines", Security: SecurityNone, Weight: 2,
		Schema: klineSchema,
	}
	spotAvgPrice = Descriptor{
		Method: http.MethodGet, Path: "/api/v3/avgPrice", Security: SecurityNone, Weight: 2,
		Schema: params.NewSchema(symbolField(true)),
	}
	spotTicker24hr = Descriptor{
		Method: http.MethodGet, Path: "/api/v3/ticker/24hr", Security: SecurityNone, Weigh: ticker24hrWeight,
		Schema: params.NewSchema(symbolField(false), symbolsField(), enumField("type", false, TickerFull, TickerMini)),
	}
	spotTickerPrice = Descriptor{
		Method: http.MethodGet, Path: "/api/v3/ticker/price", Security: SecurityNone, Weigh: tickerPriceWeight,
		Schema: params.NewSchema(symbolField(false), symbolsField()),
	}
	spotBookTicker = Descriptor{
		Method: http.MethodGet, Path: "/api/v3/ticker/bookTicker", Security: SecurityNone, Weigh: tickerPriceWeight,
		Schema: params.NewSchema(symbolField(false), symbolsField()),
	}
)

// SpotMarket holds the public spot market data routes
type SpotMarket struct{ c *Client }

// Ping tests connectivity
func (m SpotMarket) Ping() *Endpoint[Empty] {
	return newEndpoint[Empty](m.c, &spotPing)
}

// ServerTime returns the exchange clock
func (m SpotMarket) ServerTime() *Endpoint[ServerTime] {
	return newEndpoint[ServerTime](m.c, &spotTime)
}

// ExchangeInfo returns trading rules and symbol information
func (m SpotMarket) ExchangeInfo() *ExchangeInfoService {
	return &ExchangeInfoService{*newEndpoint[ExchangeInfo](m.c, &spotExchangeInfo)}
}

// Depth returns the order book
func (m SpotMarket) Depth(symbol string) *DepthService {
	s := &DepthService{*newEndpoint[OrderBook](m.c, &spotDepth)}
	s.params.SetString("symbol", symbol)
	return s
}

// Trades returns recent trades
func (m SpotMarket) Trades(symbol string) *TradesService {
	s := &TradesService{*newEndpoint[[]Trade](m.c, &spotTrades)}
	s.params.SetString("symbol", symbol)
	return s
}

// HistoricalTrades returns older trades
func (m SpotMarket) HistoricalTrades(symbol string) *TradesService {
	s := &TradesService{*newEndpoint[[]Trade](m.c, &spotHistoricalTrades)}
	s.params.SetString("symbol", symbol)
	return s
}

// AggTrades returns compressed aggregate trades
func (m SpotMarket) AggTrades(symbol string) *AggTradesService {
	s := &AggTradesService{*newEndpoint[[]AggTrade](m.c, &spotAggTrades)}
	s.params.SetString("symbol", symbol)
	return s
}

// Klines returns candlesticks
func (m SpotMarket) Klines(symbol string, interval KlineInterval) *KlinesService {
	return newKlinesService(m.c, &spotKlines, symbol, interval)
}

// UIKlines returns candlesticks optimised for presentation
func (m SpotMarket) UIKlines(symbol string, interval KlineInterval) *KlinesService {
	return newKlinesService(m.c, &spotUIKlines, symbol, interval)
}

// AvgPrice returns the current average price of symbol
func (m SpotMarket) AvgPrice(symbol string) *Endpoint[AvgPrice] {
	return newAvgPrice(m.c, symbol)
}

// Ticker24hr returns rolling 24 hour statistics
func (m SpotMarket) Ticker24hr() *TickerService[Tickers24hr] {
	return &TickerService[Tickers24hr]{*newEndpoint[Tickers24hr](m.c, &spotTicker24hr)}
}

// TickerPrice returns the latest prices
func (m SpotMarket) TickerPrice() *TickerService[PriceTickers] {
	return &TickerService[PriceTickers]{*newEndpoint[PriceTickers](m.c, &spotTickerPrice)}
}

// BookTicker returns the best bid and ask
func (m SpotMarket) BookTicker() *TickerService[BookTickers] {
	return &TickerService[BookTickers]{*newEndpoint[BookTickers](m.c, &spotBookTicker)}
}

func newAvgPrice(c *Client, symbol string) *Endpoint[AvgPrice] {
	e := newEndpoint[AvgPrice](c, &spotAvgPrice)
	e.params.SetString("symbol", symbol)
	return e
}

// ExchangeInfoService builds an exchange info request
type ExchangeInfoService struct {
	Endpoint[ExchangeInfo]
}

// Symbol restricts the response to one symbol
func (s *ExchangeInfoService) Symbol(symbol string) *ExchangeInfoService {
	s.params.SetString("symbol", symbol)
	return s
}

// Symbols restricts the response to several symbols
func (s *ExchangeInfoService) Symbols(symbols ...string) *ExchangeInfoService {
	s.params.SetStrings("symbols", symbols)
	return s
}

// Permissions restricts the response to symbols with the permissions
func (s *ExchangeInfoService) Permissions(permissions ...string) *ExchangeInfoService {
	s.params.SetStrings("permissions", permissions)
	return s
}

// DepthService builds an order book request
type DepthService struct {
	Endpoint[OrderBook]
}

// Limit sets the number of levels returned
func (s *DepthService) Limit(limit int64) *DepthService {
	s.params.SetInt("limit", limit)
	return s
}

// TradesService builds a recent or historical trades request
type TradesService struct {
	Endpoint[[]Trade]
}

// Limit sets the number of trades returned
func (s *TradesService) Limit(limit int64) *TradesService {
	s.params.SetInt("limit", limit)
	return s
}

// FromID sets the trade id to fetch from; historical trades only
func (s *TradesService) FromID(id int64) *TradesService {
	s.params.SetInt("fromId", id)
	return s
}

// AggTradesService builds an aggregate trades request
type AggTradesService struct {
	Endpoint[[]AggTrade]
}

// FromID sets the aggregate trade id to fetch from
func (s *AggTradesService) FromID(id int64) *AggTradesService {
	s.params.SetInt("fromId", id)
	return s
}

// StartTime sets the inclusive start of the window
func (s *AggTradesService) StartTime(t time.Time) *AggTradesService {
	s.params.SetTime("startTime", t)
	return s
}

// EndTime sets the inclusive end of the window
func (s *AggTradesService) EndTime(t time.Time) *AggTradesService {
	s.params.SetTime("endTime", t)
	return s
}

// Limit sets the number of trades returned
func (s *AggTradesService) Limit(limit int64) *AggTradesService {
	s.params.SetInt("limit", limit)
	return s
}

// KlinesService builds a candlestick request
type KlinesService struct {
	Endpoint[[]Kline]
}

func newKlinesService(c *Client, d *Descriptor, symbol string, interval KlineInterval) *KlinesService {
	s := &KlinesService{*newEndpoint[[]Kline](c, d)}
	s.params.SetString("symbol", symbol).SetEnum("interval", string(interval))
	return s
}

// StartTime sets the open time of the first kline
func (s *KlinesService) StartTime(t time.Time) *KlinesService {
	s.params.SetTime("startTime", t)
	return s
}

// EndTime sets the open time of the last kline
func (s *KlinesService) EndTime(t time.Time) *KlinesService {
	s.params.SetTime("endTime", t)
	return s
}

// TimeZone sets the time zone the kline intervals are aligned to
func (s *KlinesService) TimeZone(tz string) *KlinesService {
	s.params.SetString("timeZone", tz)
	return s
}

// Limit sets the number of klines returned
func (s *KlinesService) Limit(limit int64) *KlinesService {
	s.params.SetInt("limit", limit)
	return s
}

// TickerService builds a ticker request. Without a symbol every symbol is
// returned, at a higher weight.
type TickerService[T any] struct {
	Endpoint[T]
}

// Symbol restricts the response to one symbol
func (s *TickerService[T]) Symbol(symbol string) *TickerService[T] {
	s.params.SetString("symbol", symbol)
	return s
}

// Symbols restricts the response to several symbols
func (s *TickerService[T]) Symbols(symbols ...string) *TickerService[T] {
	s.params.SetStrings("symbols", symbols)
	return s
}

// Type selects the full or mini payload; 24hr ticker only
func (s *TickerService[T]) Type(t TickerType) *TickerService[T] {
	s.params.SetEnum("type", string(t))
	return s
}
