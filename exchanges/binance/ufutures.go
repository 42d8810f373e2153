package binance

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobinance/exchanges/binance/params"
)

var (
	futuresPing = Descriptor{
		Method: http.MethodGet, Path: "/fapi/v1/ping", Security: SecurityNone, Weight: 1, Host: HostFutures,
		Schema: params.NewSchema(),
	}
	futuresTime = Descriptor{
		Method: http.MethodGet, Path: "/fapi/v1/time", Security: SecurityNone, Weight: 1, Host: HostFutures,
		Schema: params.NewSchema(),
	}
	futuresExchangeInfo = Descriptor{
		Method: http.MethodGet, Path: "/fapi/v1/exchangeInfo", Security: SecurityNone, Weight: 1, Host: HostFutures,
		Schema: params.NewSchema(),
	}
	futuresDepth = Descriptor{
		Method: http.MethodGet, Path: "/fapi/v1/depth", Security: SecurityNone, Weigh: futuresDepthWeight, Host: HostFutures,
		Schema: params.NewSchema(symbolField(true), enumField("limit", false, "5", "10", "20", "50", "100", "500", "1000")),
	}
	futuresPremiumIndex = Descriptor{
		Method: http.MethodGet, Path: "/fapi/v1/premiumIndex", Security: SecurityNone, Weigh: premiumIndexWeight, Host: HostFutures,
		Schema: params.NewSchema(symbolField(false)),
	}
	futuresFundingRate = Descriptor{
		Method: http.MethodGet, Path: "/fapi/v1/fundingRate", Security: SecurityNone, Weight: 1, Host: HostFutures,
		Schema: params.NewSchema(symbolField(false), timeField("startTime"), timeField("endTime"), intField("limit", false, 1, 1000)),
	}

	futuresNewOrder = Descriptor{
		Method: http.MethodPost, Path: "/fapi/v1/order", Security: SecuritySigned, Weight: 1, OrderWeight: 1, Host: HostFutures,
		Schema: signedSchema(
			symbolField(true),
			enumField("side", true, SideBuy, SideSell),
			enumField("positionSide", false, PositionSideBoth, PositionSideLong, PositionSideShort),
			enumField("type", true,
				FuturesOrderTypeLimit, FuturesOrderTypeMarket, FuturesOrderTypeStop, FuturesOrderTypeStopMarket,
				FuturesOrderTypeTakeProfit, FuturesOrderTypeTakeProfitMarket, FuturesOrderTypeTrailingStopMarket),
			enumField("timeInForce", false, TimeInForceGTC, TimeInForceIOC, TimeInForceFOK, TimeInForceGTX, TimeInForceGTD),
			decimalField("quantity", false),
			enumField("reduceOnly", false, "true", "false"),
			decimalField("price", false),
			clientOrderIDField("newClientOrderId"),
			decimalField("stopPrice", false),
			enumField("closePosition", false, "true", "false"),
			decimalField("activationPrice", false),
			params.Field{Name: "callbackRate", Kind: params.KindDecimal, Scale: 1, Min: params.Limit(0), Max: params.Limit(10)},
			enumField("workingType", false, WorkingTypeMarkPrice, WorkingTypeContractPrice),
			enumField("priceProtect", false, "TRUE", "FALSE"),
			enumField("newOrderRespType", false, NewOrderRespACK, NewOrderRespResult),
			enumField("selfTradePreventionMode", false, STPNone, STPExpireTaker, STPExpireMaker, STPExpireBoth),
			timeField("goodTillDate"),
		),
	}
	futuresCancelOrder = Descriptor{
		Method: http.MethodDelete, Path: "/fapi/v1/order", Security: SecuritySigned, Weight: 1, Host: HostFutures,
		Schema: signedSchema(symbolField(true), idField("orderId"), clientOrderIDField("origClientOrderId")),
	}
	futuresQueryOrder = Descriptor{
		Method: http.MethodGet, Path: "/fapi/v1/order", Security: SecuritySigned, Weight: 1, Host: HostFutures,
		Schema: signedSchema(symbolField(true), idField("orderId"), clientOrderIDField("origClientOrderId")),
	}

	futuresBalance = Descriptor{
		Method: http.MethodGet, Path: "/fapi/v2/balance", Security: SecuritySigned, Weight: 5, Host: HostFutures,
		Schema: signedSchema(),
	}
	futuresPositionRisk = Descriptor{
		Method: http.MethodGet, Path: "/fapi/v2/positionRisk", Security: SecuritySigned, Weight: 5, Host: HostFutures,
		Schema: signedSchema(symbolField(false)),
	}
)

// UFuturesMarket holds the public USD-M futures market data routes
type UFuturesMarket struct{ c *Client }

// Ping tests connectivity
func (m UFuturesMarket) Ping() *Endpoint[Empty] {
	return newEndpoint[Empty](m.c, &futuresPing)
}

// ServerTime returns the futures exchange clock
func (m UFuturesMarket) ServerTime() *Endpoint[ServerTime] {
	return newEndpoint[ServerTime](m.c, &futuresTime)
}

// ExchangeInfo returns futures trading rules and symbol information
func (m UFuturesMarket) ExchangeInfo() *Endpoint[FuturesExchangeInfo] {
	return newEndpoint[FuturesExchangeInfo](m.c, &futuresExchangeInfo)
}

// Depth returns the futures order book
func (m UFuturesMarket) Depth(symbol string) *FuturesDepthService {
	s := &FuturesDepthService{*newEndpoint[OrderBook](m.c, &futuresDepth)}
	s.params.SetString("symbol", symbol)
	return s
}

// PremiumIndex returns mark prices and funding rates
func (m UFuturesMarket) PremiumIndex() *SymbolFilterService[PremiumIndexes] {
	return &SymbolFilterService[PremiumIndexes]{*newEndpoint[PremiumIndexes](m.c, &futuresPremiumIndex)}
}

// FundingRate returns funding rate history
func (m UFuturesMarket) FundingRate() *FundingRateService {
	return &FundingRateService{*newEndpoint[[]FundingRate](m.c, &futuresFundingRate)}
}

// FuturesDepthService builds a futures order book request
type FuturesDepthService struct {
	Endpoint[OrderBook]
}

// Limit sets the number of levels; one of 5, 10, 20, 50, 100, 500 or 1000
func (s *FuturesDepthService) Limit(limit int64) *FuturesDepthService {
	s.params.SetEnum("limit", formatInt(limit))
	return s
}

// FundingRateService builds a funding rate history request
type FundingRateService struct {
	Endpoint[[]FundingRate]
}

// Symbol restricts the history to one symbol
func (s *FundingRateService) Symbol(symbol string) *FundingRateService {
	s.params.SetString("symbol", symbol)
	return s
}

// StartTime sets the inclusive start of the window
func (s *FundingRateService) StartTime(t time.Time) *FundingRateService {
	s.params.SetTime("startTime", t)
	return s
}

// EndTime sets the inclusive end of the window
func (s *FundingRateService) EndTime(t time.Time) *FundingRateService {
	s.params.SetTime("endTime", t)
	return s
}

// Limit sets the number of records returned
func (s *FundingRateService) Limit(limit int64) *FundingRateService {
	s.params.SetInt("limit", limit)
	return s
}

// UFuturesTrade holds the signed USD-M futures order routes
type UFuturesTrade struct{ c *Client }

// NewOrder places a futures order
func (t UFuturesTrade) NewOrder() *FuturesOrderService {
	return &FuturesOrderService{*newEndpoint[FuturesOrder](t.c, &futuresNewOrder)}
}

// CancelOrder cancels an active futures order
func (t UFuturesTrade) CancelOrder(symbol string) *OrderRefService[FuturesOrder] {
	return newOrderRef[FuturesOrder](t.c, &futuresCancelOrder, symbol)
}

// QueryOrder returns a futures order
func (t UFuturesTrade) QueryOrder(symbol string) *OrderRefService[FuturesOrder] {
	return newOrderRef[FuturesOrder](t.c, &futuresQueryOrder, symbol)
}

// FuturesOrderService builds a new futures order
type FuturesOrderService struct {
	Endpoint[FuturesOrder]
}

// Symbol sets the symbol
func (s *FuturesOrderService) Symbol(symbol string) *FuturesOrderService {
	s.params.SetString("symbol", symbol)
	return s
}

// Side sets the order side
func (s *FuturesOrderService) Side(side SideType) *FuturesOrderService {
	s.params.SetEnum("side", string(side))
	return s
}

// PositionSide sets the position side in hedge mode
func (s *FuturesOrderService) PositionSide(p PositionSide) *FuturesOrderService {
	s.params.SetEnum("positionSide", string(p))
	return s
}

// Type sets the order type
func (s *FuturesOrderService) Type(t FuturesOrderType) *FuturesOrderService {
	s.params.SetEnum("type", string(t))
	return s
}

// TimeInForce sets how long the order stays active
func (s *FuturesOrderService) TimeInForce(tif TimeInForce) *FuturesOrderService {
	s.params.SetEnum("timeInForce", string(tif))
	return s
}

// Quantity sets the contract quantity
func (s *FuturesOrderService) Quantity(q decimal.Decimal) *FuturesOrderService {
	s.params.SetDecimal("quantity", q)
	return s
}

// ReduceOnly only reduces the position
func (s *FuturesOrderService) ReduceOnly(b bool) *FuturesOrderService {
	s.params.SetEnum("reduceOnly", formatBool(b))
	return s
}

// Price sets the limit price
func (s *FuturesOrderService) Price(p decimal.Decimal) *FuturesOrderService {
	s.params.SetDecimal("price", p)
	return s
}

// NewClientOrderID sets the client order id
func (s *FuturesOrderService) NewClientOrderID(id string) *FuturesOrderService {
	s.params.SetString("newClientOrderId", id)
	return s
}

// GenerateClientOrderID sets a random client order id
func (s *FuturesOrderService) GenerateClientOrderID() *FuturesOrderService {
	setClientOrderID(s.params, NewClientOrderID)
	return s
}

// StopPrice sets the trigger price
func (s *FuturesOrderService) StopPrice(p decimal.Decimal) *FuturesOrderService {
	s.params.SetDecimal("stopPrice", p)
	return s
}

// ClosePosition closes the whole position when triggered
func (s *FuturesOrderService) ClosePosition(b bool) *FuturesOrderService {
	s.params.SetEnum("closePosition", formatBool(b))
	return s
}

// ActivationPrice sets the activation price of a trailing stop
func (s *FuturesOrderService) ActivationPrice(p decimal.Decimal) *FuturesOrderService {
	s.params.SetDecimal("activationPrice", p)
	return s
}

// CallbackRate sets the trailing stop callback rate in percent, 0.1 to 10
func (s *FuturesOrderService) CallbackRate(r decimal.Decimal) *FuturesOrderService {
	s.params.SetDecimal("callbackRate", r)
	return s
}

// WorkingType selects the price stop orders trigger on
func (s *FuturesOrderService) WorkingType(w WorkingType) *FuturesOrderService {
	s.params.SetEnum("workingType", string(w))
	return s
}

// PriceProtect enables price protection on conditional orders
func (s *FuturesOrderService) PriceProtect(b bool) *FuturesOrderService {
	s.params.SetEnum("priceProtect", upperBool(b))
	return s
}

// NewOrderRespType selects the acknowledgement detail; ACK or RESULT
func (s *FuturesOrderService) NewOrderRespType(t NewOrderRespType) *FuturesOrderService {
	s.params.SetEnum("newOrderRespType", string(t))
	return s
}

// SelfTradePreventionMode sets the self trade prevention mode
func (s *FuturesOrderService) SelfTradePreventionMode(m SelfTradePreventionMode) *FuturesOrderService {
	s.params.SetEnum("selfTradePreventionMode", string(m))
	return s
}

// GoodTillDate sets the expiry of a GTD order
func (s *FuturesOrderService) GoodTillDate(t time.Time) *FuturesOrderService {
	s.params.SetTime("goodTillDate", t)
	return s
}

// UFuturesAccount holds the signed USD-M futures account routes
type UFuturesAccount struct{ c *Client }

// Balance returns the futures account balances
func (a UFuturesAccount) Balance() *Endpoint[[]FuturesBalance] {
	return newEndpoint[[]FuturesBalance](a.c, &futuresBalance)
}

// PositionRisk returns open position risk, for every symbol unless one is
// set
func (a UFuturesAccount) PositionRisk() *SymbolFilterService[[]PositionRisk] {
	return &SymbolFilterService[[]PositionRisk]{*newEndpoint[[]PositionRisk](a.c, &futuresPositionRisk)}
}
