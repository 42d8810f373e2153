package binance

import (
	"net/http"
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobinance/exchanges/binance/params"
)

var (
	spotOrderFields = []params.Field{
		symbolField(true),
		enumField("side", true, SideBuy, SideSell),
		enumField("type", true,
			OrderTypeLimit, OrderTypeMarket, OrderTypeStopLoss, OrderTypeStopLossLimit,
			OrderTypeTakeProfit, OrderTypeTakeProfitLimit, OrderTypeLimitMaker),
		enumField("timeInForce", false, TimeInForceGTC, TimeInForceIOC, TimeInForceFOK),
		decimalField("quantity", false),
		decimalField("quoteOrderQty", false),
		decimalField("price", false),
		clientOrderIDField("newClientOrderId"),
		intField("strategyId", false, 0, 1<<62),
		intField("strategyType", false, 1000000, 1<<62),
		decimalField("stopPrice", false),
		intField("trailingDelta", false, 1, 20000),
		decimalField("icebergQty", false),
		enumField("newOrderRespType", false, NewOrderRespACK, NewOrderRespResult, NewOrderRespFull),
		enumField("selfTradePreventionMode", false, STPNone, STPExpireTaker, STPExpireMaker, STPExpireBoth),
	}
	spotNewOrder = Descriptor{
		Method: http.MethodPost, Path: "/api/v3/order", Security: SecuritySigned, Weight: 1, OrderWeight: 1,
		Schema: signedSchema(spotOrderFields...),
	}
	spotTestOrder = Descriptor{
		Method: http.MethodPost, Path: "/api/v3/order/test", Security: SecuritySigned, Weight: 1,
		Schema: signedSchema(spotOrderFields...),
	}
	spotCancelOrder = Descriptor{
		Method: http.MethodDelete, Path: "/api/v3/order", Security: SecuritySigned, Weight: 1,
		Schema: signedSchema(
			symbolField(true),
			idField("orderId"),
			clientOrderIDField("origClientOrderId"),
			clientOrderIDField("newClientOrderId"),
			enumField("cancelRestrictions", false, "ONLY_NEW", "ONLY_PARTIALLY_FILLED"),
		),
	}
	spotCancelOpenOrders = Descriptor{
		Method: http.MethodDelete, Path: "/api/v3/openOrders", Security: SecuritySigned, Weight: 1,
		Schema: signedSchema(symbolField(true)),
	}
	spotQueryOrder = Descriptor{
		Method: http.MethodGet, Path: "/api/v3/order", Security: SecuritySigned, Weight: 4,
		Schema: signedSchema(symbolField(true), idField("orderId"), clientOrderIDField("origClientOrderId")),
	}
	spotOpenOrders = Descriptor{
		Method: http.MethodGet, Path: "/api/v3/openOrders", Security: SecuritySigned, Weigh: openOrdersWeight,
		Schema: signedSchema(symbolField(false)),
	}
	spotAllOrders = Descriptor{
		Method: http.MethodGet, Path: "/api/v3/allOrders", Security: SecuritySigned, Weight: 20,
		Schema: signedSchema(
			symbolField(true),
			idField("orderId"),
			timeField("startTime"),
			timeField("endTime"),
			intField("limit", false, 1, 1000),
		),
	}
)

// NewClientOrderID returns a random client order id accepted by the exchange
func NewClientOrderID() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// setClientOrderID stores a generated id, or the reason generation failed so
// that Do reports it
func setClientOrderID(r *params.Record, generate func() (string, error)) {
	id, err := generate()
	if err != nil {
		r.Invalidate("newClientOrderId", "generation failed: "+err.Error())
		return
	}
	r.SetString("newClientOrderId", id)
}

// SpotTrade holds the signed spot order routes
type SpotTrade struct{ c *Client }

// NewOrder places an order
func (t SpotTrade) NewOrder() *NewOrderService[Order] {
	return &NewOrderService[Order]{*newEndpoint[Order](t.c, &spotNewOrder)}
}

// TestOrder validates an order without sending it to the matching engine
func (t SpotTrade) TestOrder() *NewOrderService[Empty] {
	return &NewOrderService[Empty]{*newEndpoint[Empty](t.c, &spotTestOrder)}
}

// CancelOrder cancels an active order by orderId or origClientOrderId
func (t SpotTrade) CancelOrder(symbol string) *OrderRefService[Order] {
	return newOrderRef[Order](t.c, &spotCancelOrder, symbol)
}

// CancelOpenOrders cancels every open order on symbol
func (t SpotTrade) CancelOpenOrders(symbol string) *Endpoint[[]Order] {
	e := newEndpoint[[]Order](t.c, &spotCancelOpenOrders)
	e.params.SetString("symbol", symbol)
	return e
}

// QueryOrder returns an order by orderId or origClientOrderId
func (t SpotTrade) QueryOrder(symbol string) *OrderRefService[Order] {
	return newOrderRef[Order](t.c, &spotQueryOrder, symbol)
}

// OpenOrders returns open orders, for every symbol unless one is set
func (t SpotTrade) OpenOrders() *OpenOrdersService {
	return &OpenOrdersService{*newEndpoint[[]Order](t.c, &spotOpenOrders)}
}

// AllOrders returns active, cancelled and filled orders of symbol
func (t SpotTrade) AllOrders(symbol string) *OrderHistoryService[[]Order] {
	return newOrderHistory[[]Order](t.c, &spotAllOrders, symbol)
}

// NewOrderService builds a new spot order. T is Order for live orders and
// Empty for test orders.
type NewOrderService[T any] struct {
	Endpoint[T]
}

// Symbol sets the symbol
func (s *NewOrderService[T]) Symbol(symbol string) *NewOrderService[T] {
	s.params.SetString("symbol", symbol)
	return s
}

// Side sets the order side
func (s *NewOrderService[T]) Side(side SideType) *NewOrderService[T] {
	s.params.SetEnum("side", string(side))
	return s
}

// Type sets the order type
func (s *NewOrderService[T]) Type(t OrderType) *NewOrderService[T] {
	s.params.SetEnum("type", string(t))
	return s
}

// TimeInForce sets how long the order stays active
func (s *NewOrderService[T]) TimeInForce(tif TimeInForce) *NewOrderService[T] {
	s.params.SetEnum("timeInForce", string(tif))
	return s
}

// Quantity sets the base asset quantity
func (s *NewOrderService[T]) Quantity(q decimal.Decimal) *NewOrderService[T] {
	s.params.SetDecimal("quantity", q)
	return s
}

// QuoteOrderQty sets the quote asset amount of a market order
func (s *NewOrderService[T]) QuoteOrderQty(q decimal.Decimal) *NewOrderService[T] {
	s.params.SetDecimal("quoteOrderQty", q)
	return s
}

// Price sets the limit price
func (s *NewOrderService[T]) Price(p decimal.Decimal) *NewOrderService[T] {
	s.params.SetDecimal("price", p)
	return s
}

// NewClientOrderID sets the client order id
func (s *NewOrderService[T]) NewClientOrderID(id string) *NewOrderService[T] {
	s.params.SetString("newClientOrderId", id)
	return s
}

// GenerateClientOrderID sets a random client order id; read it back with
// ClientOrderID
func (s *NewOrderService[T]) GenerateClientOrderID() *NewOrderService[T] {
	setClientOrderID(s.params, NewClientOrderID)
	return s
}

// ClientOrderID returns the client order id set on the request
func (s *NewOrderService[T]) ClientOrderID() string {
	v, _ := s.params.Value("newClientOrderId")
	return v
}

// StrategyID tags the order with a strategy id
func (s *NewOrderService[T]) StrategyID(id int64) *NewOrderService[T] {
	s.params.SetInt("strategyId", id)
	return s
}

// StrategyType tags the order with a strategy type of at least 1000000
func (s *NewOrderService[T]) StrategyType(t int64) *NewOrderService[T] {
	s.params.SetInt("strategyType", t)
	return s
}

// StopPrice sets the trigger price of stop and take profit orders
func (s *NewOrderService[T]) StopPrice(p decimal.Decimal) *NewOrderService[T] {
	s.params.SetDecimal("stopPrice", p)
	return s
}

// TrailingDelta sets the trailing delta in basis points
func (s *NewOrderService[T]) TrailingDelta(bips int64) *NewOrderService[T] {
	s.params.SetInt("trailingDelta", bips)
	return s
}

// IcebergQty sets the visible quantity of an iceberg order
func (s *NewOrderService[T]) IcebergQty(q decimal.Decimal) *NewOrderService[T] {
	s.params.SetDecimal("icebergQty", q)
	return s
}

// NewOrderRespType selects the acknowledgement detail
func (s *NewOrderService[T]) NewOrderRespType(t NewOrderRespType) *NewOrderService[T] {
	s.params.SetEnum("newOrderRespType", string(t))
	return s
}

// SelfTradePreventionMode sets the self trade prevention mode
func (s *NewOrderService[T]) SelfTradePreventionMode(m SelfTradePreventionMode) *NewOrderService[T] {
	s.params.SetEnum("selfTradePreventionMode", string(m))
	return s
}

// OrderRefService builds a request addressing one order by orderId or
// origClientOrderId
type OrderRefService[T any] struct {
	Endpoint[T]
}

func newOrderRef[T any](c *Client, d *Descriptor, symbol string) *OrderRefService[T] {
	s := &OrderRefService[T]{*newEndpoint[T](c, d)}
	s.params.SetString("symbol", symbol)
	return s
}

// OrderID selects the order by exchange id
func (s *OrderRefService[T]) OrderID(id int64) *OrderRefService[T] {
	s.params.SetInt("orderId", id)
	return s
}

// OrigClientOrderID selects the order by client order id
func (s *OrderRefService[T]) OrigClientOrderID(id string) *OrderRefService[T] {
	s.params.SetString("origClientOrderId", id)
	return s
}

// NewClientOrderID sets the client id of the cancellation; cancels only
func (s *OrderRefService[T]) NewClientOrderID(id string) *OrderRefService[T] {
	s.params.SetString("newClientOrderId", id)
	return s
}

// CancelRestrictions restricts a spot cancel to orders with the status;
// ONLY_NEW or ONLY_PARTIALLY_FILLED
func (s *OrderRefService[T]) CancelRestrictions(r string) *OrderRefService[T] {
	s.params.SetEnum("cancelRestrictions", r)
	return s
}

// IsIsolated selects the isolated margin account; margin only
func (s *OrderRefService[T]) IsIsolated(b bool) *OrderRefService[T] {
	s.params.SetEnum("isIsolated", upperBool(b))
	return s
}

// OpenOrdersService builds an open orders request
type OpenOrdersService struct {
	Endpoint[[]Order]
}

// Symbol restricts the response to one symbol
func (s *OpenOrdersService) Symbol(symbol string) *OpenOrdersService {
	s.params.SetString("symbol", symbol)
	return s
}

// IsIsolated selects the isolated margin account; margin only
func (s *OpenOrdersService) IsIsolated(b bool) *OpenOrdersService {
	s.params.SetEnum("isIsolated", upperBool(b))
	return s
}

// OrderHistoryService builds a paged order or trade history request
type OrderHistoryService[T any] struct {
	Endpoint[T]
}

func newOrderHistory[T any](c *Client, d *Descriptor, symbol string) *OrderHistoryService[T] {
	s := &OrderHistoryService[T]{*newEndpoint[T](c, d)}
	s.params.SetString("symbol", symbol)
	return s
}

// OrderID sets the order id to page from, or the order whose trades are
// returned for trade history
func (s *OrderHistoryService[T]) OrderID(id int64) *OrderHistoryService[T] {
	s.params.SetInt("orderId", id)
	return s
}

// FromID sets the trade id to page from; trade history only
func (s *OrderHistoryService[T]) FromID(id int64) *OrderHistoryService[T] {
	s.params.SetInt("fromId", id)
	return s
}

// StartTime sets the inclusive start of the window
func (s *OrderHistoryService[T]) StartTime(t time.Time) *OrderHistoryService[T] {
	s.params.SetTime("startTime", t)
	return s
}

// EndTime sets the inclusive end of the window
func (s *OrderHistoryService[T]) EndTime(t time.Time) *OrderHistoryService[T] {
	s.params.SetTime("endTime", t)
	return s
}

// Limit sets the number of records returned
func (s *OrderHistoryService[T]) Limit(limit int64) *OrderHistoryService[T] {
	s.params.SetInt("limit", limit)
	return s
}
