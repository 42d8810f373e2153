package binance

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobinance/exchanges/binance/params"
)

var (
	marginAllPairs = Descriptor{
		Method: http.MethodGet, Path: "/sapi/v1/margin/allPairs", Security: SecurityAPIKey, Weight: 1,
		Schema: params.NewSchema(symbolField(false)),
	}
	marginAllAssets = Descriptor{
		Method: http.MethodGet, Path: "/sapi/v1/margin/allAssets", Security: SecurityAPIKey, Weight: 1,
		Schema: params.NewSchema(assetField("asset", false)),
	}
	marginPriceIndex = Descriptor{
		Method: http.MethodGet, Path: "/sapi/v1/margin/priceIndex", Security: SecurityAPIKey, Weight: 10,
		Schema: params.NewSchema(symbolField(true)),
	}

	marginNewOrder = Descriptor{
		Method: http.MethodPost, Path: "/sapi/v1/margin/order", Security: SecuritySigned, Weight: 6, OrderWeight: 1,
		Schema: signedSchema(
			symbolField(true),
			isolatedField(),
			enumField("side", true, SideBuy, SideSell),
			enumField("type", true,
				OrderTypeLimit, OrderTypeMarket, OrderTypeStopLoss, OrderTypeStopLossLimit,
				OrderTypeTakeProfit, OrderTypeTakeProfitLimit, OrderTypeLimitMaker),
			decimalField("quantity", false),
			decimalField("quoteOrderQty", false),
			decimalField("price", false),
			decimalField("stopPrice", false),
			clientOrderIDField("newClientOrderId"),
			decimalField("icebergQty", false),
			enumField("newOrderRespType", false, NewOrderRespACK, NewOrderRespResult, NewOrderRespFull),
			enumField("sideEffectType", false, SideEffectNone, SideEffectMarginBuy, SideEffectAutoRepay, SideEffectAutoBorrowRepay),
			enumField("timeInForce", false, TimeInForceGTC, TimeInForceIOC, TimeInForceFOK),
			enumField("selfTradePreventionMode", false, STPNone, STPExpireTaker, STPExpireMaker, STPExpireBoth),
			boolField("autoRepayAtCancel"),
		),
	}
	marginCancelOrder = Descriptor{
		Method: http.MethodDelete, Path: "/sapi/v1/margin/order", Security: SecuritySigned, Weight: 10,
		Schema: signedSchema(
			symbolField(true),
			isolatedField(),
			idField("orderId"),
			clientOrderIDField("origClientOrderId"),
			clientOrderIDField("newClientOrderId"),
		),
	}
	marginQueryOrder = Descriptor{
		Method: http.MethodGet, Path: "/sapi/v1/margin/order", Security: SecuritySigned, Weight: 10,
		Schema: signedSchema(symbolField(true), isolatedField(), idField("orderId"), clientOrderIDField("origClientOrderId")),
	}
	marginOpenOrders = Descriptor{
		Method: http.MethodGet, Path: "/sapi/v1/margin/openOrders", Security: SecuritySigned, Weight: 10,
		Schema: signedSchema(symbolField(false), isolatedField()),
	}

	marginAccount = Descriptor{
		Method: http.MethodGet, Path: "/sapi/v1/margin/account", Security: SecuritySigned, Weight: 10,
		Schema: signedSchema(),
	}
	marginBorrowRepay = Descriptor{
		Method: http.MethodPost, Path: "/sapi/v1/margin/borrow-repay", Security: SecuritySigned, Weight: 1500,
		Schema: signedSchema(
			assetField("asset", true),
			isolatedField(),
			symbolField(false),
			decimalField("amount", true),
			enumField("type", true, Borrow, Repay),
		),
	}
)

// MarginMarket holds the margin market data routes
type MarginMarket struct{ c *Client }

// AllPairs returns every cross margin pair, or one when symbol is set
func (m MarginMarket) AllPairs() *SymbolFilterService[[]MarginPair] {
	return &SymbolFilterService[[]MarginPair]{*newEndpoint[[]MarginPair](m.c, &marginAllPairs)}
}

// AllAssets returns every margin asset
func (m MarginMarket) AllAssets() *Endpoint[[]MarginAsset] {
	return newEndpoint[[]MarginAsset](m.c, &marginAllAssets)
}

// PriceIndex returns the margin price index of symbol
func (m MarginMarket) PriceIndex(symbol string) *Endpoint[MarginPriceIndex] {
	e := newEndpoint[MarginPriceIndex](m.c, &marginPriceIndex)
	e.params.SetString("symbol", symbol)
	return e
}

// AvgPrice returns the current average price of symbol
func (m MarginMarket) AvgPrice(symbol string) *Endpoint[AvgPrice] {
	return newAvgPrice(m.c, symbol)
}

// SymbolFilterService builds a request optionally restricted to one symbol
type SymbolFilterService[T any] struct {
	Endpoint[T]
}

// Symbol restricts the response to one symbol
func (s *SymbolFilterService[T]) Symbol(symbol string) *SymbolFilterService[T] {
	s.params.SetString("symbol", symbol)
	return s
}

// MarginTrade holds the signed margin order routes
type MarginTrade struct{ c *Client }

// NewOrder places a margin order
func (t MarginTrade) NewOrder() *MarginOrderService {
	return &MarginOrderService{*newEndpoint[Order](t.c, &marginNewOrder)}
}

// CancelOrder cancels an active margin order
func (t MarginTrade) CancelOrder(symbol string) *OrderRefService[Order] {
	return newOrderRef[Order](t.c, &marginCancelOrder, symbol)
}

// QueryOrder returns a margin order
func (t MarginTrade) QueryOrder(symbol string) *OrderRefService[Order] {
	return newOrderRef[Order](t.c, &marginQueryOrder, symbol)
}

// OpenOrders returns open margin orders
func (t MarginTrade) OpenOrders() *OpenOrdersService {
	return &OpenOrdersService{*newEndpoint[[]Order](t.c, &marginOpenOrders)}
}

// MarginOrderService builds a new margin order
type MarginOrderService struct {
	Endpoint[Order]
}

// Symbol sets the symbol
func (s *MarginOrderService) Symbol(symbol string) *MarginOrderService {
	s.params.SetString("symbol", symbol)
	return s
}

// IsIsolated places the order on the isolated margin account of the symbol
func (s *MarginOrderService) IsIsolated(b bool) *MarginOrderService {
	s.params.SetEnum("isIsolated", upperBool(b))
	return s
}

// Side sets the order side
func (s *MarginOrderService) Side(side SideType) *MarginOrderService {
	s.params.SetEnum("side", string(side))
	return s
}

// Type sets the order type
func (s *MarginOrderService) Type(t OrderType) *MarginOrderService {
	s.params.SetEnum("type", string(t))
	return s
}

// Quantity sets the base asset quantity
func (s *MarginOrderService) Quantity(q decimal.Decimal) *MarginOrderService {
	s.params.SetDecimal("quantity", q)
	return s
}

// QuoteOrderQty sets the quote asset amount of a market order
func (s *MarginOrderService) QuoteOrderQty(q decimal.Decimal) *MarginOrderService {
	s.params.SetDecimal("quoteOrderQty", q)
	return s
}

// Price sets the limit price
func (s *MarginOrderService) Price(p decimal.Decimal) *MarginOrderService {
	s.params.SetDecimal("price", p)
	return s
}

// StopPrice sets the trigger price
func (s *MarginOrderService) StopPrice(p decimal.Decimal) *MarginOrderService {
	s.params.SetDecimal("stopPrice", p)
	return s
}

// NewClientOrderID sets the client order id
func (s *MarginOrderService) NewClientOrderID(id string) *MarginOrderService {
	s.params.SetString("newClientOrderId", id)
	return s
}

// IcebergQty sets the visible quantity of an iceberg order
func (s *MarginOrderService) IcebergQty(q decimal.Decimal) *MarginOrderService {
	s.params.SetDecimal("icebergQty", q)
	return s
}

// NewOrderRespType selects the acknowledgement detail
func (s *MarginOrderService) NewOrderRespType(t NewOrderRespType) *MarginOrderService {
	s.params.SetEnum("newOrderRespType", string(t))
	return s
}

// SideEffectType selects automatic borrowing or repayment
func (s *MarginOrderService) SideEffectType(t SideEffectType) *MarginOrderService {
	s.params.SetEnum("sideEffectType", string(t))
	return s
}

// TimeInForce sets how long the order stays active
func (s *MarginOrderService) TimeInForce(tif TimeInForce) *MarginOrderService {
	s.params.SetEnum("timeInForce", string(tif))
	return s
}

// SelfTradePreventionMode sets the self trade prevention mode
func (s *MarginOrderService) SelfTradePreventionMode(m SelfTradePreventionMode) *MarginOrderService {
	s.params.SetEnum("selfTradePreventionMode", string(m))
	return s
}

// AutoRepayAtCancel repays the borrowed amount when the order is cancelled
func (s *MarginOrderService) AutoRepayAtCancel(b bool) *MarginOrderService {
	s.params.SetBool("autoRepayAtCancel", b)
	return s
}

// MarginAccountRoutes holds the signed margin account routes
type MarginAccountRoutes struct{ c *Client }

// Account returns the cross margin account
func (a MarginAccountRoutes) Account() *Endpoint[MarginAccount] {
	return newEndpoint[MarginAccount](a.c, &marginAccount)
}

// BorrowRepay borrows or repays amount of asset
func (a MarginAccountRoutes) BorrowRepay(asset string, amount decimal.Decimal, t BorrowRepayType) *BorrowRepayService {
	s := &BorrowRepayService{*newEndpoint[TransactionID](a.c, &marginBorrowRepay)}
	s.params.SetString("asset", asset).SetDecimal("amount", amount).SetEnum("type", string(t))
	return s
}

// BorrowRepayService builds a margin loan request
type BorrowRepayService struct {
	Endpoint[TransactionID]
}

// Isolated borrows or repays on the isolated account of symbol
func (s *BorrowRepayService) Isolated(symbol string) *BorrowRepayService {
	s.params.SetEnum("isIsolated", upperBool(true)).SetString("symbol", symbol)
	return s
}
