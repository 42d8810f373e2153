package binance

import (
	"bytes"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobinance/encoding/json"
	"github.com/thrasher-corp/gobinance/types"
)

// SideType is the side of an order
type SideType string

// Order sides
const (
	SideBuy  SideType = "BUY"
	SideSell SideType = "SELL"
)

// OrderType is a spot or margin order type
type OrderType string

// Spot order types
const (
	OrderTypeLimit           OrderType = "LIMIT"
	OrderTypeMarket          OrderType = "MARKET"
	OrderTypeStopLoss        OrderType = "STOP_LOSS"
	OrderTypeStopLossLimit   OrderType = "STOP_LOSS_LIMIT"
	OrderTypeTakeProfit      OrderType = "TAKE_PROFIT"
	OrderTypeTakeProfitLimit OrderType = "TAKE_PROFIT_LIMIT"
	OrderTypeLimitMaker      OrderType = "LIMIT_MAKER"
)

// FuturesOrderType is a USD-M futures order type
type FuturesOrderType string

// Futures order types
const (
	FuturesOrderTypeLimit              FuturesOrderType = "LIMIT"
	FuturesOrderTypeMarket             FuturesOrderType = "MARKET"
	FuturesOrderTypeStop               FuturesOrderType = "STOP"
	FuturesOrderTypeStopMarket         FuturesOrderType = "STOP_MARKET"
	FuturesOrderTypeTakeProfit         FuturesOrderType = "TAKE_PROFIT"
	FuturesOrderTypeTakeProfitMarket   FuturesOrderType = "TAKE_PROFIT_MARKET"
	FuturesOrderTypeTrailingStopMarket FuturesOrderType = "TRAILING_STOP_MARKET"
)

// TimeInForce determines how long an order stays active
type TimeInForce string

// Time in force values. GTX and GTD are futures only.
const (
	TimeInForceGTC TimeInForce = "GTC"
	TimeInForceIOC TimeInForce = "IOC"
	TimeInForceFOK TimeInForce = "FOK"
	TimeInForceGTX TimeInForce = "GTX"
	TimeInForceGTD TimeInForce = "GTD"
)

// NewOrderRespType selects the detail of a new order acknowledgement
type NewOrderRespType string

// New order response types
const (
	NewOrderRespACK    NewOrderRespType = "ACK"
	NewOrderRespResult NewOrderRespType = "RESULT"
	NewOrderRespFull   NewOrderRespType = "FULL"
)

// SelfTradePreventionMode controls matching against the account's own orders
type SelfTradePreventionMode string

// Self trade prevention modes
const (
	STPNone        SelfTradePreventionMode = "NONE"
	STPExpireTaker SelfTradePreventionMode = "EXPIRE_TAKER"
	STPExpireMaker SelfTradePreventionMode = "EXPIRE_MAKER"
	STPExpireBoth  SelfTradePreventionMode = "EXPIRE_BOTH"
)

// SideEffectType selects automatic borrowing or repayment on margin orders
type SideEffectType string

// Margin side effect types
const (
	SideEffectNone            SideEffectType = "NO_SIDE_EFFECT"
	SideEffectMarginBuy       SideEffectType = "MARGIN_BUY"
	SideEffectAutoRepay       SideEffectType = "AUTO_REPAY"
	SideEffectAutoBorrowRepay SideEffectType = "AUTO_BORROW_REPAY"
)

// BorrowRepayType selects the margin loan direction
type BorrowRepayType string

// Margin loan directions
const (
	Borrow BorrowRepayType = "BORROW"
	Repay  BorrowRepayType = "REPAY"
)

// PositionSide is the futures position an order applies to
type PositionSide string

// Futures position sides
const (
	PositionSideBoth  PositionSide = "BOTH"
	PositionSideLong  PositionSide = "LONG"
	PositionSideShort PositionSide = "SHORT"
)

// WorkingType selects the price stop orders trigger on
type WorkingType string

// Futures working types
const (
	WorkingTypeMarkPrice     WorkingType = "MARK_PRICE"
	WorkingTypeContractPrice WorkingType = "CONTRACT_PRICE"
)

// KlineInterval is a candlestick interval
type KlineInterval string

// Kline intervals
const (
	Interval1s  KlineInterval = "1s"
	Interval1m  KlineInterval = "1m"
	Interval3m  KlineInterval = "3m"
	Interval5m  KlineInterval = "5m"
	Interval15m KlineInterval = "15m"
	Interval30m KlineInterval = "30m"
	Interval1h  KlineInterval = "1h"
	Interval2h  KlineInterval = "2h"
	Interval4h  KlineInterval = "4h"
	Interval6h  KlineInterval = "6h"
	Interval8h  KlineInterval = "8h"
	Interval12h KlineInterval = "12h"
	Interval1d  KlineInterval = "1d"
	Interval3d  KlineInterval = "3d"
	Interval1w  KlineInterval = "1w"
	Interval1M  KlineInterval = "1M"
)

// TickerType selects the full or reduced ticker payload
type TickerType string

// Ticker types
const (
	TickerFull TickerType = "FULL"
	TickerMini TickerType = "MINI"
)

// Empty is the response of routes that return an empty object
type Empty struct{}

// ServerTime holds the exchange clock in Unix milliseconds
type ServerTime struct {
	ServerTime int64 `json:"serverTime"`
}

// RateLimit is a limit advertised in exchange info or the order rate limit
// route
type RateLimit struct {
	RateLimitType string `json:"rateLimitType"`
	Interval      string `json:"interval"`
	IntervalNum   int64  `json:"intervalNum"`
	Limit         int64  `json:"limit"`
	Count         int64  `json:"count"`
}

// SymbolFilter is a trading rule. Only the fields relevant to the filter
// type are populated.
type SymbolFilter struct {
	FilterType       string          `json:"filterType"`
	MinPrice         decimal.Decimal `json:"minPrice"`
	MaxPrice         decimal.Decimal `json:"maxPrice"`
	TickSize         decimal.Decimal `json:"tickSize"`
	MinQty           decimal.Decimal `json:"minQty"`
	MaxQty           decimal.Decimal `json:"maxQty"`
	StepSize         decimal.Decimal `json:"stepSize"`
	MinNotional      decimal.Decimal `json:"minNotional"`
	MaxNotional      decimal.Decimal `json:"maxNotional"`
	Limit            int64           `json:"limit"`
	MaxNumOrders     int64           `json:"maxNumOrders"`
	MaxNumAlgoOrders int64           `json:"maxNumAlgoOrders"`
}

// SymbolInfo holds the trading rules of a spot symbol
type SymbolInfo struct {
	Symbol                     string         `json:"symbol"`
	Status                     string         `json:"status"`
	BaseAsset                  string         `json:"baseAsset"`
	BaseAssetPrecision         int64          `json:"baseAssetPrecision"`
	QuoteAsset                 string         `json:"quoteAsset"`
	QuoteAssetPrecision        int64          `json:"quoteAssetPrecision"`
	OrderTypes                 []string       `json:"orderTypes"`
	IcebergAllowed             bool           `json:"icebergAllowed"`
	OCOAllowed                 bool           `json:"ocoAllowed"`
	QuoteOrderQtyMarketAllowed bool           `json:"quoteOrderQtyMarketAllowed"`
	IsSpotTradingAllowed       bool           `json:"isSpotTradingAllowed"`
	IsMarginTradingAllowed     bool           `json:"isMarginTradingAllowed"`
	Filters                    []SymbolFilter `json:"filters"`
	Permissions                []string       `json:"permissions"`
}

// ExchangeInfo holds the spot trading rules and limits
type ExchangeInfo struct {
	Timezone   string       `json:"timezone"`
	ServerTime types.Time   `json:"serverTime"`
	RateLimits []RateLimit  `json:"rateLimits"`
	Symbols    []SymbolInfo `json:"symbols"`
}

// PriceLevel is a single order book level
type PriceLevel struct {
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

// UnmarshalJSON decodes a [price, quantity] pair
func (p *PriceLevel) UnmarshalJSON(data []byte) error {
	target := [2]any{&p.Price, &p.Quantity}
	return json.Unmarshal(data, &target)
}

// OrderBook is a depth snapshot
type OrderBook struct {
	LastUpdateID int64        `json:"lastUpdateId"`
	Bids         []PriceLevel `json:"bids"`
	Asks         []PriceLevel `json:"asks"`
	// Futures only
	MessageTime     types.Time `json:"E"`
	TransactionTime types.Time `json:"T"`
}

// Trade is a public trade
type Trade struct {
	ID           int64           `json:"id"`
	Price        decimal.Decimal `json:"price"`
	Quantity     decimal.Decimal `json:"qty"`
	QuoteQty     decimal.Decimal `json:"quoteQty"`
	Time         types.Time      `json:"time"`
	IsBuyerMaker bool            `json:"isBuyerMaker"`
	IsBestMatch  bool            `json:"isBestMatch"`
}

// AggTrade is a compressed aggregate trade
type AggTrade struct {
	AggTradeID   int64           `json:"a"`
	Price        decimal.Decimal `json:"p"`
	Quantity     decimal.Decimal `json:"q"`
	FirstTradeID int64           `json:"f"`
	LastTradeID  int64           `json:"l"`
	Timestamp    types.Time      `json:"T"`
	IsBuyerMaker bool            `json:"m"`
	IsBestMatch  bool            `json:"M"`
}

// Kline is a candlestick
type Kline struct {
	OpenTime                 types.Time
	Open                     decimal.Decimal
	High                     decimal.Decimal
	Low                      decimal.Decimal
	Close                    decimal.Decimal
	Volume                   decimal.Decimal
	CloseTime                types.Time
	QuoteAssetVolume         decimal.Decimal
	TradeCount               int64
	TakerBuyBaseAssetVolume  decimal.Decimal
	TakerBuyQuoteAssetVolume decimal.Decimal
}

// UnmarshalJSON decodes the kline array representation; trailing unused
// elements are ignored
func (k *Kline) UnmarshalJSON(data []byte) error {
	target := [12]any{&k.OpenTime, &k.Open, &k.High, &k.Low, &k.Close, &k.Volume, &k.CloseTime, &k.QuoteAssetVolume, &k.TradeCount, &k.TakerBuyBaseAssetVolume, &k.TakerBuyQuoteAssetVolume}
	return json.Unmarshal(data, &target)
}

// AvgPrice is the current average price of a symbol
type AvgPrice struct {
	Mins      int64           `json:"mins"`
	Price     decimal.Decimal `json:"price"`
	CloseTime types.Time      `json:"closeTime"`
}

// Ticker24hr is the rolling 24 hour price change of a symbol
type Ticker24hr struct {
	Symbol             string          `json:"symbol"`
	PriceChange        decimal.Decimal `json:"priceChange"`
	PriceChangePercent decimal.Decimal `json:"priceChangePercent"`
	WeightedAvgPrice   decimal.Decimal `json:"weightedAvgPrice"`
	PrevClosePrice     decimal.Decimal `json:"prevClosePrice"`
	LastPrice          decimal.Decimal `json:"lastPrice"`
	LastQty            decimal.Decimal `json:"lastQty"`
	BidPrice           decimal.Decimal `json:"bidPrice"`
	BidQty             decimal.Decimal `json:"bidQty"`
	AskPrice           decimal.Decimal `json:"askPrice"`
	AskQty             decimal.Decimal `json:"askQty"`
	OpenPrice          decimal.Decimal `json:"openPrice"`
	HighPrice          decimal.Decimal `json:"highPrice"`
	LowPrice           decimal.Decimal `json:"lowPrice"`
	Volume             decimal.Decimal `json:"volume"`
	QuoteVolume        decimal.Decimal `json:"quoteVolume"`
	OpenTime           types.Time      `json:"openTime"`
	CloseTime          types.Time      `json:"closeTime"`
	FirstID            int64           `json:"firstId"`
	LastID             int64           `json:"lastId"`
	Count              int64           `json:"count"`
}

// PriceTicker is the latest price of a symbol
type PriceTicker struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}

// BookTicker is the best bid and ask of a symbol
type BookTicker struct {
	Symbol   string          `json:"symbol"`
	BidPrice decimal.Decimal `json:"bidPrice"`
	BidQty   decimal.Decimal `json:"bidQty"`
	AskPrice decimal.Decimal `json:"askPrice"`
	AskQty   decimal.Decimal `json:"askQty"`
}

// Tickers24hr, PriceTickers and BookTickers decode both the single object
// returned when one symbol is requested and the array returned otherwise
type (
	Tickers24hr  []Ticker24hr
	PriceTickers []PriceTicker
	BookTickers  []BookTicker
)

// UnmarshalJSON accepts an object or an array
func (t *Tickers24hr) UnmarshalJSON(data []byte) error {
	return unmarshalOneOrMany(data, (*[]Ticker24hr)(t))
}

// UnmarshalJSON accepts an object or an array
func (t *PriceTickers) UnmarshalJSON(data []byte) error {
	return unmarshalOneOrMany(data, (*[]PriceTicker)(t))
}

// UnmarshalJSON accepts an object or an array
func (t *BookTickers) UnmarshalJSON(data []byte) error {
	return unmarshalOneOrMany(data, (*[]BookTicker)(t))
}

func unmarshalOneOrMany[T any](data []byte, out *[]T) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*out = []T{v}
		return nil
	}
	return json.Unmarshal(data, out)
}

// Fill is a partial execution of a new order
type Fill struct {
	Price           decimal.Decimal `json:"price"`
	Quantity        decimal.Decimal `json:"qty"`
	Commission      decimal.Decimal `json:"commission"`
	CommissionAsset string          `json:"commissionAsset"`
	TradeID         int64           `json:"tradeId"`
}

// Order is a spot or margin order as reported by order, cancel and query
// routes. Fields absent from the chosen response type are zero.
type Order struct {
	Symbol                  string          `json:"symbol"`
	OrderID                 int64           `json:"orderId"`
	OrderListID             int64           `json:"orderListId"`
	ClientOrderID           string          `json:"clientOrderId"`
	OrigClientOrderID       string          `json:"origClientOrderId"`
	TransactTime            types.Time      `json:"transactTime"`
	Price                   decimal.Decimal `json:"price"`
	OrigQty                 decimal.Decimal `json:"origQty"`
	ExecutedQty             decimal.Decimal `json:"executedQty"`
	CummulativeQuoteQty     decimal.Decimal `json:"cummulativeQuoteQty"`
	Status                  string          `json:"status"`
	TimeInForce             TimeInForce     `json:"timeInForce"`
	Type                    OrderType       `json:"type"`
	Side                    SideType        `json:"side"`
	StopPrice               decimal.Decimal `json:"stopPrice"`
	IcebergQty              decimal.Decimal `json:"icebergQty"`
	Time                    types.Time      `json:"time"`
	UpdateTime              types.Time      `json:"updateTime"`
	IsWorking               bool            `json:"isWorking"`
	IsIsolated              bool            `json:"isIsolated"`
	OrigQuoteOrderQty       decimal.Decimal `json:"origQuoteOrderQty"`
	SelfTradePreventionMode string          `json:"selfTradePreventionMode"`
	Fills                   []Fill          `json:"fills"`
}

// Balance is a spot asset balance
type Balance struct {
	Asset  string          `json:"asset"`
	Free   decimal.Decimal `json:"free"`
	Locked decimal.Decimal `json:"locked"`
}

// CommissionRates are the account's fee rates
type CommissionRates struct {
	Maker  decimal.Decimal `json:"maker"`
	Taker  decimal.Decimal `json:"taker"`
	Buyer  decimal.Decimal `json:"buyer"`
	Seller decimal.Decimal `json:"seller"`
}

// Account is the spot account information
type Account struct {
	MakerCommission  int64           `json:"makerCommission"`
	TakerCommission  int64           `json:"takerCommission"`
	BuyerCommission  int64           `json:"buyerCommission"`
	SellerCommission int64           `json:"sellerCommission"`
	CommissionRates  CommissionRates `json:"commissionRates"`
	CanTrade         bool            `json:"canTrade"`
	CanWithdraw      bool            `json:"canWithdraw"`
	CanDeposit       bool            `json:"canDeposit"`
	Brokered         bool            `json:"brokered"`
	UpdateTime       types.Time      `json:"updateTime"`
	AccountType      string          `json:"accountType"`
	Balances         []Balance       `json:"balances"`
	Permissions      []string        `json:"permissions"`
	UID              int64           `json:"uid"`
}

// AccountTrade is a trade of the account
type AccountTrade struct {
	Symbol          string          `json:"symbol"`
	ID              int64           `json:"id"`
	OrderID         int64           `json:"orderId"`
	OrderListID     int64           `json:"orderListId"`
	Price           decimal.Decimal `json:"price"`
	Quantity        decimal.Decimal `json:"qty"`
	QuoteQty        decimal.Decimal `json:"quoteQty"`
	Commission      decimal.Decimal `json:"commission"`
	CommissionAsset string          `json:"commissionAsset"`
	Time            types.Time      `json:"time"`
	IsBuyer         bool            `json:"isBuyer"`
	IsMaker         bool            `json:"isMaker"`
	IsBestMatch     bool            `json:"isBestMatch"`
	IsIsolated      bool            `json:"isIsolated"`
}

// ListenKey identifies a user data stream
type ListenKey struct {
	ListenKey string `json:"listenKey"`
}

// MarginPair is a cross margin trading pair
type MarginPair struct {
	ID            int64  `json:"id"`
	Symbol        string `json:"symbol"`
	Base          string `json:"base"`
	Quote         string `json:"quote"`
	IsMarginTrade bool   `json:"isMarginTrade"`
	IsBuyAllowed  bool   `json:"isBuyAllowed"`
	IsSellAllowed bool   `json:"isSellAllowed"`
}

// MarginAsset is an asset that can be borrowed on margin
type MarginAsset struct {
	AssetFullName  string          `json:"assetFullName"`
	AssetName      string          `json:"assetName"`
	IsBorrowable   bool            `json:"isBorrowable"`
	IsMortgageable bool            `json:"isMortgageable"`
	UserMinBorrow  decimal.Decimal `json:"userMinBorrow"`
	UserMinRepay   decimal.Decimal `json:"userMinRepay"`
}

// MarginPriceIndex is the margin price index of a symbol
type MarginPriceIndex struct {
	CalcTime types.Time      `json:"calcTime"`
	Price    decimal.Decimal `json:"price"`
	Symbol   string          `json:"symbol"`
}

// MarginUserAsset is an asset position of the margin account
type MarginUserAsset struct {
	Asset    string          `json:"asset"`
	Borrowed decimal.Decimal `json:"borrowed"`
	Free     decimal.Decimal `json:"free"`
	Interest decimal.Decimal `json:"interest"`
	Locked   decimal.Decimal `json:"locked"`
	NetAsset decimal.Decimal `json:"netAsset"`
}

// MarginAccount is the cross margin account information
type MarginAccount struct {
	BorrowEnabled       bool              `json:"borrowEnabled"`
	MarginLevel         decimal.Decimal   `json:"marginLevel"`
	TotalAssetOfBtc     decimal.Decimal   `json:"totalAssetOfBtc"`
	TotalLiabilityOfBtc decimal.Decimal   `json:"totalLiabilityOfBtc"`
	TotalNetAssetOfBtc  decimal.Decimal   `json:"totalNetAssetOfBtc"`
	TradeEnabled        bool              `json:"tradeEnabled"`
	TransferEnabled     bool              `json:"transferEnabled"`
	UserAssets          []MarginUserAsset `json:"userAssets"`
}

// TransactionID identifies a margin loan or repayment
type TransactionID struct {
	TranID int64 `json:"tranId"`
}

// FuturesSymbolInfo holds the trading rules of a futures symbol
type FuturesSymbolInfo struct {
	Symbol            string         `json:"symbol"`
	Pair              string         `json:"pair"`
	ContractType      string         `json:"contractType"`
	DeliveryDate      types.Time     `json:"deliveryDate"`
	OnboardDate       types.Time     `json:"onboardDate"`
	Status            string         `json:"status"`
	BaseAsset         string         `json:"baseAsset"`
	QuoteAsset        string         `json:"quoteAsset"`
	MarginAsset       string         `json:"marginAsset"`
	PricePrecision    int64          `json:"pricePrecision"`
	QuantityPrecision int64          `json:"quantityPrecision"`
	OrderTypes        []string       `json:"orderTypes"`
	TimeInForce       []string       `json:"timeInForce"`
	Filters           []SymbolFilter `json:"filters"`
}

// FuturesExchangeInfo holds the USD-M futures trading rules and limits
type FuturesExchangeInfo struct {
	Timezone   string              `json:"timezone"`
	ServerTime types.Time          `json:"serverTime"`
	RateLimits []RateLimit         `json:"rateLimits"`
	Symbols    []FuturesSymbolInfo `json:"symbols"`
}

// PremiumIndex is the mark price and funding rate of a futures symbol
type PremiumIndex struct {
	Symbol               string          `json:"symbol"`
	MarkPrice            decimal.Decimal `json:"markPrice"`
	IndexPrice           decimal.Decimal `json:"indexPrice"`
	EstimatedSettlePrice decimal.Decimal `json:"estimatedSettlePrice"`
	LastFundingRate      decimal.Decimal `json:"lastFundingRate"`
	InterestRate         decimal.Decimal `json:"interestRate"`
	NextFundingTime      types.Time      `json:"nextFundingTime"`
	Time                 types.Time      `json:"time"`
}

// PremiumIndexes decodes the single object or array premium index response
type PremiumIndexes []PremiumIndex

// UnmarshalJSON accepts an object or an array
func (p *PremiumIndexes) UnmarshalJSON(data []byte) error {
	return unmarshalOneOrMany(data, (*[]PremiumIndex)(p))
}

// FundingRate is a historical funding rate
type FundingRate struct {
	Symbol      string          `json:"symbol"`
	FundingRate decimal.Decimal `json:"fundingRate"`
	FundingTime types.Time      `json:"fundingTime"`
	MarkPrice   decimal.Decimal `json:"markPrice"`
}

// FuturesOrder is a USD-M futures order
type FuturesOrder struct {
	Symbol        string           `json:"symbol"`
	OrderID       int64            `json:"orderId"`
	ClientOrderID string           `json:"clientOrderId"`
	Price         decimal.Decimal  `json:"price"`
	AvgPrice      decimal.Decimal  `json:"avgPrice"`
	OrigQty       decimal.Decimal  `json:"origQty"`
	ExecutedQty   decimal.Decimal  `json:"executedQty"`
	CumQuote      decimal.Decimal  `json:"cumQuote"`
	Status        string           `json:"status"`
	TimeInForce   TimeInForce      `json:"timeInForce"`
	Type          FuturesOrderType `json:"type"`
	OrigType      FuturesOrderType `json:"origType"`
	Side          SideType         `json:"side"`
	PositionSide  PositionSide     `json:"positionSide"`
	StopPrice     decimal.Decimal  `json:"stopPrice"`
	ActivatePrice decimal.Decimal  `json:"activatePrice"`
	PriceRate     decimal.Decimal  `json:"priceRate"`
	ReduceOnly    bool             `json:"reduceOnly"`
	ClosePosition bool             `json:"closePosition"`
	WorkingType   WorkingType      `json:"workingType"`
	PriceProtect  bool             `json:"priceProtect"`
	Time          types.Time       `json:"time"`
	UpdateTime    types.Time       `json:"updateTime"`
}

// FuturesBalance is a USD-M futures asset balance
type FuturesBalance struct {
	AccountAlias       string          `json:"accountAlias"`
	Asset              string          `json:"asset"`
	Balance            decimal.Decimal `json:"balance"`
	CrossWalletBalance decimal.Decimal `json:"crossWalletBalance"`
	CrossUnPnl         decimal.Decimal `json:"crossUnPnl"`
	AvailableBalance   decimal.Decimal `json:"availableBalance"`
	MaxWithdrawAmount  decimal.Decimal `json:"maxWithdrawAmount"`
	MarginAvailable    bool            `json:"marginAvailable"`
	UpdateTime         types.Time      `json:"updateTime"`
}

// PositionRisk is the risk of an open futures position
type PositionRisk struct {
	Symbol           string          `json:"symbol"`
	PositionAmt      decimal.Decimal `json:"positionAmt"`
	EntryPrice       decimal.Decimal `json:"entryPrice"`
	MarkPrice        decimal.Decimal `json:"markPrice"`
	UnRealizedProfit decimal.Decimal `json:"unRealizedProfit"`
	LiquidationPrice decimal.Decimal `json:"liquidationPrice"`
	Leverage         decimal.Decimal `json:"leverage"`
	MaxNotionalValue decimal.Decimal `json:"maxNotionalValue"`
	MarginType       string          `json:"marginType"`
	IsolatedMargin   decimal.Decimal `json:"isolatedMargin"`
	IsAutoAddMargin  string          `json:"isAutoAddMargin"`
	PositionSide     PositionSide    `json:"positionSide"`
	Notional         decimal.Decimal `json:"notional"`
	UpdateTime       types.Time      `json:"updateTime"`
}

// SystemStatus reports exchange maintenance
type SystemStatus struct {
	// Status is 0 for normal operation and 1 during maintenance
	Status int64  `json:"status"`
	Msg    string `json:"msg"`
}

// Network is a deposit and withdrawal network of a coin
type Network struct {
	Network         string          `json:"network"`
	Coin            string          `json:"coin"`
	Name            string          `json:"name"`
	IsDefault       bool            `json:"isDefault"`
	DepositEnable   bool            `json:"depositEnable"`
	WithdrawEnable  bool            `json:"withdrawEnable"`
	WithdrawFee     decimal.Decimal `json:"withdrawFee"`
	WithdrawMin     decimal.Decimal `json:"withdrawMin"`
	WithdrawMax     decimal.Decimal `json:"withdrawMax"`
	MinConfirm      int64           `json:"minConfirm"`
	UnLockConfirm   int64           `json:"unLockConfirm"`
	AddressRegex    string          `json:"addressRegex"`
	MemoRegex       string          `json:"memoRegex"`
	SameAddress     bool            `json:"sameAddress"`
	DepositDesc     string          `json:"depositDesc"`
	WithdrawDesc    string          `json:"withdrawDesc"`
	SpecialTips     string          `json:"specialTips"`
	BusyTime        string          `json:"busyTime"`
	EstimatedArrive int64           `json:"estimatedArrivalTime"`
}

// CoinInfo is the wallet configuration of a coin
type CoinInfo struct {
	Coin              string          `json:"coin"`
	Name              string          `json:"name"`
	DepositAllEnable  bool            `json:"depositAllEnable"`
	WithdrawAllEnable bool            `json:"withdrawAllEnable"`
	Free              decimal.Decimal `json:"free"`
	Locked            decimal.Decimal `json:"locked"`
	Freeze            decimal.Decimal `json:"freeze"`
	Withdrawing       decimal.Decimal `json:"withdrawing"`
	Ipoing            decimal.Decimal `json:"ipoing"`
	Ipoable           decimal.Decimal `json:"ipoable"`
	Storage           decimal.Decimal `json:"storage"`
	IsLegalMoney      bool            `json:"isLegalMoney"`
	Trading           bool            `json:"trading"`
	NetworkList       []Network       `json:"networkList"`
}

// DepositAddress is a deposit address for a coin and network
type DepositAddress struct {
	Address string `json:"address"`
	Coin    string `json:"coin"`
	Tag     string `json:"tag"`
	URL     string `json:"url"`
}

// AccountStatus is the account's trading status
type AccountStatus struct {
	Data string `json:"data"`
}

// APIRestrictions are the permissions of the API key
type APIRestrictions struct {
	IPRestrict                     bool       `json:"ipRestrict"`
	CreateTime                     types.Time `json:"createTime"`
	EnableReading                  bool       `json:"enableReading"`
	EnableSpotAndMarginTrading     bool       `json:"enableSpotAndMarginTrading"`
	EnableWithdrawals              bool       `json:"enableWithdrawals"`
	EnableInternalTransfer         bool       `json:"enableInternalTransfer"`
	EnableMargin                   bool       `json:"enableMargin"`
	EnableFutures                  bool       `json:"enableFutures"`
	PermitsUniversalTransfer       bool       `json:"permitsUniversalTransfer"`
	EnableVanillaOptions           bool       `json:"enableVanillaOptions"`
	EnablePortfolioMarginTrading   bool       `json:"enablePortfolioMarginTrading"`
	TradingAuthorityExpirationTime types.Time `json:"tradingAuthorityExpirationTime"`
}
