package binance

import "net/http"

var (
	spotAccount = Descriptor{
		Method: http.MethodGet, Path: "/api/v3/account", Security: SecuritySigned, Weight: 20,
		Schema: signedSchema(boolField("omitZeroBalances")),
	}
	spotMyTrades = Descriptor{
		Method: http.MethodGet, Path: "/api/v3/myTrades", Security: SecuritySigned, Weight: 20,
		Schema: signedSchema(
			symbolField(true),
			idField("orderId"),
			timeField("startTime"),
			timeField("endTime"),
			idField("fromId"),
			intField("limit", false, 1, 1000),
		),
	}
	spotOrderRateLimit = Descriptor{
		Method: http.MethodGet, Path: "/api/v3/rateLimit/order", Security: SecuritySigned, Weight: 40,
		Schema: signedSchema(),
	}
)

// SpotAccount holds the signed spot account routes
type SpotAccount struct{ c *Client }

// Account returns balances and permissions
func (a SpotAccount) Account() *AccountService {
	return &AccountService{*newEndpoint[Account](a.c, &spotAccount)}
}

// MyTrades returns the account's trades on symbol
func (a SpotAccount) MyTrades(symbol string) *OrderHistoryService[[]AccountTrade] {
	return newOrderHistory[[]AccountTrade](a.c, &spotMyTrades, symbol)
}

// OrderRateLimit returns the current unfilled order counts
func (a SpotAccount) OrderRateLimit() *Endpoint[[]RateLimit] {
	return newEndpoint[[]RateLimit](a.c, &spotOrderRateLimit)
}

// AccountService builds an account information request
type AccountService struct {
	Endpoint[Account]
}

// OmitZeroBalances drops empty balances from the response
func (s *AccountService) OmitZeroBalances(b bool) *AccountService {
	s.params.SetBool("omitZeroBalances", b)
	return s
}
